package nec

import (
	"bytes"
	"errors"
	"math"
	"strconv"
	"strings"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/matzehuels/lpda/pkg/lpda"
	"github.com/matzehuels/lpda/pkg/wire"
)

func TestMarshalLine(t *testing.T) {
	wires := []wire.Segment{{
		A:        r3.Vec{X: 98.9827560572969, Y: 20.5, Z: 26.522349550159525},
		B:        r3.Vec{X: 98.9827560572969, Y: 0, Z: 26.522349550159525},
		Diameter: 0.375,
		Segments: 21,
	}}

	got := string(Marshal(wires, Options{EZNEC: true}))
	want := "in\r\n98.9827560572969 20.5 26.522349550159525 98.9827560572969 0 26.522349550159525 0.375 21\r\n"
	if got != want {
		t.Errorf("Marshal() =\n%q\nwant\n%q", got, want)
	}
}

func TestMarshalWithoutHeader(t *testing.T) {
	wires := []wire.Segment{{B: r3.Vec{X: 1}, Diameter: 1, Segments: 3}}
	got := string(Marshal(wires, Options{}))
	if want := "0 0 0 1 0 0 1 3\r\n"; got != want {
		t.Errorf("Marshal() = %q, want %q", got, want)
	}
}

func TestMarshalEmpty(t *testing.T) {
	if got := string(Marshal(nil, Options{EZNEC: true})); got != "in\r\n" {
		t.Errorf("Marshal(nil) = %q, want %q", got, "in\r\n")
	}
	if got := Marshal(nil, Options{}); len(got) != 0 {
		t.Errorf("Marshal(nil) without header = %q, want empty", got)
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{41, "41"},
		{-20.5, "-20.5"},
		{0.125, "0.125"},
		{1e-7, "0.0000001"},
		{1e21, "1000000000000000000000"},
	}
	for _, tt := range tests {
		if got := formatFloat(tt.in); got != tt.want {
			t.Errorf("formatFloat(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWriteReferenceDesign(t *testing.T) {
	p := lpda.DefaultParams()
	d, err := lpda.Dimensions(p)
	if err != nil {
		t.Fatalf("Dimensions() error = %v", err)
	}
	m, err := wire.Project(d.Inches(), p.Stock, p.Segments)
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}

	var buf bytes.Buffer
	if err := Write(&buf, m.Wires(), Options{EZNEC: true}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	out := buf.String()

	if !strings.HasSuffix(out, "\r\n") {
		t.Fatal("output does not end with CRLF")
	}
	if strings.Contains(strings.ReplaceAll(out, "\r\n", ""), "\n") {
		t.Error("output contains a bare LF")
	}

	lines := strings.Split(strings.TrimSuffix(out, "\r\n"), "\r\n")
	if lines[0] != "in" {
		t.Errorf("first line = %q, want %q", lines[0], "in")
	}
	if got, want := len(lines)-1, 4*d.NumElementPairs(); got != want {
		t.Fatalf("wire lines = %d, want %d", got, want)
	}

	for i, line := range lines[1:] {
		fields := strings.Fields(line)
		if len(fields) != 8 {
			t.Fatalf("line %d has %d fields: %q", i+2, len(fields), line)
		}
		for _, f := range fields[:7] {
			if _, err := strconv.ParseFloat(f, 64); err != nil {
				t.Errorf("line %d: %q is not numeric", i+2, f)
			}
		}
		if n, err := strconv.Atoi(fields[7]); err != nil || n != p.Segments {
			t.Errorf("line %d: segment field %q, want %d", i+2, fields[7], p.Segments)
		}
		for _, r := range line {
			if r > 127 {
				t.Fatalf("line %d contains non-ASCII %q", i+2, r)
			}
		}
	}

	first := strings.Fields(lines[1])
	want := []float64{98.9827560572969, 20.5, 26.522349550159525, 98.9827560572969, 0, 26.522349550159525, 0.375}
	for i, w := range want {
		got, _ := strconv.ParseFloat(first[i], 64)
		if math.Abs(got-w) > 1e-9 {
			t.Errorf("first wire field %d = %v, want %v", i+1, got, w)
		}
	}
}

var errWrite = errors.New("disk full")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestWritePropagatesError(t *testing.T) {
	if err := Write(failingWriter{}, nil, Options{EZNEC: true}); err != errWrite {
		t.Errorf("Write() error = %v, want %v", err, errWrite)
	}
}
