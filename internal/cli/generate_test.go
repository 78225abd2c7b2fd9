package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/lpda/pkg/errors"
)

func TestGenerateDefaultDesign(t *testing.T) {
	path := filepath.Join(t.TempDir(), "LPDA.txt")

	stdout, _, err := runCLI(t, "generate", "-o", path)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	content := readFile(t, path)
	if !strings.HasSuffix(content, "\r\n") {
		t.Fatal("file does not end with CRLF")
	}
	lines := strings.Split(strings.TrimSuffix(content, "\r\n"), "\r\n")
	if len(lines) != 1+48 {
		t.Fatalf("got %d lines, want header + 48 wires", len(lines))
	}
	if lines[0] != "in" {
		t.Errorf("header = %q, want %q", lines[0], "in")
	}
	for i, line := range lines[1:] {
		fields := strings.Fields(line)
		if len(fields) != 8 {
			t.Fatalf("wire %d has %d fields: %q", i+1, len(fields), line)
		}
		if fields[7] != "21" {
			t.Errorf("wire %d segments = %s, want 21", i+1, fields[7])
		}
	}

	for _, want := range []string{"Element pairs", "Wrote 48 wires", path} {
		if !strings.Contains(stdout, want) {
			t.Errorf("summary missing %q:\n%s", want, stdout)
		}
	}
}

func TestGenerateQuiet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "LPDA.txt")

	stdout, _, err := runCLI(t, "generate", "-q", "-o", path)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if stdout != "" {
		t.Errorf("quiet run printed %q", stdout)
	}
}

func TestGenerateToStdout(t *testing.T) {
	stdout, stderr, err := runCLI(t, "generate", "-o", "-", "--eznec=false")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(stdout, "\r\n"), "\r\n")
	if len(lines) != 48 {
		t.Fatalf("stdout has %d lines, want 48", len(lines))
	}
	if strings.HasPrefix(stdout, "in\r\n") {
		t.Error("units header written with --eznec=false")
	}
	if !strings.Contains(stderr, "Wrote 48 wires") {
		t.Errorf("summary should go to stderr when the artifact uses stdout:\n%s", stderr)
	}
}

func TestGenerateJSON(t *testing.T) {
	stdout, _, err := runCLI(t, "generate", "-q", "-f", "json", "-o", "-")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	var doc struct {
		Units           string            `json:"units"`
		NumElementPairs int               `json:"num_element_pairs"`
		Wires           []json.RawMessage `json:"wires"`
	}
	if err := json.Unmarshal([]byte(stdout), &doc); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if doc.Units != "in" || doc.NumElementPairs != 12 || len(doc.Wires) != 48 {
		t.Errorf("doc = units %q, %d pairs, %d wires", doc.Units, doc.NumElementPairs, len(doc.Wires))
	}
}

func TestGenerateInvalidDesignWritesNothing(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"filling ratio above one", []string{"-t", "1.5"}, errors.ErrCodeInvalidDesign},
		{"inverted band", []string{"--fl", "500", "--fu", "400"}, errors.ErrCodeInvalidDesign},
		{"zero segments", []string{"--segments", "0"}, errors.ErrCodeInvalidDesign},
		{"unknown format", []string{"-f", "nec2"}, errors.ErrCodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "LPDA.txt")
			args := append([]string{"generate", "-o", path}, tt.args...)

			_, _, err := runCLI(t, args...)
			if !errors.Is(err, tt.code) {
				t.Fatalf("error = %v, want %s", err, tt.code)
			}
			if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
				t.Errorf("output file exists after failed run (stat err %v)", statErr)
			}
		})
	}
}

func TestGenerateExtraWireFromDesignFile(t *testing.T) {
	dir := t.TempDir()
	config := filepath.Join(dir, "lpda.toml")
	writeFile(t, config, `
[[extra_wire]]
x1 = 0.0
y1 = 0.0
z1 = 0.0
x2 = 0.0
y2 = 0.0
z2 = 10.0
diameter_in = 0.3
`)

	stdout, _, err := runCLI(t, "generate", "-q", "-c", config, "-o", "-")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(stdout, "\r\n"), "\r\n")
	if len(lines) != 1+48+1 {
		t.Fatalf("got %d lines, want header + 48 elements + 1 extra", len(lines))
	}
	if got, want := lines[len(lines)-1], "0 0 0 0 0 10 0.25 21"; got != want {
		t.Errorf("extra wire line = %q, want %q", got, want)
	}
}

func TestGenerateOutputFromDesignFile(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "from-config.txt")
	config := filepath.Join(dir, "lpda.toml")
	writeFile(t, config, "[output]\npath = '"+out+"'\n")

	if _, _, err := runCLI(t, "generate", "-q", "-c", config); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("design file output path not used: %v", err)
	}
}
