package wire

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/matzehuels/lpda/pkg/errors"
	"github.com/matzehuels/lpda/pkg/lpda"
)

func TestProjectPairLayout(t *testing.T) {
	e := lpda.ElementPair{Length: 40, Separation: 20, VertexDistance: 100, Diameter: 0.3}

	got, err := ProjectPair(e, lpda.DefaultStock(), 21)
	if err != nil {
		t.Fatalf("ProjectPair() error = %v", err)
	}

	seg := func(a, b r3.Vec) Segment {
		return Segment{A: a, B: b, Diameter: 0.25, Segments: 21}
	}
	want := [WiresPerPair]Segment{
		UpperLeft:  seg(r3.Vec{X: 100, Y: 20, Z: 10}, r3.Vec{X: 100, Y: 0, Z: 10}),
		UpperRight: seg(r3.Vec{X: 100, Y: 0, Z: 10}, r3.Vec{X: 100, Y: -20, Z: 10}),
		LowerLeft:  seg(r3.Vec{X: 100, Y: 20, Z: -10}, r3.Vec{X: 100, Y: 0, Z: -10}),
		LowerRight: seg(r3.Vec{X: 100, Y: 0, Z: -10}, r3.Vec{X: 100, Y: -20, Z: -10}),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ProjectPair() mismatch (-want +got):\n%s", diff)
	}
}

func TestProjectReferenceDesign(t *testing.T) {
	d, err := lpda.Dimensions(lpda.DefaultParams())
	if err != nil {
		t.Fatalf("Dimensions() error = %v", err)
	}
	pairs := d.Inches()

	m, err := Project(pairs, d.Params.Stock, d.Params.Segments)
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}

	if got, want := len(m.Elements), WiresPerPair*len(pairs); got != want {
		t.Fatalf("len(Elements) = %d, want %d", got, want)
	}
	if len(m.Extra) != 0 {
		t.Errorf("len(Extra) = %d, want 0", len(m.Extra))
	}
	if m.NumPairs() != len(pairs) {
		t.Errorf("NumPairs() = %d, want %d", m.NumPairs(), len(pairs))
	}

	for i, e := range pairs {
		wires := m.Pair(i)
		for _, w := range wires {
			if w.A.X != e.VertexDistance || w.B.X != e.VertexDistance {
				t.Errorf("pair %d: X = %v/%v, want %v", i, w.A.X, w.B.X, e.VertexDistance)
			}
			if w.Diameter != wires[0].Diameter {
				t.Errorf("pair %d: diameters differ (%v vs %v)", i, w.Diameter, wires[0].Diameter)
			}
			if w.Segments != 21 {
				t.Errorf("pair %d: segments = %d, want 21", i, w.Segments)
			}
			if got := w.Length(); math.Abs(got-e.Length/2) > 1e-9 {
				t.Errorf("pair %d: half-dipole length %v, want %v", i, got, e.Length/2)
			}
		}
	}

	// First pair: 41 in long, 0.375 in diameter (exact stock match).
	first := m.Pair(0)[UpperLeft]
	if first.A.Y != 20.5 || first.Diameter != 0.375 {
		t.Errorf("first wire = %+v, want Y1=20.5 dia=0.375", first)
	}
}

func TestProjectEmptyStock(t *testing.T) {
	pairs := []lpda.ElementPair{{Length: 1, Separation: 1, VertexDistance: 1, Diameter: 0.1}}
	_, err := Project(pairs, nil, 21)
	if !errors.Is(err, errors.ErrCodeNoStockDiameter) {
		t.Errorf("Project() error = %v, want NO_STOCK_DIAMETER", err)
	}
}

func TestProjectInvalidSegments(t *testing.T) {
	_, err := Project(nil, lpda.DefaultStock(), 0)
	if !errors.Is(err, errors.ErrCodeInvalidDesign) {
		t.Errorf("Project() error = %v, want INVALID_DESIGN", err)
	}
}

func TestModelExtra(t *testing.T) {
	pairs := []lpda.ElementPair{{Length: 10, Separation: 4, VertexDistance: 30, Diameter: 0.5}}
	m, err := Project(pairs, lpda.DefaultStock(), 11)
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}

	boom := Segment{A: r3.Vec{}, B: r3.Vec{X: 30}, Diameter: 1, Segments: 5}
	m.Append(boom)

	if m.Len() != WiresPerPair+1 {
		t.Errorf("Len() = %d, want %d", m.Len(), WiresPerPair+1)
	}
	wires := m.Wires()
	if diff := cmp.Diff(boom, wires[len(wires)-1]); diff != "" {
		t.Errorf("last wire mismatch (-want +got):\n%s", diff)
	}

	// 4 half-dipoles of 5 in + 30 in boom
	if got := m.TotalLength(); math.Abs(got-50) > 1e-12 {
		t.Errorf("TotalLength() = %v, want 50", got)
	}
}

func TestSegmentGeometry(t *testing.T) {
	s := Segment{A: r3.Vec{X: 1, Y: 2, Z: 2}, B: r3.Vec{X: 1, Y: -2, Z: -1}}
	if got := s.Length(); got != 5 {
		t.Errorf("Length() = %v, want 5", got)
	}
	if got, want := s.Midpoint(), (r3.Vec{X: 1, Y: 0, Z: 0.5}); got != want {
		t.Errorf("Midpoint() = %v, want %v", got, want)
	}
}

func TestPositionString(t *testing.T) {
	tests := []struct {
		p    Position
		want string
	}{
		{UpperLeft, "upper-left"},
		{UpperRight, "upper-right"},
		{LowerLeft, "lower-left"},
		{LowerRight, "lower-right"},
		{Position(7), "Position(7)"},
	}
	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("Position(%d).String() = %q, want %q", int(tt.p), got, tt.want)
		}
	}
}
