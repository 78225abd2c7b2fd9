package wire

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/matzehuels/lpda/pkg/errors"
	"github.com/matzehuels/lpda/pkg/lpda"
)

// WiresPerPair is the number of segments emitted for each element pair.
const WiresPerPair = 4

// Position identifies one of the four half-dipoles of an element pair.
type Position int

const (
	UpperLeft Position = iota
	UpperRight
	LowerLeft
	LowerRight
)

var positionNames = [...]string{"upper-left", "upper-right", "lower-left", "lower-right"}

func (p Position) String() string {
	if p < 0 || int(p) >= len(positionNames) {
		return fmt.Sprintf("Position(%d)", int(p))
	}
	return positionNames[p]
}

// Model is the complete wire list of an antenna.
type Model struct {
	// Elements holds WiresPerPair segments per element pair, in pair order
	// and Position order within a pair.
	Elements []Segment

	// Extra holds wires that are not part of an element pair, such as boom,
	// connecting, or feed wires. Project leaves it empty.
	Extra []Segment
}

// Append adds wires after the element wires.
func (m *Model) Append(segs ...Segment) {
	m.Extra = append(m.Extra, segs...)
}

// Wires returns element wires followed by extra wires.
func (m *Model) Wires() []Segment {
	out := make([]Segment, 0, len(m.Elements)+len(m.Extra))
	out = append(out, m.Elements...)
	return append(out, m.Extra...)
}

// Len returns the total number of wires.
func (m *Model) Len() int { return len(m.Elements) + len(m.Extra) }

// NumPairs returns the number of element pairs in the model.
func (m *Model) NumPairs() int { return len(m.Elements) / WiresPerPair }

// Pair returns the four wires of element pair i (zero-based).
func (m *Model) Pair(i int) []Segment {
	return m.Elements[i*WiresPerPair : (i+1)*WiresPerPair]
}

// TotalLength returns the summed conductor length of all wires.
func (m *Model) TotalLength() float64 {
	var total float64
	for _, s := range m.Elements {
		total += s.Length()
	}
	for _, s := range m.Extra {
		total += s.Length()
	}
	return total
}

// ProjectPair maps one element pair (in inches) to its four half-dipoles.
// All four share the pair's X coordinate, the snapped diameter and segments.
func ProjectPair(e lpda.ElementPair, stock []float64, segments int) ([WiresPerPair]Segment, error) {
	var out [WiresPerPair]Segment

	dia, err := SelectDiameter(e.Diameter, stock)
	if err != nil {
		return out, err
	}

	x := e.VertexDistance
	h := e.Length / 2.0
	s := e.Separation / 2.0

	seg := func(y1, z1, y2, z2 float64) Segment {
		return Segment{
			A:        r3.Vec{X: x, Y: y1, Z: z1},
			B:        r3.Vec{X: x, Y: y2, Z: z2},
			Diameter: dia,
			Segments: segments,
		}
	}

	out[UpperLeft] = seg(h, s, 0, s)
	out[UpperRight] = seg(0, s, -h, s)
	out[LowerLeft] = seg(h, -s, 0, -s)
	out[LowerRight] = seg(0, -s, -h, -s)
	return out, nil
}

// Project maps every element pair to WiresPerPair segments. The returned
// model has exactly WiresPerPair*len(pairs) element wires and no extras.
func Project(pairs []lpda.ElementPair, stock []float64, segments int) (*Model, error) {
	if segments < 1 {
		return nil, errors.New(errors.ErrCodeInvalidDesign, "segments=%d must be at least 1", segments)
	}

	m := &Model{Elements: make([]Segment, 0, WiresPerPair*len(pairs))}
	for i, e := range pairs {
		wires, err := ProjectPair(e, stock, segments)
		if err != nil {
			return nil, fmt.Errorf("element pair %d: %w", i+1, err)
		}
		m.Elements = append(m.Elements, wires[:]...)
	}
	return m, nil
}
