package nec

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/matzehuels/lpda/pkg/lpda"
	"github.com/matzehuels/lpda/pkg/wire"
)

type document struct {
	Units           lpda.Unit          `json:"units"`
	Params          lpda.Params        `json:"params"`
	NumElementPairs int                `json:"num_element_pairs"`
	BoomLengthFeet  float64            `json:"boom_length_ft"`
	TotalWireLength float64            `json:"total_wire_length_in"`
	Pairs           []lpda.ElementPair `json:"element_pairs"`
	Wires           []jsonWire         `json:"wires"`
}

type jsonWire struct {
	Pair     *int       `json:"pair,omitempty"`
	Position string     `json:"position,omitempty"`
	End1     [3]float64 `json:"end1"`
	End2     [3]float64 `json:"end2"`
	Diameter float64    `json:"diameter"`
	Segments int        `json:"segments"`
}

// WriteJSON encodes the design and its wire model as indented JSON.
// Element pairs and wire coordinates are in inches; the boom length stays in
// feet as computed by [lpda.Dimensions].
func WriteJSON(w io.Writer, d *lpda.Design, m *wire.Model) error {
	out := document{
		Units:           lpda.UnitInches,
		Params:          d.Params,
		NumElementPairs: d.NumElementPairs(),
		BoomLengthFeet:  d.BoomLength,
		TotalWireLength: m.TotalLength(),
		Pairs:           d.Inches(),
		Wires:           make([]jsonWire, 0, m.Len()),
	}

	for i, s := range m.Elements {
		pair := i / wire.WiresPerPair
		jw := toJSONWire(s)
		jw.Pair = &pair
		jw.Position = wire.Position(i % wire.WiresPerPair).String()
		out.Wires = append(out.Wires, jw)
	}
	for _, s := range m.Extra {
		out.Wires = append(out.Wires, toJSONWire(s))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func toJSONWire(s wire.Segment) jsonWire {
	return jsonWire{
		End1:     [3]float64{s.A.X, s.A.Y, s.A.Z},
		End2:     [3]float64{s.B.X, s.B.Y, s.B.Z},
		Diameter: s.Diameter,
		Segments: s.Segments,
	}
}
