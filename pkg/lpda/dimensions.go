package lpda

import (
	"math"

	"github.com/matzehuels/lpda/pkg/errors"
)

const (
	// HalfWaveFeetMHz is the half-wavelength constant in ft·MHz: a half-wave
	// dipole at f MHz is HalfWaveFeetMHz/f feet long.
	HalfWaveFeetMHz = 492.0

	// MaxElementPairs bounds the pair count. Designs with T very close to 1
	// exceed it and are rejected.
	MaxElementPairs = 10000

	// bandwidthFactor widens the lower/upper frequency ratio so the shortest
	// element still resonates above fu.
	bandwidthFactor = 0.75
)

// ElementPair is one transverse dipole pair of the array.
//
// All fields share one unit: feet as returned by [Dimensions], inches after
// [ToInches].
type ElementPair struct {
	Length         float64 `json:"length"`          // tip-to-tip length of each dipole
	Separation     float64 `json:"separation"`      // distance between the upper and lower dipole
	VertexDistance float64 `json:"vertex_distance"` // distance from the apex along the boom
	Diameter       float64 `json:"diameter"`        // ideal conductor diameter, before stock snapping
}

// Scale returns the pair with every field multiplied by f.
func (e ElementPair) Scale(f float64) ElementPair {
	return ElementPair{
		Length:         e.Length * f,
		Separation:     e.Separation * f,
		VertexDistance: e.VertexDistance * f,
		Diameter:       e.Diameter * f,
	}
}

// Design is the result of the dimension recurrence.
type Design struct {
	// Params are the validated inputs the design was derived from.
	Params Params

	// Pairs holds the element pairs in feet, longest (lowest frequency) first.
	Pairs []ElementPair

	// BoomLength is the slant length in feet from the apex to the first pair's
	// dipoles, sqrt((S0/2)^2 + D0^2).
	BoomLength float64
}

// NumElementPairs returns the number of generated pairs.
func (d *Design) NumElementPairs() int { return len(d.Pairs) }

// Inches returns the pairs rescaled to inches. See [ToInches].
func (d *Design) Inches() []ElementPair { return ToInches(d.Pairs) }

// Dimensions validates p and derives every element pair of the array.
//
// The returned sequence has exactly [NumElementPairs](p) entries and is
// strictly decreasing in length, separation, and vertex distance.
func Dimensions(p Params) (*Design, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	n, err := NumElementPairs(p.LowerFreq, p.UpperFreq, p.T)
	if err != nil {
		return nil, err
	}

	first := FirstPair(p)
	if err := checkPair(0, first); err != nil {
		return nil, err
	}

	pairs := make([]ElementPair, 0, n)
	pairs = append(pairs, first)

	scale := math.Sqrt(p.T)
	baseDia := p.BaseDiameter / FeetToInches
	prev := first
	for k := 1; k < n; k++ {
		next := ElementPair{
			Length:         prev.Length * scale,
			Separation:     prev.Separation * scale,
			VertexDistance: prev.VertexDistance * scale,
			Diameter:       baseDia,
		}
		if p.ScaleDiameter {
			next.Diameter = prev.Diameter * scale
		}
		if err := checkPair(k, next); err != nil {
			return nil, err
		}
		pairs = append(pairs, next)
		prev = next
	}

	return &Design{
		Params:     p,
		Pairs:      pairs,
		BoomLength: BoomLength(first),
	}, nil
}

// FirstPair computes the longest element pair (in feet) from the lower
// frequency and the two design angles. p is assumed valid.
func FirstPair(p Params) ElementPair {
	l := HalfWaveFeetMHz / p.LowerFreq
	d := l / math.Tan(p.AlphaRadians()/2.0)
	s := 2 * d * math.Tan(p.TsiRadians()/2.0)
	return ElementPair{
		Length:         l,
		Separation:     s,
		VertexDistance: d,
		Diameter:       p.BaseDiameter / FeetToInches,
	}
}

// NumElementPairs returns ceil(2*log(0.75*fl/fu)/log(t) + 1).
//
// fl < fu and 0 < t < 1 are required; other inputs produce a non-finite or
// non-positive count and fail with INVALID_DESIGN.
func NumElementPairs(fl, fu, t float64) (int, error) {
	if fl <= 0 || fu <= 0 || fl >= fu {
		return 0, errors.New(errors.ErrCodeInvalidDesign,
			"pair count needs 0 < fl < fu (fl=%g, fu=%g)", fl, fu)
	}
	if t <= 0 || t >= 1 {
		return 0, errors.New(errors.ErrCodeInvalidDesign,
			"pair count needs 0 < T < 1 (T=%g)", t)
	}

	n := math.Ceil(2*(math.Log(fl/fu*bandwidthFactor)/math.Log(t)) + 1)
	switch {
	case math.IsNaN(n) || math.IsInf(n, 0):
		return 0, errors.New(errors.ErrCodeInvalidDesign,
			"pair count is not finite (fl=%g, fu=%g, T=%g)", fl, fu, t)
	case n < 1:
		return 0, errors.New(errors.ErrCodeInvalidDesign,
			"pair count %g is below 1 (fl=%g, fu=%g, T=%g)", n, fl, fu, t)
	case n > MaxElementPairs:
		return 0, errors.New(errors.ErrCodeInvalidDesign,
			"T=%g yields %g element pairs (max %d)", t, n, MaxElementPairs)
	}
	return int(n), nil
}

// BoomLength returns the slant distance from the apex to the dipoles of the
// given (first) pair.
func BoomLength(first ElementPair) float64 {
	return math.Sqrt(math.Pow(first.Separation/2.0, 2) + math.Pow(first.VertexDistance, 2))
}

// checkPair rejects pairs with non-finite or non-positive dimensions.
// idx is zero-based; messages report it one-based.
func checkPair(idx int, e ElementPair) error {
	fields := []struct {
		name string
		v    float64
	}{
		{"length", e.Length},
		{"separation", e.Separation},
		{"vertex distance", e.VertexDistance},
		{"diameter", e.Diameter},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return errors.New(errors.ErrCodeInvalidDesign,
				"element pair %d: non-finite %s (%g)", idx+1, f.name, f.v)
		}
		if f.v <= 0 {
			return errors.New(errors.ErrCodeInvalidDesign,
				"element pair %d: non-positive %s (%g)", idx+1, f.name, f.v)
		}
	}
	return nil
}
