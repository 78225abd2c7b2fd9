package lpda

import (
	"fmt"
	"math"

	"github.com/matzehuels/lpda/pkg/errors"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultLowerFreq is the lowest design frequency in MHz.
	DefaultLowerFreq = 144.0

	// DefaultUpperFreq is the highest design frequency in MHz.
	DefaultUpperFreq = 1400.0

	// DefaultAlpha is the apex angle in degrees.
	DefaultAlpha = 45.0

	// DefaultTsi is the included angle between the upper and lower element
	// planes in degrees.
	DefaultTsi = 30.0

	// DefaultT is the element filling ratio. As T approaches 1 the number of
	// element pairs grows.
	DefaultT = 0.6

	// DefaultBaseDiameter is the diameter of the first element in inches.
	DefaultBaseDiameter = 0.375

	// DefaultSegments is the segment count written for every wire.
	DefaultSegments = 21
)

// DefaultStock returns the default stock diameter list in inches, largest first.
// A fresh slice is returned on every call.
func DefaultStock() []float64 {
	return []float64{1.0, 0.75, 0.5, 0.375, 0.25, 0.125}
}

// =============================================================================
// Params
// =============================================================================

// Params holds the design constants for one antenna.
//
// Params is a value type. Callers build it once (from [DefaultParams], a
// design file, or flags), call [Params.Validate], and pass it down the
// pipeline unchanged.
//
// ScaleDiameter shrinks each later diameter by sqrt(T). When it is false every
// pair keeps BaseDiameter inches. This differs from the reference script,
// which stores the raw inch value among feet and so emits diameters 12x too
// large.
type Params struct {
	LowerFreq     float64   `toml:"lower_freq_mhz" json:"lower_freq_mhz"`
	UpperFreq     float64   `toml:"upper_freq_mhz" json:"upper_freq_mhz"`
	Alpha         float64   `toml:"alpha_deg" json:"alpha_deg"`
	Tsi           float64   `toml:"tsi_deg" json:"tsi_deg"`
	T             float64   `toml:"filling_ratio" json:"filling_ratio"`
	BaseDiameter  float64   `toml:"base_diameter_in" json:"base_diameter_in"`
	ScaleDiameter bool      `toml:"scale_diameter" json:"scale_diameter"`
	Segments      int       `toml:"segments" json:"segments"`
	Stock         []float64 `toml:"stock_diameters_in" json:"stock_diameters_in"`
	EZNEC         bool      `toml:"eznec" json:"eznec"`
}

// DefaultParams returns the reference design: a 144–1400 MHz array with a
// 45° apex angle, 30° included angle and T = 0.6.
func DefaultParams() Params {
	return Params{
		LowerFreq:     DefaultLowerFreq,
		UpperFreq:     DefaultUpperFreq,
		Alpha:         DefaultAlpha,
		Tsi:           DefaultTsi,
		T:             DefaultT,
		BaseDiameter:  DefaultBaseDiameter,
		ScaleDiameter: true,
		Segments:      DefaultSegments,
		Stock:         DefaultStock(),
		EZNEC:         true,
	}
}

// AlphaRadians returns the apex angle in radians.
func (p Params) AlphaRadians() float64 { return radians(p.Alpha) }

// TsiRadians returns the included angle in radians.
func (p Params) TsiRadians() float64 { return radians(p.Tsi) }

// FrequencyRatio returns fl/fu.
func (p Params) FrequencyRatio() float64 { return p.LowerFreq / p.UpperFreq }

// Validate reports the first parameter that makes the design non-physical.
// It does not modify p.
func (p Params) Validate() error {
	if err := errors.ValidatePositive("fl", p.LowerFreq); err != nil {
		return err
	}
	if err := errors.ValidatePositive("fu", p.UpperFreq); err != nil {
		return err
	}
	if p.LowerFreq >= p.UpperFreq {
		return errors.New(errors.ErrCodeInvalidDesign,
			"fl=%g must be below fu=%g", p.LowerFreq, p.UpperFreq)
	}
	if err := errors.ValidateOpenRange("alpha", p.Alpha, 0, 180); err != nil {
		return err
	}
	if err := errors.ValidateOpenRange("tsi", p.Tsi, 0, 180); err != nil {
		return err
	}
	if err := errors.ValidateOpenRange("T", p.T, 0, 1); err != nil {
		return err
	}
	if err := errors.ValidatePositive("base_diameter", p.BaseDiameter); err != nil {
		return err
	}
	if p.Segments < 1 {
		return errors.New(errors.ErrCodeInvalidDesign, "segments=%d must be at least 1", p.Segments)
	}
	if len(p.Stock) == 0 {
		return errors.New(errors.ErrCodeNoStockDiameter, "stock diameter list is empty")
	}
	for i, d := range p.Stock {
		if err := errors.ValidatePositive(fmt.Sprintf("stock[%d]", i), d); err != nil {
			return err
		}
	}
	return nil
}

func radians(deg float64) float64 { return math.Pi * deg / 180.0 }
