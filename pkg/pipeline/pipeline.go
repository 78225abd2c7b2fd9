// Package pipeline provides the core generator pipeline for lpda.
//
// This package implements the complete recurrence → conversion → projection →
// emission pipeline used by the CLI. By centralizing this logic, every entry
// point derives and writes antennas the same way.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Recurrence: derive the element pairs in feet ([lpda.Dimensions])
//  2. Conversion: rescale the pairs to inches ([lpda.ToInches])
//  3. Projection: map each pair to four wires and append extra wires ([wire.Project])
//  4. Emission: encode the wire list as EZ-NEC text or JSON ([nec.Marshal], [nec.WriteJSON])
//
// The run is built entirely in memory. Writing the artifact is a separate
// step ([Runner.Write]) so nothing reaches the destination unless every stage
// succeeded.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    Params: lpda.DefaultParams(),
//	    Format: pipeline.FormatEZ,
//	    Output: "LPDA.txt",
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = runner.Write(ctx, result, opts.Output, os.Stdout)
package pipeline

import (
	"strings"
	"time"

	"github.com/matzehuels/lpda/pkg/errors"
	"github.com/matzehuels/lpda/pkg/lpda"
	"github.com/matzehuels/lpda/pkg/wire"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultOutput is the conventional wire file name.
	DefaultOutput = "LPDA.txt"

	// StdoutPath selects standard output as the destination.
	StdoutPath = "-"
)

// Format constants for output formats.
const (
	FormatEZ   = "ez"
	FormatJSON = "json"
)

// DefaultFormat is the default output format.
const DefaultFormat = FormatEZ

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatEZ:   true,
	FormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// ExtraWire describes a wire outside the element pairs, in inches.
// Its diameter is snapped to the stock list like every element wire.
type ExtraWire struct {
	X1       float64 `toml:"x1" json:"x1"`
	Y1       float64 `toml:"y1" json:"y1"`
	Z1       float64 `toml:"z1" json:"z1"`
	X2       float64 `toml:"x2" json:"x2"`
	Y2       float64 `toml:"y2" json:"y2"`
	Z2       float64 `toml:"z2" json:"z2"`
	Diameter float64 `toml:"diameter_in" json:"diameter_in"`
	Segments int     `toml:"segments,omitempty" json:"segments,omitempty"` // 0 uses Params.Segments
}

// Options contains all configuration for one generator run.
type Options struct {
	Params     lpda.Params `json:"params"`
	Format     string      `json:"format,omitempty"`
	Output     string      `json:"output,omitempty"`
	ExtraWires []ExtraWire `json:"extra_wires,omitempty"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Design holds the validated parameters and the element pairs in feet.
	Design *lpda.Design

	// Pairs holds the element pairs in inches.
	Pairs []lpda.ElementPair

	// Model is the projected wire list.
	Model *wire.Model

	// Format is the encoding of Artifact.
	Format string

	// Artifact is the encoded output, ready to be written.
	Artifact []byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NumElementPairs int
	WireCount       int
	TotalWireLength float64 // inches
	RecurrenceTime  time.Duration
	ProjectTime     time.Duration
	EmitTime        time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: %s)", format, strings.Join([]string{FormatEZ, FormatJSON}, ", "))
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults applies defaults and checks every field.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetDefaults()
	if err := ValidateFormat(o.Format); err != nil {
		return err
	}
	if err := errors.ValidateOutputPath(o.Output); err != nil {
		return err
	}
	if err := o.Params.Validate(); err != nil {
		return err
	}
	for i, w := range o.ExtraWires {
		if err := w.validate(); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "extra wire %d", i+1)
		}
	}
	o.validated = true
	return nil
}

// SetDefaults fills empty format and output fields.
func (o *Options) SetDefaults() {
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	if o.Output == "" {
		o.Output = DefaultOutput
	}
}

// IsStdout reports whether the output goes to standard output.
func (o *Options) IsStdout() bool {
	return o.Output == StdoutPath
}

func (w ExtraWire) validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"x1", w.X1}, {"y1", w.Y1}, {"z1", w.Z1},
		{"x2", w.X2}, {"y2", w.Y2}, {"z2", w.Z2},
	} {
		if err := errors.ValidateFinite(f.name, f.v); err != nil {
			return err
		}
	}
	if err := errors.ValidatePositive("diameter_in", w.Diameter); err != nil {
		return err
	}
	if w.Segments < 0 {
		return errors.New(errors.ErrCodeInvalidDesign, "segments=%d must not be negative", w.Segments)
	}
	if w.X1 == w.X2 && w.Y1 == w.Y2 && w.Z1 == w.Z2 {
		return errors.New(errors.ErrCodeInvalidDesign, "endpoints coincide")
	}
	return nil
}
