package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/matzehuels/lpda/pkg/lpda"
	"github.com/matzehuels/lpda/pkg/nec"
	"github.com/matzehuels/lpda/pkg/observability"
	"github.com/matzehuels/lpda/pkg/wire"
)

// Runner executes the generator pipeline.
//
// The Runner is stateless except for the logger - it doesn't store pipeline
// results. Multiple goroutines can safely use the same Runner with different
// options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete recurrence → conversion → projection → emission
// pipeline in memory. Nothing is written; see [Runner.Write].
//
// ctx is checked before every stage; a cancelled run returns ctx.Err().
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &Result{Format: opts.Format}

	// Stage 1: Recurrence
	start := time.Now()
	design, err := r.Dimensions(ctx, opts.Params)
	if err != nil {
		return nil, fmt.Errorf("recurrence: %w", err)
	}
	result.Design = design
	result.Stats.RecurrenceTime = time.Since(start)
	result.Stats.NumElementPairs = design.NumElementPairs()

	r.Logger.Info("derived element pairs",
		"pairs", design.NumElementPairs(),
		"boom_ft", design.BoomLength,
		"duration", result.Stats.RecurrenceTime)

	// Stage 2: Conversion
	result.Pairs = lpda.ToInches(design.Pairs)

	// Stage 3: Projection
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start = time.Now()
	model, err := r.Project(ctx, result.Pairs, opts)
	if err != nil {
		return nil, fmt.Errorf("projection: %w", err)
	}
	result.Model = model
	result.Stats.ProjectTime = time.Since(start)
	result.Stats.WireCount = model.Len()
	result.Stats.TotalWireLength = model.TotalLength()

	r.Logger.Info("projected wires",
		"wires", model.Len(),
		"extra", len(model.Extra),
		"length_in", result.Stats.TotalWireLength,
		"duration", result.Stats.ProjectTime)

	// Stage 4: Emission
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start = time.Now()
	artifact, err := r.Emit(ctx, opts.Format, design, model)
	if err != nil {
		return nil, fmt.Errorf("emit: %w", err)
	}
	result.Artifact = artifact
	result.Stats.EmitTime = time.Since(start)

	r.Logger.Info("encoded wire table",
		"format", opts.Format,
		"bytes", len(artifact),
		"duration", result.Stats.EmitTime)

	return result, nil
}

// Dimensions runs the recurrence stage and reports it to the pipeline hooks.
func (r *Runner) Dimensions(ctx context.Context, p lpda.Params) (*lpda.Design, error) {
	hooks := observability.Pipeline()
	hooks.OnRecurrenceStart(ctx, p.LowerFreq, p.UpperFreq)
	start := time.Now()

	d, err := lpda.Dimensions(p)
	if err != nil {
		hooks.OnRecurrenceComplete(ctx, 0, time.Since(start), err)
		return nil, err
	}
	hooks.OnRecurrenceComplete(ctx, d.NumElementPairs(), time.Since(start), nil)

	for i, e := range d.Pairs {
		r.Logger.Debug("element pair",
			"index", i+1,
			"length_ft", e.Length,
			"separation_ft", e.Separation,
			"vertex_ft", e.VertexDistance,
			"diameter_ft", e.Diameter)
	}
	return d, nil
}

// Project maps the inch-scaled pairs to wires and appends opts.ExtraWires.
func (r *Runner) Project(ctx context.Context, pairs []lpda.ElementPair, opts Options) (*wire.Model, error) {
	hooks := observability.Pipeline()
	hooks.OnProjectStart(ctx, len(pairs))
	start := time.Now()

	m, err := r.project(pairs, opts)
	if err != nil {
		hooks.OnProjectComplete(ctx, 0, time.Since(start), err)
		return nil, err
	}
	hooks.OnProjectComplete(ctx, m.Len(), time.Since(start), nil)
	return m, nil
}

func (r *Runner) project(pairs []lpda.ElementPair, opts Options) (*wire.Model, error) {
	p := opts.Params
	m, err := wire.Project(pairs, p.Stock, p.Segments)
	if err != nil {
		return nil, err
	}

	for i, w := range opts.ExtraWires {
		dia, err := wire.SelectDiameter(w.Diameter, p.Stock)
		if err != nil {
			return nil, fmt.Errorf("extra wire %d: %w", i+1, err)
		}
		segments := w.Segments
		if segments == 0 {
			segments = p.Segments
		}
		m.Append(wire.Segment{
			A:        r3.Vec{X: w.X1, Y: w.Y1, Z: w.Z1},
			B:        r3.Vec{X: w.X2, Y: w.Y2, Z: w.Z2},
			Diameter: dia,
			Segments: segments,
		})
	}
	return m, nil
}

// Emit encodes the model in the given format.
func (r *Runner) Emit(ctx context.Context, format string, d *lpda.Design, m *wire.Model) ([]byte, error) {
	hooks := observability.Pipeline()
	hooks.OnEmitStart(ctx, format)
	start := time.Now()

	data, err := Emit(format, d, m)
	hooks.OnEmitComplete(ctx, format, len(data), time.Since(start), err)
	return data, err
}

// Emit encodes the model in the given format without hooks or logging.
func Emit(format string, d *lpda.Design, m *wire.Model) ([]byte, error) {
	switch format {
	case FormatEZ:
		return nec.Marshal(m.Wires(), nec.Options{EZNEC: d.Params.EZNEC}), nil
	case FormatJSON:
		var buf bytes.Buffer
		if err := nec.WriteJSON(&buf, d, m); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, ValidateFormat(format)
	}
}
