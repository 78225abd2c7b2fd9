package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/matzehuels/lpda/pkg/lpda"
	"github.com/matzehuels/lpda/pkg/pipeline"
)

// designFlags holds the command-line flags shared by commands that derive a
// design. A flag only overrides the design file when it was set explicitly.
type designFlags struct {
	config        string    // TOML design file
	lowerFreq     float64   // fl, MHz
	upperFreq     float64   // fu, MHz
	alpha         float64   // apex angle, degrees
	tsi           float64   // included angle, degrees
	t             float64   // filling ratio
	baseDiameter  float64   // first element diameter, inches
	scaleDiameter bool      // scale diameters with sqrt(T)
	segments      int       // segments per wire
	stock         []float64 // stock diameters, inches
	eznec         bool      // emit the EZ-NEC units header
}

// register adds the design flags to cmd with the reference design as defaults.
func (f *designFlags) register(cmd *cobra.Command) {
	d := lpda.DefaultParams()
	fs := cmd.Flags()
	fs.StringVarP(&f.config, "config", "c", "", "TOML design file (see 'lpda init')")
	fs.Float64Var(&f.lowerFreq, "fl", d.LowerFreq, "lower design frequency in MHz")
	fs.Float64Var(&f.upperFreq, "fu", d.UpperFreq, "upper design frequency in MHz")
	fs.Float64Var(&f.alpha, "alpha", d.Alpha, "apex angle in degrees")
	fs.Float64Var(&f.tsi, "tsi", d.Tsi, "included angle between element planes in degrees")
	fs.Float64VarP(&f.t, "filling-ratio", "t", d.T, "element filling ratio T, 0 < T < 1")
	fs.Float64Var(&f.baseDiameter, "diameter", d.BaseDiameter, "first element diameter in inches")
	fs.BoolVar(&f.scaleDiameter, "scale-diameter", d.ScaleDiameter, "scale element diameters with sqrt(T)")
	fs.IntVar(&f.segments, "segments", d.Segments, "segments per wire")
	fs.Float64SliceVar(&f.stock, "stock", d.Stock, "available stock diameters in inches, in preference order")
	fs.BoolVar(&f.eznec, "eznec", d.EZNEC, "write the EZ-NEC inch units header")
}

// options builds pipeline options: defaults, then the design file, then any
// explicitly set flag.
func (f *designFlags) options(fs *pflag.FlagSet) (pipeline.Options, error) {
	opts := pipeline.Options{Params: lpda.DefaultParams()}

	if f.config != "" {
		var err error
		if opts, err = loadDesignFile(f.config, opts); err != nil {
			return opts, err
		}
	}

	p := &opts.Params
	overrides := []struct {
		name  string
		apply func()
	}{
		{"fl", func() { p.LowerFreq = f.lowerFreq }},
		{"fu", func() { p.UpperFreq = f.upperFreq }},
		{"alpha", func() { p.Alpha = f.alpha }},
		{"tsi", func() { p.Tsi = f.tsi }},
		{"filling-ratio", func() { p.T = f.t }},
		{"diameter", func() { p.BaseDiameter = f.baseDiameter }},
		{"scale-diameter", func() { p.ScaleDiameter = f.scaleDiameter }},
		{"segments", func() { p.Segments = f.segments }},
		{"stock", func() { p.Stock = append([]float64(nil), f.stock...) }},
		{"eznec", func() { p.EZNEC = f.eznec }},
	}
	for _, o := range overrides {
		if fs.Changed(o.name) {
			o.apply()
		}
	}
	return opts, nil
}
