package cli

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/lpda/pkg/errors"
	"github.com/matzehuels/lpda/pkg/lpda"
	"github.com/matzehuels/lpda/pkg/pipeline"
)

// designFile is the TOML layout of a design file:
//
//	[design]
//	lower_freq_mhz = 144.0
//	upper_freq_mhz = 1400.0
//	...
//
//	[output]
//	path = "LPDA.txt"
//	format = "ez"
//
//	[[extra_wire]]
//	x1 = 0.0
//	...
type designFile struct {
	Design     lpda.Params          `toml:"design"`
	Output     outputSection        `toml:"output"`
	ExtraWires []pipeline.ExtraWire `toml:"extra_wire,omitempty"`
}

type outputSection struct {
	Path   string `toml:"path,omitempty"`
	Format string `toml:"format,omitempty"`
}

// loadDesignFile decodes path on top of base. Keys missing from the file keep
// the values from base; unknown keys are rejected.
func loadDesignFile(path string, base pipeline.Options) (pipeline.Options, error) {
	df := designFile{
		Design: base.Params,
		Output: outputSection{Path: base.Output, Format: base.Format},
	}
	// The decoder may reuse the stock slice's backing array.
	df.Design.Stock = append([]float64(nil), base.Params.Stock...)

	md, err := toml.DecodeFile(path, &df)
	if err != nil {
		return base, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read design file %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return base, errors.New(errors.ErrCodeInvalidConfig,
			"design file %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	out := base
	out.Params = df.Design
	out.Output = df.Output.Path
	out.Format = df.Output.Format
	out.ExtraWires = append(append([]pipeline.ExtraWire(nil), base.ExtraWires...), df.ExtraWires...)
	return out, nil
}

// encodeDesignFile renders opts as a design file.
func encodeDesignFile(opts pipeline.Options) ([]byte, error) {
	df := designFile{
		Design:     opts.Params,
		Output:     outputSection{Path: opts.Output, Format: opts.Format},
		ExtraWires: opts.ExtraWires,
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# %s design file\n# Frequencies in MHz, angles in degrees, diameters and wire coordinates in inches.\n\n", appName)
	if err := toml.NewEncoder(&buf).Encode(df); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode design file")
	}
	return buf.Bytes(), nil
}
