package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/lpda/pkg/pipeline"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	design designFlags
	output string // output file path, "-" for stdout
	format string // output format: "ez" or "json"
	quiet  bool   // suppress the design summary
}

// generateCommand creates the generate command.
//
// Default settings reproduce the reference design (144–1400 MHz, alpha 45°,
// tsi 30°, T 0.6) and write LPDA.txt in EZ-NEC format.
func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Derive an LPDA and write its wire table",
		Long: `Derive the element pairs of a log-periodic dipole array and write the
wire table consumed by EZ-NEC (or JSON for other tools).

Parameters come from the built-in reference design, then the --config design
file, then any flag set on the command line.`,
		Example: `  lpda generate
  lpda generate --fl 50 --fu 450 -t 0.8 -o six-meter.txt
  lpda generate -c lpda.toml -f json -o -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd, &opts)
		},
	}

	opts.design.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default LPDA.txt, '-' for stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: ez (default), json")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "do not print the design summary")

	return cmd
}

// runGenerate resolves the options, runs the pipeline and writes the artifact.
func (c *CLI) runGenerate(cmd *cobra.Command, opts *generateOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	popts, err := opts.design.options(cmd.Flags())
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("output") {
		popts.Output = opts.output
	}
	if cmd.Flags().Changed("format") {
		popts.Format = opts.format
	}
	if err := popts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	prog := newProgress(logger)
	res, err := generate(ctx, c.newRunner(), popts, c.Stdout)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Generated %d element pairs, %d wires", res.Stats.NumElementPairs, res.Stats.WireCount))

	if opts.quiet {
		return nil
	}

	// Keep stdout clean when it carries the artifact.
	w := c.Stdout
	if popts.IsStdout() {
		w = c.Stderr
	}
	printDesignSummary(w, res)
	fmt.Fprintln(w)
	printSuccess(w, "Wrote %d wires (%s)", res.Stats.WireCount, popts.Format)
	printFile(w, displayPath(popts.Output))
	return nil
}

// generate runs the pipeline and writes the artifact only when every stage succeeded.
func generate(ctx context.Context, r *pipeline.Runner, opts pipeline.Options, stdout io.Writer) (*pipeline.Result, error) {
	res, err := r.Execute(ctx, opts)
	if err != nil {
		return nil, err
	}
	if err := r.Write(ctx, res, opts.Output, stdout); err != nil {
		return nil, err
	}
	return res, nil
}

func displayPath(path string) string {
	if path == pipeline.StdoutPath {
		return "stdout"
	}
	return path
}
