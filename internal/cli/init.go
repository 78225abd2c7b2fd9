package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/lpda/pkg/errors"
	"github.com/matzehuels/lpda/pkg/nec"
)

// initCommand creates the init command, which writes a design file holding
// the current parameters.
func (c *CLI) initCommand() *cobra.Command {
	var (
		design designFlags
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "init [file]",
		Short: "Write a TOML design file",
		Long: `Write a TOML design file populated with the reference design, adjusted by
any design flags given. Edit it and pass it to 'lpda generate --config'.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultDesignFile
			if len(args) == 1 {
				path = args[0]
			}
			return c.runInit(cmd, &design, path, force)
		},
	}

	design.register(cmd)
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	return cmd
}

func (c *CLI) runInit(cmd *cobra.Command, design *designFlags, path string, force bool) error {
	logger := loggerFromContext(cmd.Context())

	if !force {
		if _, err := os.Stat(path); err == nil {
			return errors.New(errors.ErrCodeInvalidPath, "%s already exists (use --force to overwrite)", path)
		}
	}

	opts, err := design.options(cmd.Flags())
	if err != nil {
		return err
	}
	opts.SetDefaults()
	if err := opts.Params.Validate(); err != nil {
		return err
	}

	data, err := encodeDesignFile(opts)
	if err != nil {
		return err
	}
	if err := nec.Export(path, data); err != nil {
		return err
	}

	logger.Debug("wrote design file", "path", path, "bytes", len(data))
	printSuccess(c.Stdout, "Wrote design file")
	printFile(c.Stdout, path)
	return nil
}
