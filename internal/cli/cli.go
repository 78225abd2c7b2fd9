// Package cli implements the lpda command-line interface.
//
// This package provides commands for generating LPDA wire files, writing
// design-file templates, and inspecting stock diameter selection. The CLI is
// built using cobra and supports verbose logging via the charmbracelet/log
// library.
//
// # Commands
//
// The main commands are:
//   - generate: Derive the antenna and write the wire table (EZ-NEC or JSON)
//   - init: Write a TOML design file populated with the defaults
//   - stock: Show ideal vs. stock diameters for every element pair
//   - completion: Generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to every command.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/lpda/pkg/buildinfo"
	"github.com/matzehuels/lpda/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "lpda"

	// defaultDesignFile is the file name written by init.
	defaultDesignFile = "lpda.toml"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Stdout io.Writer // artifacts and summaries
	Stderr io.Writer // logs, and summaries when the artifact goes to stdout
}

// New creates a new CLI instance with a default logger writing to stderr.
func New(stdout, stderr io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(stderr, level),
		Stdout: stdout,
		Stderr: stderr,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "lpda generates log-periodic dipole array wire models",
		Long:         `lpda derives the element geometry of a log-periodic dipole array from its design band and angles, and writes the wire table for EZ-NEC and other method-of-moments simulators.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.Stdout)
	root.SetErr(c.Stderr)

	// Register all subcommands
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.initCommand())
	root.AddCommand(c.stockCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}
