// Package commands implements the CLI commands for starter.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/starter/internal/app"
	"go.trai.ch/starter/internal/build"
)

// CLI represents the command line interface for starter.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
// metadataPath is the default value of the --metadata flag.
func New(a *app.App, metadataPath string) *CLI {
	rootCmd := &cobra.Command{
		Use:           "starter",
		Short:         "Resolve project dependencies and the test dependencies they imply",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("metadata", "m", metadataPath, "Dependency catalog (.yaml, .yml or .toml)")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newGenerateCmd())
	rootCmd.AddCommand(c.newRulesCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects standard and error output of all commands. Used for testing.
func (c *CLI) SetOutput(out, errOut io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(errOut)
}

func metadataFlag(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("metadata")
	return path
}
