// Package commands implements the CLI commands for the artcache tool.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/artcache/internal/app"
	"go.trai.ch/artcache/internal/build"
)

// CLI represents the command line interface for artcache.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "artcache",
		Short:         "Inspect and maintain a compiled artifact cache",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("dir", "C", "", "Discover the configuration from this directory")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if dir, _ := cmd.Flags().GetString("dir"); dir != "" {
			c.app.WithWorkDir(dir)
		}
	}

	rootCmd.AddCommand(c.newSweepCmd())
	rootCmd.AddCommand(c.newWipeCmd())
	rootCmd.AddCommand(c.newRemoveCmd())
	rootCmd.AddCommand(c.newGetCmd())
	rootCmd.AddCommand(c.newPutCmd())
	rootCmd.AddCommand(c.newInspectCmd())
	rootCmd.AddCommand(c.newFingerprintCmd())
	rootCmd.AddCommand(c.newServeCmd())
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

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
	c.rootCmd.SetErr(w)
}

// SetInput sets the reader used by put and serve instead of stdin. Used for testing.
func (c *CLI) SetInput(r io.Reader) {
	c.rootCmd.SetIn(r)
}

// withStack opens the cache, runs fn and closes the cache again.
func (c *CLI) withStack(cmd *cobra.Command, opts app.OpenOptions, fn func(*app.Stack) error) error {
	stack, err := c.app.Open(cmd.Context(), opts)
	if err != nil {
		return err
	}
	defer func() { _ = stack.Close(context.WithoutCancel(cmd.Context())) }()
	return fn(stack)
}
