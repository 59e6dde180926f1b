// Package commands implements the CLI commands for p2local.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/p2local/internal/app"
	"go.trai.ch/p2local/internal/build"
	"go.trai.ch/p2local/internal/core/domain"
)

// CLI represents the command line interface for p2local.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	SetConfigPath(path string)
	SetLogJSON(enable bool)
	ListIndex(ctx context.Context, opts app.IndexOptions) ([]domain.GAV, error)
	AddToIndex(ctx context.Context, gavs []string, opts app.IndexOptions) error
	RemoveFromIndex(ctx context.Context, gavs []string, opts app.IndexOptions) error
	Prune(ctx context.Context) ([]domain.GAV, error)
	ArtifactPath(ctx context.Context, gav, classifier, extension string) (string, error)
	FormatOrder(ctx context.Context, mode string, descriptors []string) ([]domain.ArtifactDescriptor, error)
	Filter(ctx context.Context, unitsPath string) (*app.FilterResult, error)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "p2local",
		Short:         "Maintain a local p2 artifact repository",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", domain.ConfigFileName, "Path to the project configuration file")
	rootCmd.PersistentFlags().Bool("json", false, "Write log output as JSON")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		configPath, _ := cmd.Flags().GetString("config")
		jsonLogs, _ := cmd.Flags().GetBool("json")
		c.app.SetConfigPath(configPath)
		c.app.SetLogJSON(jsonLogs)
	}

	rootCmd.AddCommand(c.newIndexCmd())
	rootCmd.AddCommand(c.newPruneCmd())
	rootCmd.AddCommand(c.newPathCmd())
	rootCmd.AddCommand(c.newFormatCmd())
	rootCmd.AddCommand(c.newFilterCmd())
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

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
