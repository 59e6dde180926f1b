package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/p2local/internal/ui/output"
	"go.trai.ch/p2local/internal/ui/style"
)

func (c *CLI) newPruneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prune",
		Short: "Drop index entries whose files are missing from the repository",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			removed, err := c.app.Prune(cmd.Context())
			if err != nil {
				return err
			}

			out := output.New(cmd.OutOrStdout())
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s pruned %d entries\n", output.Paint(out, style.Check, style.Green), len(removed))
			return nil
		},
	}
}

func (c *CLI) newPathCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path GAV",
		Short: "Print where the repository stores an artifact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			classifier, _ := cmd.Flags().GetString("classifier")
			extension, _ := cmd.Flags().GetString("extension")

			path, err := c.app.ArtifactPath(cmd.Context(), args[0], classifier, extension)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().String("classifier", "", "Artifact classifier")
	cmd.Flags().String("extension", "jar", "Artifact file extension")

	return cmd
}
