package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/p2local/internal/app"
	"go.trai.ch/p2local/internal/ui/output"
	"go.trai.ch/p2local/internal/ui/style"
)

func (c *CLI) newIndexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index",
		Short: "Inspect and edit the repository indices",
		Args:  cobra.NoArgs,
	}

	cmd.PersistentFlags().BoolP("metadata", "m", false, "Use the metadata index instead of the artifacts index")

	cmd.AddCommand(c.newIndexListCmd())
	cmd.AddCommand(c.newIndexAddCmd())
	cmd.AddCommand(c.newIndexRemoveCmd())

	return cmd
}

func indexOptions(cmd *cobra.Command) app.IndexOptions {
	metadata, _ := cmd.Flags().GetBool("metadata")
	return app.IndexOptions{Metadata: metadata}
}

func (c *CLI) newIndexListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the GAVs recorded in an index",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gavs, err := c.app.ListIndex(cmd.Context(), indexOptions(cmd))
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, gav := range gavs {
				_, _ = fmt.Fprintln(w, gav.String())
			}
			return nil
		},
	}
}

func (c *CLI) newIndexAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add GAV...",
		Short: "Record GAVs in an index",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.AddToIndex(cmd.Context(), args, indexOptions(cmd)); err != nil {
				return err
			}

			out := output.New(cmd.OutOrStdout())
			for _, gav := range args {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s added %s\n", output.Paint(out, style.Check, style.Green), gav)
			}
			return nil
		},
	}
}

func (c *CLI) newIndexRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove GAV...",
		Short: "Remove GAVs from an index",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.RemoveFromIndex(cmd.Context(), args, indexOptions(cmd)); err != nil {
				return err
			}

			out := output.New(cmd.OutOrStdout())
			for _, gav := range args {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s removed %s\n", output.Paint(out, style.Check, style.Green), gav)
			}
			return nil
		},
	}
}
