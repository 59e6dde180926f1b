package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/p2local/internal/ui/output"
	"go.trai.ch/p2local/internal/ui/style"
)

func (c *CLI) newFilterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filter UNITS_FILE",
		Short: "Apply the configured filters to a unit set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			removedOnly, _ := cmd.Flags().GetBool("removed")

			result, err := c.app.Filter(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			out := output.New(w)
			if !removedOnly {
				for _, u := range result.Kept {
					_, _ = fmt.Fprintf(w, "%s %s\n", output.Paint(out, style.Check, style.Green), u)
				}
			}
			for _, u := range result.Removed {
				_, _ = fmt.Fprintf(w, "%s %s\n", output.Paint(out, style.Cross, style.Red), u)
			}
			_, _ = fmt.Fprintln(w, output.Paint(out,
				fmt.Sprintf("%d kept, %d removed", len(result.Kept), len(result.Removed)), style.Slate))
			return nil
		},
	}

	cmd.Flags().Bool("removed", false, "Only list removed units")

	return cmd
}
