package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newFormatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format",
		Short: "Inspect artifact format preferences",
		Args:  cobra.NoArgs,
	}

	cmd.AddCommand(c.newFormatOrderCmd())

	return cmd
}

func (c *CLI) newFormatOrderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order DESCRIPTOR...",
		Short: "Print descriptors in the order they should be read",
		Long: "Print descriptors in the order they should be read.\n\n" +
			"A descriptor is classifier,id,version with an optional @format suffix for packed formats.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, _ := cmd.Flags().GetString("mode")

			ordered, err := c.app.FormatOrder(cmd.Context(), mode, args)
			if err != nil {
				return err
			}
			for _, d := range ordered {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), d.String())
			}
			return nil
		},
	}

	cmd.Flags().String("mode", "local", "Usage mode: local or remote")

	return cmd
}
