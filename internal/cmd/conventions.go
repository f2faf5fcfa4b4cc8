package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/harrison/fsnamer/internal/codec"
)

// conventionSample is rendered in every convention by 'fsnamer conventions'.
const conventionSample = "Quarterly Report v2.pdf"

// NewConventionsCommand creates the conventions command
func NewConventionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "conventions",
		Short: "List the supported naming conventions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
			fmt.Fprintf(w, "CONVENTION\tEXAMPLE (%s)\n", conventionSample)
			for _, c := range codec.Conventions() {
				example, err := codec.Normalize(conventionSample, c)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%s\n", c, example)
			}
			return w.Flush()
		},
	}
}
