package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/joestump/replydraft/internal/scenario"
)

func newScenariosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenarios",
		Short: "List the reply scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "SLUG\tLABEL\tTRACKING")
			for _, k := range scenario.All() {
				tracking := "-"
				if k.AcceptsTracking() {
					tracking = "yes"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", k.Slug(), k.Label(), tracking)
			}
			return tw.Flush()
		},
	}
}
