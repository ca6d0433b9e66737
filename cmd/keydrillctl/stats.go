package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show review statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, ctx, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		stats, err := a.stats.Stats(ctx)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "Items:\t%d\n", stats.TotalItems)
		fmt.Fprintf(w, "Due now:\t%d\n", stats.DueItems)
		fmt.Fprintf(w, "Reviews:\t%d\n", stats.TotalReviews)
		fmt.Fprintf(w, "Average strength:\t%.2f\n", stats.AverageStrength)
		fmt.Fprintf(w, "Mastery:\t%d%%\n", stats.MasteryLevel)
		return w.Flush()
	},
}
