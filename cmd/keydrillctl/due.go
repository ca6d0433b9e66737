package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vytor/keydrill/internal/models"
)

var dueCmd = &cobra.Command{
	Use:   "due",
	Short: "List the ids of items due for review",
	RunE: func(cmd *cobra.Command, args []string) error {
		var cfg models.SessionConfig
		cfg.MaxItems, _ = cmd.Flags().GetInt("max")
		cfg.FocusOnDifficult, _ = cmd.Flags().GetBool("focus")
		categories, _ := cmd.Flags().GetStringSlice("category")
		for _, c := range categories {
			cfg.Categories = append(cfg.Categories, models.Category(c))
		}
		difficulties, _ := cmd.Flags().GetStringSlice("difficulty")
		for _, d := range difficulties {
			cfg.Difficulties = append(cfg.Difficulties, models.Difficulty(d))
		}

		a, ctx, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		ids, err := a.due.DueItems(ctx, cfg)
		if err != nil {
			return err
		}
		for _, id := range ids {
			fmt.Fprintln(cmd.OutOrStdout(), id)
		}
		return nil
	},
}

func init() {
	dueCmd.Flags().Int("max", 0, "Maximum number of items (0 for no limit)")
	dueCmd.Flags().Bool("focus", false, "Order by ascending strength instead of id")
	dueCmd.Flags().StringSlice("category", nil, "Only include these categories")
	dueCmd.Flags().StringSlice("difficulty", nil, "Only include these difficulties")
}
