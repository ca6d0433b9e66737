package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vytor/keydrill/internal/catalog"
)

var seedCmd = &cobra.Command{
	Use:   "seed <catalog.yaml>",
	Short: "Register shortcuts from a catalog file and create their review items",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		shortcuts, err := catalog.Load(args[0])
		if err != nil {
			return err
		}

		a, ctx, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		created, err := a.catalog.Register(ctx, shortcuts)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "registered %d shortcuts, %d new review items\n", len(shortcuts), created)
		return nil
	},
}
