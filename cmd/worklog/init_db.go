package main

import (
	"context"

	"github.com/spf13/cobra"
)

var initDBCmd = &cobra.Command{
	Use:   "init-db",
	Short: "Create indexes and the bootstrap administrator, then exit",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := bootstrap(cmd.Context(), false)
		if err != nil {
			return err
		}
		defer a.close(context.Background())

		if err := a.prepare(cmd.Context()); err != nil {
			return err
		}
		a.log.Info().Msg("database initialised")
		return nil
	},
}
