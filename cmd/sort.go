package cmd

import (
	"context"
	"fmt"

	"lab-admin/core/config"
	"lab-admin/core/logger"
	"lab-admin/feature/publications"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// sortCmd reorders publications.json: manual entries first, then newest id first.
var sortCmd = &cobra.Command{
	Use:   "sort",
	Short: "Sort publications (manual first, then by id descending)",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		l, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer l.Sync()

		store, err := openStore(ctx, cfg, l)
		if err != nil {
			return fmt.Errorf("failed to open document store: %w", err)
		}

		n, err := publications.NewService(store, nil, l).Sort(ctx)
		if err != nil {
			return fmt.Errorf("sort failed: %w", err)
		}
		l.Info("Publications sorted", zap.Int("count", n))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(sortCmd)
}
