package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"storeseed/internal/config"
	"storeseed/internal/database"
	"storeseed/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Run the aggregation reports against the database",
	Long: `Run the fixed report set (top customers by spend, best reviewed
products, recent order overview) against the loaded database and print
each result as an aligned text table.`,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if _, err := os.Stat(cfg.Store.DBPath); err != nil {
		return fmt.Errorf("database %s not found (run 'storeseed load' first): %w", cfg.Store.DBPath, err)
	}

	db, err := database.Open(cfg.Store.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := report.Run(db, os.Stdout); err != nil {
		return fmt.Errorf("reporting failed: %w", err)
	}
	return nil
}
