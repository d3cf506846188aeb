package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"storeseed/internal/config"
	"storeseed/internal/database"
	"storeseed/internal/load"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Reset the schema and load CSV files into the database",
	Long: `Drop and recreate the five-table schema, then bulk-insert the CSV
files from the configured data directory. Primary keys come from the
generated files, so row order is preserved exactly.`,
	RunE: runLoad,
}

func init() {
	rootCmd.AddCommand(loadCmd)
}

func runLoad(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if _, err := os.Stat(cfg.Store.CSVDir); err != nil {
		return fmt.Errorf("csv directory %s not found (run 'storeseed generate' first): %w", cfg.Store.CSVDir, err)
	}

	db, err := database.Open(cfg.Store.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	fmt.Println("📋 Resetting schema...")
	if err := db.InitSchema(); err != nil {
		return fmt.Errorf("schema init failed: %w", err)
	}

	fmt.Printf("📥 Loading CSV files from %s...\n", cfg.Store.CSVDir)
	loader := load.New(db)
	counts, err := loader.LoadAll(cfg.Store.CSVDir)
	if err != nil {
		return fmt.Errorf("load failed: %w", err)
	}

	for _, schema := range database.TableSchemas {
		fmt.Printf("   Inserted %d rows into %s.\n", counts[schema.Name], schema.Name)
	}
	fmt.Println("✅ Load complete")
	return nil
}
