package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"storeseed/internal/config"
	"storeseed/internal/database"
	"storeseed/internal/export"
	"storeseed/internal/generate"
	"storeseed/internal/load"
	"storeseed/internal/report"
)

var runSeed int64

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full pipeline: generate, export, load, report",
	Long: `Run all four stages in order: generate the dataset in memory,
export it to CSV, reset the schema and load the CSVs into the database,
then print the aggregation reports.

Each stage completes before the next begins; a failure in any stage
aborts the rest.`,
	RunE: runPipeline,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Int64Var(&runSeed, "seed", 0, "Random seed (0 = seed from current time)")
}

func runPipeline(cmd *cobra.Command, args []string) error {
	fmt.Println("🚀 Storeseed pipeline starting...")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = runSeed
	}

	fmt.Println("🎲 Generating dataset...")
	dataset, err := generate.All(newRand(cfg.Seed), generationConfig(cfg))
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}
	for _, table := range dataset.Tables() {
		fmt.Printf("   Generated %d %s.\n", len(table.Rows), table.Name)
	}

	fmt.Printf("📄 Writing CSV files to %s...\n", cfg.Store.CSVDir)
	if _, err := export.WriteAll(dataset, cfg.Store.CSVDir); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	fmt.Printf("🔌 Opening database %s...\n", cfg.Store.DBPath)
	db, err := database.Open(cfg.Store.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	fmt.Println("📋 Resetting schema...")
	if err := db.InitSchema(); err != nil {
		return fmt.Errorf("schema init failed: %w", err)
	}

	fmt.Println("📥 Loading CSV files...")
	counts, err := load.New(db).LoadAll(cfg.Store.CSVDir)
	if err != nil {
		return fmt.Errorf("load failed: %w", err)
	}
	for _, schema := range database.TableSchemas {
		fmt.Printf("   Inserted %d rows into %s.\n", counts[schema.Name], schema.Name)
	}

	fmt.Println("📊 Running reports...")
	fmt.Println()
	if err := report.Run(db, os.Stdout); err != nil {
		return fmt.Errorf("reporting failed: %w", err)
	}

	fmt.Println("✅ Pipeline complete")
	return nil
}
