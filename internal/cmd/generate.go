package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"storeseed/internal/config"
	"storeseed/internal/export"
	"storeseed/internal/generate"
)

var generateSeed int64

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the dataset and write CSV files",
	Long: `Generate the five record collections (users, products, orders,
order items, reviews) with consistent foreign keys and derived order
totals, and write one CSV file per table to the configured directory.`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().Int64Var(&generateSeed, "seed", 0, "Random seed (0 = seed from current time)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = generateSeed
	}

	fmt.Println("🎲 Generating dataset...")
	dataset, err := generate.All(newRand(cfg.Seed), generationConfig(cfg))
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	tables := dataset.Tables()
	for _, table := range tables {
		fmt.Printf("   Generated %d %s.\n", len(table.Rows), table.Name)
	}

	fmt.Printf("📄 Writing CSV files to %s...\n", cfg.Store.CSVDir)
	paths, err := export.WriteAll(dataset, cfg.Store.CSVDir)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	for _, table := range tables {
		fmt.Printf("   Wrote %s\n", paths[table.Name])
	}
	fmt.Println("✅ Dataset generated")
	return nil
}
