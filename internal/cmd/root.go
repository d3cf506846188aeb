package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"storeseed/internal/config"
	"storeseed/internal/generate"
)

var rootCmd = &cobra.Command{
	Use:   "storeseed",
	Short: "Storeseed - synthetic e-commerce dataset pipeline",
	Long: `Storeseed generates a relational e-commerce dataset (users, products,
orders, order items, reviews), exports it to CSV, loads it into a
file-backed SQLite database, and prints a set of aggregation reports.

Run the whole pipeline with 'storeseed run', or drive the stages
individually with 'generate', 'load', and 'report'.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newRand builds the random source threaded through the generator.
// Seed 0 seeds from the current time.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func generationConfig(cfg *config.Config) generate.Config {
	return generate.Config{
		Users:            cfg.Generate.Users,
		Products:         cfg.Generate.Products,
		Orders:           cfg.Generate.Orders,
		MaxItemsPerOrder: cfg.Generate.MaxItemsPerOrder,
		Reviews:          cfg.Generate.Reviews,
	}
}
