package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lumastat/lumastat-cli/internal/catalog"
	cfgpkg "github.com/lumastat/lumastat-cli/internal/config"
	"github.com/lumastat/lumastat-cli/internal/metrics"
)

var (
	// Global flags (wired to config/viper)
	cfgFile string

	flagOutDir     string
	flagTopN       int
	flagBrandLimit int
	flagFormat     string

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "lumastat",
	Short: "Lumastat CLI: descriptive analytics for a beauty product catalog",
	Long: `Lumastat analyzes a curated beauty product catalog: summary statistics,
category and price breakdowns, top-product rankings, business insights,
chart images, and an Excel export.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	// Initialize configuration before executing commands
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent global flags available to all subcommands
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.lumastat/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&flagOutDir, "out-dir", "o", "", "directory for generated files (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagTopN, "top", 0, "products per top listing (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagBrandLimit, "brands", 0, "brands on the top-brands chart (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "", "chart image format: png|svg|pdf (overrides config)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: fall back to defaults
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		c = &cfgpkg.Global{OutputDir: ".", TopN: 5, BrandLimit: 10, ChartFormat: "png"}
	}
	cfg = c

	// Apply CLI overrides if provided
	f := rootCmd.PersistentFlags()
	if f.Changed("out-dir") && flagOutDir != "" {
		cfg.OutputDir = flagOutDir
	}
	if f.Changed("top") && flagTopN > 0 {
		cfg.TopN = flagTopN
	}
	if f.Changed("brands") && flagBrandLimit > 0 {
		cfg.BrandLimit = flagBrandLimit
	}
	if f.Changed("format") && flagFormat != "" {
		cfg.ChartFormat = flagFormat
	}
}

// loadEngine loads the embedded catalog and wraps it in an analysis engine.
// Catalog construction warnings are surfaced but never fatal.
func loadEngine() (*metrics.Engine, error) {
	cat, err := catalog.LoadEmbedded()
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	for _, w := range cat.Warnings() {
		fmt.Fprintf(os.Stderr, "⚠ Warning: %v\n", w)
	}
	return metrics.New(cat), nil
}
