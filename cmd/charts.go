package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lumastat/lumastat-cli/internal/charts"
	"github.com/lumastat/lumastat-cli/internal/metrics"
)

var chartsCmd = &cobra.Command{
	Use:   "charts",
	Short: "Render the analysis chart images",
	Long: `Render all five chart images into the output directory: average price
per category, rating vs price scatter, price tier distribution, top
brands, and the category performance heatmap.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := loadEngine()
		if err != nil {
			return err
		}
		return renderCharts(eng)
	},
}

func init() {
	rootCmd.AddCommand(chartsCmd)
}

// renderCharts writes every chart, reporting each file as it lands. Partial
// failures are returned after the remaining charts have rendered.
func renderCharts(eng *metrics.Engine) error {
	r := charts.New(eng, cfg.OutputDir, cfg.ChartFormat)
	r.BrandLimit = cfg.BrandLimit
	paths, err := r.RenderAll()
	for _, p := range paths {
		fmt.Printf("✓ Wrote %s\n", p)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "✗ Some charts failed: %v\n", err)
		return err
	}
	return nil
}
