package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lumastat/lumastat-cli/internal/export"
	"github.com/lumastat/lumastat-cli/internal/report"
)

var (
	reportSkipCharts bool
	reportSkipExport bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Run the full analysis: text report, charts, and Excel export",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := loadEngine()
		if err != nil {
			return err
		}

		var errs []error
		if err := report.New(eng, cfg.TopN).Render(os.Stdout); err != nil {
			errs = append(errs, err)
		}
		if !reportSkipCharts {
			if err := renderCharts(eng); err != nil {
				errs = append(errs, err)
			}
		}
		if !reportSkipExport {
			path, err := export.New(eng, cfg.OutputDir).Write()
			if err != nil {
				errs = append(errs, err)
			} else {
				fmt.Printf("✓ Wrote %s\n", path)
			}
		}
		return errors.Join(errs...)
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().BoolVar(&reportSkipCharts, "no-charts", false, "skip chart rendering")
	reportCmd.Flags().BoolVar(&reportSkipExport, "no-export", false, "skip the Excel export")
}
