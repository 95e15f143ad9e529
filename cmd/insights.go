package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lumastat/lumastat-cli/internal/report"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Print the business insight battery",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := loadEngine()
		if err != nil {
			return err
		}
		return report.New(eng, cfg.TopN).Insights(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(insightsCmd)
}
