package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lumastat/lumastat-cli/internal/report"
)

var priceCmd = &cobra.Command{
	Use:   "price",
	Short: "Print the price tier distribution and price-rating correlation",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := loadEngine()
		if err != nil {
			return err
		}
		return report.New(eng, cfg.TopN).Prices(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(priceCmd)
}
