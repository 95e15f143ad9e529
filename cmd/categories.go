package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lumastat/lumastat-cli/internal/report"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Print the per-category breakdown",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := loadEngine()
		if err != nil {
			return err
		}
		return report.New(eng, cfg.TopN).Categories(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}
