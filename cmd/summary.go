package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lumastat/lumastat-cli/internal/report"
	"github.com/lumastat/lumastat-cli/internal/utils"
)

var summaryJSON bool

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print catalog-wide summary statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := loadEngine()
		if err != nil {
			return err
		}
		if summaryJSON {
			rep, err := eng.Summary()
			if err != nil {
				return err
			}
			b, err := utils.PrettyJSON(rep)
			if err != nil {
				return err
			}
			fmt.Println(string(b))
			return nil
		}
		return report.New(eng, cfg.TopN).Summary(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
	summaryCmd.Flags().BoolVar(&summaryJSON, "json", false, "emit the summary as JSON")
}
