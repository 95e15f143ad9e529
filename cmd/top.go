package cmd

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lumastat/lumastat-cli/internal/metrics"
	"github.com/lumastat/lumastat-cli/internal/report"
)

var topCmd = &cobra.Command{
	Use:   "top [criterion]",
	Short: "Print top products by rating, num_reviews, or value_score",
	Long: `Print the top products for one ranking criterion, or for all three
when no criterion is given. Valid criteria: ` + strings.Join(metrics.Criteria, ", ") + `.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := loadEngine()
		if err != nil {
			return err
		}
		if len(args) == 0 {
			return report.New(eng, cfg.TopN).Top(os.Stdout)
		}

		criterion := args[0]
		top, err := eng.TopProducts(criterion, cfg.TopN)
		if err != nil {
			return err
		}
		fmt.Printf("Top %d products by %s:\n", len(top), criterion)
		for i, p := range top {
			switch criterion {
			case metrics.CriterionReviews:
				fmt.Printf("%2d. %s (%s) - %d reviews\n", i+1, p.Name, p.Brand, p.NumReviews)
			case metrics.CriterionValueScore:
				if math.IsNaN(p.ValueScore) {
					fmt.Printf("%2d. %s (%s) - value score undefined\n", i+1, p.Name, p.Brand)
					continue
				}
				fmt.Printf("%2d. %s (%s) - score %.2f\n", i+1, p.Name, p.Brand, p.ValueScore)
			default:
				fmt.Printf("%2d. %s (%s) - %.1f stars\n", i+1, p.Name, p.Brand, p.Rating)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(topCmd)
}
