package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lumastat/lumastat-cli/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the full analysis to an Excel workbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := loadEngine()
		if err != nil {
			return err
		}
		path, err := export.New(eng, cfg.OutputDir).Write()
		if err != nil {
			return err
		}
		fmt.Printf("✓ Wrote %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
