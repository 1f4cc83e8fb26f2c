package main

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/campus-ops/distance-cli/internal/export"
	"github.com/campus-ops/distance-cli/internal/fetcher"
	"github.com/campus-ops/distance-cli/internal/pipeline"
)

var (
	runInput  string
	runOutput string
	runSheet  string
	runColumn string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Score a spreadsheet of applicant addresses",
	Long: `Reads an XLSX file, finds the home-address column by the configured
marker substring, resolves each address through Kakao, and writes the
table back out with latitude, longitude, distance_km, score and
error_message columns appended.

Examples:
  # Address column auto-detected by the "집주소" marker
  distance-cli run --input applicants.xlsx --api-key $KAKAO_KEY

  # Several columns match the marker: pick one explicitly
  distance-cli run --input applicants.xlsx --column "보호자 집주소"`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		table, err := fetcher.ReadXLSX(runInput, fetcher.XLSXOptions{SheetName: runSheet})
		if err != nil {
			return err
		}

		col, err := table.ResolveAddressColumn(cfg.Input.AddressMarker, runColumn)
		if err != nil {
			return err
		}
		zap.L().Info("input loaded",
			zap.String("file", runInput),
			zap.String("address_column", table.Header[col]),
			zap.Int("rows", len(table.Rows)),
		)

		p := pipeline.New(newGeocodeClient(), referencePoint(),
			pipeline.WithProgress(newProgressSink(len(table.Rows))),
		)
		results, err := p.Run(ctx, table.Column(col))
		if err != nil {
			return err
		}

		out := runOutput
		if out == "" {
			out = defaultOutputPath(runInput)
		}
		if err := export.WriteXLSX(out, table, results); err != nil {
			return err
		}

		zap.L().Info("results written", zap.String("file", out))
		return nil
	},
}

func defaultOutputPath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + "_scored.xlsx"
}

func init() {
	runCmd.Flags().StringVar(&runInput, "input", "", "path to XLSX file (required)")
	runCmd.Flags().StringVar(&runOutput, "output", "", "output path (default: <input>_scored.xlsx)")
	runCmd.Flags().StringVar(&runSheet, "sheet", "", "sheet name (default: first sheet)")
	runCmd.Flags().StringVar(&runColumn, "column", "", "exact address column header, for when several match the marker")
	_ = runCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(runCmd)
}
