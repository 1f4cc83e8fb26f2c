package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/campus-ops/distance-cli/internal/pipeline"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <address>",
	Short: "Resolve and score a single address",
	Long: `Runs one address through the same normalize/geocode/distance/score
sequence as a full run and prints the result as JSON. Useful for spot
checks and for verifying the API key.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p := pipeline.New(newGeocodeClient(), referencePoint())

		results, err := p.Run(cmd.Context(), []string{args[0]})
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results[0])
	},
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}
