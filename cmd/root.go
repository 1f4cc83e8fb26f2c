package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/campus-ops/distance-cli/internal/config"
	"github.com/campus-ops/distance-cli/internal/geo"
	"github.com/campus-ops/distance-cli/pkg/geocode"
)

var (
	cfg        *config.Config
	rootAPIKey string
)

var rootCmd = &cobra.Command{
	Use:   "distance-cli",
	Short: "Dormitory distance scoring for applicant spreadsheets",
	Long:  "Resolves applicant home addresses via the Kakao address search, measures great-circle distance from campus, and assigns tiered eligibility scores.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootAPIKey, "api-key", "", "Kakao REST API key (overrides config)")
}

// newGeocodeClient builds the Kakao client from config, with the
// --api-key flag taking precedence.
func newGeocodeClient() geocode.Client {
	key := cfg.Kakao.APIKey
	if rootAPIKey != "" {
		key = rootAPIKey
	}
	return geocode.NewClient(key,
		geocode.WithBaseURL(cfg.Kakao.BaseURL),
		geocode.WithTimeout(time.Duration(cfg.Kakao.TimeoutSecs)*time.Second),
		geocode.WithRateLimit(cfg.Kakao.RateLimitRPS),
	)
}

func referencePoint() geo.Point {
	return geo.Point{Lat: cfg.Reference.Lat, Lon: cfg.Reference.Lon}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
