// Package config loads application configuration and bootstraps logging.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Kakao     KakaoConfig     `yaml:"kakao" mapstructure:"kakao"`
	Reference ReferenceConfig `yaml:"reference" mapstructure:"reference"`
	Input     InputConfig     `yaml:"input" mapstructure:"input"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// KakaoConfig holds Kakao REST API settings.
type KakaoConfig struct {
	APIKey       string  `yaml:"api_key" mapstructure:"api_key"`
	BaseURL      string  `yaml:"base_url" mapstructure:"base_url"`
	TimeoutSecs  int     `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	RateLimitRPS float64 `yaml:"rate_limit_rps" mapstructure:"rate_limit_rps"`
}

// ReferenceConfig is the fixed point distances are measured from.
// The defaults are the institution's coordinates.
type ReferenceConfig struct {
	Lat float64 `yaml:"lat" mapstructure:"lat"`
	Lon float64 `yaml:"lon" mapstructure:"lon"`
}

// InputConfig configures how the input spreadsheet is interpreted.
type InputConfig struct {
	// AddressMarker is the substring identifying the home-address column
	// in the sheet header.
	AddressMarker string `yaml:"address_marker" mapstructure:"address_marker"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("DORMDIST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults. The empty api_key default keeps the env binding visible
	// to Unmarshal.
	v.SetDefault("kakao.api_key", "")
	v.SetDefault("kakao.base_url", "https://dapi.kakao.com")
	v.SetDefault("kakao.timeout_secs", 5)
	v.SetDefault("kakao.rate_limit_rps", 5.0)
	v.SetDefault("reference.lat", 37.4973462)
	v.SetDefault("reference.lon", 126.8640144)
	v.SetDefault("input.address_marker", "집주소")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
