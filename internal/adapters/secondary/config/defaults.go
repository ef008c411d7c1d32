package config

import (
	"os"
	"strconv"

	"github.com/fredcamaral/pptxgen/internal/domain/entities"
)

// Environment variables read on top of the configuration files
const (
	EnvTemplate      = "PPTXGEN_TEMPLATE"
	EnvDefaultOutput = "PPTXGEN_OUTPUT"
	EnvAuthor        = "PPTXGEN_AUTHOR"
	EnvTitleFontSize = "PPTXGEN_TITLE_FONT_SIZE"
	EnvTextFontSize  = "PPTXGEN_TEXT_FONT_SIZE"
	EnvImageWidth    = "PPTXGEN_IMAGE_WIDTH"
	EnvBackground    = "PPTXGEN_BACKGROUND_COLOR"
	EnvTitleColor    = "PPTXGEN_TITLE_COLOR"
	EnvLogLevel      = "PPTXGEN_LOG_LEVEL"
	EnvLogVerbose    = "PPTXGEN_LOG_VERBOSE"
	EnvLogJSON       = "PPTXGEN_LOG_JSON"
)

// GetDefaultConfig returns the built-in configuration
func GetDefaultConfig() *entities.Config {
	return &entities.Config{
		Deck: entities.DeckConfig{
			DefaultOutput: "presentation.pptx",
		},
		Style: entities.StyleConfig{
			TitleFontSize: 32,
			TextFontSize:  18,
			ImageWidth:    8,
		},
		Logging: entities.LoggingConfig{
			Level: string(entities.LogLevelInfo),
		},
	}
}

// getEnvIntOrDefault returns environment variable as int or default
func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvFloatOrDefault returns environment variable as float64 or default
func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvBoolOrDefault returns environment variable as bool or default
func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
