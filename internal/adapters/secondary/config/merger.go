package config

import (
	"os"

	"github.com/fredcamaral/pptxgen/internal/domain/entities"
	"github.com/fredcamaral/pptxgen/internal/domain/ports"
)

// Flag names understood by ApplyFlags
const (
	FlagTemplate = "template"
	FlagOutput   = "output"
	FlagVerbose  = "verbose"
	FlagAuthor   = "author"
)

// ConfigMerger implements the ConfigMerger interface
type ConfigMerger struct{}

// NewConfigMerger creates a new configuration merger
func NewConfigMerger() *ConfigMerger {
	return &ConfigMerger{}
}

// Merge merges multiple configurations with later configs taking precedence
func (m *ConfigMerger) Merge(configs ...*entities.Config) *entities.Config {
	if len(configs) == 0 {
		return GetDefaultConfig()
	}

	result := deepCopy(configs[0])

	for i := 1; i < len(configs); i++ {
		if configs[i] != nil {
			m.mergeInto(result, configs[i])
		}
	}

	return result
}

// ApplyFlags applies CLI flag overrides to a configuration
func (m *ConfigMerger) ApplyFlags(config *entities.Config, flags map[string]interface{}) *entities.Config {
	result := deepCopy(config)

	if template, ok := flags[FlagTemplate].(string); ok && template != "" {
		result.Deck.Template = template
	}

	if output, ok := flags[FlagOutput].(string); ok && output != "" {
		result.Deck.DefaultOutput = output
	}

	if author, ok := flags[FlagAuthor].(string); ok && author != "" {
		result.Metadata.Author = author
	}

	// --verbose can only switch debug logging on
	if verbose, ok := flags[FlagVerbose].(bool); ok && verbose {
		result.Logging.Verbose = true
	}

	return result
}

// ApplyEnvVars applies PPTXGEN_* environment overrides to a configuration
func (m *ConfigMerger) ApplyEnvVars(config *entities.Config) *entities.Config {
	result := deepCopy(config)

	if template := os.Getenv(EnvTemplate); template != "" {
		result.Deck.Template = template
	}

	if output := os.Getenv(EnvDefaultOutput); output != "" {
		result.Deck.DefaultOutput = output
	}

	if author := os.Getenv(EnvAuthor); author != "" {
		result.Metadata.Author = author
	}

	result.Style.TitleFontSize = getEnvIntOrDefault(EnvTitleFontSize, result.Style.TitleFontSize)
	result.Style.TextFontSize = getEnvIntOrDefault(EnvTextFontSize, result.Style.TextFontSize)
	result.Style.ImageWidth = getEnvFloatOrDefault(EnvImageWidth, result.Style.ImageWidth)

	if background := os.Getenv(EnvBackground); background != "" {
		result.Style.BackgroundColor = background
	}

	if titleColor := os.Getenv(EnvTitleColor); titleColor != "" {
		result.Style.TitleColor = titleColor
	}

	if level := os.Getenv(EnvLogLevel); level != "" {
		result.Logging.Level = level
	}

	result.Logging.Verbose = getEnvBoolOrDefault(EnvLogVerbose, result.Logging.Verbose)
	result.Logging.JSONFormat = getEnvBoolOrDefault(EnvLogJSON, result.Logging.JSONFormat)

	return result
}

// mergeInto merges source configuration into target configuration
func (m *ConfigMerger) mergeInto(target, source *entities.Config) {
	// Deck config
	if source.Deck.Template != "" {
		target.Deck.Template = source.Deck.Template
	}
	if source.Deck.DefaultOutput != "" {
		target.Deck.DefaultOutput = source.Deck.DefaultOutput
	}

	// Layout names
	if source.Layouts.Title != "" {
		target.Layouts.Title = source.Layouts.Title
	}
	if source.Layouts.Content != "" {
		target.Layouts.Content = source.Layouts.Content
	}
	if source.Layouts.Text != "" {
		target.Layouts.Text = source.Layouts.Text
	}
	if source.Layouts.Image != "" {
		target.Layouts.Image = source.Layouts.Image
	}

	// Style config
	if source.Style.TitleFontSize != 0 {
		target.Style.TitleFontSize = source.Style.TitleFontSize
	}
	if source.Style.TextFontSize != 0 {
		target.Style.TextFontSize = source.Style.TextFontSize
	}
	if source.Style.ImageWidth != 0 {
		target.Style.ImageWidth = source.Style.ImageWidth
	}
	if source.Style.BackgroundColor != "" {
		target.Style.BackgroundColor = source.Style.BackgroundColor
	}
	if source.Style.TitleColor != "" {
		target.Style.TitleColor = source.Style.TitleColor
	}

	// Metadata config
	if source.Metadata.Author != "" {
		target.Metadata.Author = source.Metadata.Author
	}

	// Logging config. TOML cannot tell false from unset, so booleans only
	// ever switch on when merged.
	if source.Logging.Level != "" {
		target.Logging.Level = source.Logging.Level
	}
	if source.Logging.Verbose {
		target.Logging.Verbose = true
	}
	if source.Logging.JSONFormat {
		target.Logging.JSONFormat = true
	}
}

// deepCopy creates a copy of a configuration; nil copies as empty.
// Config holds only value fields, so a struct copy is deep.
func deepCopy(src *entities.Config) *entities.Config {
	if src == nil {
		return &entities.Config{}
	}
	dst := *src
	return &dst
}

var _ ports.ConfigMerger = (*ConfigMerger)(nil)
