package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Config represents the complete application configuration
type Config struct {
	Deck     DeckConfig    `toml:"deck"`
	Layouts  LayoutConfig  `toml:"layouts"`
	Style    StyleConfig   `toml:"style"`
	Metadata Metadata      `toml:"metadata"`
	Logging  LoggingConfig `toml:"logging"`
}

// Validate validates the entire configuration
func (c *Config) Validate() error {
	if err := c.Deck.Validate(); err != nil {
		return fmt.Errorf("deck config: %w", err)
	}

	if err := c.Style.Validate(); err != nil {
		return fmt.Errorf("style config: %w", err)
	}

	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}

	return nil
}

// DeckConfig controls where decks are seeded from and written to
type DeckConfig struct {
	Template      string `toml:"template"`
	DefaultOutput string `toml:"default_output"`
}

// Validate validates deck configuration
func (d DeckConfig) Validate() error {
	if d.Template != "" && strings.ToLower(filepath.Ext(d.Template)) != ".pptx" {
		return fmt.Errorf("template must be a .pptx file: %s", d.Template)
	}

	if d.DefaultOutput != "" && strings.HasSuffix(d.DefaultOutput, string(os.PathSeparator)) {
		return fmt.Errorf("default output must name a file, not a directory: %s", d.DefaultOutput)
	}

	return nil
}

// LayoutConfig names the layouts used per slide archetype. Empty names
// fall back to layout type detection.
type LayoutConfig struct {
	Title   string `toml:"title"`
	Content string `toml:"content"`
	Text    string `toml:"text"`
	Image   string `toml:"image"`
}

// StyleConfig holds the sizes and colors applied to builder-created
// slides. Colors are "#RRGGBB" hex strings; empty leaves the layout's own.
type StyleConfig struct {
	TitleFontSize   int     `toml:"title_font_size"`
	TextFontSize    int     `toml:"text_font_size"`
	ImageWidth      float64 `toml:"image_width"`
	BackgroundColor string  `toml:"background_color"`
	TitleColor      string  `toml:"title_color"`
}

// Validate validates style configuration
func (s StyleConfig) Validate() error {
	if s.TitleFontSize < 0 || s.TitleFontSize > 400 {
		return fmt.Errorf("title font size out of range: %d", s.TitleFontSize)
	}

	if s.TextFontSize < 0 || s.TextFontSize > 400 {
		return fmt.Errorf("text font size out of range: %d", s.TextFontSize)
	}

	if s.ImageWidth < 0 {
		return errors.New("image width must be non-negative")
	}

	if s.BackgroundColor != "" {
		if _, err := ParseRGB(s.BackgroundColor); err != nil {
			return fmt.Errorf("background color: %w", err)
		}
	}

	if s.TitleColor != "" {
		if _, err := ParseRGB(s.TitleColor); err != nil {
			return fmt.Errorf("title color: %w", err)
		}
	}

	return nil
}

// GetTitleFontSize returns the title size in points with default
func (s StyleConfig) GetTitleFontSize() int {
	if s.TitleFontSize <= 0 {
		return 32
	}
	return s.TitleFontSize
}

// GetTextFontSize returns the paragraph size in points with default
func (s StyleConfig) GetTextFontSize() int {
	if s.TextFontSize <= 0 {
		return 18
	}
	return s.TextFontSize
}

// GetImageWidth returns the default picture width in inches
func (s StyleConfig) GetImageWidth() float64 {
	if s.ImageWidth <= 0 {
		return 8
	}
	return s.ImageWidth
}

// BackgroundRGB returns the slide background color, if one is set and valid
func (s StyleConfig) BackgroundRGB() (RGB, bool) {
	return optionalRGB(s.BackgroundColor)
}

// TitleRGB returns the title text color, if one is set and valid
func (s StyleConfig) TitleRGB() (RGB, bool) {
	return optionalRGB(s.TitleColor)
}

func optionalRGB(s string) (RGB, bool) {
	if s == "" {
		return RGB{}, false
	}
	c, err := ParseRGB(s)
	if err != nil {
		return RGB{}, false
	}
	return c, true
}

// RGB is an opaque 24-bit color
type RGB struct {
	R, G, B uint8
}

// ParseRGB parses "#RRGGBB" or "RRGGBB", in either case
func ParseRGB(s string) (RGB, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return RGB{}, fmt.Errorf("invalid hex color %q (want #RRGGBB)", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q (want #RRGGBB)", s)
	}

	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Hex returns the color as "RRGGBB" in upper case
func (c RGB) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// Metadata contains document property defaults
type Metadata struct {
	Author string `toml:"author"`
}

// LogLevel represents logging level
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level      string `toml:"level"`       // debug, info, warn, error
	Verbose    bool   `toml:"verbose"`     // Enable verbose logging
	JSONFormat bool   `toml:"json_format"` // Output logs in JSON format
}

// Validate validates logging configuration
func (l LoggingConfig) Validate() error {
	switch LogLevel(l.Level) {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
	case "":
		// Empty is okay, will use default
	default:
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", l.Level)
	}

	return nil
}

// GetLevel returns the log level with default. Verbose forces debug.
func (l LoggingConfig) GetLevel() LogLevel {
	if l.Verbose {
		return LogLevelDebug
	}
	if l.Level == "" {
		return LogLevelInfo
	}
	return LogLevel(l.Level)
}
