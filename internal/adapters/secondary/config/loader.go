package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/fredcamaral/pptxgen/internal/domain/entities"
	"github.com/fredcamaral/pptxgen/internal/domain/ports"
)

// LocalFileName is the per-project configuration file name
const LocalFileName = "pptxgen.toml"

// TOMLLoader implements the ConfigLoader interface using TOML files
type TOMLLoader struct {
	globalPath string
	localName  string
}

// NewTOMLLoader creates a new TOML configuration loader
func NewTOMLLoader() *TOMLLoader {
	configDir, err := os.UserConfigDir()
	if err != nil {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}

	return &TOMLLoader{
		globalPath: filepath.Join(configDir, "pptxgen", "config.toml"),
		localName:  LocalFileName,
	}
}

// LoadGlobal loads the global configuration file. A missing file yields
// nil; `pptxgen config init` creates it.
func (l *TOMLLoader) LoadGlobal(ctx context.Context) (*entities.Config, error) {
	return l.loadOptional(l.globalPath)
}

// LoadLocal loads a local configuration file from the specified directory
func (l *TOMLLoader) LoadLocal(ctx context.Context, dir string) (*entities.Config, error) {
	return l.loadOptional(l.GetLocalPath(dir))
}

// LoadFile loads a configuration file that must exist
func (l *TOMLLoader) LoadFile(ctx context.Context, path string) (*entities.Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, entities.NewNotFoundError("load config", path, err)
	}
	return l.loadConfig(path)
}

// CreateDefaults creates a default configuration file at the specified path
func (l *TOMLLoader) CreateDefaults(ctx context.Context, path string) error {
	if err := l.ensureConfigDir(path); err != nil {
		return err
	}

	file, err := os.Create(path) // #nosec G304 - path is controlled (global config path)
	if err != nil {
		return fmt.Errorf("creating config file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	if err := Encode(file, GetDefaultConfig()); err != nil {
		return fmt.Errorf("encoding config to %s: %w", path, err)
	}

	return nil
}

// GetGlobalPath returns the path to the global configuration file
func (l *TOMLLoader) GetGlobalPath() string {
	return l.globalPath
}

// GetLocalPath returns the path to the local configuration file for a directory
func (l *TOMLLoader) GetLocalPath(dir string) string {
	return filepath.Join(dir, l.localName)
}

func (l *TOMLLoader) loadOptional(path string) (*entities.Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	return l.loadConfig(path)
}

// loadConfig loads and validates a configuration file
func (l *TOMLLoader) loadConfig(path string) (*entities.Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 - path is from controlled sources (global/local config)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var config entities.Config
	md, err := toml.Decode(string(data), &config)
	if err != nil {
		return nil, entities.NewFormatError("parse config", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, entities.NewFormatError("parse config", path, fmt.Errorf("unknown key %q", undecoded[0].String()))
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config in %s: %w", path, err)
	}

	return &config, nil
}

// ensureConfigDir ensures the configuration directory exists
func (l *TOMLLoader) ensureConfigDir(path string) error {
	dir := filepath.Dir(path)

	// Create config directory with restricted permissions (0750 = owner and group only)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	return nil
}

var _ ports.ConfigLoader = (*TOMLLoader)(nil)
