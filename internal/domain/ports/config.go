package ports

import (
	"context"

	"github.com/fredcamaral/pptxgen/internal/domain/entities"
)

// ConfigLoader reads pptxgen.toml files
type ConfigLoader interface {
	// LoadGlobal loads ~/.config/pptxgen/config.toml; a missing file yields nil
	LoadGlobal(ctx context.Context) (*entities.Config, error)

	// LoadLocal loads pptxgen.toml from dir; a missing file yields nil
	LoadLocal(ctx context.Context, dir string) (*entities.Config, error)

	// LoadFile loads an explicitly named file, which must exist
	LoadFile(ctx context.Context, path string) (*entities.Config, error)

	// CreateDefaults writes the default configuration to path
	CreateDefaults(ctx context.Context, path string) error

	// GetGlobalPath returns the path to the global configuration file
	GetGlobalPath() string

	// GetLocalPath returns the path to the local configuration file for a directory
	GetLocalPath(dir string) string
}

// ConfigMerger combines configuration layers
type ConfigMerger interface {
	// Merge merges configs with later ones taking precedence
	Merge(configs ...*entities.Config) *entities.Config

	// ApplyFlags applies CLI flag overrides, keyed by flag name
	ApplyFlags(config *entities.Config, flags map[string]interface{}) *entities.Config

	// ApplyEnvVars applies PPTXGEN_* environment overrides
	ApplyEnvVars(config *entities.Config) *entities.Config
}

// ConfigService resolves the effective configuration
type ConfigService interface {
	// LoadConfig resolves defaults, global, local (or explicit), env and flags in that order
	LoadConfig(ctx context.Context, workingDir, explicitPath string, flags map[string]interface{}) (*entities.Config, error)

	// GetDefaultConfig returns the default configuration
	GetDefaultConfig() *entities.Config

	// CreateGlobalConfig writes the default configuration to the global path
	CreateGlobalConfig(ctx context.Context) (string, error)
}
