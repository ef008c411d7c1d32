package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/fredcamaral/pptxgen/internal/domain/entities"
	"github.com/fredcamaral/pptxgen/internal/domain/ports"
)

// ConfigService implements the configuration service business logic
type ConfigService struct {
	loader ports.ConfigLoader
	merger ports.ConfigMerger
}

// NewConfigService creates a new configuration service
func NewConfigService(loader ports.ConfigLoader, merger ports.ConfigMerger) *ConfigService {
	return &ConfigService{
		loader: loader,
		merger: merger,
	}
}

// LoadConfig loads the complete configuration. Precedence, lowest first:
// defaults, global file, local pptxgen.toml (or explicitPath when set),
// PPTXGEN_* environment variables, CLI flags.
func (s *ConfigService) LoadConfig(ctx context.Context, workingDir, explicitPath string, flags map[string]interface{}) (*entities.Config, error) {
	configs := []*entities.Config{s.GetDefaultConfig()}

	globalConfig, err := s.loader.LoadGlobal(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading global config: %w", err)
	}
	if globalConfig != nil {
		configs = append(configs, globalConfig)
	}

	var projectConfig *entities.Config
	if explicitPath != "" {
		projectConfig, err = s.loader.LoadFile(ctx, explicitPath)
		if err != nil {
			return nil, fmt.Errorf("loading config %s: %w", explicitPath, err)
		}
	} else {
		projectConfig, err = s.loader.LoadLocal(ctx, workingDir)
		if err != nil {
			return nil, fmt.Errorf("loading local config: %w", err)
		}
	}
	if projectConfig != nil {
		configs = append(configs, projectConfig)
	}

	merged := s.merger.Merge(configs...)
	merged = s.merger.ApplyEnvVars(merged)
	merged = s.merger.ApplyFlags(merged, flags)

	if err := s.ValidateConfig(merged); err != nil {
		return nil, fmt.Errorf("final config validation: %w", err)
	}

	return merged, nil
}

// GetDefaultConfig returns the default configuration
func (s *ConfigService) GetDefaultConfig() *entities.Config {
	// Merge with no arguments returns defaults
	return s.merger.Merge()
}

// ValidateConfig validates a configuration
func (s *ConfigService) ValidateConfig(config *entities.Config) error {
	if config == nil {
		return errors.New("config cannot be nil")
	}

	return config.Validate()
}

// CreateGlobalConfig writes the default configuration to the global path
// and returns that path
func (s *ConfigService) CreateGlobalConfig(ctx context.Context) (string, error) {
	globalPath := s.loader.GetGlobalPath()
	if err := s.loader.CreateDefaults(ctx, globalPath); err != nil {
		return "", err
	}
	return globalPath, nil
}

var _ ports.ConfigService = (*ConfigService)(nil)
