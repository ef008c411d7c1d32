package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fredcamaral/pptxgen/internal/adapters/secondary/config"
	"github.com/fredcamaral/pptxgen/internal/domain/entities"
	"github.com/fredcamaral/pptxgen/internal/domain/services"
)

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage pptxgen configuration",
		Long: `Configuration is read from, lowest precedence first:
  built-in defaults
  the global file (~/.config/pptxgen/config.toml)
  ./pptxgen.toml, or the file given with --config
  PPTXGEN_* environment variables
  command line flags`,
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default global configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loader := config.NewTOMLLoader()
			path := loader.GetGlobalPath()

			if _, err := os.Stat(path); err == nil && !force {
				return usageErrorf("%s already exists; use --force to overwrite it", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return entities.NewIOError("check config", path, err)
			}

			service := services.NewConfigService(loader, config.NewConfigMerger())
			written, err := service.CreateGlobalConfig(cmd.Context())
			if err != nil {
				return entities.NewIOError("write config", path, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", written)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing configuration file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, nil)
			if err != nil {
				return err
			}
			return config.Encode(cmd.OutOrStdout(), cfg)
		},
	}

	configCmd.AddCommand(initCmd, showCmd)
	return configCmd
}
