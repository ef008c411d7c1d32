package config

import (
	"io"

	"github.com/BurntSushi/toml"

	"github.com/fredcamaral/pptxgen/internal/domain/entities"
)

// Encode writes config as TOML
func Encode(w io.Writer, config *entities.Config) error {
	encoder := toml.NewEncoder(w)
	encoder.Indent = "  "
	return encoder.Encode(config)
}
