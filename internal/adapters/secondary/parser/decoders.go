package parser

import (
	"path/filepath"
	"strings"

	"github.com/fredcamaral/pptxgen/internal/domain/ports"
)

// DecoderFor picks the outline decoder for a file by extension. Anything
// that is not YAML or Markdown is read as JSON.
func DecoderFor(path string) ports.OutlineDecoder {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return NewYAMLDecoder()
	case ".md", ".markdown":
		return NewMarkdownDecoder(WithSourceName(path))
	default:
		return NewJSONDecoder()
	}
}
