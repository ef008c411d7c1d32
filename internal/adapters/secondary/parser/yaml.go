package parser

import (
	"context"

	"gopkg.in/yaml.v3"

	"github.com/fredcamaral/pptxgen/internal/domain/entities"
	"github.com/fredcamaral/pptxgen/internal/domain/ports"
)

// YAMLDecoder decodes YAML outline documents. The schema is the same as
// for JSON outlines.
type YAMLDecoder struct{}

// NewYAMLDecoder creates a new YAML outline decoder
func NewYAMLDecoder() *YAMLDecoder {
	return &YAMLDecoder{}
}

// Decode parses content into a validated outline
func (d *YAMLDecoder) Decode(ctx context.Context, content []byte) (*entities.Outline, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var raw interface{}
	if err := yaml.Unmarshal(content, &raw); err != nil {
		return nil, entities.NewFormatError("parse YAML outline", "", err)
	}

	return outlineFromTree(raw)
}

var _ ports.OutlineDecoder = (*YAMLDecoder)(nil)
