package ports

import (
	"context"

	"github.com/fredcamaral/pptxgen/internal/domain/entities"
)

// OutlineDecoder parses an outline document into a validated Outline
type OutlineDecoder interface {
	Decode(ctx context.Context, content []byte) (*entities.Outline, error)
}

// OutlineEncoder writes an outline in a decoder-compatible format
type OutlineEncoder interface {
	Encode(outline *entities.Outline) ([]byte, error)
}
