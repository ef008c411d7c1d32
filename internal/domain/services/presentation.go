package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/fredcamaral/pptxgen/internal/domain/entities"
	"github.com/fredcamaral/pptxgen/internal/domain/ports"
)

// OutlineInterpreter translates an outline into slide builder calls
type OutlineInterpreter struct {
	logger *slog.Logger
}

// NewOutlineInterpreter creates a new outline interpreter
func NewOutlineInterpreter(logger *slog.Logger) *OutlineInterpreter {
	if logger == nil {
		logger = slog.Default()
	}
	return &OutlineInterpreter{logger: logger}
}

// Build adds the title slide (when the outline has a title) and then one
// slide per spec, in order. The outline is validated as a whole before
// the first builder call, so an invalid outline adds no slides at all.
// Processing stops at the first builder failure.
func (s *OutlineInterpreter) Build(ctx context.Context, outline *entities.Outline, builder ports.SlideBuilder) error {
	if outline == nil {
		return &entities.ValidationError{Index: -1, Reason: "outline cannot be nil"}
	}
	if builder == nil {
		return errors.New("slide builder cannot be nil")
	}

	if err := outline.Validate(); err != nil {
		return err
	}

	if outline.HasTitle {
		if err := builder.AddTitleSlide(outline.Title, outline.Subtitle); err != nil {
			return fmt.Errorf("adding title slide: %w", err)
		}
	}

	for i, spec := range outline.Slides {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := dispatch(builder, spec); err != nil {
			return fmt.Errorf("adding slide %d (%s): %w", i, spec.Kind(), err)
		}
	}

	s.logger.Debug("created presentation from outline",
		slog.Int("slides", builder.SlideCount()),
		slog.Bool("title_slide", outline.HasTitle),
	)
	return nil
}

func dispatch(builder ports.SlideBuilder, spec entities.SlideSpec) error {
	switch v := spec.(type) {
	case entities.ContentSlide:
		return builder.AddContentSlide(v.Title, v.Bullets)
	case entities.TextSlide:
		return builder.AddTextSlide(v.Title, v.Text)
	case entities.ImageSlide:
		return builder.AddImageSlide(v.Title, v.ImagePath, v.Width, v.Height)
	case *entities.ContentSlide:
		return builder.AddContentSlide(v.Title, v.Bullets)
	case *entities.TextSlide:
		return builder.AddTextSlide(v.Title, v.Text)
	case *entities.ImageSlide:
		return builder.AddImageSlide(v.Title, v.ImagePath, v.Width, v.Height)
	default:
		return &entities.ValidationError{Index: -1, Field: "type", Value: string(spec.Kind()), Reason: "unsupported slide spec"}
	}
}

var _ ports.OutlineService = (*OutlineInterpreter)(nil)
