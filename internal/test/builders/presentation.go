package builders

import (
	"strconv"

	"github.com/fredcamaral/pptxgen/internal/domain/entities"
)

// OutlineBuilder helps build Outline entities for testing
type OutlineBuilder struct {
	outline *entities.Outline
}

// NewOutlineBuilder creates a new outline builder with a title slide and no other slides
func NewOutlineBuilder() *OutlineBuilder {
	return &OutlineBuilder{
		outline: &entities.Outline{
			HasTitle: true,
			Title:    "Test Presentation",
			Slides:   []entities.SlideSpec{},
		},
	}
}

// WithTitle sets the title slide text
func (b *OutlineBuilder) WithTitle(title string) *OutlineBuilder {
	b.outline.HasTitle = true
	b.outline.Title = title
	return b
}

// WithSubtitle sets the title slide subtitle
func (b *OutlineBuilder) WithSubtitle(subtitle string) *OutlineBuilder {
	b.outline.Subtitle = subtitle
	return b
}

// WithoutTitle drops the title slide
func (b *OutlineBuilder) WithoutTitle() *OutlineBuilder {
	b.outline.HasTitle = false
	b.outline.Title = ""
	b.outline.Subtitle = ""
	return b
}

// WithContentSlide appends a bulleted slide
func (b *OutlineBuilder) WithContentSlide(title string, bullets ...string) *OutlineBuilder {
	if bullets == nil {
		bullets = []string{}
	}
	b.outline.Slides = append(b.outline.Slides, entities.ContentSlide{Title: title, Bullets: bullets})
	return b
}

// WithTextSlide appends a paragraph slide
func (b *OutlineBuilder) WithTextSlide(title, text string) *OutlineBuilder {
	b.outline.Slides = append(b.outline.Slides, entities.TextSlide{Title: title, Text: text})
	return b
}

// WithImageSlide appends a picture slide at default size
func (b *OutlineBuilder) WithImageSlide(title, imagePath string) *OutlineBuilder {
	b.outline.Slides = append(b.outline.Slides, entities.ImageSlide{Title: title, ImagePath: imagePath})
	return b
}

// WithSlide appends an arbitrary slide spec
func (b *OutlineBuilder) WithSlide(spec entities.SlideSpec) *OutlineBuilder {
	b.outline.Slides = append(b.outline.Slides, spec)
	return b
}

// WithSlideCount appends count content slides titled "Slide 1", "Slide 2", ...
func (b *OutlineBuilder) WithSlideCount(count int) *OutlineBuilder {
	for i := 0; i < count; i++ {
		n := strconv.Itoa(i + 1)
		b.WithContentSlide("Slide "+n, "Point "+n+".1", "Point "+n+".2")
	}
	return b
}

// Build returns the built outline
func (b *OutlineBuilder) Build() *entities.Outline {
	slides := make([]entities.SlideSpec, len(b.outline.Slides))
	copy(slides, b.outline.Slides)

	return &entities.Outline{
		HasTitle: b.outline.HasTitle,
		Title:    b.outline.Title,
		Subtitle: b.outline.Subtitle,
		Slides:   slides,
	}
}

// MinimalOutline creates an outline with a title and one text slide
func MinimalOutline() *entities.Outline {
	return NewOutlineBuilder().
		WithTitle("Minimal").
		WithTextSlide("Only Slide", "Hello").
		Build()
}

// LargeOutline creates an outline with many slides
func LargeOutline() *entities.Outline {
	return NewOutlineBuilder().
		WithTitle("Large Presentation").
		WithSlideCount(50).
		Build()
}

// MixedOutline creates an outline holding every slide kind
func MixedOutline(imagePath string) *entities.Outline {
	return NewOutlineBuilder().
		WithTitle("Mixed").
		WithSubtitle("All kinds").
		WithContentSlide("Bullets", "first", "second", "third").
		WithTextSlide("Paragraph", "Some free text").
		WithImageSlide("Picture", imagePath).
		Build()
}
