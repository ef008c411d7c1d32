package ports

import (
	"context"

	"github.com/fredcamaral/pptxgen/internal/domain/entities"
)

// SlideBuilder appends slides to an in-memory deck. Each call adds one
// independent slide after the existing ones.
type SlideBuilder interface {
	// AddTitleSlide adds a title slide; an empty subtitle is left at the layout default
	AddTitleSlide(title, subtitle string) error

	// AddContentSlide adds a title and one bullet paragraph per entry
	AddContentSlide(title string, bullets []string) error

	// AddTextSlide adds a title and a single non-bulleted paragraph
	AddTextSlide(title, text string) error

	// AddImageSlide adds a title and the picture at imagePath; sizes are in inches, zero for defaults
	AddImageSlide(title, imagePath string, width, height float64) error

	// SlideCount returns the number of slides in the deck
	SlideCount() int
}

// DeckWriter serializes a deck to disk
type DeckWriter interface {
	// Save writes the deck to path and returns the path actually written
	Save(path string) (string, error)
}

// Deck is a builder that can also be saved
type Deck interface {
	SlideBuilder
	DeckWriter
}

// SlideSummary is the text content read back from one slide
type SlideSummary struct {
	Index    int      `json:"index"`
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle,omitempty"`
	Body     []string `json:"body,omitempty"`
	Pictures int      `json:"pictures,omitempty"`

	// Background and TitleColor are "RRGGBB" when the slide sets them
	Background string `json:"background,omitempty"`
	TitleColor string `json:"title_color,omitempty"`
}

// DeckInspector reads saved decks back
type DeckInspector interface {
	Inspect(ctx context.Context, path string) ([]SlideSummary, error)
}

// OutlineService turns outlines into slides
type OutlineService interface {
	// Build invokes builder once per outline entry, in order
	Build(ctx context.Context, outline *entities.Outline, builder SlideBuilder) error
}

// DeckOpener shows a saved deck in a desktop application
type DeckOpener interface {
	Open(path string) error
}
