package entities

import (
	"strings"
)

// SlideKind discriminates the slide archetypes an outline can describe
type SlideKind string

const (
	SlideKindContent SlideKind = "content"
	SlideKindText    SlideKind = "text"
	SlideKindImage   SlideKind = "image"
)

// DefaultSlideTitle is used when a slide spec carries no title
const DefaultSlideTitle = "Untitled Slide"

// ParseSlideKind maps an outline "type" value onto a SlideKind
func ParseSlideKind(s string) (SlideKind, bool) {
	for _, kind := range SlideKinds() {
		if SlideKind(s) == kind {
			return kind, true
		}
	}
	return "", false
}

// SlideKinds returns every supported kind in declaration order
func SlideKinds() []SlideKind {
	return []SlideKind{SlideKindContent, SlideKindText, SlideKindImage}
}

// SlideSpec is one entry of an outline's slide list. The set of
// implementations is closed: ContentSlide, TextSlide and ImageSlide.
type SlideSpec interface {
	// Kind reports which archetype the spec describes
	Kind() SlideKind

	// SlideTitle returns the title text of the slide
	SlideTitle() string

	validate(index int) error
}

// ContentSlide is a title plus a bulleted body, one bullet per entry
type ContentSlide struct {
	Title   string
	Bullets []string
}

func (s ContentSlide) Kind() SlideKind    { return SlideKindContent }
func (s ContentSlide) SlideTitle() string { return s.Title }

func (s ContentSlide) validate(index int) error {
	return validateTitle(index, s.Title)
}

// TextSlide is a title plus a single free-text paragraph
type TextSlide struct {
	Title string
	Text  string
}

func (s TextSlide) Kind() SlideKind    { return SlideKindText }
func (s TextSlide) SlideTitle() string { return s.Title }

func (s TextSlide) validate(index int) error {
	return validateTitle(index, s.Title)
}

// ImageSlide is a title plus a picture loaded from ImagePath.
// Width and Height are in inches; zero selects the builder defaults.
type ImageSlide struct {
	Title     string
	ImagePath string
	Width     float64
	Height    float64
}

func (s ImageSlide) Kind() SlideKind    { return SlideKindImage }
func (s ImageSlide) SlideTitle() string { return s.Title }

func (s ImageSlide) validate(index int) error {
	if err := validateTitle(index, s.Title); err != nil {
		return err
	}

	if strings.TrimSpace(s.ImagePath) == "" {
		return &ValidationError{Index: index, Field: "image_path", Reason: "image path cannot be empty"}
	}

	if s.Width < 0 {
		return &ValidationError{Index: index, Field: "image_width", Reason: "must be non-negative"}
	}

	if s.Height < 0 {
		return &ValidationError{Index: index, Field: "image_height", Reason: "must be non-negative"}
	}

	return nil
}

func validateTitle(index int, title string) error {
	if strings.TrimSpace(title) == "" {
		return &ValidationError{Index: index, Field: "title", Reason: "slide title cannot be empty"}
	}
	return nil
}
