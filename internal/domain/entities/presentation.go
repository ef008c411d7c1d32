package entities

// Outline is the declarative description of a deck: an optional title
// slide followed by the slides in Slides, in order.
type Outline struct {
	// HasTitle reports whether a title slide should be generated
	HasTitle bool `json:"-"`

	// Title is the text of the title slide
	Title string `json:"title,omitempty"`

	// Subtitle is optional; empty leaves the layout's subtitle untouched
	Subtitle string `json:"subtitle,omitempty"`

	// Slides contains the slide specs in output order
	Slides []SlideSpec `json:"-"`
}

// NewOutline returns an outline with a title slide
func NewOutline(title, subtitle string, slides ...SlideSpec) *Outline {
	return &Outline{
		HasTitle: true,
		Title:    title,
		Subtitle: subtitle,
		Slides:   slides,
	}
}

// Validate checks every slide spec. The first failure is returned and
// carries the index of the offending slide.
func (o *Outline) Validate() error {
	for i, spec := range o.Slides {
		if spec == nil {
			return &ValidationError{Index: i, Field: "type", Reason: "slide spec is missing"}
		}
		if err := spec.validate(i); err != nil {
			return err
		}
	}
	return nil
}

// SlideCount returns the number of slides building the outline produces
func (o *Outline) SlideCount() int {
	n := len(o.Slides)
	if o.HasTitle {
		n++
	}
	return n
}

// CountByKind tallies slide specs per kind
func (o *Outline) CountByKind() map[SlideKind]int {
	counts := make(map[SlideKind]int, 3)
	for _, spec := range o.Slides {
		if spec != nil {
			counts[spec.Kind()]++
		}
	}
	return counts
}
