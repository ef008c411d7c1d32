package parser

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"

	"github.com/fredcamaral/pptxgen/internal/domain/entities"
)

// SchemaID identifies the outline schema document
const SchemaID = "https://github.com/fredcamaral/pptxgen/outline.schema.json"

// Document is the wire form of an outline
type Document struct {
	Title    *string         `json:"title,omitempty" yaml:"title,omitempty" jsonschema:"description=Text of the title slide; omit for no title slide"`
	Subtitle string          `json:"subtitle,omitempty" yaml:"subtitle,omitempty" jsonschema:"description=Subtitle of the title slide"`
	Slides   []SlideDocument `json:"slides" yaml:"slides" jsonschema:"required,description=Slides in output order"`
}

// SlideDocument is the wire form of one slide spec
type SlideDocument struct {
	Type        string      `json:"type" yaml:"type" jsonschema:"required,enum=content,enum=text,enum=image"`
	Title       string      `json:"title,omitempty" yaml:"title,omitempty" jsonschema:"default=Untitled Slide"`
	Content     interface{} `json:"content,omitempty" yaml:"content,omitempty" jsonschema:"oneof_type=array;string,description=Required for content and text slides: bullets (array of strings) or the paragraph (string)"`
	ImagePath   string      `json:"image_path,omitempty" yaml:"image_path,omitempty" jsonschema:"description=Picture file for image slides"`
	ImageWidth  float64     `json:"image_width,omitempty" yaml:"image_width,omitempty" jsonschema:"minimum=0,description=Picture width in inches"`
	ImageHeight float64     `json:"image_height,omitempty" yaml:"image_height,omitempty" jsonschema:"minimum=0,description=Picture height in inches"`
}

// NewDocument converts an outline to its wire form
func NewDocument(outline *entities.Outline) (*Document, error) {
	doc := &Document{
		Subtitle: outline.Subtitle,
		Slides:   make([]SlideDocument, 0, len(outline.Slides)),
	}
	if outline.HasTitle {
		title := outline.Title
		doc.Title = &title
	}

	for i, spec := range outline.Slides {
		switch v := spec.(type) {
		case entities.ContentSlide:
			doc.Slides = append(doc.Slides, contentDocument(v))
		case *entities.ContentSlide:
			doc.Slides = append(doc.Slides, contentDocument(*v))
		case entities.TextSlide:
			doc.Slides = append(doc.Slides, SlideDocument{Type: string(v.Kind()), Title: v.Title, Content: v.Text})
		case *entities.TextSlide:
			doc.Slides = append(doc.Slides, SlideDocument{Type: string(v.Kind()), Title: v.Title, Content: v.Text})
		case entities.ImageSlide:
			doc.Slides = append(doc.Slides, imageDocument(v))
		case *entities.ImageSlide:
			doc.Slides = append(doc.Slides, imageDocument(*v))
		default:
			return nil, fmt.Errorf("slide %d: unsupported slide spec %T", i, spec)
		}
	}

	return doc, nil
}

func contentDocument(s entities.ContentSlide) SlideDocument {
	bullets := s.Bullets
	if bullets == nil {
		bullets = []string{}
	}
	return SlideDocument{Type: string(s.Kind()), Title: s.Title, Content: bullets}
}

func imageDocument(s entities.ImageSlide) SlideDocument {
	return SlideDocument{
		Type:        string(s.Kind()),
		Title:       s.Title,
		ImagePath:   s.ImagePath,
		ImageWidth:  s.Width,
		ImageHeight: s.Height,
	}
}

// Schema returns the JSON Schema describing outline documents
func Schema() *jsonschema.Schema {
	reflector := &jsonschema.Reflector{
		AllowAdditionalProperties:  true,
		DoNotReference:             true,
		ExpandedStruct:             true,
		RequiredFromJSONSchemaTags: true,
	}

	schema := reflector.Reflect(&Document{})
	schema.ID = jsonschema.ID(SchemaID)
	schema.Title = "pptxgen outline"
	schema.Description = "Deck outline: an optional title slide followed by content, text and image slides"
	return schema
}

// SchemaJSON returns the outline schema as indented JSON
func SchemaJSON() ([]byte, error) {
	data, err := json.MarshalIndent(Schema(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding schema: %w", err)
	}
	return append(data, '\n'), nil
}
