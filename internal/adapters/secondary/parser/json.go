package parser

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fredcamaral/pptxgen/internal/domain/entities"
	"github.com/fredcamaral/pptxgen/internal/domain/ports"
)

// Outline document keys
const (
	keyTitle       = "title"
	keySubtitle    = "subtitle"
	keySlides      = "slides"
	keyType        = "type"
	keyContent     = "content"
	keyImagePath   = "image_path"
	keyImageWidth  = "image_width"
	keyImageHeight = "image_height"
)

// JSONDecoder decodes JSON outline documents
type JSONDecoder struct{}

// NewJSONDecoder creates a new JSON outline decoder
func NewJSONDecoder() *JSONDecoder {
	return &JSONDecoder{}
}

// Decode parses content into an outline. Malformed JSON reports
// ErrorKindFormat; well-formed JSON that does not describe an outline
// reports a *entities.ValidationError naming the slide index and field.
// The returned outline has passed validation as a whole.
func (d *JSONDecoder) Decode(ctx context.Context, content []byte) (*entities.Outline, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var raw interface{}
	dec := json.NewDecoder(bytes.NewReader(content))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil, entities.NewFormatError("parse JSON outline", "", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, entities.NewFormatError("parse JSON outline", "", errors.New("trailing data after outline object"))
	}

	return outlineFromTree(raw)
}

// outlineFromTree builds an outline from a generic document tree as
// produced by encoding/json or yaml.v3
func outlineFromTree(raw interface{}) (*entities.Outline, error) {
	doc, ok := raw.(map[string]interface{})
	if !ok {
		return nil, &entities.ValidationError{Index: -1, Reason: "outline must be an object", Value: typeName(raw)}
	}

	outline := &entities.Outline{}

	if v, present := doc[keyTitle]; present && v != nil {
		title, ok := v.(string)
		if !ok {
			return nil, &entities.ValidationError{Index: -1, Field: keyTitle, Reason: "must be a string", Value: typeName(v)}
		}
		outline.HasTitle = true
		outline.Title = title
	}

	if v, present := doc[keySubtitle]; present && v != nil {
		subtitle, ok := v.(string)
		if !ok {
			return nil, &entities.ValidationError{Index: -1, Field: keySubtitle, Reason: "must be a string", Value: typeName(v)}
		}
		outline.Subtitle = subtitle
	}

	v, present := doc[keySlides]
	if !present {
		return nil, &entities.ValidationError{Index: -1, Field: keySlides, Reason: "required field missing"}
	}
	items, ok := v.([]interface{})
	if !ok {
		return nil, &entities.ValidationError{Index: -1, Field: keySlides, Reason: "must be an array", Value: typeName(v)}
	}

	outline.Slides = make([]entities.SlideSpec, 0, len(items))
	for i, item := range items {
		spec, err := slideFromTree(i, item)
		if err != nil {
			return nil, err
		}
		outline.Slides = append(outline.Slides, spec)
	}

	if err := outline.Validate(); err != nil {
		return nil, err
	}

	return outline, nil
}

func slideFromTree(index int, raw interface{}) (entities.SlideSpec, error) {
	fields, ok := raw.(map[string]interface{})
	if !ok {
		return nil, &entities.ValidationError{Index: index, Reason: "slide must be an object", Value: typeName(raw)}
	}

	v, present := fields[keyType]
	if !present || v == nil {
		return nil, &entities.ValidationError{Index: index, Field: keyType, Reason: "required field missing"}
	}
	typ, ok := v.(string)
	if !ok {
		return nil, &entities.ValidationError{Index: index, Field: keyType, Reason: "must be a string", Value: typeName(v)}
	}
	kind, ok := entities.ParseSlideKind(typ)
	if !ok {
		return nil, &entities.ValidationError{Index: index, Field: keyType, Reason: "unknown slide type", Value: typ}
	}

	title := entities.DefaultSlideTitle
	if v, present := fields[keyTitle]; present && v != nil {
		s, ok := v.(string)
		if !ok {
			return nil, &entities.ValidationError{Index: index, Field: keyTitle, Reason: "must be a string", Value: typeName(v)}
		}
		title = s
	}

	switch kind {
	case entities.SlideKindContent:
		v := fields[keyContent]
		if v == nil {
			return nil, &entities.ValidationError{Index: index, Field: keyContent, Reason: "required field missing"}
		}
		bullets, err := stringList(index, v)
		if err != nil {
			return nil, err
		}
		return entities.ContentSlide{Title: title, Bullets: bullets}, nil

	case entities.SlideKindText:
		v := fields[keyContent]
		if v == nil {
			return nil, &entities.ValidationError{Index: index, Field: keyContent, Reason: "required field missing"}
		}
		text, ok := v.(string)
		if !ok {
			return nil, &entities.ValidationError{Index: index, Field: keyContent, Reason: "text slide content must be a string", Value: typeName(v)}
		}
		return entities.TextSlide{Title: title, Text: text}, nil

	default:
		v, present := fields[keyImagePath]
		if !present || v == nil {
			return nil, &entities.ValidationError{Index: index, Field: keyImagePath, Reason: "required field missing"}
		}
		path, ok := v.(string)
		if !ok {
			return nil, &entities.ValidationError{Index: index, Field: keyImagePath, Reason: "must be a string", Value: typeName(v)}
		}
		width, err := optionalNumber(index, keyImageWidth, fields[keyImageWidth])
		if err != nil {
			return nil, err
		}
		height, err := optionalNumber(index, keyImageHeight, fields[keyImageHeight])
		if err != nil {
			return nil, err
		}
		return entities.ImageSlide{Title: title, ImagePath: path, Width: width, Height: height}, nil
	}
}

// stringList reads a content slide payload
func stringList(index int, v interface{}) ([]string, error) {
	items, ok := v.([]interface{})
	if !ok {
		return nil, &entities.ValidationError{Index: index, Field: keyContent, Reason: "content slide content must be an array of strings", Value: typeName(v)}
	}

	out := make([]string, 0, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, &entities.ValidationError{
				Index:  index,
				Field:  fmt.Sprintf("%s[%d]", keyContent, i),
				Reason: "bullet must be a string",
				Value:  typeName(item),
			}
		}
		out = append(out, s)
	}
	return out, nil
}

func optionalNumber(index int, field string, v interface{}) (float64, error) {
	switch n := v.(type) {
	case nil:
		return 0, nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, &entities.ValidationError{Index: index, Field: field, Reason: "must be a number", Value: n.String()}
		}
		return f, nil
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	default:
		return 0, &entities.ValidationError{Index: index, Field: field, Reason: "must be a number", Value: typeName(v)}
	}
}

// typeName describes a decoded value for error messages
func typeName(v interface{}) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number, float64, int:
		return "number"
	case []interface{}:
		return "array"
	case map[string]interface{}:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// JSONEncoder writes outlines in the format JSONDecoder reads
type JSONEncoder struct {
	indent string
}

// NewJSONEncoder creates an encoder indenting with two spaces
func NewJSONEncoder() *JSONEncoder {
	return &JSONEncoder{indent: "  "}
}

// Encode renders outline as indented JSON with a trailing newline
func (e *JSONEncoder) Encode(outline *entities.Outline) ([]byte, error) {
	if outline == nil {
		return nil, errors.New("outline cannot be nil")
	}

	doc, err := NewDocument(outline)
	if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(doc, "", e.indent)
	if err != nil {
		return nil, fmt.Errorf("encoding outline: %w", err)
	}
	return append(data, '\n'), nil
}

var (
	_ ports.OutlineDecoder = (*JSONDecoder)(nil)
	_ ports.OutlineEncoder = (*JSONEncoder)(nil)
)
