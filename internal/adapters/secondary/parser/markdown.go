package parser

import (
	"bytes"
	"context"
	"html"
	"path/filepath"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/fredcamaral/pptxgen/internal/domain/entities"
	"github.com/fredcamaral/pptxgen/internal/domain/ports"
)

// MarkdownDecoder builds outlines from Markdown documents:
//
//   - the first level-1 heading is the deck title, and the paragraph right
//     after it the subtitle
//   - every other heading of level 1 or 2 starts a slide
//   - a section holding a lone image becomes an image slide, one holding a
//     list a content slide (one bullet per item), anything else a text slide
//
// YAML frontmatter may set title and subtitle. Without any title the
// source file name is used. Raw HTML is stripped from all text.
type MarkdownDecoder struct {
	md         goldmark.Markdown
	sanitizer  *bluemonday.Policy
	sourceName string
}

// MarkdownOption configures a MarkdownDecoder
type MarkdownOption func(*MarkdownDecoder)

// WithSourceName sets the file the Markdown was read from; its base name
// becomes the deck title when the document has none
func WithSourceName(name string) MarkdownOption {
	return func(d *MarkdownDecoder) {
		d.sourceName = name
	}
}

// NewMarkdownDecoder creates a new Goldmark-based outline decoder
func NewMarkdownDecoder(opts ...MarkdownOption) *MarkdownDecoder {
	d := &MarkdownDecoder{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,           // GitHub Flavored Markdown
				extension.Strikethrough, // ~~strikethrough~~
				extension.TaskList,      // - [ ] task lists
			),
		),
		sanitizer: bluemonday.StrictPolicy(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// section is the Markdown between two slide headings
type section struct {
	title      string
	paragraphs []string
	bullets    []string
	hasList    bool
	images     []string
}

// Decode parses content into a validated outline
func (d *MarkdownDecoder) Decode(ctx context.Context, content []byte) (*entities.Outline, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	frontmatter, body, err := extractFrontmatter(content)
	if err != nil {
		return nil, entities.NewFormatError("parse Markdown frontmatter", d.sourceName, err)
	}

	doc := d.md.Parser().Parse(text.NewReader(body))

	outline := &entities.Outline{}
	if title, ok := getStringFromMap(frontmatter, "title"); ok {
		outline.HasTitle = true
		outline.Title = title
	}
	if subtitle, ok := getStringFromMap(frontmatter, "subtitle"); ok {
		outline.Subtitle = subtitle
	}

	var sections []*section
	var current *section
	expectSubtitle := false

	for node := doc.FirstChild(); node != nil; node = node.NextSibling() {
		switch n := node.(type) {
		case *ast.Heading:
			heading := d.inlineText(n, body)
			if n.Level == 1 && !outline.HasTitle && current == nil {
				outline.HasTitle = true
				outline.Title = heading
				expectSubtitle = outline.Subtitle == ""
				continue
			}
			if n.Level <= 2 {
				current = &section{title: heading}
				sections = append(sections, current)
				expectSubtitle = false
				continue
			}
			// deeper headings are body text
			if current != nil {
				current.paragraphs = append(current.paragraphs, heading)
			}

		case *ast.Paragraph:
			if expectSubtitle {
				outline.Subtitle = d.inlineText(n, body)
				expectSubtitle = false
				continue
			}
			if current == nil {
				continue
			}
			if dest, ok := loneImage(n); ok {
				current.images = append(current.images, dest)
				continue
			}
			if para := d.inlineText(n, body); para != "" {
				current.paragraphs = append(current.paragraphs, para)
			}

		case *ast.List:
			expectSubtitle = false
			if current == nil {
				continue
			}
			current.hasList = true
			current.bullets = append(current.bullets, d.listItems(n, body)...)

		default:
			expectSubtitle = false
		}
	}

	if !outline.HasTitle && d.sourceName != "" {
		outline.HasTitle = true
		outline.Title = titleFromFileName(d.sourceName)
	}

	outline.Slides = make([]entities.SlideSpec, 0, len(sections))
	for _, s := range sections {
		outline.Slides = append(outline.Slides, s.spec())
	}

	if err := outline.Validate(); err != nil {
		return nil, err
	}

	return outline, nil
}

func (s *section) spec() entities.SlideSpec {
	title := s.title
	if strings.TrimSpace(title) == "" {
		title = entities.DefaultSlideTitle
	}

	switch {
	case len(s.images) == 1 && !s.hasList && len(s.paragraphs) == 0:
		return entities.ImageSlide{Title: title, ImagePath: s.images[0]}
	case s.hasList:
		bullets := append(append([]string{}, s.paragraphs...), s.bullets...)
		return entities.ContentSlide{Title: title, Bullets: bullets}
	default:
		return entities.TextSlide{Title: title, Text: strings.Join(s.paragraphs, "\n")}
	}
}

// loneImage reports the destination of a paragraph made of one image
func loneImage(p *ast.Paragraph) (string, bool) {
	if p.ChildCount() != 1 {
		return "", false
	}
	img, ok := p.FirstChild().(*ast.Image)
	if !ok {
		return "", false
	}
	return string(img.Destination), true
}

// listItems flattens a list, nested lists included, into one entry per item
func (d *MarkdownDecoder) listItems(list *ast.List, source []byte) []string {
	var items []string
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		var nested []string
		var parts []string
		for block := item.FirstChild(); block != nil; block = block.NextSibling() {
			if sub, ok := block.(*ast.List); ok {
				nested = append(nested, d.listItems(sub, source)...)
				continue
			}
			if t := d.inlineText(block, source); t != "" {
				parts = append(parts, t)
			}
		}
		if len(parts) > 0 {
			items = append(items, strings.Join(parts, " "))
		}
		items = append(items, nested...)
	}
	return items
}

// inlineText returns the plain text of node with markup and HTML removed
func (d *MarkdownDecoder) inlineText(node ast.Node, source []byte) string {
	var buf bytes.Buffer
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := n.(type) {
		case *ast.Text:
			buf.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(t.Value)
		case *ast.RawHTML:
			for i := 0; i < t.Segments.Len(); i++ {
				seg := t.Segments.At(i)
				buf.Write(seg.Value(source))
			}
		case *ast.AutoLink:
			buf.Write(t.Label(source))
		}
		return ast.WalkContinue, nil
	})

	clean := html.UnescapeString(d.sanitizer.Sanitize(buf.String()))
	return strings.Join(strings.Fields(clean), " ")
}

// titleFromFileName turns "quarterly-review.md" into "Quarterly Review"
func titleFromFileName(name string) string {
	base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	base = strings.NewReplacer("-", " ", "_", " ").Replace(base)
	return cases.Title(language.Und).String(strings.Join(strings.Fields(base), " "))
}

// extractFrontmatter splits YAML frontmatter from markdown content
func extractFrontmatter(content []byte) (map[string]interface{}, []byte, error) {
	content = bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))
	if !bytes.HasPrefix(content, []byte("---\n")) {
		return nil, content, nil
	}

	lines := bytes.Split(content, []byte("\n"))
	endIndex := -1
	for i := 1; i < len(lines); i++ {
		if bytes.Equal(bytes.TrimSpace(lines[i]), []byte("---")) {
			endIndex = i
			break
		}
	}

	if endIndex == -1 {
		// No closing delimiter, so it was a thematic break
		return nil, content, nil
	}

	frontmatter := make(map[string]interface{})
	if raw := bytes.Join(lines[1:endIndex], []byte("\n")); len(bytes.TrimSpace(raw)) > 0 {
		if err := yaml.Unmarshal(raw, &frontmatter); err != nil {
			return nil, nil, err
		}
	}

	return frontmatter, bytes.Join(lines[endIndex+1:], []byte("\n")), nil
}

// getStringFromMap safely extracts a string value from a map
func getStringFromMap(m map[string]interface{}, key string) (string, bool) {
	if m == nil {
		return "", false
	}

	val, exists := m[key]
	if !exists {
		return "", false
	}

	str, ok := val.(string)
	return str, ok
}

var _ ports.OutlineDecoder = (*MarkdownDecoder)(nil)
