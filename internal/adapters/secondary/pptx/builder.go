// Package pptx builds .pptx decks on top of gooxml's presentation package.
package pptx

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register decoders used by common.ImageFromFile
	_ "image/jpeg" // register decoders used by common.ImageFromFile
	_ "image/png"  // register decoders used by common.ImageFromFile
	"log/slog"
	"os"

	"baliance.com/gooxml/common"
	"baliance.com/gooxml/measurement"
	"baliance.com/gooxml/presentation"

	"github.com/fredcamaral/pptxgen/internal/domain/entities"
	"github.com/fredcamaral/pptxgen/internal/domain/ports"
)

// Picture placement used when an image slide gives no explicit size
const (
	imageLeft = 1.0
	imageTop  = 1.5
)

// Builder appends slides to an in-memory deck and saves it.
//
// A Builder exclusively owns its deck from New until Save. It is not safe
// for concurrent use; callers must not share one across goroutines.
type Builder struct {
	pres     *presentation.Presentation
	layouts  map[layoutRole]int
	template string
	names    entities.LayoutConfig
	style    entities.StyleConfig
	author   string
	logger   *slog.Logger
	fs       ports.FileSystem
}

// Option configures a Builder
type Option func(*Builder)

// WithTemplate seeds the deck from an existing .pptx file and uses its layouts
func WithTemplate(path string) Option {
	return func(b *Builder) {
		b.template = path
	}
}

// WithLayouts selects layouts by name instead of by layout type
func WithLayouts(names entities.LayoutConfig) Option {
	return func(b *Builder) {
		b.names = names
	}
}

// WithStyle sets font sizes, colors and the default picture width
func WithStyle(style entities.StyleConfig) Option {
	return func(b *Builder) {
		b.style = style
	}
}

// WithAuthor records the author in the document properties
func WithAuthor(author string) Option {
	return func(b *Builder) {
		b.author = author
	}
}

// WithLogger sets the logger used for progress messages
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithFileSystem replaces the file system used by Save
func WithFileSystem(fs ports.FileSystem) Option {
	return func(b *Builder) {
		if fs != nil {
			b.fs = fs
		}
	}
}

// New creates a Builder holding a blank deck, or the deck at the
// WithTemplate path. A missing or unreadable template reports
// ErrorKindNotFound; one that is not a presentation reports ErrorKindFormat.
func New(opts ...Option) (*Builder, error) {
	b := &Builder{
		logger: slog.Default(),
		fs:     ports.NewRealFileSystem(),
	}
	for _, opt := range opts {
		opt(b)
	}

	if b.template == "" {
		b.pres = presentation.New()
	} else {
		pres, err := openDeck("open template", b.template)
		if err != nil {
			return nil, err
		}
		if len(pres.SlideLayouts()) == 0 {
			return nil, entities.NewFormatError("open template", b.template, errNoLayouts)
		}
		b.pres = pres
		b.logger.Info("using template", slog.String("path", b.template), slog.Int("layouts", len(pres.SlideLayouts())))
	}

	layouts, err := resolveLayouts(describeLayouts(b.pres.SlideLayouts()), b.names)
	if err != nil {
		return nil, entities.NewFormatError("select layouts", b.template, err)
	}
	b.layouts = layouts

	if b.author != "" {
		b.pres.CoreProperties.SetAuthor(b.author)
	}

	return b, nil
}

// openDeck checks that path is a readable file before handing it to gooxml,
// so a missing file is not reported as a decode failure
func openDeck(op, path string) (*presentation.Presentation, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, entities.NewNotFoundError(op, path, err)
	}
	if info.IsDir() {
		return nil, entities.NewNotFoundError(op, path, errors.New("is a directory"))
	}

	f, err := os.Open(path) // #nosec G304 - path supplied by the caller
	if err != nil {
		return nil, entities.NewNotFoundError(op, path, err)
	}
	_ = f.Close()

	pres, err := presentation.Open(path)
	if err != nil {
		return nil, entities.NewFormatError(op, path, err)
	}
	return pres, nil
}

// newSlide appends a slide using the layout chosen for role and paints
// the configured background
func (b *Builder) newSlide(role layoutRole) (presentation.Slide, error) {
	if b.layouts == nil {
		slide := b.pres.AddSlide()
		b.paintBackground(slide)
		return slide, nil
	}

	layouts := b.pres.SlideLayouts()
	idx := b.layouts[role]
	if idx < 0 || idx >= len(layouts) {
		return presentation.Slide{}, entities.NewFormatError(fmt.Sprintf("add %s slide", role), b.template, fmt.Errorf("slide layout %d out of range", idx))
	}

	slide, err := b.pres.AddSlideWithLayout(layouts[idx])
	if err != nil {
		return presentation.Slide{}, entities.NewFormatError(fmt.Sprintf("add %s slide", role), b.template, err)
	}
	b.paintBackground(slide)
	return slide, nil
}

func (b *Builder) paintBackground(slide presentation.Slide) {
	if bg, ok := b.style.BackgroundRGB(); ok {
		setBackground(slide, bg)
	}
}

// titleStyle is the run style of slide titles
func (b *Builder) titleStyle() runStyle {
	style := runStyle{sizePt: b.style.GetTitleFontSize(), bold: true}
	if c, ok := b.style.TitleRGB(); ok {
		style.color = &c
	}
	return style
}

// AddTitleSlide adds a slide from the title layout. An empty subtitle
// leaves the subtitle placeholder at its layout default.
func (b *Builder) AddTitleSlide(title, subtitle string) error {
	slide, err := b.newSlide(roleTitle)
	if err != nil {
		return err
	}

	heading(slide, title, shapeNameTitle, titleBox, b.titleStyle(), titleTypes)
	if subtitle != "" {
		heading(slide, subtitle, shapeNameSubtitle, subtitleBox, runStyle{sizePt: b.style.GetTextFontSize()}, subtitleTypes)
	}

	if b.pres.CoreProperties.Title() == "" {
		b.pres.CoreProperties.SetTitle(title)
	}

	b.logger.Debug("added title slide", slog.String("title", title))
	return nil
}

// AddContentSlide adds a slide with one bullet paragraph per entry of
// bullets, in order. No bullets leaves the body empty.
func (b *Builder) AddContentSlide(title string, bullets []string) error {
	slide, err := b.newSlide(roleContent)
	if err != nil {
		return err
	}

	heading(slide, title, shapeNameTitle, titleBox, b.titleStyle(), titleTypes)

	frame, isTextBox := bodyFrame(slide)
	if len(bullets) == 0 {
		// a text body must hold at least one paragraph
		frame.AddParagraph()
	}
	for _, bullet := range bullets {
		addBullet(frame, bullet, isTextBox)
	}

	b.logger.Debug("added content slide", slog.String("title", title), slog.Int("bullets", len(bullets)))
	return nil
}

// AddTextSlide adds a slide with a single non-bulleted paragraph
func (b *Builder) AddTextSlide(title, text string) error {
	slide, err := b.newSlide(roleText)
	if err != nil {
		return err
	}

	heading(slide, title, shapeNameTitle, titleBox, b.titleStyle(), titleTypes)

	frame, _ := bodyFrame(slide)
	addPlainParagraph(frame, text, b.style.GetTextFontSize())

	b.logger.Debug("added text slide", slog.String("title", title))
	return nil
}

// AddImageSlide adds a slide with the picture at imagePath. The file is
// checked before decoding so that a missing image reports
// ErrorKindNotFound. Width defaults to the style width; height defaults
// to the width scaled by the picture's aspect ratio.
func (b *Builder) AddImageSlide(title, imagePath string, width, height float64) error {
	info, err := os.Stat(imagePath)
	if err != nil {
		return entities.NewNotFoundError("open image", imagePath, err)
	}
	if info.IsDir() {
		return entities.NewNotFoundError("open image", imagePath, errors.New("is a directory"))
	}

	img, err := common.ImageFromFile(imagePath)
	if err != nil {
		return entities.NewFormatError("decode image", imagePath, err)
	}

	slide, err := b.newSlide(roleImage)
	if err != nil {
		return err
	}

	ref, err := b.pres.AddImage(img)
	if err != nil {
		return entities.NewFormatError("embed image", imagePath, err)
	}

	heading(slide, title, shapeNameTitle, titleBox, b.titleStyle(), titleTypes)

	w, h := pictureSize(ref.Size(), width, height, b.style.GetImageWidth())
	pic := slide.AddImage(ref)
	pic.Properties().SetPosition(imageLeft*measurement.Inch, imageTop*measurement.Inch)
	pic.Properties().SetSize(measurement.Distance(w)*measurement.Inch, measurement.Distance(h)*measurement.Inch)

	b.logger.Debug("added image slide", slog.String("title", title), slog.String("image", imagePath))
	return nil
}

// pictureSize resolves the placed size in inches
func pictureSize(px image.Point, width, height, defaultWidth float64) (float64, float64) {
	ratio := 0.75
	if px.X > 0 && px.Y > 0 {
		ratio = float64(px.Y) / float64(px.X)
	}

	switch {
	case width > 0 && height > 0:
		return width, height
	case width > 0:
		return width, width * ratio
	case height > 0:
		return height / ratio, height
	default:
		return defaultWidth, defaultWidth * ratio
	}
}

// SlideCount returns the number of slides in the deck
func (b *Builder) SlideCount() int {
	return len(b.pres.Slides())
}

// Slides reads back the text of every slide in the deck
func (b *Builder) Slides() []ports.SlideSummary {
	return summarizeDeck(b.pres)
}

var _ ports.Deck = (*Builder)(nil)
