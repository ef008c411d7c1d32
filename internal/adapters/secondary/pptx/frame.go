package pptx

import (
	"baliance.com/gooxml/color"
	"baliance.com/gooxml/drawingml"
	"baliance.com/gooxml/measurement"
	"baliance.com/gooxml/presentation"
	"baliance.com/gooxml/schema/soo/dml"
	"baliance.com/gooxml/schema/soo/pml"

	"github.com/fredcamaral/pptxgen/internal/domain/entities"
)

// Shape names given to text boxes that stand in for missing placeholders.
// Inspect relies on them to tell title, subtitle and body apart.
const (
	shapeNameTitle    = "Title"
	shapeNameSubtitle = "Subtitle"
	shapeNameBody     = "Body"
)

const bulletChar = "•"

var (
	titleTypes    = []pml.ST_PlaceholderType{pml.ST_PlaceholderTypeTitle, pml.ST_PlaceholderTypeCtrTitle}
	subtitleTypes = []pml.ST_PlaceholderType{pml.ST_PlaceholderTypeSubTitle}
	bodyTypes     = []pml.ST_PlaceholderType{pml.ST_PlaceholderTypeBody, pml.ST_PlaceholderTypeObj, pml.ST_PlaceholderTypeUnset}
)

// box is a position and size in inches
type box struct {
	x, y, w, h float64
}

var (
	titleBox    = box{x: 0.5, y: 0.5, w: 9, h: 1}
	subtitleBox = box{x: 0.5, y: 1.7, w: 9, h: 1}
	bodyBox     = box{x: 0.5, y: 1.6, w: 9, h: 5}
)

// runStyle is the formatting applied to heading text. A nil color keeps
// the inherited one.
type runStyle struct {
	sizePt int
	bold   bool
	color  *entities.RGB
}

// textFrame is satisfied by both placeholders and text boxes
type textFrame interface {
	AddParagraph() drawingml.Paragraph
}

// findPlaceholder returns the first placeholder on slide whose type is in types
func findPlaceholder(slide presentation.Slide, types ...pml.ST_PlaceholderType) (presentation.PlaceHolder, bool) {
	for _, ph := range slide.PlaceHolders() {
		for _, t := range types {
			if ph.Type() == t {
				return ph, true
			}
		}
	}
	return presentation.PlaceHolder{}, false
}

func addTextBox(slide presentation.Slide, name string, b box) presentation.TextBox {
	tb := slide.AddTextBox()
	tb.Properties().SetPosition(measurement.Distance(b.x)*measurement.Inch, measurement.Distance(b.y)*measurement.Inch)
	tb.Properties().SetSize(measurement.Distance(b.w)*measurement.Inch, measurement.Distance(b.h)*measurement.Inch)
	if nv := tb.X().NvSpPr; nv != nil && nv.CNvPr != nil {
		nv.CNvPr.NameAttr = name
	}
	return tb
}

// heading fills the title-like region of slide: the placeholder of one of
// types when the layout has one, otherwise a text box in b. Placeholders
// keep their layout's size and weight and only take the color.
func heading(slide presentation.Slide, text, name string, b box, style runStyle, types []pml.ST_PlaceholderType) {
	if ph, ok := findPlaceholder(slide, types...); ok {
		if style.color == nil {
			ph.SetText(text)
			return
		}
		ph.ClearAll()
		run := ph.AddParagraph().AddRun()
		run.SetText(text)
		run.Properties().SetSolidFill(gooxmlColor(*style.color))
		return
	}

	tb := addTextBox(slide, name, b)
	run := tb.AddParagraph().AddRun()
	run.SetText(text)
	run.Properties().SetSize(measurement.Distance(style.sizePt) * measurement.Point)
	run.Properties().SetBold(style.bold)
	if style.color != nil {
		run.Properties().SetSolidFill(gooxmlColor(*style.color))
	}
}

func gooxmlColor(c entities.RGB) color.Color {
	return color.RGB(c.R, c.G, c.B)
}

// setBackground gives slide a solid background fill
func setBackground(slide presentation.Slide, c entities.RGB) {
	csld := slide.X().CSld
	if csld == nil {
		return
	}

	bgPr := pml.NewCT_BackgroundProperties()
	bgPr.SolidFill = dml.NewCT_SolidColorFillProperties()
	bgPr.SolidFill.SrgbClr = dml.NewCT_SRgbColor()
	bgPr.SolidFill.SrgbClr.ValAttr = c.Hex()
	bgPr.EffectLst = dml.NewCT_EffectList()

	csld.Bg = pml.NewCT_Background()
	csld.Bg.BgPr = bgPr
}

// bodyFrame returns the body region of slide, emptied. The second result
// reports whether a text box had to be created.
func bodyFrame(slide presentation.Slide) (textFrame, bool) {
	if ph, ok := findPlaceholder(slide, bodyTypes...); ok {
		ph.ClearAll()
		return ph, false
	}
	return addTextBox(slide, shapeNameBody, bodyBox), true
}

// addBullet appends one level-0 bullet paragraph. Placeholders take the
// bullet glyph from their layout; text boxes need it set explicitly.
func addBullet(frame textFrame, text string, explicitGlyph bool) {
	para := frame.AddParagraph()
	para.Properties().SetLevel(0)
	if explicitGlyph {
		para.Properties().SetBulletChar(bulletChar)
	}
	para.AddRun().SetText(text)
}

// addPlainParagraph appends a paragraph with bullets suppressed
func addPlainParagraph(frame textFrame, text string, sizePt int) {
	para := frame.AddParagraph()
	ppr := para.Properties().X()
	ppr.BuNone = dml.NewCT_TextNoBullet()
	zero := int32(0)
	ppr.MarLAttr = &zero
	ppr.IndentAttr = &zero

	run := para.AddRun()
	run.SetText(text)
	run.Properties().SetSize(measurement.Distance(sizePt) * measurement.Point)
}
