package pptx

import (
	"context"
	"strings"

	"baliance.com/gooxml/presentation"
	"baliance.com/gooxml/schema/soo/dml"
	"baliance.com/gooxml/schema/soo/pml"

	"github.com/fredcamaral/pptxgen/internal/domain/ports"
)

// Inspector reads saved decks back through gooxml
type Inspector struct{}

// NewInspector creates a new deck inspector
func NewInspector() *Inspector {
	return &Inspector{}
}

// Inspect opens the deck at path and summarizes its slides in order
func (i *Inspector) Inspect(ctx context.Context, path string) ([]ports.SlideSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pres, err := openDeck("open deck", path)
	if err != nil {
		return nil, err
	}
	return summarizeDeck(pres), nil
}

var _ ports.DeckInspector = (*Inspector)(nil)

type shapeRole int

const (
	shapeOther shapeRole = iota
	shapeTitle
	shapeSubtitle
	shapeBody
)

func summarizeDeck(pres *presentation.Presentation) []ports.SlideSummary {
	slides := pres.Slides()
	out := make([]ports.SlideSummary, 0, len(slides))
	for i, s := range slides {
		out = append(out, summarizeSlide(i, s.X()))
	}
	return out
}

func summarizeSlide(index int, sld *pml.Sld) ports.SlideSummary {
	summary := ports.SlideSummary{Index: index}
	if sld == nil || sld.CSld == nil || sld.CSld.SpTree == nil {
		return summary
	}

	if bg := sld.CSld.Bg; bg != nil && bg.BgPr != nil {
		summary.Background = solidFillHex(bg.BgPr.SolidFill)
	}

	bodySeen := false
	for _, choice := range sld.CSld.SpTree.Choice {
		summary.Pictures += len(choice.Pic)

		for _, sp := range choice.Sp {
			paras := paragraphTexts(sp.TxBody)
			switch classifyShape(sp) {
			case shapeTitle:
				if summary.Title == "" {
					summary.Title = strings.Join(paras, "\n")
					summary.TitleColor = firstRunColor(sp.TxBody)
				}
			case shapeSubtitle:
				if summary.Subtitle == "" {
					summary.Subtitle = strings.Join(paras, "\n")
				}
			case shapeBody:
				if !bodySeen {
					summary.Body = paras
					bodySeen = true
				}
			}
		}
	}
	return summary
}

func classifyShape(sp *pml.CT_Shape) shapeRole {
	if sp == nil || sp.NvSpPr == nil {
		return shapeOther
	}

	if nv := sp.NvSpPr.NvPr; nv != nil && nv.Ph != nil {
		switch nv.Ph.TypeAttr {
		case pml.ST_PlaceholderTypeTitle, pml.ST_PlaceholderTypeCtrTitle:
			return shapeTitle
		case pml.ST_PlaceholderTypeSubTitle:
			return shapeSubtitle
		case pml.ST_PlaceholderTypeBody, pml.ST_PlaceholderTypeObj, pml.ST_PlaceholderTypeUnset:
			return shapeBody
		default:
			return shapeOther
		}
	}

	if sp.NvSpPr.CNvPr == nil {
		return shapeOther
	}
	switch sp.NvSpPr.CNvPr.NameAttr {
	case shapeNameTitle:
		return shapeTitle
	case shapeNameSubtitle:
		return shapeSubtitle
	case shapeNameBody:
		return shapeBody
	default:
		return shapeOther
	}
}

// firstRunColor returns the solid fill of the first text run in body
func firstRunColor(body *dml.CT_TextBody) string {
	if body == nil {
		return ""
	}
	for _, p := range body.P {
		for _, run := range p.EG_TextRun {
			if run.R != nil {
				if run.R.RPr == nil {
					return ""
				}
				return solidFillHex(run.R.RPr.SolidFill)
			}
		}
	}
	return ""
}

func solidFillHex(fill *dml.CT_SolidColorFillProperties) string {
	if fill == nil || fill.SrgbClr == nil {
		return ""
	}
	return strings.ToUpper(fill.SrgbClr.ValAttr)
}

// paragraphTexts returns one string per paragraph. A body holding a
// single paragraph without runs is empty and yields nil.
func paragraphTexts(body *dml.CT_TextBody) []string {
	if body == nil {
		return nil
	}
	if len(body.P) == 1 && len(body.P[0].EG_TextRun) == 0 {
		return nil
	}

	texts := make([]string, 0, len(body.P))
	for _, p := range body.P {
		var b strings.Builder
		for _, run := range p.EG_TextRun {
			switch {
			case run.R != nil:
				b.WriteString(run.R.T)
			case run.Br != nil:
				b.WriteString("\n")
			}
		}
		texts = append(texts, b.String())
	}
	return texts
}
