package pptx

import (
	"errors"
	"fmt"
	"strings"

	"baliance.com/gooxml/presentation"
	"baliance.com/gooxml/schema/soo/pml"

	"github.com/fredcamaral/pptxgen/internal/domain/entities"
)

// layoutRole is the slide archetype a layout is picked for
type layoutRole int

const (
	roleTitle layoutRole = iota
	roleContent
	roleText
	roleImage
)

func (r layoutRole) String() string {
	switch r {
	case roleTitle:
		return "title"
	case roleContent:
		return "content"
	case roleText:
		return "text"
	case roleImage:
		return "image"
	default:
		return "unknown"
	}
}

var allRoles = []layoutRole{roleTitle, roleContent, roleText, roleImage}

// layoutInfo is the part of a slide layout used for selection
type layoutInfo struct {
	Name string
	Type pml.ST_SlideLayoutType
}

// preferredTypes lists, per role, the layout types tried in order before
// falling back to a position in the layout list
var preferredTypes = map[layoutRole][]pml.ST_SlideLayoutType{
	roleTitle:   {pml.ST_SlideLayoutTypeTitle},
	roleContent: {pml.ST_SlideLayoutTypeObj, pml.ST_SlideLayoutTypeTx},
	roleText:    {pml.ST_SlideLayoutTypeTx, pml.ST_SlideLayoutTypeObj},
	roleImage:   {pml.ST_SlideLayoutTypeTitleOnly, pml.ST_SlideLayoutTypeBlank},
}

var errNoLayouts = errors.New("deck defines no slide layouts")

func describeLayouts(layouts []presentation.SlideLayout) []layoutInfo {
	infos := make([]layoutInfo, 0, len(layouts))
	for _, l := range layouts {
		infos = append(infos, layoutInfo{Name: l.Name(), Type: l.Type()})
	}
	return infos
}

// pickLayout returns the index of the layout used for role. A configured
// name selects the first layout of that name (case-insensitive); otherwise the
// preferred layout types are tried, then the conventional position: the
// first layout for title slides, the second for everything else.
func pickLayout(layouts []layoutInfo, role layoutRole, configured string) (int, error) {
	if len(layouts) == 0 {
		return 0, errNoLayouts
	}

	if configured != "" {
		for i, l := range layouts {
			if strings.EqualFold(strings.TrimSpace(l.Name), strings.TrimSpace(configured)) {
				return i, nil
			}
		}
		return 0, fmt.Errorf("no slide layout named %q for %s slides", configured, role)
	}

	for _, want := range preferredTypes[role] {
		for i, l := range layouts {
			if l.Type == want {
				return i, nil
			}
		}
	}

	if role != roleTitle && len(layouts) > 1 {
		return 1, nil
	}
	return 0, nil
}

// resolveLayouts picks a layout per role. Decks without any layouts
// resolve to nil, and slides are then added without one.
func resolveLayouts(layouts []layoutInfo, names entities.LayoutConfig) (map[layoutRole]int, error) {
	if len(layouts) == 0 {
		return nil, nil
	}

	configured := map[layoutRole]string{
		roleTitle:   names.Title,
		roleContent: names.Content,
		roleText:    names.Text,
		roleImage:   names.Image,
	}

	resolved := make(map[layoutRole]int, len(allRoles))
	for _, role := range allRoles {
		idx, err := pickLayout(layouts, role, configured[role])
		if err != nil {
			return nil, err
		}
		resolved[role] = idx
	}
	return resolved, nil
}
