// Package renderer draws a static text preview of a page: one line per
// row, each field padded or clipped to its declared width, with
// placeholder glyphs where the terminal client would show live PV data.
package renderer

import (
	"strings"

	"github.com/fatih/color"

	"github.com/epics-tec/pagesmith/pkg/pageconfig"
)

type Renderer struct {
	useColor bool
	colors   map[string]*color.Color
}

// New creates a renderer. Color output marks PV-backed widgets the way
// the terminal client tints them.
func New(useColor bool) *Renderer {
	return &Renderer{
		useColor: useColor,
		colors: map[string]*color.Color{
			pageconfig.TypeGetPV:  color.New(color.FgBlue),
			pageconfig.TypeSetPV:  color.New(color.FgCyan),
			pageconfig.TypeLED:    color.New(color.FgGreen),
			pageconfig.TypeButton: color.New(color.FgWhite, color.Bold),
		},
	}
}

// Render returns the preview text for the page, one line per row.
func (r *Renderer) Render(page pageconfig.Page) string {
	var b strings.Builder
	for _, row := range page {
		for _, field := range row {
			if !field.Enabled() {
				continue
			}
			b.WriteString(r.renderField(field))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (r *Renderer) renderField(field pageconfig.Field) string {
	cell := pad(fieldText(field), field.Width, field.AlignText)
	if c, ok := r.colors[field.Type]; ok && r.useColor {
		return c.Sprint(cell)
	}
	return cell
}

func fieldText(field pageconfig.Field) string {
	switch field.Type {
	case pageconfig.TypeText:
		return field.Markup
	case pageconfig.TypeDivider:
		return strings.Repeat("-", max(field.Width, 1))
	case pageconfig.TypeGetPV, pageconfig.TypeSetPV:
		s := field.FullPVName()
		if field.Unit != "" {
			s += " " + field.Unit
		}
		return s
	case pageconfig.TypeButton:
		label := field.Text
		if label == "" {
			label = field.Markup
		}
		return "<" + label + ">"
	case pageconfig.TypeLED:
		return "●"
	default:
		return field.Markup
	}
}

// pad fits s into the field's column: clipped when too long, space-padded
// according to the field's alignment otherwise.
func pad(s string, width int, align string) string {
	if width <= 0 {
		return s
	}

	runes := []rune(s)
	if len(runes) > width {
		return string(runes[:width])
	}

	gap := width - len(runes)
	switch align {
	case "right":
		return strings.Repeat(" ", gap) + s
	case "center":
		left := gap / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
	default:
		return s + strings.Repeat(" ", gap)
	}
}
