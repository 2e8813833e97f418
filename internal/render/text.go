// Package render turns plotter events into display text.
package render

import (
	"fmt"
	"io"
	"strconv"

	"penplot/internal/plot"
)

// TextRenderer formats events one line each. Labels maps colors to
// their display names; colors missing from the table fall back to
// Color.String.
type TextRenderer struct {
	Labels map[plot.Color]string
}

// New returns a renderer with the reference label table.
func New() *TextRenderer {
	return &TextRenderer{Labels: map[plot.Color]string{
		plot.Black: "чёрный",
		plot.Red:   "красный",
		plot.Green: "зелёный",
	}}
}

// EventLine renders one event as a single line without the newline.
func (r *TextRenderer) EventLine(e plot.Event) string {
	switch e := e.(type) {
	case plot.LineDrawn:
		return fmt.Sprintf("линия %s -> %s, цвет: %s", e.From, e.To, r.label(e.Color))
	case plot.Moved:
		return fmt.Sprintf("перемещение %s -> %s, расстояние %s", e.From, e.To, num(e.Distance))
	case plot.Turned:
		return fmt.Sprintf("поворот на %s° до %s°", num(e.By), num(e.To))
	case plot.PenChanged:
		if e.To == plot.Down {
			return "каретка опущена"
		}
		return "каретка поднята"
	case plot.ColorChanged:
		return "цвет: " + r.label(e.To)
	case plot.PositionSet:
		return fmt.Sprintf("переход в %s", e.To)
	default:
		return fmt.Sprintf("неизвестное событие %T", e)
	}
}

// StateLine renders a plotter snapshot, used for the final state.
func (r *TextRenderer) StateLine(s plot.State) string {
	pen := "поднята"
	if s.Pen == plot.Down {
		pen = "опущена"
	}
	return fmt.Sprintf("итог: позиция %s, курс %s°, цвет %s, каретка %s",
		s.Pos, num(s.Heading), r.label(s.Color), pen)
}

// WriteLog prints one line per event.
func (r *TextRenderer) WriteLog(w io.Writer, events []plot.Event) {
	for _, e := range events {
		fmt.Fprintln(w, r.EventLine(e))
	}
}

func (r *TextRenderer) label(c plot.Color) string {
	if name, ok := r.Labels[c]; ok {
		return name
	}
	return c.String()
}

// num prints a degree or distance without a trailing ".0" on whole
// values.
func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
