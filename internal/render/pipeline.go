package render

import (
	"github.com/dshills/kite/internal/view"
)

// BuildList lays out the view's buffer from its first visible line and
// returns the display list for one frame. It reads buffer and view state
// and mutates neither.
func BuildList(v *view.View, m Metrics, th Theme) []Command {
	buf := v.Buffer()
	list := make([]Command, 0, 4*m.Height/max(m.LineSpacing, 1))

	firstChar := buf.LineToChar(v.FirstVisibleLine())
	caret := v.Caret()
	sel, hasSel := v.Selection()

	x, y := 0, 0
	idx := firstChar
	clipped := false

	it := buf.Runes(firstChar)
walk:
	for ch, ok := it.Next(); ok; ch, ok = it.Next() {
		// Selection highlight behind the glyph. Line terminators are
		// never highlighted.
		if hasSel && sel.Contains(idx) && ch != '\n' {
			list = append(list,
				Move(x, y),
				Rect(m.Advance, m.LineSpacing, th.Selection))
		}
		// Caret bar, checked independently of the selection: both may
		// fire at the same position.
		if idx == caret {
			list = append(list,
				Move(x, y),
				Rect(caretWidth(m), m.LineSpacing, th.Caret))
		}

		switch ch {
		case '\n':
			y += m.LineSpacing
			if y > m.Height {
				clipped = true
				break walk // vertical clip; no horizontal clip exists
			}
			x = 0
		case '\t':
			x += m.Advance * 4
		case '\r':
			// No advance, no draw.
		default:
			list = append(list, Move(x, y), Char(ch, th.Text))
			x += m.Advance
		}

		idx++
	}

	// The caret may legitimately sit at LenChars(), one past the last
	// character, where the loop never visits it.
	if !clipped && idx == caret {
		list = append(list,
			Move(x, y),
			Rect(caretWidth(m), m.LineSpacing, th.Caret))
	}

	return list
}
