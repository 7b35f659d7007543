package app

import (
	"github.com/dshills/kite/internal/engine/buffer"
	"github.com/dshills/kite/internal/render"
	"github.com/dshills/kite/internal/view"
)

// EditorWindow holds the open buffers and the views onto them. Buffers
// are shared: two views may present the same buffer, so edits through
// one are visible in the other. Exactly one view is current and
// receives input.
type EditorWindow struct {
	buffers []*buffer.Buffer
	views   []*view.View
	current int

	width, height int
	metrics       render.Metrics

	log *Logger
}

// NewEditorWindow creates an empty window with the given cell metrics.
func NewEditorWindow(m render.Metrics, log *Logger) *EditorWindow {
	return &EditorWindow{metrics: m, log: log}
}

// AddView opens path in a new view and makes it current. A path that
// cannot be read falls back to an empty buffer so the editor still
// starts; the failure is logged. An empty path opens a new unnamed
// buffer.
func (w *EditorWindow) AddView(path string) *view.View {
	var buf *buffer.Buffer
	if path == "" {
		buf = buffer.New()
	} else {
		var err error
		buf, err = buffer.FromFile(path)
		if err != nil {
			buf = buffer.New()
			w.log.Warn("open %s: %v, starting empty buffer %s", path, err, buf.ID())
		} else {
			w.log.Debug("opened %s as buffer %s", path, buf.ID())
		}
	}
	w.buffers = append(w.buffers, buf)

	v := view.New(buf)
	v.SetPageLength(w.pageLength())
	w.views = append(w.views, v)
	w.current = len(w.views) - 1
	return v
}

// ActiveView returns the view receiving input, or nil before the first
// AddView.
func (w *EditorWindow) ActiveView() *view.View {
	if len(w.views) == 0 {
		return nil
	}
	return w.views[w.current]
}

// Resize records new window dimensions and recomputes every view's
// page length.
func (w *EditorWindow) Resize(width, height int) {
	w.width = width
	w.height = height
	w.metrics.Height = height
	n := w.pageLength()
	for _, v := range w.views {
		v.SetPageLength(n)
	}
}

// Size returns the window dimensions in cells.
func (w *EditorWindow) Size() (int, int) {
	return w.width, w.height
}

// pageLength is the number of whole text lines that fit, minus one so
// a partial bottom line never hides the caret.
func (w *EditorWindow) pageLength() int {
	n := w.height/w.metrics.LineSpacing - 1
	if n < 1 {
		n = 1
	}
	return n
}

// BuildList renders the current view into a display list.
func (w *EditorWindow) BuildList(th render.Theme) []render.Command {
	v := w.ActiveView()
	if v == nil {
		return nil
	}
	return render.BuildList(v, w.metrics, th)
}
