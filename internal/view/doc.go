// Package view owns the per-window editing state for one buffer: the
// caret, the optional selection, the scroll position, and the undo/redo
// stacks. Several views may share one buffer; each keeps its own caret
// and scroll.
package view
