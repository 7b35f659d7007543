// Package render turns buffer and view state into a display list: an
// ordered sequence of drawing commands a backend replays onto its
// surface. Building the list reads state and mutates nothing, so it can
// run every frame and be tested by asserting on the sequence instead of
// on pixels.
//
// Coordinates are backend units: a terminal backend passes cell metrics
// (advance 1, line spacing 1), a pixel backend passes font metrics. The
// pipeline assumes a fixed glyph advance; proportional fonts are not
// supported. There is no horizontal clip: very long lines overflow
// visually, which is an accepted limitation, not a bug.
package render
