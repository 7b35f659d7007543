// Package engine groups the editor's text storage layers.
//
// The sub-packages build on each other:
//
//   - rope: immutable B+ tree rope storing text with O(log n) edits,
//     indexed by character offset
//   - buffer: a file-backed buffer over a rope, adding line/column
//     position conversion and edit guards
//
// Everything above this point (views, rendering, input) treats the
// buffer as the single source of document truth.
package engine
