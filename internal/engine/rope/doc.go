// Package rope provides an immutable rope for storing editable text.
//
// The rope is a shallow B+ tree: leaf nodes hold bounded text chunks and
// internal nodes carry aggregated metrics (bytes, characters, newlines).
// All public offsets are counted in Unicode scalar values (runes), not
// bytes, so callers address text the way a caret moves through it.
//
// Operations return new Rope values; an existing rope is never modified.
// Insert, Delete, and Slice cost O(log n) plus the affected text.
//
//	r := rope.FromString("hello world")
//	r = r.Insert(5, ",")   // "hello, world"
//	r = r.Delete(0, 7)     // "world"
package rope
