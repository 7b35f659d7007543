// Package buffer provides the mutable text container for one document.
//
// A Buffer wraps an immutable rope with the document identity (source
// path, dirty flag, ID) and the coordinate conversions the editor relies
// on: absolute character offset, (line, column) point, and the clamping
// point-to-index mapping used by cursor movement.
//
// Buffers are confined to the event loop thread. Mutation is protected by
// a runtime re-entrancy guard: a command that mutates a buffer already
// being mutated panics rather than corrupting state.
package buffer
