// Package editor provides a Bubble Tea text view that hosts wrapindent
// extensions.
//
// The view renders a buffer with optional soft wrapping, exposes its visible
// ranges and a deferred layout measurement to installed view plugins, and
// reads their line decorations back into hanging indents for wrapped rows.
package editor
