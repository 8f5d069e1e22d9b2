// Package indent implements a wrapped-line indent decorator for text editor
// components.
//
// For every visible logical line the decorator measures leading whitespace,
// adds a configured initial indent, and emits a zero-width line decoration
// whose inline style pads soft-wrapped continuation rows to that column while
// pulling the first row back with a negative text-indent.
//
// The package does not depend on a concrete editor. Hosts implement View,
// State, Document and Surface, and drive a Plugin through Attach, Update and
// Detach.
package indent
