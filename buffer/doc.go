// Package buffer implements the offset-addressed document model used by the
// wrapindent editor host.
//
// Offsets count runes from the start of the document; every line break is
// one rune. Lines are split on '\n' only, so a trailing '\r' stays part of
// the line text. Line numbers are 1-based.
package buffer
