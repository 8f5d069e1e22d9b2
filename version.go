// Package wrapindent indents soft-wrapped continuation lines so they line up
// under the leading whitespace of their logical line.
//
// The decorator lives in package indent; package editor is a Bubble Tea
// host that renders its decorations.
package wrapindent

import (
	_ "embed"
	"regexp"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// Version is the module version without the leading `v`.
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag is Version as a git tag.
func VersionTag() string {
	return "v" + Version()
}

// IsSemver reports whether v is a SemVer 2.0.0 version. A leading `v` is
// accepted so tags can be checked directly.
func IsSemver(v string) bool {
	v = strings.TrimPrefix(strings.TrimSpace(v), "v")
	return semverRE.MatchString(v)
}
