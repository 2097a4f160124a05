package launchconfig

import (
	"strings"

	"github.com/aymanbagabas/go-udiff"
)

// Diff returns a unified diff from the on-disk script to the desired one, or "" when
// they match.
func Diff(name string, current string, desired string) string {
	if current == desired {
		return ""
	}
	out := udiff.Unified(name+" (on disk)", name+" (generated)", current, desired)
	if out != "" && !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out
}
