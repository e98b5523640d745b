package arabshape

import (
	"fmt"
	"strings"

	"github.com/npillmayer/arabshape/shaping"
	"golang.org/x/text/unicode/runenames"
)

// UnicodeEscapes renders text as a sequence of \uXXXX escapes, with at least
// 4 lowercase hex digits per code-point.
func UnicodeEscapes(text string) string {
	var sb strings.Builder
	sb.Grow(6 * len(text))
	for _, r := range text {
		fmt.Fprintf(&sb, "\\u%04x", r)
	}
	return sb.String()
}

// Describe lists the code-points of text, one per line, together with their
// Unicode name and shaping classification. It is intended for debugging.
func Describe(text string) string {
	var sb strings.Builder
	for i, r := range []rune(text) {
		c := shaping.Classify(r)
		fmt.Fprintf(&sb, "%3d  %U  %-36s", i, r, runenames.Name(r))
		switch {
		case c.Tashkil:
			sb.WriteString("  tashkil")
		case c.Arabic:
			fmt.Fprintf(&sb, "  joining=%s", c.Joining)
		case c.Special:
			if m := shaping.Mirror(r); m != r {
				fmt.Fprintf(&sb, "  special -> %U", m)
			} else {
				sb.WriteString("  special")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
