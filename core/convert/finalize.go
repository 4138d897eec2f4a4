package convert

import (
	"regexp"
	"strings"
)

// Nested block wrappers each emit their own surrounding newlines, and
// inline wrappers pad with spaces, so the raw concatenation routinely
// contains newline runs of 3+ and doubled spaces.
var (
	newlineRuns = regexp.MustCompile(`\n{3,}`)
	spaceRuns   = regexp.MustCompile(`[ \t]{2,}`)
)

// Finalize normalizes the whitespace of a raw conversion result:
// every run of three or more newlines collapses to exactly two (one
// blank line), runs of spaces collapse to one, and leading/trailing
// whitespace is trimmed. Idempotent, so re-finalizing an already-final
// document is a no-op.
func Finalize(raw string) string {
	out := newlineRuns.ReplaceAllString(raw, "\n\n")
	out = spaceRuns.ReplaceAllString(out, " ")
	return strings.TrimSpace(out)
}
