package tournament

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeName canonicalizes an entrant display name: NFC unicode
// normalization plus whitespace collapsing. Winner propagation and calendar
// export compare entrant identities, so two spellings of the same name must
// normalize to the same string.
func NormalizeName(name string) string {
	name = norm.NFC.String(name)
	return strings.Join(strings.Fields(name), " ")
}
