// Package sanitize converts wiki article and formula names into strings
// that are safe to use as make targets and filenames.
package sanitize

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
)

// makeReplacer maps characters that are special to make or the shell to
// stable escape tokens. The mapping must stay injective so that distinct
// article names never collide on the same target.
var makeReplacer = strings.NewReplacer(
	" ", "_",
	":", "@COLON@",
	"(", "@LBR@",
	")", "@RBR@",
	"/", "@SLASH@",
	"'", "@SQUOTE@",
	`"`, "@DQUOTE@",
	"*", "@STAR@",
	"=", "@EQ@",
	"$", "@DOLLAR@",
	"#", "@SHARP@",
	"%", "@PERC@",
)

// maxTargetLen bounds escaped names to stay below common NAME_MAX limits,
// leaving room for extensions appended by the build system.
const maxTargetLen = 200

// MakeTarget converts a filename to a make-friendly format.
func MakeTarget(input string) string {
	return makeReplacer.Replace(input)
}

// SafeTarget behaves like MakeTarget but bounds the result length.
// Overlong names are truncated at a rune boundary and suffixed with a
// digest of the full escaped name, keeping distinct inputs distinct.
func SafeTarget(input string) string {
	escaped := MakeTarget(input)
	if len(escaped) <= maxTargetLen {
		return escaped
	}

	digest := fmt.Sprintf("@%016x", xxhash.Sum64String(escaped))
	cut := maxTargetLen - len(digest)
	for cut > 0 && !utf8.RuneStart(escaped[cut]) {
		cut--
	}
	return escaped[:cut] + digest
}
