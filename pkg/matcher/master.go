package matcher

import (
	"fmt"
	"regexp"
	"strings"
)

// masterOpenerRunes are the opening brackets a number may legitimately
// start with, beyond the plus signs the Library itself supplies.
const masterOpenerRunes = "([（［"

// buildMasterPattern assembles the master permissive regex of spec.md
// §4.D from the Library's character classes:
//
//	(?: [PLUS openers] [valid punctuation]{0,4} ){0,2}
//	\d{1,20}
//	( [valid punctuation]{0,4} \d{1,20} ){0,20}
//	( extension-pattern )?
//
// compiled case-insensitively.
func buildMasterPattern(lib Library) *regexp.Regexp {
	leadClass := "[" + escapeForCharClass(lib.PlusChars()+masterOpenerRunes) + "]"
	validClass := "[" + escapeForCharClass(lib.ValidPunctuation()) + "]"
	ext := lib.ExtensionPatternForMatching()

	source := fmt.Sprintf(`(?i)(?:%s%s{0,4}){0,2}\d{1,20}(?:%s{0,4}\d{1,20}){0,20}(?:%s)?`,
		leadClass, validClass, validClass, ext)

	return compileCached(source)
}

// escapeForCharClass escapes the handful of characters that are special
// inside a regex character class ('\', ']', '^', '-') so that a Library's
// literal set of plus/punctuation characters can be embedded safely.
func escapeForCharClass(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '\\', ']', '^', '-':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
