package matcher

import "regexp"

// Pre-filter regexes, per spec.md §4.B. These are fixed and immutable
// after package initialization, so — unlike the master pattern, which
// depends on the injected Library's character classes — they are plain
// package-level compiled regexes rather than entries in the process-wide
// cache described in spec.md §9.
var (
	// publicationPagePattern rejects citations like "211-227 (2003)".
	publicationPagePattern = regexp.MustCompile(`\d{1,5}-+\d{1,5}\s{0,4}\(\d{1,4}`)

	// slashDatePattern rejects day/month/year or month/day/year dates
	// with a 2- or 4-digit year, e.g. "3/10/2011", "08/31/95".
	slashDatePattern = regexp.MustCompile(`(?:[0-3]?\d/[01]?\d|[01]?\d/[0-3]?\d)/(?:[12]\d{3}|\d{2})`)

	// timestampPattern rejects "YYYY[-/]?MM[-/]?DD HH" at the end of a
	// candidate.
	timestampPattern = regexp.MustCompile(`[12]\d{3}[-/]?[01]\d[-/]?[0-3]\d\s[0-2]\d$`)

	// timestampSuffixPattern is checked against the three characters
	// immediately following a timestampPattern-matching candidate in the
	// original text, not inside the candidate itself. A truncated tail
	// (candidate at end-of-text) is treated as "no timestamp" rather
	// than inferring a stricter intent — see spec.md §9's open question.
	timestampSuffixPattern = regexp.MustCompile(`^:[0-5]\d`)

	// groupSeparatorPattern partitions a candidate into digit groups for
	// inner-match recovery: a Unicode space followed by zero or more
	// characters that are neither plus, opener, nor digit.
	groupSeparatorPattern = regexp.MustCompile(`[\p{Zs}][^+(\[（［0-9]*`)
)

// isPublicationPage reports whether candidate looks like a journal
// citation page range rather than a phone number.
func isPublicationPage(candidate string) bool {
	return publicationPagePattern.MatchString(candidate)
}

// isSlashDate reports whether candidate looks like a day/month/year or
// month/day/year date.
func isSlashDate(candidate string) bool {
	return slashDatePattern.MatchString(candidate)
}

// isTimestamp reports whether candidate ends like a timestamp and, if so,
// whether the text immediately following it in the original string
// continues the timestamp with a ":MM" tail. trailing is whatever follows
// the candidate in the source text (may be shorter than 3 characters, or
// empty at end-of-text).
func isTimestamp(candidate, trailing string) bool {
	if !timestampPattern.MatchString(candidate) {
		return false
	}
	if len(trailing) < 3 {
		return false
	}
	return timestampSuffixPattern.MatchString(trailing[:3])
}

// bracketsBalanced enforces spec.md §4.B's "matching brackets" rule: at
// most four bracket pairs, an opener at position 0 may be left unclosed
// (it may have been dropped by upstream extraction), but every other
// opener must be closed, and a stray closer is always rejected. RE2 (the
// engine behind Go's regexp package) has no atomic groups or
// backreferences, so this is a hand-rolled linear scan rather than a
// transliteration of a single complex regex — the spec.md §9 design note
// about engines lacking atomic groups applies directly here.
func bracketsBalanced(candidate string) bool {
	var openPositions []int
	pairs := 0
	for i, r := range candidate {
		switch r {
		case '(', '[', '（', '［':
			openPositions = append(openPositions, i)
		case ')', ']', '）', '］':
			if len(openPositions) == 0 {
				return false
			}
			openPositions = openPositions[:len(openPositions)-1]
			pairs++
		}
	}
	if pairs > 4 {
		return false
	}
	switch len(openPositions) {
	case 0:
		return true
	case 1:
		return openPositions[0] == 0
	default:
		return false
	}
}
