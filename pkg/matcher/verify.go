package matcher

import (
	"strings"
	"unicode/utf8"
)

// verify implements spec.md §4.E: the per-candidate leniency gate. text
// and start give access to the surrounding context for the boundary
// check; region is the scanner's preferred default region.
func verify(lib Library, text string, start int, candidate string, region string, leniency Leniency) (*Match, bool) {
	if !bracketsBalanced(candidate) {
		return nil, false
	}

	if leniency.atLeast(Valid) && !boundaryOK(text, start, candidate) {
		return nil, false
	}

	number, err := lib.ParseAndKeepRawInput(candidate, region)
	if err != nil {
		return nil, false
	}

	if !leniencyAccepts(lib, candidate, number, region, leniency) {
		return nil, false
	}

	return &Match{Start: start, Raw: candidate, Number: lib.Sanitize(number)}, true
}

// boundaryOK implements spec.md §4.E.2: a candidate that doesn't start at
// offset 0 and doesn't begin with a lead-class character must not be
// immediately preceded by a Latin letter or invalid punctuation; likewise
// for the character immediately following it, if one exists.
func boundaryOK(text string, start int, candidate string) bool {
	if start != 0 {
		first, _ := utf8.DecodeRuneInString(candidate)
		if !isLeadClass(first) {
			prev, _ := utf8.DecodeLastRuneInString(text[:start])
			if isLatinLetter(prev) || isInvalidPunctuation(prev) {
				return false
			}
		}
	}

	end := start + len(candidate)
	if end < len(text) {
		next, _ := utf8.DecodeRuneInString(text[end:])
		if isLatinLetter(next) || isInvalidPunctuation(next) {
			return false
		}
	}
	return true
}

// leniencyAccepts dispatches on leniency per spec.md §4.E.4. Each level
// also performs every check of the levels below it.
func leniencyAccepts(lib Library, candidate string, number PhoneNumber, region string, leniency Leniency) bool {
	if !lib.IsPossibleNumber(number) {
		return false
	}
	if leniency == Possible {
		return true
	}

	if !lib.IsValidNumber(number) {
		return false
	}
	if !nationalPrefixPresentIfRequired(lib, number, candidate, region) {
		return false
	}
	if !containsOnlyValidXChars(lib, candidate, number) {
		return false
	}
	if !notMoreThanOneSlash(candidate) {
		return false
	}
	if leniency == Valid {
		return true
	}

	switch leniency {
	case StrictGrouping:
		return checkGrouping(lib, candidate, number, allNumberGroupsRemainGrouped)
	case ExactGrouping:
		return checkGrouping(lib, candidate, number, allNumberGroupsRemainGrouped) &&
			checkGrouping(lib, candidate, number, allNumberGroupsAreExactlyPresent)
	default:
		return true
	}
}

// notMoreThanOneSlash implements spec.md §4.E.v.
func notMoreThanOneSlash(candidate string) bool {
	return strings.Count(candidate, "/") < 2
}

// containsOnlyValidXChars implements spec.md §4.E.iv. The final
// character of candidate is exempt from the rule.
func containsOnlyValidXChars(lib Library, candidate string, number PhoneNumber) bool {
	if len(candidate) == 0 {
		return true
	}
	lastIndex := len(candidate) - 1

	for i := 0; i < lastIndex; i++ {
		c := candidate[i]
		if c != 'x' && c != 'X' {
			continue
		}

		if i+1 <= lastIndex {
			next := candidate[i+1]
			if next == 'x' || next == 'X' {
				if i+2 > lastIndex {
					// The second 'x' is the exempt final character;
					// nothing follows it to match against.
					return true
				}
				rest := candidate[i+2:]
				if lib.IsNumberMatch(number, rest) != NSNMatch {
					return false
				}
				i++ // skip the second 'x'; the final char check still applies next loop
				continue
			}
		}

		// Extension marker: everything after it, digits only, must equal
		// the parsed extension.
		if lib.NormalizeDigitsOnly(candidate[i+1:]) != number.Extension() {
			return false
		}
	}
	return true
}
