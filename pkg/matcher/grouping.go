package matcher

import (
	"regexp"
	"strings"
)

// groupingPredicate is one of the two named grouping-consistency checks
// spec.md §4.E.grouping describes; it is passed as a first-class value
// rather than modeled with interface/virtual-method overriding, per the
// design note in spec.md §9.
type groupingPredicate func(normalizedCandidate string, formattedGroups []string, nsn string, extension string) bool

var nonDigitRunPattern = regexp.MustCompile(`\D+`)

// checkGrouping implements spec.md §4.E.grouping: it normalizes candidate
// to ASCII digits (preserving non-digits), formats number as RFC3966
// stripped of country code and extension, and runs predicate against the
// resulting groups. If that fails, it retries against each of the
// country's alternate formats whose leading-digits pattern matches the
// number's national significant number.
func checkGrouping(lib Library, candidate string, number PhoneNumber, predicate groupingPredicate) bool {
	normalized := lib.NormalizeDigits(candidate, true)
	nsn := lib.NationalSignificantNumber(number)
	extension := number.Extension()

	primaryGroups := rfc3966Groups(lib.Format(number, RFC3966))
	if predicate(normalized, primaryGroups, nsn, extension) {
		return true
	}

	for _, alt := range lib.AlternateFormatsForCountry(number.CountryCode()) {
		leading := alt.LeadingDigitsPatterns()
		if len(leading) == 0 {
			continue
		}
		re, err := regexp.Compile(`^(?:` + leading[0] + `)`)
		if err != nil || !re.MatchString(nsn) {
			continue
		}

		altGroups := rfc3966Groups(lib.FormatNSNUsingPattern(nsn, alt, RFC3966))
		if predicate(normalized, altGroups, nsn, extension) {
			return true
		}
	}

	return false
}

// rfc3966Groups strips the "tel:" scheme, the leading "+<country-code>-"
// prefix, and any ";ext=..." suffix from an RFC3966-formatted number,
// leaving the hyphen-separated national-significant-number groups.
func rfc3966Groups(rfc3966 string) []string {
	s := strings.TrimPrefix(rfc3966, "tel:")
	if idx := strings.Index(s, ";ext="); idx >= 0 {
		s = s[:idx]
	}
	s = strings.TrimPrefix(s, "+")
	if idx := strings.IndexByte(s, '-'); idx >= 0 {
		s = s[idx+1:]
	}
	if s == "" {
		return nil
	}
	return strings.Split(s, "-")
}

// allNumberGroupsRemainGrouped is the STRICT_GROUPING predicate: every
// formatted group must appear, in order, as a contiguous digit run inside
// the normalized candidate; the national-significant-number must follow
// the area/NDC group with no intervening formatting if the candidate
// keeps going with more digits there; and the candidate's tail must
// contain the extension text.
func allNumberGroupsRemainGrouped(normalizedCandidate string, formattedGroups []string, nsn string, extension string) bool {
	pos := 0
	for i, group := range formattedGroups {
		if group == "" {
			continue
		}
		rel := strings.Index(normalizedCandidate[pos:], group)
		if rel < 0 {
			return false
		}
		groupStart := pos + rel
		groupEnd := groupStart + len(group)

		if i == 0 && groupEnd < len(normalizedCandidate) && isASCIIDigit(normalizedCandidate[groupEnd]) {
			if !strings.HasPrefix(normalizedCandidate[groupStart:], nsn) {
				return false
			}
		}

		pos = groupEnd
	}
	if extension != "" && !strings.Contains(normalizedCandidate[pos:], extension) {
		return false
	}
	return true
}

// allNumberGroupsAreExactlyPresent is the EXACT_GROUPING predicate: the
// candidate's own digit groups (split on any non-digit run) must match
// the formatted groups exactly, working from the right and excluding the
// first formatted group from that walk; the candidate's first digit group
// need only end with the first formatted group.
func allNumberGroupsAreExactlyPresent(normalizedCandidate string, formattedGroups []string, nsn string, extension string) bool {
	candidateGroups := nonDigitRunPattern.Split(strings.Trim(normalizedCandidate, "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ#"), -1)
	candidateGroups = removeEmpty(candidateGroups)
	if len(candidateGroups) == 0 {
		return false
	}

	lastIdx := len(candidateGroups) - 1
	if extension != "" {
		lastIdx--
	}
	if lastIdx < 0 {
		return false
	}
	c := candidateGroups[lastIdx]

	if lastIdx == 0 || strings.Contains(c, nsn) {
		return true
	}

	fi := len(formattedGroups) - 1
	ci := lastIdx
	for fi > 0 && ci >= 0 {
		if formattedGroups[fi] != candidateGroups[ci] {
			return false
		}
		fi--
		ci--
	}
	if ci < 0 || len(formattedGroups) == 0 {
		return false
	}
	return strings.HasSuffix(candidateGroups[0], formattedGroups[0])
}

func isASCIIDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func removeEmpty(groups []string) []string {
	out := groups[:0]
	for _, g := range groups {
		if g != "" {
			out = append(out, g)
		}
	}
	return out
}
