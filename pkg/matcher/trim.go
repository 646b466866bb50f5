package matcher

import "regexp"

// secondNumberStartPattern locates a '/' or '\' that looks like it begins
// a second, split-notation number (e.g. "+41 79 123 45 67 / 68"), as
// opposed to an extension marker ('x' after the separator).
var secondNumberStartPattern = regexp.MustCompile(`[/\\]`)

// unwantedTailPattern finds a trailing run of characters that are
// neither '#' nor alphanumeric, used by trimUnwantedTail to right-strip
// trailing junk while keeping a trailing extension marker.
var unwantedTailPattern = regexp.MustCompile(`[^#0-9A-Za-z]+$`)

// TrimAfterSecondNumberStart implements the first of the candidate
// trimmer's two passes (spec.md §4.C): it repeatedly locates the next
// '/' or '\' in candidate. If the next non-space character after it is
// 'x' or 'X' (an extension marker), the separator is kept and the search
// resumes after it; otherwise the candidate is cut at the separator — the
// text after it is a second number in split notation. It is exported, per
// spec.md §6, for use elsewhere in the library.
func TrimAfterSecondNumberStart(candidate string) string {
	pos := 0
	for {
		loc := secondNumberStartPattern.FindStringIndex(candidate[pos:])
		if loc == nil {
			return candidate
		}
		sepStart := pos + loc[0]
		sepEnd := pos + loc[1]

		i := sepEnd
		for i < len(candidate) && candidate[i] == ' ' {
			i++
		}
		if i < len(candidate) && (candidate[i] == 'x' || candidate[i] == 'X') {
			pos = sepEnd
			continue
		}

		return candidate[:sepStart]
	}
}

// trimUnwantedTail implements the candidate trimmer's second pass
// (spec.md §4.C): it right-strips a trailing run of characters that are
// neither '#' nor alphanumeric, preserving a trailing extension marker.
func trimUnwantedTail(candidate string) string {
	if loc := unwantedTailPattern.FindStringIndex(candidate); loc != nil {
		return candidate[:loc[0]]
	}
	return candidate
}
