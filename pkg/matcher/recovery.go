package matcher

import "strings"

// groupSeparatorForRecovery is prefilter.go's groupSeparatorPattern (a
// Unicode space plus any following non-plus, non-opener, non-digit
// characters), used to split a rejected candidate into the groups
// spec.md §4.F's recovery step splits on.
var groupSeparatorForRecovery = groupSeparatorPattern

// recoveryResult carries the outcome of extractInnerMatch back to the
// scanner, which needs to know both whether a match was recovered and how
// many try-budget units were spent finding out.
type recoveryResult struct {
	match *Match
	spent int
}

// extractInnerMatch implements spec.md §4.F: when a candidate spanning
// [start, start+len(candidate)) fails verification, look for a genuine
// number nested inside it before giving up on the region entirely.
//
// Three attempts are tried in order, each re-verified on its own:
//  1. The prefix before the candidate's first group separator.
//  2. The remainder after that separator.
//  3. The prefix before the candidate's LAST group separator — skipped
//     when it is identical to attempt 1's prefix, since a two-group
//     candidate has only one separator and attempt 3 would just repeat
//     attempt 1.
//
// Each slice is run through the same trim a top-level candidate gets
// (a leading-separator-run strip, then trimUnwantedTail) before being
// re-verified: splitting on a separator can leave separator characters
// or trailing junk attached to either side, and the re-verified raw span
// must match what the trimmer would have produced had it seen the slice
// on its own.
//
// If the candidate has no group separator at all there is nothing to
// split and the caller is charged nothing. Otherwise one try-budget unit
// is spent per slice actually re-verified, win or lose.
func extractInnerMatch(lib Library, text string, start int, candidate string, region string, leniency Leniency) recoveryResult {
	locs := groupSeparatorForRecovery.FindAllStringIndex(candidate, -1)
	if len(locs) == 0 {
		return recoveryResult{}
	}
	first := locs[0]
	last := locs[len(locs)-1]

	spent := 0

	firstGroup, firstOffset := trimRecoverySlice(candidate[:first[0]])
	if firstGroup != "" {
		spent++
		if m, ok := verify(lib, text, start+firstOffset, firstGroup, region, leniency); ok {
			return recoveryResult{match: m, spent: spent}
		}
	}

	tail, tailOffset := trimRecoverySlice(candidate[first[1]:])
	if tail != "" {
		spent++
		if m, ok := verify(lib, text, start+first[1]+tailOffset, tail, region, leniency); ok {
			return recoveryResult{match: m, spent: spent}
		}
	}

	head, headOffset := trimRecoverySlice(candidate[:last[0]])
	if head != "" && head != firstGroup {
		spent++
		if m, ok := verify(lib, text, start+headOffset, head, region, leniency); ok {
			return recoveryResult{match: m, spent: spent}
		}
	}

	return recoveryResult{spent: spent}
}

// trimRecoverySlice applies trimLeadingSeparatorRun and trimUnwantedTail to
// a slice produced by splitting a candidate on a group separator, and
// reports how many leading bytes it stripped so the caller can keep the
// slice's offset into text correct.
func trimRecoverySlice(s string) (trimmed string, leadTrimmed int) {
	left := trimLeadingSeparatorRun(s)
	leadTrimmed = len(s) - len(left)
	return trimUnwantedTail(left), leadTrimmed
}

// hasGroupSeparator reports whether candidate contains at least one group
// separator the recovery step splits on, so the scanner can skip
// inner-match recovery for a candidate that has nothing to split.
func hasGroupSeparator(candidate string) bool {
	return groupSeparatorForRecovery.MatchString(candidate)
}

// trimLeadingSeparatorRun strips any leading run of separator-ish
// characters left behind after a recovery split, mirroring the
// trailing-junk trim trimUnwantedTail applies on the other end.
func trimLeadingSeparatorRun(s string) string {
	return strings.TrimLeft(s, " \t -./")
}
