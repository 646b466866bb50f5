package matcher

// Leniency selects how strictly a candidate must resemble a real phone
// number before the verifier accepts it. The levels form a total order;
// every check performed at a given level is also performed at every
// stricter level.
type Leniency int

const (
	// Possible accepts anything of plausible length for its country.
	Possible Leniency = iota

	// Valid additionally requires the number to be valid, to carry its
	// national prefix if one is required, to use 'x'/'X' only as a
	// carrier-code or extension marker, and to contain at most one slash.
	Valid

	// StrictGrouping additionally requires that the digit groups of the
	// library's own formatting of the parsed number can all be found, in
	// order, as contiguous digit runs in the raw text.
	StrictGrouping

	// ExactGrouping additionally requires the raw text's grouping to
	// match the library's formatting exactly (subject to the relaxations
	// spec.md §4.E.grouping describes for the final group).
	ExactGrouping
)

// String renders the leniency level the way it would appear in a CLI flag
// or a report.
func (l Leniency) String() string {
	switch l {
	case Possible:
		return "POSSIBLE"
	case Valid:
		return "VALID"
	case StrictGrouping:
		return "STRICT_GROUPING"
	case ExactGrouping:
		return "EXACT_GROUPING"
	default:
		return "UNKNOWN"
	}
}

// ParseLeniency maps a case-insensitive CLI/config spelling to a Leniency
// value. It accepts both the spec's canonical spellings and a handful of
// common aliases.
func ParseLeniency(s string) (Leniency, error) {
	switch normalizeLeniencyToken(s) {
	case "possible":
		return Possible, nil
	case "valid":
		return Valid, nil
	case "strictgrouping", "strict_grouping", "strict-grouping":
		return StrictGrouping, nil
	case "exactgrouping", "exact_grouping", "exact-grouping":
		return ExactGrouping, nil
	default:
		return Possible, &InvalidLeniencyError{Value: s}
	}
}

func normalizeLeniencyToken(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		out = append(out, c)
	}
	return string(out)
}

// atLeast reports whether l is at least as strict as other.
func (l Leniency) atLeast(other Leniency) bool {
	return l >= other
}
