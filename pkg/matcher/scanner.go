package matcher

// RejectFilter lets a caller veto candidates before they reach the
// Library at all, per spec.md §4.B's note that the pre-filters it defines
// are a minimum, not an exhaustive list. numlex's reject-pattern registry
// (pkg/pattern) implements this interface; tests use small inline funcs.
type RejectFilter interface {
	Reject(candidate string) bool
}

// RejectFilterFunc adapts a plain function to RejectFilter.
type RejectFilterFunc func(candidate string) bool

func (f RejectFilterFunc) Reject(candidate string) bool { return f(candidate) }

// Option configures a Scanner at construction time.
type Option func(*Scanner)

// WithRejectFilters registers additional candidate filters run after the
// built-in pre-filters and before verification.
func WithRejectFilters(filters ...RejectFilter) Option {
	return func(s *Scanner) {
		s.rejectFilters = append(s.rejectFilters, filters...)
	}
}

// Scanner walks a text, yielding successive phone-number matches per
// spec.md §4. Construct one with New and drive it with Next; there is no
// rewind, per spec.md §4.G — Reset always fails.
type Scanner struct {
	lib      Library
	text     string
	region   string
	leniency Leniency
	maxTries int

	master *compiledMaster

	pos           int
	triesUsed     int
	exhausted     bool
	current       *Match
	rejectFilters []RejectFilter
}

// compiledMaster wraps the Library-derived master pattern so it is built
// exactly once per Scanner even though buildMasterPattern itself is cheap
// thanks to the regex cache.
type compiledMaster struct {
	pattern interface {
		FindStringIndex(s string) []int
	}
}

// New constructs a Scanner over text. defaultRegion may be "" to scan
// without a default region (only numbers with an explicit country code
// or leading '+' will parse). maxTries bounds, across the whole scan, how
// many candidates the regex can match but the verifier reject — per
// spec.md §3/§4.D, every such rejection (whether or not it goes on to
// attempt inner-match recovery) spends one unit, and Next stops returning
// matches the instant the budget is exhausted, even if unscanned text
// remains. maxTries must be >= 0; 0 means no candidate is ever verified.
func New(lib Library, text string, defaultRegion string, leniency Leniency, maxTries int, opts ...Option) (*Scanner, error) {
	if lib == nil {
		return nil, ErrNilParser
	}
	if maxTries < 0 {
		return nil, &NegativeTryBudgetError{MaxTries: maxTries}
	}

	s := &Scanner{
		lib:      lib,
		text:     text,
		region:   defaultRegion,
		leniency: leniency,
		maxTries: maxTries,
		master:   &compiledMaster{pattern: buildMasterPattern(lib)},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Next advances the scanner to the next match, per spec.md §4.D's driving
// loop: if the try budget is already exhausted, or there is no further
// master-pattern hit, return none; otherwise trim and pre-filter the hit,
// run it through verification, and — on failure — charge one try-budget
// unit and attempt inner-match recovery before moving past it. It returns
// false once the text is exhausted or the try budget runs out.
func (s *Scanner) Next() (*Match, bool) {
	if s.exhausted {
		s.current = nil
		return nil, false
	}

	for s.pos <= len(s.text) {
		if s.triesUsed >= s.maxTries {
			s.exhausted = true
			s.current = nil
			return nil, false
		}

		loc := s.master.pattern.FindStringIndex(s.text[s.pos:])
		if loc == nil {
			s.exhausted = true
			s.current = nil
			return nil, false
		}

		start := s.pos + loc[0]
		end := s.pos + loc[1]
		raw := s.text[start:end]

		candidate := TrimAfterSecondNumberStart(raw)
		candidate = trimUnwantedTail(candidate)
		if candidate == "" {
			s.pos = end
			continue
		}
		trailing := ""
		if end < len(s.text) {
			trailing = s.text[end:]
		}

		if isPublicationPage(candidate) || isSlashDate(candidate) || isTimestamp(candidate, trailing) {
			s.pos = end
			continue
		}
		if s.rejects(candidate) {
			s.pos = end
			continue
		}

		if m, ok := verify(s.lib, s.text, start, candidate, s.region, s.leniency); ok {
			s.pos = m.End()
			s.current = m
			return m, true
		}

		// The candidate regex succeeded but the verifier rejected it:
		// charge one try-budget unit regardless of what happens next.
		s.triesUsed++

		if s.triesUsed < s.maxTries && hasGroupSeparator(candidate) {
			result := extractInnerMatch(s.lib, s.text, start, candidate, s.region, s.leniency)
			s.triesUsed += result.spent
			if result.match != nil {
				s.pos = result.match.End()
				s.current = result.match
				return result.match, true
			}
		}

		s.pos = end
	}

	s.exhausted = true
	s.current = nil
	return nil, false
}

// Current returns the match most recently returned by Next, or nil if
// Next has not yet been called or the last call returned false.
func (s *Scanner) Current() *Match {
	return s.current
}

// Reset always fails: the Scanner is a forward-only iterator over the
// text it was constructed with, per spec.md §4.G. Construct a new Scanner
// to scan again.
func (s *Scanner) Reset() error {
	return &ResetUnsupportedError{}
}

func (s *Scanner) rejects(candidate string) bool {
	for _, f := range s.rejectFilters {
		if f.Reject(candidate) {
			return true
		}
	}
	return false
}
