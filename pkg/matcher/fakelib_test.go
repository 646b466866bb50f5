package matcher

import "strings"

// fakePhoneNumber and fakeLibrary let the pkg/matcher tests exercise the
// scanning/verification logic without depending on the real metadata
// tables pkg/phonemeta wraps. The fake only implements enough behavior to
// drive the specific scenarios each test sets up.

type fakePhoneNumber struct {
	countryCode int
	source      CountryCodeSource
	ext         string
	raw         string
	sanitized   bool
}

func (n *fakePhoneNumber) CountryCode() int                    { return n.countryCode }
func (n *fakePhoneNumber) CountryCodeSource() CountryCodeSource { return n.source }
func (n *fakePhoneNumber) Extension() string                   { return n.ext }
func (n *fakePhoneNumber) RawInput() string                    { return n.raw }

type fakeNumberFormat struct {
	pattern              string
	format                string
	leadingDigits         []string
	natPrefixRule         string
	natPrefixOptional     bool
}

func (f *fakeNumberFormat) Pattern() string                           { return f.pattern }
func (f *fakeNumberFormat) Format() string                            { return f.format }
func (f *fakeNumberFormat) LeadingDigitsPatterns() []string            { return f.leadingDigits }
func (f *fakeNumberFormat) NationalPrefixFormattingRule() string       { return f.natPrefixRule }
func (f *fakeNumberFormat) NationalPrefixOptionalWhenFormatting() bool { return f.natPrefixOptional }

type fakeRegionMetadata struct {
	formats   []NumberFormat
	natPrefix string
}

func (m *fakeRegionMetadata) NumberFormats() []NumberFormat { return m.formats }
func (m *fakeRegionMetadata) NationalPrefix() string        { return m.natPrefix }

// fakeLibrary is a minimal, fully in-memory stand-in for Library. Each
// test configures only the fields its scenario needs; every map starts
// empty, so a candidate no test lists is neither possible nor valid and
// parses without error.
type fakeLibrary struct {
	regions map[string]*fakeRegionMetadata
	nsn     map[string]string // RawInput -> NSN; unlisted inputs fall back to their digits

	possible map[string]bool
	valid    map[string]bool

	formatted map[string]string // E164/National/International override, keyed by RawInput
	rfc3966   map[string]string // keyed by RawInput

	parseErr map[string]bool // candidates that fail to parse

	plusChars            string
	validPunctuation      string
	extensionPattern      string

	stripPrefix string // national prefix digits that MaybeStripNationalPrefixAndCarrierCode recognizes
}

func newFakeLibrary() *fakeLibrary {
	return &fakeLibrary{
		regions:          map[string]*fakeRegionMetadata{},
		nsn:              map[string]string{},
		possible:         map[string]bool{},
		valid:            map[string]bool{},
		formatted:        map[string]string{},
		rfc3966:          map[string]string{},
		parseErr:         map[string]bool{},
		plusChars:        "+＋",
		validPunctuation: " ()-./\\",
		extensionPattern: `(?:ext\.?|x|#)\s?\d{1,7}`,
	}
}

func (l *fakeLibrary) ParseAndKeepRawInput(candidate, defaultRegion string) (PhoneNumber, error) {
	if l.parseErr[candidate] {
		return nil, errParse
	}
	source := FromNumberWithoutPlusSign
	if strings.ContainsAny(candidate, "+＋") {
		source = FromNumberWithPlusSign
	} else if defaultRegion != "" {
		source = FromDefaultCountry
	}
	return &fakePhoneNumber{countryCode: 1, source: source, raw: candidate, ext: extractFakeExtension(candidate)}, nil
}

func extractFakeExtension(candidate string) string {
	idx := strings.IndexAny(candidate, "xX#")
	if idx < 0 {
		return ""
	}
	rest := candidate[idx+1:]
	var digits strings.Builder
	for _, r := range rest {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	return digits.String()
}

func (l *fakeLibrary) IsPossibleNumber(n PhoneNumber) bool {
	return l.possible[n.RawInput()]
}

func (l *fakeLibrary) IsValidNumber(n PhoneNumber) bool {
	return l.valid[n.RawInput()]
}

func (l *fakeLibrary) Format(n PhoneNumber, format RenderFormat) string {
	if format == RFC3966 {
		if v, ok := l.rfc3966[n.RawInput()]; ok {
			return v
		}
	}
	return l.formatted[n.RawInput()]
}

func (l *fakeLibrary) FormatNSNUsingPattern(nsn string, pattern NumberFormat, format RenderFormat) string {
	return "tel:+1-" + nsn
}

func (l *fakeLibrary) MetadataForRegion(region string) (RegionMetadata, bool) {
	m, ok := l.regions[region]
	if !ok {
		return nil, false
	}
	return m, true
}

func (l *fakeLibrary) RegionCodeForCountryCode(countryCallingCode int) string {
	return "US"
}

func (l *fakeLibrary) NationalSignificantNumber(n PhoneNumber) string {
	if v, ok := l.nsn[n.RawInput()]; ok {
		return v
	}
	return l.NormalizeDigitsOnly(n.RawInput())
}

func (l *fakeLibrary) ChooseFormattingPattern(formats []NumberFormat, nsn string) (NumberFormat, bool) {
	if len(formats) == 0 {
		return nil, false
	}
	return formats[0], true
}

func (l *fakeLibrary) AlternateFormatsForCountry(countryCallingCode int) []NumberFormat {
	return nil
}

func (l *fakeLibrary) MaybeStripNationalPrefixAndCarrierCode(buffer string, region RegionMetadata) (string, string, bool) {
	if l.stripPrefix == "" {
		return buffer, "", false
	}
	if strings.HasPrefix(buffer, l.stripPrefix) {
		return buffer[len(l.stripPrefix):], "", true
	}
	return buffer, "", false
}

func (l *fakeLibrary) IsNumberMatch(n PhoneNumber, candidate string) MatchType {
	if l.NormalizeDigitsOnly(candidate) == l.NationalSignificantNumber(n) {
		return NSNMatch
	}
	return NoMatch
}

func (l *fakeLibrary) NormalizeDigits(s string, keepNonDigits bool) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case keepNonDigits:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (l *fakeLibrary) NormalizeDigitsOnly(s string) string {
	return l.NormalizeDigits(s, false)
}

func (l *fakeLibrary) Sanitize(n PhoneNumber) PhoneNumber {
	fn := n.(*fakePhoneNumber)
	return &fakePhoneNumber{countryCode: fn.countryCode, source: CountryCodeSourceUnspecified, ext: fn.ext, raw: "", sanitized: true}
}

func (l *fakeLibrary) PlusChars() string               { return l.plusChars }
func (l *fakeLibrary) ValidPunctuation() string        { return l.validPunctuation }
func (l *fakeLibrary) ExtensionPatternForMatching() string { return l.extensionPattern }

var errParse = &fakeParseError{}

type fakeParseError struct{}

func (e *fakeParseError) Error() string { return "fake: could not parse candidate as a phone number" }
