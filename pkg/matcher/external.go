package matcher

// This file declares the external collaborators spec.md §6 assumes the
// core consumes: the phone-number parser, the metadata store, the
// formatter, and the normalization/matching helpers. numlex's own
// pkg/phonemeta implements Library against github.com/nyaruka/phonenumbers;
// tests in this package use a hand-written fake so the matcher logic is
// verifiable without the real metadata tables.

// RenderFormat selects how Library.Format renders a PhoneNumber.
type RenderFormat int

const (
	E164 RenderFormat = iota
	International
	National
	RFC3966
)

// MatchType is the library's verdict on whether two numbers denote the
// same subscriber, per spec.md §6 ("is-number-match").
type MatchType int

const (
	NoMatch MatchType = iota
	ShortNSNMatch
	NSNMatch
	ExactMatch
)

// CountryCodeSource records how a parsed number's country code was
// determined. FromDefaultCountry marks numbers parsed without an explicit
// country code or leading '+', which is the case spec.md §4.E.iii cares
// about.
type CountryCodeSource int

const (
	CountryCodeSourceUnspecified CountryCodeSource = iota
	FromNumberWithPlusSign
	FromNumberWithIDD
	FromNumberWithoutPlusSign
	FromDefaultCountry
)

// PhoneNumber is the minimal read-only view of a parsed number the
// verifier needs. It is deliberately opaque about its concrete
// representation so that pkg/matcher never imports the underlying
// phone-number library directly.
type PhoneNumber interface {
	CountryCode() int
	CountryCodeSource() CountryCodeSource
	Extension() string
	RawInput() string
}

// NumberFormat is a single formatting rule from a region's metadata, as
// consulted by spec.md §4.E.iii and §4.E.grouping.
type NumberFormat interface {
	Pattern() string
	Format() string
	LeadingDigitsPatterns() []string
	NationalPrefixFormattingRule() string
	NationalPrefixOptionalWhenFormatting() bool
}

// RegionMetadata is the subset of a region's phone-number metadata the
// core needs: its national-prefix formatting rules.
type RegionMetadata interface {
	NumberFormats() []NumberFormat
	NationalPrefix() string
}

// Library bundles the parser, formatter, metadata store, and
// normalization/matching helpers spec.md §6 lists as the core's external
// interfaces.
type Library interface {
	// ParseAndKeepRawInput parses candidate against defaultRegion ("" or
	// "ZZ" meaning no default), retaining raw input for the national
	// prefix check in spec.md §4.E.iii. Any parse failure is reported as
	// a non-nil error; the verifier treats every failure as a rejection.
	ParseAndKeepRawInput(candidate, defaultRegion string) (PhoneNumber, error)

	IsPossibleNumber(n PhoneNumber) bool
	IsValidNumber(n PhoneNumber) bool
	Format(n PhoneNumber, format RenderFormat) string
	FormatNSNUsingPattern(nsn string, pattern NumberFormat, format RenderFormat) string

	MetadataForRegion(region string) (RegionMetadata, bool)
	RegionCodeForCountryCode(countryCallingCode int) string
	NationalSignificantNumber(n PhoneNumber) string
	ChooseFormattingPattern(formats []NumberFormat, nsn string) (NumberFormat, bool)
	AlternateFormatsForCountry(countryCallingCode int) []NumberFormat

	// MaybeStripNationalPrefixAndCarrierCode mirrors the library's
	// internal parsing step of the same name: it reports whether buffer
	// (already digits-only) carries the region's national prefix.
	MaybeStripNationalPrefixAndCarrierCode(buffer string, region RegionMetadata) (stripped, carrierCode string, didStrip bool)

	IsNumberMatch(n PhoneNumber, candidate string) MatchType
	NormalizeDigits(s string, keepNonDigits bool) string
	NormalizeDigitsOnly(s string) string

	// Sanitize returns a copy of n with the country-code-source,
	// raw-input, and preferred-domestic-carrier-code fields cleared, per
	// spec.md §4.E.5.
	Sanitize(n PhoneNumber) PhoneNumber

	// Character classes used to build the master permissive regex.
	PlusChars() string
	ValidPunctuation() string
	ExtensionPatternForMatching() string
}
