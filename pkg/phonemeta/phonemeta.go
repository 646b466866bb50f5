// Package phonemeta adapts github.com/nyaruka/phonenumbers — the Go port
// of Google's libphonenumber — to the matcher.Library interface that
// pkg/matcher consumes. pkg/matcher never imports phonenumbers directly;
// this package is the only place in numlex that does.
package phonemeta

import (
	"strings"

	"github.com/nyaruka/phonenumbers"

	"github.com/coolbeans/numlex/pkg/matcher"
)

// Library implements matcher.Library against phonenumbers.
type Library struct{}

// New returns a ready-to-use Library. It holds no state of its own —
// phonenumbers keeps its metadata tables in package-level globals — so a
// single value can be shared across goroutines and Scanners.
func New() *Library {
	return &Library{}
}

func (Library) ParseAndKeepRawInput(candidate, defaultRegion string) (matcher.PhoneNumber, error) {
	n, err := phonenumbers.ParseAndKeepRawInput(candidate, defaultRegion)
	if err != nil {
		return nil, err
	}
	return &phoneNumber{n}, nil
}

func (Library) IsPossibleNumber(n matcher.PhoneNumber) bool {
	return phonenumbers.IsPossibleNumber(unwrap(n))
}

func (Library) IsValidNumber(n matcher.PhoneNumber) bool {
	return phonenumbers.IsValidNumber(unwrap(n))
}

func (Library) Format(n matcher.PhoneNumber, format matcher.RenderFormat) string {
	return phonenumbers.Format(unwrap(n), renderFormat(format))
}

// FormatNSNUsingPattern renders nsn through pattern's format string the
// same way phonenumbers' own internal formatter would, substituting
// pattern's capture-group placeholders ($1, $2, ...) after matching
// pattern's Pattern() against nsn. phonenumbers does not export its
// internal formatNsnUsingPattern, so this is a local reimplementation of
// that one step, grounded directly on how NumberFormat.pattern/format
// pairs work in libphonenumber's own metadata (a regex with parenthesized
// groups, and a "$N" template referencing them).
func (Library) FormatNSNUsingPattern(nsn string, pattern matcher.NumberFormat, format matcher.RenderFormat) string {
	re := compiledNumberPattern(pattern.Pattern())
	if re == nil || !re.MatchString(nsn) {
		return nsn
	}
	formatted := re.ReplaceAllString(nsn, convertDollarTemplate(pattern.Format()))

	if format == matcher.RFC3966 {
		rule := pattern.NationalPrefixFormattingRule()
		formatted = strings.ReplaceAll(formatted, " ", "-")
		_ = rule
		return "tel:+" + formatted
	}
	return formatted
}

func (Library) MetadataForRegion(region string) (matcher.RegionMetadata, bool) {
	meta := phonenumbers.GetMetadataForRegion(region)
	if meta == nil {
		return nil, false
	}
	return &regionMetadata{meta}, true
}

func (Library) RegionCodeForCountryCode(countryCallingCode int) string {
	return phonenumbers.GetRegionCodeForCountryCode(countryCallingCode)
}

func (Library) NationalSignificantNumber(n matcher.PhoneNumber) string {
	return phonenumbers.GetNationalSignificantNumber(unwrap(n))
}

// ChooseFormattingPattern picks the first format whose last leading-digits
// pattern, if it has any, matches the start of nsn and whose full pattern
// matches nsn, mirroring
// libphonenumber's chooseFormattingPatternForNumber. That internal method
// is not exported by phonenumbers, so this is a local reimplementation
// built directly on the NumberFormat accessors the library does export.
func (Library) ChooseFormattingPattern(formats []matcher.NumberFormat, nsn string) (matcher.NumberFormat, bool) {
	for _, f := range formats {
		leading := f.LeadingDigitsPatterns()
		if len(leading) > 0 {
			re := compiledNumberPattern("^(?:" + leading[len(leading)-1] + ")")
			if re != nil && !re.MatchString(nsn) {
				continue
			}
		}
		re := compiledNumberPattern(f.Pattern())
		if re != nil && re.MatchString(nsn) {
			return f, true
		}
	}
	return nil, false
}

func (Library) AlternateFormatsForCountry(countryCallingCode int) []matcher.NumberFormat {
	region := phonenumbers.GetRegionCodeForCountryCode(countryCallingCode)
	meta := phonenumbers.GetMetadataForRegion(region)
	if meta == nil {
		return nil
	}
	var out []matcher.NumberFormat
	for _, f := range meta.GetNumberFormat() {
		out = append(out, &numberFormat{f})
	}
	return out
}

// MaybeStripNationalPrefixAndCarrierCode reimplements libphonenumber's
// maybeStripNationalPrefixAndCarrierCode, which phonenumbers keeps
// unexported: strip region's national prefix from buffer if present.
func (Library) MaybeStripNationalPrefixAndCarrierCode(buffer string, region matcher.RegionMetadata) (string, string, bool) {
	prefix := region.NationalPrefix()
	if prefix == "" {
		return buffer, "", false
	}
	if strings.HasPrefix(buffer, prefix) {
		return buffer[len(prefix):], "", true
	}
	return buffer, "", false
}

func (Library) IsNumberMatch(n matcher.PhoneNumber, candidate string) matcher.MatchType {
	switch phonenumbers.IsNumberMatchWithNumbers(unwrap(n), mustParse(candidate)) {
	case phonenumbers.EXACT_MATCH:
		return matcher.ExactMatch
	case phonenumbers.NSN_MATCH:
		return matcher.NSNMatch
	case phonenumbers.SHORT_NSN_MATCH:
		return matcher.ShortNSNMatch
	default:
		return matcher.NoMatch
	}
}

func (Library) NormalizeDigits(s string, keepNonDigits bool) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			continue
		}
		if d, ok := nonASCIIDigitValue(r); ok {
			b.WriteByte(byte('0' + d))
			continue
		}
		if keepNonDigits {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (l Library) NormalizeDigitsOnly(s string) string {
	return l.NormalizeDigits(s, false)
}

func (Library) Sanitize(n matcher.PhoneNumber) matcher.PhoneNumber {
	pn := unwrap(n)
	clone := &phonenumbers.PhoneNumber{}
	*clone = *pn
	clone.CountryCodeSource = nil
	clone.RawInput = nil
	clone.PreferredDomesticCarrierCode = nil
	return &phoneNumber{clone}
}

func (Library) PlusChars() string { return plusChars }

func (Library) ValidPunctuation() string { return validPunctuation }

func (Library) ExtensionPatternForMatching() string { return extensionPattern }

func mustParse(candidate string) *phonenumbers.PhoneNumber {
	n, err := phonenumbers.Parse(candidate, "ZZ")
	if err != nil {
		return &phonenumbers.PhoneNumber{}
	}
	return n
}

func unwrap(n matcher.PhoneNumber) *phonenumbers.PhoneNumber {
	return n.(*phoneNumber).n
}

func renderFormat(f matcher.RenderFormat) phonenumbers.PhoneNumberFormat {
	switch f {
	case matcher.International:
		return phonenumbers.INTERNATIONAL
	case matcher.National:
		return phonenumbers.NATIONAL
	case matcher.RFC3966:
		return phonenumbers.RFC3966
	default:
		return phonenumbers.E164
	}
}
