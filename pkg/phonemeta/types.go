package phonemeta

import (
	"github.com/nyaruka/phonenumbers"

	"github.com/coolbeans/numlex/pkg/matcher"
)

// phoneNumber wraps *phonenumbers.PhoneNumber to satisfy matcher.PhoneNumber.
type phoneNumber struct {
	n *phonenumbers.PhoneNumber
}

func (p *phoneNumber) CountryCode() int {
	return int(p.n.GetCountryCode())
}

func (p *phoneNumber) CountryCodeSource() matcher.CountryCodeSource {
	switch p.n.GetCountryCodeSource() {
	case phonenumbers.PhoneNumber_FROM_NUMBER_WITH_PLUS_SIGN:
		return matcher.FromNumberWithPlusSign
	case phonenumbers.PhoneNumber_FROM_NUMBER_WITH_IDD:
		return matcher.FromNumberWithIDD
	case phonenumbers.PhoneNumber_FROM_NUMBER_WITHOUT_PLUS_SIGN:
		return matcher.FromNumberWithoutPlusSign
	case phonenumbers.PhoneNumber_FROM_DEFAULT_COUNTRY:
		return matcher.FromDefaultCountry
	default:
		return matcher.CountryCodeSourceUnspecified
	}
}

func (p *phoneNumber) Extension() string {
	return p.n.GetExtension()
}

func (p *phoneNumber) RawInput() string {
	return p.n.GetRawInput()
}

// numberFormat wraps *phonenumbers.NumberFormat to satisfy matcher.NumberFormat.
type numberFormat struct {
	f *phonenumbers.NumberFormat
}

func (nf *numberFormat) Pattern() string { return nf.f.GetPattern() }
func (nf *numberFormat) Format() string  { return nf.f.GetFormat() }

func (nf *numberFormat) LeadingDigitsPatterns() []string {
	return nf.f.GetLeadingDigitsPattern()
}

func (nf *numberFormat) NationalPrefixFormattingRule() string {
	return nf.f.GetNationalPrefixFormattingRule()
}

func (nf *numberFormat) NationalPrefixOptionalWhenFormatting() bool {
	return nf.f.GetNationalPrefixOptionalWhenFormatting()
}

// regionMetadata wraps *phonenumbers.PhoneMetadata to satisfy matcher.RegionMetadata.
type regionMetadata struct {
	m *phonenumbers.PhoneMetadata
}

func (r *regionMetadata) NumberFormats() []matcher.NumberFormat {
	formats := r.m.GetNumberFormat()
	out := make([]matcher.NumberFormat, 0, len(formats))
	for _, f := range formats {
		out = append(out, &numberFormat{f})
	}
	return out
}

func (r *regionMetadata) NationalPrefix() string {
	return r.m.GetNationalPrefix()
}
