package matcher

import "strings"

// nationalPrefixPlaceholder is the placeholder a national-prefix
// formatting rule uses to mark where the national significant number is
// inserted, e.g. "0${1}" or "(${1})".
const nationalPrefixPlaceholder = "${1}"

// nationalPrefixPresentIfRequired implements spec.md §4.E.iii: it
// succeeds trivially unless the number was parsed purely from a default
// region (no explicit country code or leading '+'), in which case it
// checks that the raw candidate actually carries the region's national
// prefix whenever that region's formatting rules require one.
func nationalPrefixPresentIfRequired(lib Library, number PhoneNumber, candidate string, region string) bool {
	if number.CountryCodeSource() != FromDefaultCountry {
		return true
	}

	meta, ok := lib.MetadataForRegion(region)
	if !ok {
		return true
	}

	nsn := lib.NationalSignificantNumber(number)
	pattern, ok := lib.ChooseFormattingPattern(meta.NumberFormats(), nsn)
	if !ok {
		return true
	}

	rule := pattern.NationalPrefixFormattingRule()
	if rule == "" {
		return true
	}
	if pattern.NationalPrefixOptionalWhenFormatting() {
		return true
	}

	prefixDigits := lib.NormalizeDigitsOnly(prefixBeforePlaceholder(rule))
	if prefixDigits == "" {
		return true
	}

	buffer := lib.NormalizeDigitsOnly(candidate)
	_, _, didStrip := lib.MaybeStripNationalPrefixAndCarrierCode(buffer, meta)
	return didStrip
}

// prefixBeforePlaceholder strips the "${1}" placeholder and everything
// after it from a national-prefix-formatting-rule, leaving just the
// literal prefix text.
func prefixBeforePlaceholder(rule string) string {
	if idx := strings.Index(rule, nationalPrefixPlaceholder); idx >= 0 {
		return rule[:idx]
	}
	return rule
}
