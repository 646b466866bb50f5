package phonemeta

import (
	"regexp"
	"sync"
)

// These three character-class strings are the ones libphonenumber's
// PhoneNumberMatcher builds its master permissive regex from. phonenumbers
// does not export them, so they are reproduced here, approximating the
// publicly documented constants of the upstream Java/JS implementations;
// see DESIGN.md for the caveat that they could not be checked against the
// vendored library source in this environment.
const (
	plusChars = "+＋" // '+' and fullwidth '＋'

	validPunctuation = "-x‐‑‒–—―−" +
		"ー－()（）［］" +
		"./[]~⁓∼～ "

	extensionPattern = `(?:;ext=([0-9]{1,7})|` +
		`[ \t,]*(?:e?xt(?:ensi(?:o|ó)n?)?|` +
		`[,x#~]|int|anexo)[:\.]?[ \t,-]*([0-9]{1,7})#?|` +
		`[- ]+([0-9]{1,5})#)`
)

var (
	numberPatternCache sync.Map
	dollarGroupPattern = regexp.MustCompile(`\$(\d)`)
)

// compiledNumberPattern compiles and caches pattern, mirroring the
// process-wide regex cache pkg/matcher keeps for its Library-derived
// master pattern.
func compiledNumberPattern(pattern string) *regexp.Regexp {
	if pattern == "" {
		return nil
	}
	if v, ok := numberPatternCache.Load(pattern); ok {
		return v.(*regexp.Regexp)
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil
	}
	actual, _ := numberPatternCache.LoadOrStore(pattern, re)
	return actual.(*regexp.Regexp)
}

// convertDollarTemplate rewrites libphonenumber's "$1 $2" format template
// into Go regexp's "${1} ${2}" ReplaceAllString template syntax.
func convertDollarTemplate(format string) string {
	return dollarGroupPattern.ReplaceAllString(format, "${$1}")
}

// nonASCIIDigitValue maps a Unicode decimal-digit rune outside ASCII
// (Arabic-Indic, Devanagari, fullwidth, ...) to its 0-9 value, the way
// NormalizeDigits folds every script's digits down to ASCII.
func nonASCIIDigitValue(r rune) (int, bool) {
	for _, base := range nonASCIIDigitBases {
		if r >= base && r <= base+9 {
			return int(r - base), true
		}
	}
	return 0, false
}

// nonASCIIDigitBases lists the starting code point of each decimal-digit
// block NormalizeDigits recognizes beyond ASCII '0'-'9'.
var nonASCIIDigitBases = []rune{
	0xFF10, // Fullwidth Digit Zero
	0x0660, // Arabic-Indic Digit Zero
	0x06F0, // Extended Arabic-Indic Digit Zero
	0x0966, // Devanagari Digit Zero
	0x09E6, // Bengali Digit Zero
}
