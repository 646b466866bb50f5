package matcher

import "testing"

func TestNationalPrefixPresentIfRequiredNotDefaultRegion(t *testing.T) {
	lib := newFakeLibrary()
	n := &fakePhoneNumber{source: FromNumberWithPlusSign, raw: "+16502530000"}
	if !nationalPrefixPresentIfRequired(lib, n, "+16502530000", "US") {
		t.Error("a number parsed with an explicit country code should trivially pass")
	}
}

func TestNationalPrefixPresentIfRequiredNoMetadata(t *testing.T) {
	lib := newFakeLibrary()
	n := &fakePhoneNumber{source: FromDefaultCountry, raw: "6502530000"}
	if !nationalPrefixPresentIfRequired(lib, n, "6502530000", "ZZ") {
		t.Error("missing region metadata should pass trivially")
	}
}

func TestNationalPrefixPresentIfRequiredRulePresentAndSatisfied(t *testing.T) {
	lib := newFakeLibrary()
	lib.regions["FR"] = &fakeRegionMetadata{
		formats: []NumberFormat{
			&fakeNumberFormat{pattern: `(\d)(\d{2})(\d{2})(\d{2})(\d{2})`, natPrefixRule: "0${1}"},
		},
	}
	lib.stripPrefix = "0"
	n := &fakePhoneNumber{source: FromDefaultCountry, raw: "0612345678"}

	if !nationalPrefixPresentIfRequired(lib, n, "0612345678", "FR") {
		t.Error("candidate carrying the required national prefix should pass")
	}
}

func TestNationalPrefixPresentIfRequiredRuleViolated(t *testing.T) {
	lib := newFakeLibrary()
	lib.regions["FR"] = &fakeRegionMetadata{
		formats: []NumberFormat{
			&fakeNumberFormat{pattern: `(\d)(\d{2})(\d{2})(\d{2})(\d{2})`, natPrefixRule: "0${1}"},
		},
	}
	lib.stripPrefix = "0"
	n := &fakePhoneNumber{source: FromDefaultCountry, raw: "612345678"}

	if nationalPrefixPresentIfRequired(lib, n, "612345678", "FR") {
		t.Error("candidate missing the required national prefix should fail")
	}
}

func TestNationalPrefixPresentIfRequiredOptionalRule(t *testing.T) {
	lib := newFakeLibrary()
	lib.regions["FR"] = &fakeRegionMetadata{
		formats: []NumberFormat{
			&fakeNumberFormat{pattern: `(\d)(\d{2})(\d{2})(\d{2})(\d{2})`, natPrefixRule: "0${1}", natPrefixOptional: true},
		},
	}
	n := &fakePhoneNumber{source: FromDefaultCountry, raw: "612345678"}

	if !nationalPrefixPresentIfRequired(lib, n, "612345678", "FR") {
		t.Error("an optional-when-formatting rule should pass even without the prefix present")
	}
}

func TestPrefixBeforePlaceholder(t *testing.T) {
	cases := []struct {
		rule string
		want string
	}{
		{"0${1}", "0"},
		{"(${1})", "("},
		{"${1}", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := prefixBeforePlaceholder(c.rule); got != c.want {
			t.Errorf("prefixBeforePlaceholder(%q) = %q, want %q", c.rule, got, c.want)
		}
	}
}
