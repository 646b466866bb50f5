// Package pattern provides a pluggable, hot-reloadable registry of
// reject patterns: named regexes that veto a phone-number candidate
// before it ever reaches the matcher's own verification pipeline.
package pattern

import (
	"fmt"
	"regexp"
)

// RejectPattern is a single named veto rule. A candidate that matches
// Regex is discarded by the scanner regardless of what the phone-number
// library would otherwise make of it — this is how an operator adds
// domain-specific exclusions (internal ticket numbers, a particular
// report's page-range format) without touching pkg/matcher itself.
type RejectPattern struct {
	Name     string `yaml:"name" json:"name"`
	Version  string `yaml:"version" json:"version"`
	Category string `yaml:"category" json:"category"`
	Regex    string `yaml:"regex" json:"regex"`

	compiled *regexp.Regexp
}

// Compile compiles Regex. It must be called (directly, or via Registry.Register)
// before Reject is used.
func (p *RejectPattern) Compile() error {
	compiled, err := regexp.Compile(p.Regex)
	if err != nil {
		return fmt.Errorf("compiling reject pattern %q: %w", p.Name, err)
	}
	p.compiled = compiled
	return nil
}

// IsCompiled reports whether Compile has already run successfully.
func (p *RejectPattern) IsCompiled() bool {
	return p.compiled != nil
}

// Reject reports whether candidate matches this pattern's regex. It
// implements matcher.RejectFilter, so a *RejectPattern can be passed
// directly to matcher.WithRejectFilters.
func (p *RejectPattern) Reject(candidate string) bool {
	if p.compiled == nil {
		return false
	}
	return p.compiled.MatchString(candidate)
}

// Validate checks that the pattern has the fields a registry entry needs.
func (p *RejectPattern) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("reject pattern name is required")
	}
	if p.Regex == "" {
		return fmt.Errorf("reject pattern %q: regex is required", p.Name)
	}
	return nil
}
