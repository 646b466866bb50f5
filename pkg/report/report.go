// Package report aggregates phone-number scan results across one or more
// input files into a single summary, the way pkg/validate's GateReport
// aggregates gate results across a pipeline run in the teacher repo.
package report

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/coolbeans/numlex/pkg/matcher"
)

// FileResult captures every match found in a single input file.
type FileResult struct {
	Path          string          `json:"path"`
	Matches       int             `json:"matches"`
	ByLeniency    map[string]int  `json:"by_leniency"`
	TriesExceeded bool            `json:"tries_exceeded"`
	Duration      time.Duration   `json:"duration"`
	Numbers       []MatchSummary  `json:"numbers,omitempty"`
}

// MatchSummary is the reporting-friendly projection of a matcher.Match.
type MatchSummary struct {
	Start    int    `json:"start"`
	Raw      string `json:"raw"`
	Region   string `json:"region,omitempty"`
	E164     string `json:"e164,omitempty"`
}

// ScanReport aggregates FileResults from a batch run.
type ScanReport struct {
	Files        []*FileResult `json:"files"`
	TotalMatches int           `json:"total_matches"`
	ByLeniency   map[string]int `json:"by_leniency"`
	Duration     time.Duration `json:"duration"`
}

// NewScanReport returns an empty report ready to accumulate file results.
func NewScanReport() *ScanReport {
	return &ScanReport{
		ByLeniency: make(map[string]int),
	}
}

// AddFile folds fr into the report's running totals.
func (sr *ScanReport) AddFile(fr *FileResult) {
	sr.Files = append(sr.Files, fr)
	sr.TotalMatches += fr.Matches
	sr.Duration += fr.Duration
	for tier, count := range fr.ByLeniency {
		sr.ByLeniency[tier] += count
	}
}

// NewFileResult builds a FileResult by tallying matches, keyed to the
// leniency they were found under, per spec.md §8's leniency-monotonicity
// property: a lower leniency level will generally accept everything a
// stricter one does, so ByLeniency records the level a match was actually
// accepted at, not every level it would also satisfy.
func NewFileResult(path string, leniency matcher.Leniency, matches []*matcher.Match, triesExceeded bool, duration time.Duration, includeNumbers bool) *FileResult {
	fr := &FileResult{
		Path:          path,
		Matches:       len(matches),
		ByLeniency:    map[string]int{leniency.String(): len(matches)},
		TriesExceeded: triesExceeded,
		Duration:      duration,
	}
	if includeNumbers {
		for _, m := range matches {
			fr.Numbers = append(fr.Numbers, MatchSummary{Start: m.Start, Raw: m.Raw})
		}
	}
	return fr
}

// ToJSON serializes the report as indented JSON.
func (sr *ScanReport) ToJSON() ([]byte, error) {
	return json.MarshalIndent(sr, "", "  ")
}

// String renders a human-readable summary, in the style of
// pkg/validate.GateReport.String() in the teacher repo.
func (sr *ScanReport) String() string {
	var b strings.Builder

	b.WriteString("Phone Number Scan Report\n")
	b.WriteString("========================\n\n")

	for _, fr := range sr.Files {
		status := "ok"
		if fr.TriesExceeded {
			status = "try-budget exhausted"
		}
		b.WriteString(fmt.Sprintf("[%s] %s: %d match(es) (%v)\n", status, fr.Path, fr.Matches, fr.Duration))
	}

	b.WriteString(fmt.Sprintf("\nTotal matches: %d across %d file(s) in %v\n", sr.TotalMatches, len(sr.Files), sr.Duration))

	if len(sr.ByLeniency) > 0 {
		b.WriteString("\nBy leniency tier:\n")
		for _, tier := range []string{"POSSIBLE", "VALID", "STRICT_GROUPING", "EXACT_GROUPING"} {
			if count, ok := sr.ByLeniency[tier]; ok {
				b.WriteString(fmt.Sprintf("  %-16s %d\n", tier, count))
			}
		}
	}

	return b.String()
}

// ToMarkdown renders the report as Markdown, in the style of
// pkg/validate's ToMarkdown in the teacher repo.
func (sr *ScanReport) ToMarkdown() string {
	var b strings.Builder

	b.WriteString("# Phone Number Scan Report\n\n")
	b.WriteString("## Summary\n\n")
	b.WriteString("| Metric | Value |\n")
	b.WriteString("|--------|-------|\n")
	b.WriteString(fmt.Sprintf("| **Total Matches** | %d |\n", sr.TotalMatches))
	b.WriteString(fmt.Sprintf("| **Files Scanned** | %d |\n", len(sr.Files)))
	b.WriteString(fmt.Sprintf("| **Duration** | %v |\n\n", sr.Duration))

	if len(sr.ByLeniency) > 0 {
		b.WriteString("## By Leniency Tier\n\n")
		b.WriteString("| Tier | Matches |\n")
		b.WriteString("|------|---------|\n")
		for _, tier := range []string{"POSSIBLE", "VALID", "STRICT_GROUPING", "EXACT_GROUPING"} {
			if count, ok := sr.ByLeniency[tier]; ok {
				b.WriteString(fmt.Sprintf("| %s | %d |\n", tier, count))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("## Files\n\n")
	b.WriteString("| File | Matches | Try-Budget Exhausted | Duration |\n")
	b.WriteString("|------|---------|-----------------------|----------|\n")
	for _, fr := range sr.Files {
		exhausted := ""
		if fr.TriesExceeded {
			exhausted = "yes"
		}
		b.WriteString(fmt.Sprintf("| %s | %d | %s | %v |\n", fr.Path, fr.Matches, exhausted, fr.Duration))
	}

	return b.String()
}
