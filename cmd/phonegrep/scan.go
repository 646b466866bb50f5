package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/coolbeans/numlex/pkg/matcher"
	"github.com/coolbeans/numlex/pkg/pattern"
	"github.com/coolbeans/numlex/pkg/phonemeta"
	"github.com/coolbeans/numlex/pkg/report"
)

func scanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [file...]",
		Short: "Scan files (or stdin) for phone numbers",
		Long: `scan reads each file argument in turn (or stdin, if none are given) and
prints every phone number it finds, one per line.

Examples:
  phonegrep scan transcript.txt
  phonegrep scan --region US --leniency valid *.txt
  cat transcript.txt | phonegrep scan --report md`,
		RunE: func(cmd *cobra.Command, args []string) error {
			region, _ := cmd.Flags().GetString("region")
			leniencyStr, _ := cmd.Flags().GetString("leniency")
			maxTries, _ := cmd.Flags().GetInt("max-tries")
			patternsDir, _ := cmd.Flags().GetString("patterns-dir")
			reportFormat, _ := cmd.Flags().GetString("report")
			quiet, _ := cmd.Flags().GetBool("quiet")

			leniency, err := matcher.ParseLeniency(leniencyStr)
			if err != nil {
				return err
			}

			var filters []matcher.RejectFilter
			if patternsDir != "" {
				registry, err := pattern.NewRegistryWithDirectory(patternsDir)
				if err != nil {
					return fmt.Errorf("loading reject patterns: %w", err)
				}
				filters = append(filters, registry)
			}

			lib := phonemeta.New()
			scanReport := report.NewScanReport()

			files := args
			if len(files) == 0 {
				files = []string{"-"}
			}

			for _, path := range files {
				fr, err := scanFile(lib, path, region, leniency, maxTries, filters, !quiet)
				if err != nil {
					return fmt.Errorf("scanning %s: %w", path, err)
				}
				scanReport.AddFile(fr)
			}

			switch reportFormat {
			case "":
				// no summary, just the per-match lines already printed
			case "text":
				fmt.Println()
				fmt.Print(scanReport.String())
			case "json":
				data, err := scanReport.ToJSON()
				if err != nil {
					return fmt.Errorf("marshaling report: %w", err)
				}
				fmt.Println(string(data))
			case "md", "markdown":
				fmt.Print(scanReport.ToMarkdown())
			default:
				return fmt.Errorf("unknown --report format %q (want text, json, or md)", reportFormat)
			}

			return nil
		},
	}

	cmd.Flags().String("region", "", "default region for numbers without a country code (e.g. US)")
	cmd.Flags().String("leniency", "valid", "possible, valid, strict_grouping, or exact_grouping")
	cmd.Flags().Int("max-tries", 10, "verifier rejections, inner-match recovery attempts included, allowed per scan")
	cmd.Flags().String("patterns-dir", "", "directory of reject-pattern YAML files to filter out false positives")
	cmd.Flags().String("report", "", "emit a summary after scanning: text, json, or md")
	cmd.Flags().Bool("quiet", false, "suppress per-match output; useful with --report")

	return cmd
}

func scanFile(lib matcher.Library, path, region string, leniency matcher.Leniency, maxTries int, filters []matcher.RejectFilter, printMatches bool) (*report.FileResult, error) {
	text, err := readAll(path)
	if err != nil {
		return nil, err
	}

	var opts []matcher.Option
	if len(filters) > 0 {
		opts = append(opts, matcher.WithRejectFilters(filters...))
	}

	scanner, err := matcher.New(lib, text, region, leniency, maxTries, opts...)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	var matches []*matcher.Match
	for {
		m, ok := scanner.Next()
		if !ok {
			break
		}
		matches = append(matches, m)
		if printMatches {
			fmt.Printf("%s:%d: %s\n", path, m.Start, m.Raw)
		}
	}
	duration := time.Since(start)

	return report.NewFileResult(path, leniency, matches, false, duration, false), nil
}

func readAll(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(bufio.NewReader(os.Stdin))
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
