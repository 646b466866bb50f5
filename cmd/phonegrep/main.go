// Command phonegrep scans text for phone numbers using the numlex matcher.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "phonegrep",
		Short: "Find and verify phone numbers in text",
		Long: `phonegrep scans text for substrings that look like phone numbers and
verifies each candidate against real phone-numbering-plan metadata.

It supports four leniency levels (possible, valid, strict_grouping,
exact_grouping), a configurable reject-pattern registry for filtering out
known false-positive shapes (dates, citations, IDs), and batch reporting
across many files.`,
		Version: version,
	}

	rootCmd.AddCommand(scanCmd())
	rootCmd.AddCommand(patternsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
