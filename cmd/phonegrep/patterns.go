package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coolbeans/numlex/pkg/pattern"
)

func patternsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patterns",
		Short: "Inspect the reject-pattern registry",
	}

	cmd.AddCommand(patternsListCmd())
	cmd.AddCommand(patternsReloadCmd())

	return cmd
}

func patternsListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List reject patterns loaded from a directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("patterns-dir")
			category, _ := cmd.Flags().GetString("category")
			if dir == "" {
				return fmt.Errorf("--patterns-dir flag is required")
			}

			registry, err := pattern.NewRegistryWithDirectory(dir)
			if err != nil {
				return fmt.Errorf("loading reject patterns: %w", err)
			}

			patterns := registry.List()
			if category != "" {
				patterns = registry.ListByCategory(category)
			}

			for _, p := range patterns {
				fmt.Printf("%-24s %-10s %-12s %s\n", p.Name, p.Version, p.Category, p.Regex)
			}
			fmt.Printf("\n%d pattern(s)\n", len(patterns))
			return nil
		},
	}

	cmd.Flags().String("patterns-dir", "", "directory of reject-pattern YAML files")
	cmd.Flags().String("category", "", "filter by category")
	return cmd
}

func patternsReloadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reload",
		Short: "Reload reject patterns from disk and report what changed",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("patterns-dir")
			if dir == "" {
				return fmt.Errorf("--patterns-dir flag is required")
			}

			registry, err := pattern.NewRegistryWithDirectory(dir)
			if err != nil {
				return fmt.Errorf("loading reject patterns: %w", err)
			}

			before := registry.Count()
			if err := registry.Reload(); err != nil {
				return fmt.Errorf("reloading: %w", err)
			}
			after := registry.Count()

			fmt.Printf("reloaded %s: %d pattern(s) before, %d after\n", dir, before, after)
			return nil
		},
	}

	cmd.Flags().String("patterns-dir", "", "directory of reject-pattern YAML files")
	return cmd
}
