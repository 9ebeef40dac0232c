package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/epics-tec/pagesmith/pkg/differ"
	"github.com/epics-tec/pagesmith/pkg/pageconfig"
)

var diffCmd = &cobra.Command{
	Use:   "diff <old-file> <new-file>",
	Short: "Compare two page configurations semantically",
	Long: `Performs a semantic comparison between two generated pages, reporting
rows and fields added, removed or modified. Useful for reviewing template
or alias edits by diffing a regenerated page against the committed one.`,
	Args: cobra.ExactArgs(2),
	RunE: runDiff,
}

var diffFormat string

func init() {
	diffCmd.Flags().StringVar(&diffFormat, "format", "table", "Output format (table, json)")
	rootCmd.AddCommand(diffCmd)
}

func runDiff(cmd *cobra.Command, args []string) error {
	oldPage, err := loadPageFile(args[0])
	if err != nil {
		return err
	}
	newPage, err := loadPageFile(args[1])
	if err != nil {
		return err
	}

	result := differ.Compare(oldPage, newPage)

	switch diffFormat {
	case "json":
		output, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling result to JSON: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(output))
	case "table":
		if !result.HasChanges {
			fmt.Fprintln(cmd.OutOrStdout(), "No differences found.")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Summary: %s\n\n", result.Summary)
		for _, change := range result.Changes {
			fmt.Fprintf(cmd.OutOrStdout(), "  [%s] %s: %s\n", change.Type, change.Path, change.Description)
		}
	default:
		return fmt.Errorf("unsupported format: %s", diffFormat)
	}

	return nil
}

func loadPageFile(filename string) (pageconfig.Page, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading file '%s': %w", filename, err)
	}
	page, err := pageconfig.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing page config '%s': %w", filename, err)
	}
	return page, nil
}
