package main

import (
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/epics-tec/pagesmith/pkg/pageconfig"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a page configuration file",
	Long:  `Checks a page configuration for errors the terminal client would reject at load time.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	filename := args[0]

	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}

	page, err := pageconfig.Parse(data)
	if err != nil {
		return fmt.Errorf("parsing page config: %w", err)
	}

	if err := page.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fieldCount := 0
	var pvNames []string
	for _, row := range page {
		fieldCount += len(row)
		for _, field := range row {
			if pv := field.FullPVName(); pv != "" {
				pvNames = append(pvNames, pv)
			}
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✅ Page configuration is valid!\n\n")
	fmt.Fprintf(cmd.OutOrStdout(), "Summary:\n")
	fmt.Fprintf(cmd.OutOrStdout(), "  Rows: %d\n", len(page))
	fmt.Fprintf(cmd.OutOrStdout(), "  Fields: %d\n", fieldCount)
	fmt.Fprintf(cmd.OutOrStdout(), "  Unique PVs: %d\n", len(lo.Uniq(pvNames)))

	return nil
}
