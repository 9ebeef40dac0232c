package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/epics-tec/pagesmith/pkg/combiner"
)

var combineCmd = &cobra.Command{
	Use:   "combine --tf <template> --af <aliases> [--hf <header>] [--ff <footer>]",
	Short: "Run a single combine pass",
	Long: `Expands a page template once per alias tuple, substituting the PS1 and
PS2 placeholders, and writes header + expanded blocks + footer as YAML to
stdout or to the file given with --of.`,
	RunE: runCombine,
}

var (
	templateFile string
	aliasesFile  string
	headerFile   string
	footerFile   string
	combineOut   string
)

func init() {
	combineCmd.Flags().StringVar(&templateFile, "tf", "", "Template page file, expanded once per alias tuple")
	combineCmd.Flags().StringVar(&aliasesFile, "af", "", "Alias file: YAML list of substitution tuples")
	combineCmd.Flags().StringVar(&headerFile, "hf", "", "Header page file placed before the repeated content")
	combineCmd.Flags().StringVar(&footerFile, "ff", "", "Footer page file placed after the repeated content")
	combineCmd.Flags().StringVar(&combineOut, "of", "", "Output file (default: stdout)")

	combineCmd.MarkFlagRequired("tf")
	combineCmd.MarkFlagRequired("af")

	rootCmd.AddCommand(combineCmd)
}

func runCombine(cmd *cobra.Command, args []string) error {
	in := combiner.Inputs{
		Template: templateFile,
		Aliases:  aliasesFile,
		Header:   headerFile,
		Footer:   footerFile,
	}

	c := combiner.New(nil)

	if combineOut == "" {
		return c.Combine(in, cmd.OutOrStdout())
	}

	out, err := os.Create(combineOut)
	if err != nil {
		return fmt.Errorf("creating output file '%s': %w", combineOut, err)
	}
	defer out.Close()

	if err := c.Combine(in, out); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Combined page written to %s\n", combineOut)
	return nil
}
