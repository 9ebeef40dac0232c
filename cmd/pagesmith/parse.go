package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/epics-tec/pagesmith/pkg/pageconfig"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse and display a page configuration file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]

		data, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}

		page, err := pageconfig.Parse(data)
		if err != nil {
			return fmt.Errorf("parsing page config: %w", err)
		}

		if normalize {
			page = page.Normalize()
		}

		output, err := json.MarshalIndent(page, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling output: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(output))
		return nil
	},
}

var normalize bool

func init() {
	parseCmd.Flags().BoolVar(&normalize, "normalize", false, "Fold device names into PV names and drop disabled fields")
	rootCmd.AddCommand(parseCmd)
}
