package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pagesmith",
	Short: "Terminal EPICS client page generation tool",
	Long: `Pagesmith generates terminal client page configurations by expanding
YAML templates over device alias lists and stitching the results between
header and footer fragments.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
