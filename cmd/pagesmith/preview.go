package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/epics-tec/pagesmith/pkg/renderer"
)

var previewCmd = &cobra.Command{
	Use:   "preview <file>",
	Short: "Render a static text preview of a page",
	Long: `Draws the page layout as text: one line per row with every field padded
or clipped to its declared width, the way the terminal client would lay it
out, without connecting to any PVs.`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

var previewColor bool

func init() {
	previewCmd.Flags().BoolVar(&previewColor, "color", false, "Tint PV-backed widgets")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	page, err := loadPageFile(args[0])
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), renderer.New(previewColor).Render(page.Normalize()))
	return nil
}
