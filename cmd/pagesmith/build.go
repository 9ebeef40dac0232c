package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/epics-tec/pagesmith/pkg/pipeline"
)

const defaultConfigFile = "pagesmith.yaml"

var buildCmd = &cobra.Command{
	Use:   "build [config]",
	Short: "Run a page generation pipeline",
	Long: `Runs every pass of a pipeline configuration in order: each pass merges
template, aliases, header and footer into its output file, then appends
its literal lines. A pass may consume an earlier pass's output as its
header. The first failing pass aborts the run; outputs written so far are
left in place.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBuild,
}

var buildInitCmd = &cobra.Command{
	Use:   "init [file]",
	Short: "Generate the default SR-PS pipeline configuration",
	Long: `Writes a pipeline configuration reproducing the original SR-PS page
generation: a quadrupole pass, the appended Sextupoles section title, and
a sextupole pass consuming the first output as its header.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBuildInit,
}

var (
	combineCommand string
	verbose        bool
)

func init() {
	buildCmd.Flags().StringVar(&combineCommand, "combine-cmd", "", "External combine binary to shell out to instead of the builtin combiner")
	buildCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	buildCmd.AddCommand(buildInitCmd)
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	configFile := defaultConfigFile
	if len(args) > 0 {
		configFile = args[0]
	}

	fsys := afero.NewOsFs()
	config, err := pipeline.LoadConfig(fsys, configFile)
	if err != nil {
		return err
	}

	logger, err := buildLogger()
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer logger.Sync()

	var runner pipeline.Runner
	if combineCommand != "" {
		runner = &pipeline.ExecRunner{Command: combineCommand, Stderr: cmd.ErrOrStderr()}
	}

	if err := pipeline.New(fsys, runner, logger).Run(cmd.Context(), config); err != nil {
		return err
	}

	check := color.New(color.FgGreen).Sprint("✓")
	for _, pass := range config.Passes {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s -> %s\n", check, pass.Name, pass.Output)
	}
	return nil
}

func runBuildInit(cmd *cobra.Command, args []string) error {
	outputFile := defaultConfigFile
	if len(args) > 0 {
		outputFile = args[0]
	}

	fsys := afero.NewOsFs()
	if exists, err := afero.Exists(fsys, outputFile); err != nil {
		return fmt.Errorf("checking for %s: %w", outputFile, err)
	} else if exists {
		return fmt.Errorf("configuration file %s already exists", outputFile)
	}

	data, err := pipeline.DefaultConfig().Marshal()
	if err != nil {
		return err
	}

	header := "# Pagesmith pipeline configuration\n# Passes run strictly in order; a pass may use an earlier output as its header.\n\n"
	if err := afero.WriteFile(fsys, outputFile, append([]byte(header), data...), 0644); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Pipeline configuration created: %s\n", outputFile)
	fmt.Fprintf(cmd.OutOrStdout(), "Run it with: pagesmith build %s\n", outputFile)
	return nil
}

func buildLogger() (*zap.Logger, error) {
	loggerConfig := zap.NewDevelopmentConfig()
	if !verbose {
		loggerConfig.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	return loggerConfig.Build()
}
