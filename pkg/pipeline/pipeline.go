// Package pipeline drives multi-pass page generation: each pass runs one
// combine invocation into its output file, then appends any literal lines
// to it. Passes run strictly in sequence so a later pass can consume an
// earlier output as its header.
package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

type Pipeline struct {
	fs     afero.Fs
	runner Runner
	logger *zap.Logger
}

// New creates a pipeline. A nil filesystem means the OS filesystem, a nil
// runner means the builtin combiner, and a nil logger disables logging.
func New(fsys afero.Fs, runner Runner, logger *zap.Logger) *Pipeline {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	if runner == nil {
		runner = &BuiltinRunner{Fs: fsys}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{fs: fsys, runner: runner, logger: logger}
}

// Run executes every pass in order. The first failure aborts the run and
// is returned; output files written so far, including a partially written
// one, are left in place.
func (p *Pipeline) Run(ctx context.Context, config *Config) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid pipeline config: %w", err)
	}

	for _, pass := range config.Passes {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := p.runPass(ctx, pass); err != nil {
			return fmt.Errorf("pass '%s': %w", pass.Name, err)
		}
	}
	return nil
}

func (p *Pipeline) runPass(ctx context.Context, pass Pass) error {
	p.logger.Info("running combine pass",
		zap.String("pass", pass.Name),
		zap.String("template", pass.Template),
		zap.String("aliases", pass.Aliases),
		zap.String("output", pass.Output),
	)

	if err := p.combineToFile(ctx, pass); err != nil {
		return err
	}

	if len(pass.AppendLines) > 0 {
		p.logger.Debug("appending literal lines",
			zap.String("output", pass.Output),
			zap.Int("lines", len(pass.AppendLines)),
		)
		if err := p.appendLines(pass.Output, pass.AppendLines); err != nil {
			return err
		}
	}

	return nil
}

// combineToFile mirrors the shell redirect idiom: open the output for
// truncating write, run the combine invocation with its stdout attached,
// close. On failure whatever was written stays on disk.
func (p *Pipeline) combineToFile(ctx context.Context, pass Pass) error {
	out, err := p.fs.OpenFile(pass.Output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("opening output '%s': %w", pass.Output, err)
	}

	combineErr := p.runner.Combine(ctx, pass, out)
	closeErr := out.Close()
	if combineErr != nil {
		return combineErr
	}
	if closeErr != nil {
		return fmt.Errorf("closing output '%s': %w", pass.Output, closeErr)
	}
	return nil
}

// appendLines writes the literal lines verbatim to the end of the output
// file. The lines are never parsed or reformatted.
func (p *Pipeline) appendLines(path string, lines []string) error {
	out, err := p.fs.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("opening output '%s' for append: %w", path, err)
	}
	defer out.Close()

	for _, line := range lines {
		if _, err := out.Write([]byte(line + "\n")); err != nil {
			return fmt.Errorf("appending to '%s': %w", path, err)
		}
	}
	return nil
}
