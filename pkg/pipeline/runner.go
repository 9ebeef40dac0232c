package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/spf13/afero"

	"github.com/epics-tec/pagesmith/pkg/combiner"
)

// Runner performs one combine invocation for a pass, writing the merged
// page to out.
type Runner interface {
	Combine(ctx context.Context, pass Pass, out io.Writer) error
}

// BuiltinRunner merges in-process using pkg/combiner.
type BuiltinRunner struct {
	Fs afero.Fs
}

func (r *BuiltinRunner) Combine(_ context.Context, pass Pass, out io.Writer) error {
	return combiner.New(r.Fs).Combine(combiner.Inputs{
		Template: pass.Template,
		Aliases:  pass.Aliases,
		Header:   pass.Header,
		Footer:   pass.Footer,
	}, out)
}

// ExecRunner shells out to an external combine binary, passing the
// original tool's flag surface and capturing its stdout into the output
// file. Input paths are resolved by the external process, so this runner
// only works against the real filesystem.
type ExecRunner struct {
	Command string
	Stderr  io.Writer
}

func (r *ExecRunner) Combine(ctx context.Context, pass Pass, out io.Writer) error {
	cmd := exec.CommandContext(ctx, r.Command, r.args(pass)...)
	cmd.Stdout = out
	cmd.Stderr = r.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running combine command '%s': %w", r.Command, err)
	}
	return nil
}

func (r *ExecRunner) args(pass Pass) []string {
	args := []string{"-tf", pass.Template, "-af", pass.Aliases}
	if pass.Header != "" {
		args = append(args, "-hf", pass.Header)
	}
	if pass.Footer != "" {
		args = append(args, "-ff", pass.Footer)
	}
	return args
}
