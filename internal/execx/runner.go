// Package execx runs external tools (model compiler, formatter, build tool,
// test runner) as blocking child processes with fixed argument vectors.
// Argument values are never passed through a shell, so path or version
// strings cannot be reinterpreted as shell syntax.
package execx

import (
	"os"
	"os/exec"

	"github.com/civitrans/ptagen/pkg/ptagen"
)

// Options adjust a single invocation.
type Options struct {
	// Dir is the working directory; empty means the current directory.
	Dir string

	// ExtraEnv entries ("KEY=value") are appended to the inherited
	// environment for this invocation only.
	ExtraEnv []string

	// Silent discards the child's stdout and stderr instead of passing
	// them through. Used for best-effort steps like formatting.
	Silent bool
}

// Runner executes one external command and waits for it to finish.
// A non-zero exit status is returned as an error with the *exec.ExitError
// kept in the chain, so callers can propagate the child's exit code.
type Runner interface {
	Run(name string, args []string, opts Options) error
}

// ExecRunner is the production Runner backed by os/exec.
type ExecRunner struct {
	log ptagen.Logger
}

// NewRunner creates a runner that logs each invocation through log.
func NewRunner(log ptagen.Logger) *ExecRunner {
	return &ExecRunner{log: log}
}

func (r *ExecRunner) Run(name string, args []string, opts Options) error {
	if r.log != nil {
		r.log.Verbose("+ %s %v", name, args)
	}

	cmd := exec.Command(name, args...)
	cmd.Dir = opts.Dir
	if len(opts.ExtraEnv) > 0 {
		cmd.Env = append(os.Environ(), opts.ExtraEnv...)
	}
	if !opts.Silent {
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}

	return cmd.Run()
}
