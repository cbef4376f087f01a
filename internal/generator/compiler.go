package generator

import (
	"fmt"

	"github.com/civitrans/ptagen/internal/checksum"
	"github.com/civitrans/ptagen/internal/execx"
	"github.com/civitrans/ptagen/internal/files/filesystem"
	"github.com/civitrans/ptagen/pkg/ptagen"
)

// Compiler invokes the external schema-to-model compiler, one schema file
// in, one model source file out. The compiler is treated as an opaque tool;
// only its argument vector and exit status are part of this contract.
type Compiler struct {
	command   string
	formatter string
	pkgName   string
	runner    execx.Runner
	fsys      filesystem.Provider
	log       ptagen.Logger
}

// NewCompiler creates a compiler adapter.
func NewCompiler(command, formatter, pkgName string, runner execx.Runner, fsys filesystem.Provider, log ptagen.Logger) *Compiler {
	return &Compiler{
		command:   command,
		formatter: formatter,
		pkgName:   pkgName,
		runner:    runner,
		fsys:      fsys,
		log:       log,
	}
}

// Compile generates one model source file from one schema document with a
// fixed, explicit configuration: struct tags carry field metadata and the
// output is a plain model file. The output file's line endings are then
// normalized to LF so later hashing and diffing are platform-independent.
//
// A non-zero compiler exit is fatal and keeps the child's exit status in
// the error chain.
func (c *Compiler) Compile(schemaPath, outputPath string) error {
	args := []string{
		"-p", c.pkgName,
		"-o", outputPath,
		"--tags", "json",
		schemaPath,
	}
	if err := c.runner.Run(c.command, args, execx.Options{}); err != nil {
		return fmt.Errorf("%s failed for %s: %w: %w",
			c.command, schemaPath, ptagen.ErrCompilationFailed, err)
	}

	return c.normalizeFile(outputPath)
}

// Format runs the external formatter on a generated file. Formatting is
// cosmetic: a missing or failing formatter is logged, never fatal.
func (c *Compiler) Format(path string) {
	if c.formatter == "" {
		return
	}
	if err := c.runner.Run(c.formatter, []string{"-w", path}, execx.Options{Silent: true}); err != nil {
		c.log.Verbose("formatter %s failed on %s: %v (ignored)", c.formatter, path, err)
	}
}

// normalizeFile converts CRLF to LF in a file on disk, writing only when a
// change is needed.
func (c *Compiler) normalizeFile(path string) error {
	content, err := c.fsys.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read generated output %s: %w", path, err)
	}
	normalized := checksum.NormalizeLineEndings(content)
	if len(normalized) == len(content) {
		return nil
	}
	if err := c.fsys.WriteFile(path, normalized); err != nil {
		return fmt.Errorf("failed to normalize %s: %w", path, err)
	}
	return nil
}
