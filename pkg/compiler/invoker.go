// Package compiler runs the external Sass compiler for a single source file.
//
// The compiler command is a shell snippet (i.e. "sass --no-source-map") which
// is parsed and executed with mvdan.cc/sh so that it behaves the same on every
// platform. The source and destination paths are appended as the last two
// arguments. An empty destination is left out and sass writes to stdout.
package compiler

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

const DefaultCommand = "sass"

var defaultExecHandler = interp.DefaultExecHandler(2 * time.Second)

// Invoker describes how the compiler is started. The zero value runs "sass" in
// the current directory and forwards its output to stdout / stderr.
type Invoker struct {
	Command string
	Dir     string
	// Env is appended to the process environment.
	Env    map[string]string
	Stdout io.Writer
	Stderr io.Writer
	// ExecHandler replaces the handler that actually spawns processes.
	ExecHandler interp.ExecHandlerFunc
}

func (inv *Invoker) command() string {
	if strings.TrimSpace(inv.Command) == "" {
		return DefaultCommand
	}
	return inv.Command
}

func (inv *Invoker) statement(target, dest string) (*syntax.Stmt, error) {
	line := strings.Builder{}
	line.WriteString(inv.command())

	args := []string{target}
	if dest != "" {
		args = append(args, dest)
	}

	for _, arg := range args {
		quoted, err := syntax.Quote(filepath.ToSlash(arg), syntax.LangBash)
		if err != nil {
			return nil, eris.Wrapf(err, "can't pass %q to the compiler", arg)
		}

		line.WriteString(" ")
		line.WriteString(quoted)
	}

	parser := syntax.NewParser()
	file, err := parser.Parse(strings.NewReader(line.String()), "compiler")
	if err != nil {
		return nil, eris.Wrapf(err, "failed to parse compiler command %s", inv.command())
	}

	if len(file.Stmts) != 1 {
		return nil, eris.Errorf("compiler command %s must be a single command", inv.command())
	}

	stmt := file.Stmts[0]
	if _, ok := stmt.Cmd.(*syntax.CallExpr); !ok {
		return nil, eris.Errorf("compiler command %s must be a simple command", inv.command())
	}

	return stmt, nil
}

// Describe returns the command line that Invoke would run.
func (inv *Invoker) Describe(target, dest string) (string, error) {
	stmt, err := inv.statement(target, dest)
	if err != nil {
		return "", err
	}

	buffer := strings.Builder{}
	printer := syntax.NewPrinter(syntax.Minify(true))
	if err = printer.Print(&buffer, stmt); err != nil {
		return "", eris.Wrap(err, "failed to print compiler command")
	}
	return buffer.String(), nil
}

func (inv *Invoker) environ() expand.Environ {
	envVars := os.Environ()
	for name, value := range inv.Env {
		envVars = append(envVars, name+"="+value)
	}

	return expand.ListEnviron(envVars...)
}

// Invoke compiles target into dest and waits for the compiler to exit.
// Cancelling ctx interrupts the compiler process.
func (inv *Invoker) Invoke(ctx context.Context, target, dest string) error {
	fail := func(err error) error {
		return &InvocationError{Target: target, Dest: dest, Err: err}
	}

	stmt, err := inv.statement(target, dest)
	if err != nil {
		return fail(err)
	}

	handler := inv.ExecHandler
	if handler == nil {
		handler = defaultExecHandler
	}

	stdout, stderr := inv.Stdout, inv.Stderr
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	runner, err := interp.New(
		interp.Dir(inv.Dir),
		interp.Env(inv.environ()),
		interp.ExecHandler(handler),
		interp.StdIO(nil, stdout, stderr),
		interp.Params("-e"),
	)
	if err != nil {
		return fail(eris.Wrap(err, "Failed to initialize runner"))
	}

	err = runner.Run(ctx, stmt)
	if err != nil {
		ierr := &InvocationError{Target: target, Dest: dest, Err: err}
		if status, ok := interp.IsExitStatus(err); ok {
			ierr.Status = int(status)
		}
		return ierr
	}

	return nil
}
