// Copyright (c) 2026 John Dewey

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/retr0h/xproc/internal/cli"
	"github.com/retr0h/xproc/internal/exec"
	"github.com/retr0h/xproc/internal/provider/command"
	"github.com/retr0h/xproc/internal/provider/process"
)

// errFailedResult signals a failed classification; the result itself has
// already been printed.
var errFailedResult = errors.New("process reported failure")

func isFailedResult(
	err error,
) bool {
	return errors.Is(err, errFailedResult)
}

// applyConsoleEncoding installs the configured console codec, if any.
func applyConsoleEncoding() {
	name := appConfig.Exec.ConsoleEncoding
	if name == "" {
		return
	}

	enc, err := exec.LookupEncoding(name)
	if err != nil {
		cli.LogFatal(logger, "invalid console encoding", err)
	}
	exec.SetConsoleEncoding(enc)
}

// newExecManager returns the process facades with the configured encoding.
func newExecManager() *exec.Exec {
	applyConsoleEncoding()

	return exec.New(logger)
}

func newCommandProvider() *command.Executor {
	return command.New(logger, newExecManager(), appConfig.Exec.DefaultTimeout)
}

// resolveCwd falls back to the configured working directory.
func resolveCwd(
	cwd string,
) string {
	if cwd != "" {
		return cwd
	}

	return appConfig.Exec.WorkingDir
}

// printCommandResult renders r and maps a failed result to errFailedResult.
func printCommandResult(
	r *command.Result,
) error {
	if jsonOutput {
		if err := cli.PrintJSON(r); err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
	} else {
		cli.PrintResult(r.Succeeded, r.Message)
		fmt.Println()
		cli.PrintKV("Duration", fmt.Sprintf("%dms", r.DurationMs))
	}

	if !r.Succeeded {
		return errFailedResult
	}

	return nil
}

func runExec(
	ctx context.Context,
	p command.Provider,
	params command.ExecParams,
) error {
	result, err := p.Exec(ctx, params)
	if err != nil {
		return err
	}

	return printCommandResult(result)
}

func runShell(
	ctx context.Context,
	p command.Provider,
	params command.ShellParams,
) error {
	result, err := p.Shell(ctx, params)
	if err != nil {
		return err
	}

	return printCommandResult(result)
}

// listProcesses returns every match, or only the first when first is set.
func listProcesses(
	ctx context.Context,
	p process.Provider,
	name string,
	first bool,
) ([]process.Info, error) {
	if !first {
		return p.List(ctx, name)
	}

	info, err := p.Find(ctx, name)
	if err != nil {
		return nil, err
	}

	return []process.Info{*info}, nil
}
