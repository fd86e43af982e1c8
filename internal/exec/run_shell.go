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

package exec

import (
	"context"
	"fmt"
)

// RunShell executes command through the platform shell, blocking until the
// shell exits. Output is decoded with the console encoding.
func (e *Exec) RunShell(
	command string,
	cwd string,
) (Result, error) {
	h, err := e.newShellHandle(command, cwd)
	if err != nil {
		return Result{}, err
	}

	return e.run(context.Background(), "shell", h, collectSync)
}

// RunShellAsync executes command through the platform shell and waits at
// most timeout seconds for its result.
func (e *Exec) RunShellAsync(
	ctx context.Context,
	command string,
	cwd string,
	timeout int,
) (Result, error) {
	h, err := e.newShellHandle(command, cwd)
	if err != nil {
		return Result{}, err
	}

	return e.run(ctx, "shell_async", h, collectAsync(timeout))
}

func (e *Exec) newShellHandle(
	command string,
	cwd string,
) (*Handle, error) {
	if command == "" {
		return nil, fmt.Errorf("%w: command is required", ErrInvalidArgument)
	}

	shell, err := ResolveShellCommand(e.platform, command)
	if err != nil {
		return nil, err
	}

	h := NewHandle(e.logger, shell.FileName, shell.Arguments)
	h.Encoding = shell.Encoding
	h.WorkingDirectory = cwd

	return h, nil
}
