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

// RunProcess executes fileName with the given argument string and optional
// working directory, blocking until the process exits.
func (e *Exec) RunProcess(
	fileName string,
	arguments string,
	cwd string,
) (Result, error) {
	h, err := e.newProcessHandle(fileName, arguments, cwd)
	if err != nil {
		return Result{}, err
	}

	return e.run(context.Background(), "process", h, collectSync)
}

// RunProcessAsync executes fileName and waits at most timeout seconds for its
// result. See Handle.GetResultAsync for the timeout semantics.
func (e *Exec) RunProcessAsync(
	ctx context.Context,
	fileName string,
	arguments string,
	cwd string,
	timeout int,
) (Result, error) {
	h, err := e.newProcessHandle(fileName, arguments, cwd)
	if err != nil {
		return Result{}, err
	}

	return e.run(ctx, "process_async", h, collectAsync(timeout))
}

func (e *Exec) newProcessHandle(
	fileName string,
	arguments string,
	cwd string,
) (*Handle, error) {
	if fileName == "" {
		return nil, fmt.Errorf("%w: file name is required", ErrInvalidArgument)
	}

	h := NewHandle(e.logger, fileName, arguments)
	h.WorkingDirectory = cwd

	return h, nil
}
