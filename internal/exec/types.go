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

import "context"

// DefaultTimeout is the bounded-wait default, in seconds, for the async
// entry points.
const DefaultTimeout = 10

// Manager runs executables and shell commands to completion and classifies
// their output.
type Manager interface {
	// RunProcess runs fileName with a single argument string and waits for it.
	RunProcess(
		fileName string,
		arguments string,
		cwd string,
	) (Result, error)
	// RunProcessAsync runs fileName and waits at most timeout seconds.
	RunProcessAsync(
		ctx context.Context,
		fileName string,
		arguments string,
		cwd string,
		timeout int,
	) (Result, error)
	// RunShell runs command through the platform shell and waits for it.
	RunShell(
		command string,
		cwd string,
	) (Result, error)
	// RunShellAsync runs command through the platform shell and waits at most
	// timeout seconds.
	RunShellAsync(
		ctx context.Context,
		command string,
		cwd string,
		timeout int,
	) (Result, error)
}
