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

package command

import "context"

// Provider implements the methods to execute commands on the system.
type Provider interface {
	// Exec runs an executable with a single argument string.
	Exec(ctx context.Context, params ExecParams) (*Result, error)
	// Shell runs a command line through the platform shell.
	Shell(ctx context.Context, params ShellParams) (*Result, error)
}

// ExecParams contains parameters for direct command execution.
type ExecParams struct {
	// FileName is the executable name or path.
	FileName string
	// Arguments is the command-line argument string.
	Arguments string
	// Cwd is the optional working directory.
	Cwd string
	// Timeout selects the wait mode in seconds: 0 waits until the process
	// exits, a positive value bounds the wait, and a negative value bounds it
	// by the configured default.
	Timeout int
	// Async forces the bounded wait even when Timeout is 0, in which case
	// the result is "No Response" unless the process already finished.
	Async bool
}

// ShellParams contains parameters for shell command execution.
type ShellParams struct {
	// Command is the full shell command string.
	Command string
	// Cwd is the optional working directory.
	Cwd string
	// Timeout selects the wait mode, see ExecParams.Timeout.
	Timeout int
	// Async forces the bounded wait, see ExecParams.Async.
	Async bool
}

// Result contains the classified output of a command execution.
type Result struct {
	// Succeeded is false when only stderr produced output.
	Succeeded bool `json:"succeeded"`
	// Message is stdout on success, stderr on failure.
	Message string `json:"message"`
	// DurationMs is the execution time in milliseconds.
	DurationMs int64 `json:"duration_ms"`
}
