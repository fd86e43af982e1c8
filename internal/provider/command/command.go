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

import (
	"log/slog"
	"time"

	"github.com/retr0h/xproc/internal/exec"
)

// Executor implements Provider on top of an exec.Manager.
type Executor struct {
	logger         *slog.Logger
	execManager    exec.Manager
	defaultTimeout int
}

// New factory to create a new Executor instance.
func New(
	logger *slog.Logger,
	em exec.Manager,
	defaultTimeout int,
) *Executor {
	if defaultTimeout <= 0 {
		defaultTimeout = exec.DefaultTimeout
	}

	return &Executor{
		logger:         logger,
		execManager:    em,
		defaultTimeout: defaultTimeout,
	}
}

// timeoutFor maps a requested timeout onto the async bound, reporting false
// when the synchronous path should be used.
func (c *Executor) timeoutFor(
	timeout int,
	async bool,
) (int, bool) {
	switch {
	case timeout == 0 && async:
		return 0, true
	case timeout == 0:
		return 0, false
	case timeout < 0:
		return c.defaultTimeout, true
	default:
		return timeout, true
	}
}

func newResult(
	r exec.Result,
	start time.Time,
) *Result {
	return &Result{
		Succeeded:  r.Succeeded(),
		Message:    r.Message(),
		DurationMs: time.Since(start).Milliseconds(),
	}
}
