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

package process

import (
	"context"
	"log/slog"

	sysProcess "github.com/shirou/gopsutil/v4/process"
)

// Finder implements Provider using gopsutil.
type Finder struct {
	logger *slog.Logger

	// ProcessesFn lists running processes (injectable for testing).
	ProcessesFn func(ctx context.Context) ([]Proc, error)
	// NewProcessFn opens a process by pid (injectable for testing).
	NewProcessFn func(ctx context.Context, pid int32) (Proc, error)
}

// gopsProc adapts a gopsutil process to Proc.
type gopsProc struct {
	*sysProcess.Process
}

func (p gopsProc) PID() int32 {
	return p.Pid
}

// New factory to create a new Finder instance.
func New(
	logger *slog.Logger,
) *Finder {
	return &Finder{
		logger:       logger,
		ProcessesFn:  processes,
		NewProcessFn: newProcess,
	}
}

func processes(
	ctx context.Context,
) ([]Proc, error) {
	ps, err := sysProcess.ProcessesWithContext(ctx)
	if err != nil {
		return nil, err
	}

	procs := make([]Proc, 0, len(ps))
	for _, p := range ps {
		procs = append(procs, gopsProc{p})
	}

	return procs, nil
}

func newProcess(
	ctx context.Context,
	pid int32,
) (Proc, error) {
	p, err := sysProcess.NewProcessWithContext(ctx, pid)
	if err != nil {
		return nil, err
	}

	return gopsProc{p}, nil
}
