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
	"errors"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	sysProcess "github.com/shirou/gopsutil/v4/process"
)

// ErrNotFound is returned by Find when no process matches.
var ErrNotFound = errors.New("process not found")

// Provider discovers and terminates OS processes.
type Provider interface {
	// List returns every process whose name, module name or executable
	// path contains name. An empty name matches all processes.
	List(ctx context.Context, name string) ([]Info, error)
	// Find returns the first process matching name.
	Find(ctx context.Context, name string) (*Info, error)
	// Kill terminates the process with the given pid.
	Kill(ctx context.Context, pid int32) error
}

// Info is a snapshot of a running process.
type Info struct {
	// PID is the OS process id.
	PID int32 `json:"pid"`
	// Name is the process name reported by the OS.
	Name string `json:"name"`
	// ExecutablePath is the full path of the executable, when readable.
	ExecutablePath string `json:"executable_path"`
	// TotalProcessorTime is user plus system CPU time.
	TotalProcessorTime time.Duration `json:"total_processor_time"`
	// WorkingSetBytes is the resident set size.
	WorkingSetBytes uint64 `json:"working_set_bytes"`
}

// Proc is the subset of a gopsutil process the provider reads.
type Proc interface {
	PID() int32
	NameWithContext(ctx context.Context) (string, error)
	ExeWithContext(ctx context.Context) (string, error)
	TimesWithContext(ctx context.Context) (*cpu.TimesStat, error)
	MemoryInfoWithContext(ctx context.Context) (*sysProcess.MemoryInfoStat, error)
	KillWithContext(ctx context.Context) error
}
