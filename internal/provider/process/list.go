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
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"
)

// List returns every process whose name, module name or executable path
// contains name. Attributes that cannot be read are treated as empty.
func (f *Finder) List(
	ctx context.Context,
	name string,
) ([]Info, error) {
	procs, err := f.ProcessesFn(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list processes: %w", err)
	}

	infos := make([]Info, 0)
	for _, p := range procs {
		info := f.snapshot(ctx, p)
		if !matches(info, name) {
			continue
		}
		infos = append(infos, info)
	}

	f.logger.Debug("listed processes",
		slog.String("name", name),
		slog.Int("matched", len(infos)),
		slog.Int("total", len(procs)),
	)

	return infos, nil
}

// Find returns the first process matching name, or ErrNotFound.
func (f *Finder) Find(
	ctx context.Context,
	name string,
) (*Info, error) {
	infos, err := f.List(ctx, name)
	if err != nil {
		return nil, err
	}

	if len(infos) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	return &infos[0], nil
}

func (f *Finder) snapshot(
	ctx context.Context,
	p Proc,
) Info {
	info := Info{PID: p.PID()}

	if name, err := p.NameWithContext(ctx); err == nil {
		info.Name = name
	}

	if exe, err := p.ExeWithContext(ctx); err == nil {
		info.ExecutablePath = exe
	}

	if times, err := p.TimesWithContext(ctx); err == nil && times != nil {
		info.TotalProcessorTime = time.Duration(
			(times.User + times.System) * float64(time.Second),
		)
	}

	if mem, err := p.MemoryInfoWithContext(ctx); err == nil && mem != nil {
		info.WorkingSetBytes = mem.RSS
	}

	return info
}

func matches(
	info Info,
	name string,
) bool {
	if name == "" {
		return true
	}

	var module string
	if info.ExecutablePath != "" {
		module = filepath.Base(info.ExecutablePath)
	}

	return strings.Contains(info.Name, name) ||
		strings.Contains(module, name) ||
		strings.Contains(info.ExecutablePath, name)
}
