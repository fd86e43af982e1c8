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
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

// Handle owns a single OS process from start until disposal.
//
// Configure the exported fields before calling Start. A handle is started at
// most once, its result can be collected once, and Dispose must be called to
// guarantee the process is terminated and reaped.
type Handle struct {
	// WorkingDirectory is the directory the child starts in. Empty inherits
	// the caller's.
	WorkingDirectory string
	// FileName is the path or name of the executable.
	FileName string
	// Arguments is the single command-line argument string.
	Arguments string
	// Encoding decodes stdout and stderr. Defaults to UTF-8.
	Encoding encoding.Encoding

	logger *slog.Logger
	runID  string

	mu         sync.Mutex
	cmd        *exec.Cmd
	stdout     io.ReadCloser
	stderr     io.ReadCloser
	started    bool
	collecting bool
	disposed   bool
}

// outcome carries the result of a background collection.
type outcome struct {
	result Result
	err    error
}

// NewHandle returns an unstarted handle for fileName and arguments. A nil
// logger falls back to slog.Default.
func NewHandle(
	logger *slog.Logger,
	fileName string,
	arguments string,
) *Handle {
	if logger == nil {
		logger = slog.Default()
	}
	runID := uuid.New().String()

	return &Handle{
		FileName:  fileName,
		Arguments: arguments,
		Encoding:  unicode.UTF8,
		logger:    logger.With(slog.String("run_id", runID)),
		runID:     runID,
	}
}

// RunID returns the identifier attached to every log line of this handle.
func (h *Handle) RunID() string {
	return h.runID
}

// PID returns the OS process id, or -1 when no process is attached.
func (h *Handle) PID() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.cmd == nil || h.cmd.Process == nil {
		return -1
	}

	return h.cmd.Process.Pid
}

// Start spawns the process with stdout and stderr captured and stdin
// attached to the null device. showWindow is only meaningful on Windows.
func (h *Handle) Start(
	showWindow bool,
) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.disposed {
		return fmt.Errorf("%w: handle disposed", ErrInvalidState)
	}

	if h.started {
		return fmt.Errorf("%w: already started", ErrInvalidState)
	}

	cmd, err := newCommand(h.FileName, h.Arguments, showWindow)
	if err != nil {
		return err
	}
	cmd.Dir = h.WorkingDirectory

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("%w: stdout pipe: %w", ErrSpawn, err)
	}

	stderr, err := cmd.StderrPipe()
	if err != nil {
		_ = stdout.Close()

		return fmt.Errorf("%w: stderr pipe: %w", ErrSpawn, err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrSpawn, h.FileName, err)
	}

	h.cmd = cmd
	h.stdout = stdout
	h.stderr = stderr
	h.started = true

	h.logger.Debug(
		"process started",
		slog.String("file_name", h.FileName),
		slog.String("arguments", h.Arguments),
		slog.String("cwd", h.WorkingDirectory),
		slog.Int("pid", cmd.Process.Pid),
	)

	return nil
}

// GetResult blocks until both output streams are closed and the process has
// exited, then releases the process and classifies its output. It can be
// called once per started handle.
func (h *Handle) GetResult() (Result, error) {
	h.mu.Lock()
	if err := h.collectableLocked(); err != nil {
		h.mu.Unlock()

		return Result{}, err
	}
	h.collecting = true
	cmd, stdout, stderr, enc := h.cmd, h.stdout, h.stderr, h.Encoding
	h.mu.Unlock()

	start := time.Now()

	// Both pipes are drained concurrently so a child filling one buffer
	// cannot block while the other is being read.
	var outText, errText string
	var g errgroup.Group
	g.Go(func() error {
		text, err := decode(enc, stdout)
		outText = text

		return err
	})
	g.Go(func() error {
		text, err := decode(enc, stderr)
		errText = text

		return err
	})
	readErr := g.Wait()
	waitErr := cmd.Wait()

	h.mu.Lock()
	if h.cmd == cmd {
		h.cmd = nil
	}
	h.stdout = nil
	h.stderr = nil
	h.mu.Unlock()

	h.logger.Debug(
		"process exited",
		slog.String("file_name", h.FileName),
		slog.Int("stdout_bytes", len(outText)),
		slog.Int("stderr_bytes", len(errText)),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()),
		slog.Any("error", errors.Join(readErr, waitErr)),
	)

	if readErr != nil {
		return Result{}, fmt.Errorf("reading process output: %w", readErr)
	}

	var exitErr *exec.ExitError
	if waitErr != nil && !errors.As(waitErr, &exitErr) {
		return Result{}, fmt.Errorf("waiting for process: %w", waitErr)
	}

	return classify(outText, errText), nil
}

// GetResultAsync waits at most timeout seconds for GetResult. Negative
// timeouts are treated as zero.
//
// Whichever finishes first wins. When the timer wins, NoResponse is returned
// and the background collection keeps running unobserved; its result is
// discarded and the process is not killed. A failed background collection is
// logged and also reported as NoResponse.
func (h *Handle) GetResultAsync(
	ctx context.Context,
	timeout int,
) (Result, error) {
	h.mu.Lock()
	if err := h.collectableLocked(); err != nil {
		h.mu.Unlock()

		return Result{}, err
	}
	h.mu.Unlock()

	if timeout < 0 {
		timeout = 0
	}

	outcomes := make(chan outcome, 1)
	go func() {
		result, err := h.GetResult()
		if err != nil {
			h.logger.Warn(
				"background result collection failed",
				slog.String("file_name", h.FileName),
				slog.Any("error", err),
			)
		}
		outcomes <- outcome{result: result, err: err}
	}()

	timer := time.NewTimer(time.Duration(timeout) * time.Second)
	defer timer.Stop()

	select {
	case o := <-outcomes:
		if o.err != nil {
			return NoResponse(), nil
		}

		return o.result, nil
	case <-timer.C:
		h.logger.Debug(
			"no response within timeout",
			slog.String("file_name", h.FileName),
			slog.Int("timeout", timeout),
		)

		return NoResponse(), nil
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}
}

// Dispose kills the process if it is still running and releases it. It is
// safe to call more than once, concurrently with a background collection, and
// after the process exited on its own. Failures are logged and swallowed.
func (h *Handle) Dispose() {
	h.mu.Lock()
	if h.disposed {
		h.mu.Unlock()

		return
	}
	h.disposed = true
	cmd, collecting := h.cmd, h.collecting
	h.cmd = nil
	h.stdout = nil
	h.stderr = nil
	h.mu.Unlock()

	if cmd == nil || cmd.Process == nil {
		return
	}

	if err := cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		h.logger.Debug(
			"failed to kill process",
			slog.Int("pid", cmd.Process.Pid),
			slog.Any("error", err),
		)
	}

	// An in-flight collector owns Wait and will reap the child.
	if collecting {
		return
	}

	if err := cmd.Wait(); err != nil {
		h.logger.Debug(
			"process released after kill",
			slog.Int("pid", cmd.Process.Pid),
			slog.Any("error", err),
		)
	}
}

// collectableLocked reports why the result cannot be collected, if it cannot.
// h.mu must be held.
func (h *Handle) collectableLocked() error {
	switch {
	case h.disposed:
		return fmt.Errorf("%w: handle disposed", ErrInvalidState)
	case !h.started:
		return fmt.Errorf("%w: process not started", ErrInvalidState)
	case h.collecting || h.cmd == nil:
		return fmt.Errorf("%w: process already released", ErrInvalidState)
	default:
		return nil
	}
}
