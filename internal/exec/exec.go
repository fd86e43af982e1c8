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

// Package exec starts external processes, captures their output as text and
// classifies it into a Result.
package exec

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/retr0h/xproc/internal/exec"

// Exec implements Manager on top of Handle.
type Exec struct {
	logger   *slog.Logger
	platform Platform
	tracer   trace.Tracer
	runs     metric.Int64Counter
	duration metric.Float64Histogram
}

// collectFn retrieves the result of a started handle.
type collectFn func(ctx context.Context, h *Handle) (Result, error)

// New returns an Exec for the host platform. Spans and metrics are reported
// to the global OpenTelemetry providers.
func New(
	logger *slog.Logger,
) *Exec {
	meter := otel.Meter(instrumentationName)

	runs, err := meter.Int64Counter(
		"xproc.exec.runs",
		metric.WithDescription("Completed process runs by mode and outcome."),
	)
	if err != nil {
		logger.Warn("failed to create runs counter", slog.Any("error", err))
		runs, _ = noop.Meter{}.Int64Counter("xproc.exec.runs")
	}

	duration, err := meter.Float64Histogram(
		"xproc.exec.duration",
		metric.WithDescription("Wall time from start to result."),
		metric.WithUnit("ms"),
	)
	if err != nil {
		logger.Warn("failed to create duration histogram", slog.Any("error", err))
		duration, _ = noop.Meter{}.Float64Histogram("xproc.exec.duration")
	}

	return &Exec{
		logger:   logger,
		platform: HostPlatform(),
		tracer:   otel.Tracer(instrumentationName),
		runs:     runs,
		duration: duration,
	}
}

// run starts h, collects its result and disposes it on every path.
func (e *Exec) run(
	ctx context.Context,
	mode string,
	h *Handle,
	collect collectFn,
) (Result, error) {
	ctx, span := e.tracer.Start(
		ctx,
		"exec."+mode,
		trace.WithAttributes(
			attribute.String("xproc.file_name", h.FileName),
			attribute.String("xproc.run_id", h.RunID()),
		),
	)
	defer span.End()

	defer h.Dispose()

	start := time.Now()
	if err := h.Start(false); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return Result{}, err
	}

	result, err := collect(ctx, h)
	elapsed := time.Since(start)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return Result{}, err
	}

	attrs := metric.WithAttributes(
		attribute.String("mode", mode),
		attribute.Bool("succeeded", result.Succeeded()),
	)
	e.runs.Add(ctx, 1, attrs)
	e.duration.Record(ctx, float64(elapsed.Microseconds())/1000, attrs)
	span.SetAttributes(attribute.Bool("xproc.succeeded", result.Succeeded()))

	e.logger.DebugContext(
		ctx,
		"exec result",
		slog.String("mode", mode),
		slog.String("file_name", h.FileName),
		slog.String("run_id", h.RunID()),
		slog.Bool("succeeded", result.Succeeded()),
		slog.Int64("duration_ms", elapsed.Milliseconds()),
	)

	return result, nil
}

func collectSync(
	_ context.Context,
	h *Handle,
) (Result, error) {
	return h.GetResult()
}

func collectAsync(
	timeout int,
) collectFn {
	return func(ctx context.Context, h *Handle) (Result, error) {
		return h.GetResultAsync(ctx, timeout)
	}
}
