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

package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/retr0h/xproc/internal/cli"
	"github.com/retr0h/xproc/internal/exec"
	"github.com/retr0h/xproc/internal/telemetry"
)

// smokeRun is one row of the smoke report.
type smokeRun struct {
	Name       string `json:"name"`
	Mode       string `json:"mode"`
	Command    string `json:"command"`
	Succeeded  bool   `json:"succeeded"`
	Message    string `json:"message"`
	Error      string `json:"error,omitempty"`
	DurationMs int64  `json:"duration_ms"`
}

var smokeCmd = &cobra.Command{
	Use:   "smoke",
	Short: "Exercise the sync, async and concurrent shell paths",
	Long: `Run the shell facades end to end: once synchronously, once async with a
zero timeout (expected "No Response"), once async with a generous timeout,
then a batch of concurrent runs.

With --metrics-addr the Prometheus endpoint keeps serving the recorded
metrics until interrupted.
`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		parallel, _ := cmd.Flags().GetInt("parallel")
		command, _ := cmd.Flags().GetString("command")
		metricsAddr, _ := cmd.Flags().GetString("metrics-addr")

		if err := validateParallel(parallel); err != nil {
			return err
		}

		var server *telemetry.MetricsServer
		var meterShutdown func(context.Context) error
		if metricsAddr != "" {
			handler, path, shutdown, err := telemetry.InitMeter(appConfig.Telemetry.Metrics)
			if err != nil {
				return err
			}
			meterShutdown = shutdown
			server = telemetry.NewMetricsServer(logger, metricsAddr, path, handler)
		}

		runs, err := runSmoke(ctx, newExecManager(), command, parallel)
		if err != nil {
			return err
		}

		if jsonOutput {
			if err := cli.PrintJSON(runs); err != nil {
				return err
			}
		} else {
			cli.PrintStyledTable([]cli.Section{smokeSection(runs)})
		}

		if server != nil {
			server.Start()
			cli.RunServer(ctx, server, func() {
				_ = meterShutdown(context.Background())
			})
		}

		return nil
	},
}

// runSmoke executes the fixed scenarios with "<command>!" followed by
// parallel concurrent runs of "<command>I".
func runSmoke(
	ctx context.Context,
	m exec.Manager,
	command string,
	parallel int,
) ([]smokeRun, error) {
	if err := validateParallel(parallel); err != nil {
		return nil, err
	}

	scenarios := []struct {
		name    string
		mode    string
		timeout int
	}{
		{name: "sync", mode: "sync"},
		{name: "async zero timeout", mode: "async", timeout: 0},
		{name: "async generous timeout", mode: "async", timeout: 100},
	}

	runs := make([]smokeRun, 0, len(scenarios)+parallel)
	for _, sc := range scenarios {
		runs = append(runs, smokeOnce(ctx, m, sc.name, sc.mode, command+"!", sc.timeout))
	}

	concurrent := make([]smokeRun, parallel)
	g, gctx := errgroup.WithContext(ctx)
	for i := range parallel {
		g.Go(func() error {
			concurrent[i] = smokeOnce(
				gctx,
				m,
				fmt.Sprintf("concurrent %d", i),
				"sync",
				fmt.Sprintf("%s%d", command, i),
				0,
			)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return append(runs, concurrent...), nil
}

func validateParallel(
	parallel int,
) error {
	if parallel < 0 {
		return fmt.Errorf("%w: --parallel must be >= 0, got %d", exec.ErrInvalidArgument, parallel)
	}

	return nil
}

func smokeOnce(
	ctx context.Context,
	m exec.Manager,
	name string,
	mode string,
	command string,
	timeout int,
) smokeRun {
	start := time.Now()

	var (
		r   exec.Result
		err error
	)
	if mode == "async" {
		r, err = m.RunShellAsync(ctx, command, resolveCwd(""), timeout)
	} else {
		r, err = m.RunShell(command, resolveCwd(""))
	}

	run := smokeRun{
		Name:       name,
		Mode:       mode,
		Command:    command,
		Succeeded:  r.Succeeded(),
		Message:    r.Message(),
		DurationMs: time.Since(start).Milliseconds(),
	}
	if err != nil {
		run.Error = err.Error()
	}

	return run
}

func smokeSection(
	runs []smokeRun,
) cli.Section {
	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		status := "ok"
		switch {
		case r.Error != "":
			status = "error"
		case !r.Succeeded:
			status = "failed"
		}
		message := strings.TrimSpace(r.Message)
		if r.Error != "" {
			message = r.Error
		}
		rows = append(rows, []string{
			r.Name,
			r.Mode,
			status,
			message,
			fmt.Sprintf("%dms", r.DurationMs),
		})
	}

	return cli.Section{
		Title:   "Smoke",
		Headers: []string{"RUN", "MODE", "STATUS", "MESSAGE", "DURATION"},
		Rows:    rows,
	}
}

func init() {
	rootCmd.AddCommand(smokeCmd)

	smokeCmd.Flags().IntP("parallel", "p", 20, "Number of concurrent runs")
	smokeCmd.Flags().StringP("command", "c", "echo Hello", "Base shell command; concurrent runs append their index")
	smokeCmd.Flags().String("metrics-addr", "", "Serve Prometheus metrics on this address until interrupted")
}
