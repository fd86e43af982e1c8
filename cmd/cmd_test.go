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
	"errors"
	"io"
	"os"
	"testing"
	"time"

	"github.com/shirou/gopsutil/v4/host"
	"github.com/stretchr/testify/suite"

	"github.com/retr0h/xproc/internal/config"
	"github.com/retr0h/xproc/internal/exec"
	"github.com/retr0h/xproc/internal/provider/command"
	"github.com/retr0h/xproc/internal/provider/process"
)

type CmdTestSuite struct {
	suite.Suite
}

func (s *CmdTestSuite) SetupTest() {
	appConfig = config.Config{
		Exec: config.Exec{DefaultTimeout: exec.DefaultTimeout},
	}
	jsonOutput = false
}

func (s *CmdTestSuite) TearDownTest() {
	exec.SetConsoleEncoding(nil)
}

func captureStdout(
	fn func(),
) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	fn()

	_ = w.Close()
	out, _ := io.ReadAll(r)
	os.Stdout = old

	return string(out)
}

func (s *CmdTestSuite) TestResolveCwd() {
	tests := []struct {
		name       string
		cwd        string
		workingDir string
		want       string
	}{
		{
			name: "when flag set uses flag",
			cwd:  "/tmp",
			want: "/tmp",
		},
		{
			name:       "when flag empty uses configured directory",
			workingDir: "/var",
			want:       "/var",
		},
		{
			name: "when both empty inherits",
			want: "",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			appConfig.Exec.WorkingDir = tt.workingDir

			s.Equal(tt.want, resolveCwd(tt.cwd))
		})
	}
}

func (s *CmdTestSuite) TestPrintCommandResult() {
	tests := []struct {
		name     string
		json     bool
		result   *command.Result
		wantErr  error
		contains []string
	}{
		{
			name:     "when succeeded prints message",
			result:   &command.Result{Succeeded: true, Message: "Hello!\n", DurationMs: 3},
			contains: []string{"Hello!", "3ms"},
		},
		{
			name:     "when failed returns failed result",
			result:   &command.Result{Succeeded: false, Message: "oops\n"},
			wantErr:  errFailedResult,
			contains: []string{"oops"},
		},
		{
			name:     "when json prints result document",
			json:     true,
			result:   &command.Result{Succeeded: true, Message: "No Response"},
			contains: []string{`"succeeded": true`, `"message": "No Response"`},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			jsonOutput = tt.json

			var err error
			output := captureStdout(func() {
				err = printCommandResult(tt.result)
			})

			if tt.wantErr != nil {
				s.ErrorIs(err, tt.wantErr)
				s.True(isFailedResult(err))
			} else {
				s.NoError(err)
			}
			for _, c := range tt.contains {
				s.Contains(output, c)
			}
		})
	}
}

func (s *CmdTestSuite) TestBuildDoctorReport() {
	tests := []struct {
		name       string
		encoding   string
		hostInfoFn func() (*host.InfoStat, error)
		validate   func(*doctorReport)
	}{
		{
			name: "when host info available fills host fields",
			hostInfoFn: func() (*host.InfoStat, error) {
				return &host.InfoStat{
					Hostname:        "web-01",
					Platform:        "ubuntu",
					PlatformVersion: "24.04",
					KernelVersion:   "6.8.0",
					Uptime:          90,
				}, nil
			},
			validate: func(r *doctorReport) {
				s.Equal(string(exec.HostPlatform()), r.Platform)
				s.NotEmpty(r.Shell)
				s.Equal("web-01", r.Hostname)
				s.Equal("1m30s", r.Uptime)
				s.Equal(exec.DefaultTimeout, r.DefaultTimeout)
			},
		},
		{
			name:     "when encoding configured reports override",
			encoding: "shift_jis",
			hostInfoFn: func() (*host.InfoStat, error) {
				return &host.InfoStat{Hostname: "web-01"}, nil
			},
			validate: func(r *doctorReport) {
				s.Equal("shift_jis", r.ConsoleEncoding)
			},
		},
		{
			name: "when host info fails keeps launch fields",
			hostInfoFn: func() (*host.InfoStat, error) {
				return nil, errors.New("no host")
			},
			validate: func(r *doctorReport) {
				s.NotEmpty(r.Shell)
				s.Empty(r.Hostname)
			},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			original := hostInfoFn
			defer func() { hostInfoFn = original }()
			hostInfoFn = tt.hostInfoFn
			appConfig.Exec.ConsoleEncoding = tt.encoding
			exec.SetConsoleEncoding(nil)

			report, err := buildDoctorReport()

			s.Require().NoError(err)
			tt.validate(report)
		})
	}
}

func (s *CmdTestSuite) TestProcessSection() {
	section := processSection([]process.Info{
		{
			PID:                42,
			Name:               "nginx",
			ExecutablePath:     "/usr/sbin/nginx",
			TotalProcessorTime: 1500 * time.Millisecond,
			WorkingSetBytes:    2048,
		},
	})

	s.Equal("Processes (1)", section.Title)
	s.Equal([][]string{{"42", "nginx", "/usr/sbin/nginx", "1.5s", "2.0 KB"}}, section.Rows)
}

func (s *CmdTestSuite) TestBuildVersion() {
	original := version
	defer func() { version = original }()
	version = "v1.2.3"

	info := buildVersion()

	s.Equal("v1.2.3", info.GitVersion)
	s.Equal(serviceName, info.Name)
}

func TestCmdTestSuite(t *testing.T) {
	suite.Run(t, new(CmdTestSuite))
}
