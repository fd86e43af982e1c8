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
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v4/host"
	"github.com/spf13/cobra"

	"github.com/retr0h/xproc/internal/cli"
	"github.com/retr0h/xproc/internal/exec"
)

// hostInfoFn is the function used to get host info (injectable for testing).
var hostInfoFn = host.Info

// doctorReport describes how processes will be launched on this host.
type doctorReport struct {
	Platform        string `json:"platform"`
	Shell           string `json:"shell"`
	ShellArguments  string `json:"shell_arguments"`
	ConsoleEncoding string `json:"console_encoding"`
	DefaultTimeout  int    `json:"default_timeout"`
	Hostname        string `json:"hostname,omitempty"`
	OS              string `json:"os,omitempty"`
	PlatformVersion string `json:"platform_version,omitempty"`
	KernelVersion   string `json:"kernel_version,omitempty"`
	Uptime          string `json:"uptime,omitempty"`
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Show how commands are launched on this host",
	RunE: func(_ *cobra.Command, _ []string) error {
		report, err := buildDoctorReport()
		if err != nil {
			return err
		}

		if jsonOutput {
			return cli.PrintJSON(report)
		}

		fmt.Println()
		cli.PrintKV("Platform", report.Platform, "Encoding", report.ConsoleEncoding)
		cli.PrintKV("Shell", report.Shell, "Arguments", report.ShellArguments)
		cli.PrintKV("Default Timeout", fmt.Sprintf("%ds", report.DefaultTimeout))
		if report.Hostname != "" {
			cli.PrintKV("Hostname", report.Hostname, "Uptime", report.Uptime)
			cli.PrintKV("OS", report.OS, "Version", report.PlatformVersion)
			cli.PrintKV("Kernel", report.KernelVersion)
		}

		return nil
	},
}

func buildDoctorReport() (*doctorReport, error) {
	applyConsoleEncoding()

	platform := exec.HostPlatform()
	shell, err := exec.ResolveShellCommand(platform, "echo Hello!")
	if err != nil {
		return nil, err
	}

	report := &doctorReport{
		Platform:        string(platform),
		Shell:           shell.FileName,
		ShellArguments:  shell.Arguments,
		ConsoleEncoding: exec.EncodingName(shell.Encoding),
		DefaultTimeout:  appConfig.Exec.DefaultTimeout,
	}

	info, err := hostInfoFn()
	if err != nil {
		logger.Warn("failed to read host info", "error", err)

		return report, nil
	}

	report.Hostname = info.Hostname
	report.OS = info.Platform
	report.PlatformVersion = info.PlatformVersion
	report.KernelVersion = info.KernelVersion
	report.Uptime = (time.Duration(info.Uptime) * time.Second).String()

	return report, nil
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
