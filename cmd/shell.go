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
	"strings"

	"github.com/spf13/cobra"

	"github.com/retr0h/xproc/internal/provider/command"
)

var shellCmd = &cobra.Command{
	Use:   "shell <command>",
	Short: "Run a command line through the platform shell",
	Long: `Run a command line through the platform shell: cmd.exe /c on Windows,
/bin/bash -c on Linux and macOS.

Timeout semantics match "xproc run".
`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, _ := cmd.Flags().GetString("cwd")
		timeout, _ := cmd.Flags().GetInt("timeout")
		async, _ := cmd.Flags().GetBool("async")

		return runShell(cmd.Context(), newCommandProvider(), command.ShellParams{
			Command: strings.Join(args, " "),
			Cwd:     resolveCwd(cwd),
			Timeout: timeout,
			Async:   async,
		})
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)

	shellCmd.Flags().String("cwd", "", "Working directory for the command")
	shellCmd.Flags().IntP("timeout", "t", 0, "Seconds to wait for a result (0 waits until exit)")
	shellCmd.Flags().Bool("async", false, "Always use the bounded wait, even with a zero timeout")
}
