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
	"github.com/spf13/cobra"

	"github.com/retr0h/xproc/internal/provider/command"
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Run an executable with an argument string",
	Long: `Run an executable directly, without a shell. The argument string is
split the way a shell would split it, quotes included.

A zero timeout waits for the process to exit. A positive timeout waits at
most that many seconds and prints "No Response" when it elapses. A negative
timeout uses exec.default_timeout. With --async a zero timeout is a bounded
wait of zero seconds, which reports "No Response" for anything but an
instant exit.
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		arguments, _ := cmd.Flags().GetString("args")
		cwd, _ := cmd.Flags().GetString("cwd")
		timeout, _ := cmd.Flags().GetInt("timeout")
		async, _ := cmd.Flags().GetBool("async")

		return runExec(cmd.Context(), newCommandProvider(), command.ExecParams{
			FileName:  args[0],
			Arguments: arguments,
			Cwd:       resolveCwd(cwd),
			Timeout:   timeout,
			Async:     async,
		})
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("args", "a", "", "Argument string passed to the executable")
	runCmd.Flags().String("cwd", "", "Working directory for the process")
	runCmd.Flags().IntP("timeout", "t", 0, "Seconds to wait for a result (0 waits until exit)")
	runCmd.Flags().Bool("async", false, "Always use the bounded wait, even with a zero timeout")
}
