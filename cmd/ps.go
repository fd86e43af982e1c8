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
	"strconv"

	"github.com/spf13/cobra"

	"github.com/retr0h/xproc/internal/cli"
	"github.com/retr0h/xproc/internal/provider/process"
)

var psCmd = &cobra.Command{
	Use:   "ps [name]",
	Short: "List processes matching a name",
	Long: `List processes whose name, module name or executable path contains
the given name. Without a name every process is listed.
`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		first, _ := cmd.Flags().GetBool("first")

		var name string
		if len(args) == 1 {
			name = args[0]
		}

		infos, err := listProcesses(cmd.Context(), process.New(logger), name, first)
		if err != nil {
			return err
		}

		if jsonOutput {
			return cli.PrintJSON(infos)
		}

		cli.PrintCompactTable([]cli.Section{processSection(infos)})

		return nil
	},
}

func processSection(
	infos []process.Info,
) cli.Section {
	rows := make([][]string, 0, len(infos))
	for _, info := range infos {
		rows = append(rows, []string{
			strconv.FormatInt(int64(info.PID), 10),
			info.Name,
			info.ExecutablePath,
			cli.FormatDuration(info.TotalProcessorTime),
			cli.FormatBytes(info.WorkingSetBytes),
		})
	}

	return cli.Section{
		Title:   fmt.Sprintf("Processes (%d)", len(infos)),
		Headers: []string{"PID", "NAME", "PATH", "CPU TIME", "WORKING SET"},
		Rows:    rows,
	}
}

func init() {
	rootCmd.AddCommand(psCmd)

	psCmd.Flags().Bool("first", false, "Only show the first match")
}
