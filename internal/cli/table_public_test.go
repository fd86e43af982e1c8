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

package cli_test

import (
	"strings"

	"github.com/stretchr/testify/assert"

	"github.com/retr0h/xproc/internal/cli"
)

func (suite *UITestSuite) TestPrintStyledTable() {
	wideRow := []string{
		strings.Repeat("a", 40),
		strings.Repeat("b", 40),
		strings.Repeat("c", 40),
		strings.Repeat("d", 40),
	}

	tests := []struct {
		name     string
		sections []cli.Section
	}{
		{
			name: "when section with title renders table",
			sections: []cli.Section{
				{
					Title:   "Smoke",
					Headers: []string{"RUN", "STATUS"},
					Rows:    [][]string{{"sync", "ok"}},
				},
			},
		},
		{
			name: "when section without title renders table",
			sections: []cli.Section{
				{
					Headers: []string{"COL1"},
					Rows:    [][]string{{"a"}},
				},
			},
		},
		{
			name: "when table exceeds terminal width scales columns",
			sections: []cli.Section{
				{
					Title:   "Wide",
					Headers: []string{"A", "B", "C", "D"},
					Rows:    [][]string{wideRow},
				},
			},
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			output := captureStdout(func() {
				cli.PrintStyledTable(tc.sections)
			})

			assert.NotEmpty(suite.T(), output)
		})
	}
}

func (suite *UITestSuite) TestStyledColumnWidths() {
	tests := []struct {
		name    string
		headers []string
		rows    [][]string
		want    []int
	}{
		{
			name:    "when no headers returns empty",
			headers: []string{},
			want:    []int{},
		},
		{
			name:    "when header is widest pads header width",
			headers: []string{"STATUS"},
			rows:    [][]string{{"ok"}},
			want:    []int{8},
		},
		{
			name:    "when multi-line cell uses longest line",
			headers: []string{"A"},
			rows:    [][]string{{"ab\nabcdef\nabc"}},
			want:    []int{8},
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			assert.Equal(suite.T(), tc.want, cli.StyledColumnWidths(tc.headers, tc.rows))
		})
	}
}

func (suite *UITestSuite) TestScaleColumnWidths() {
	tests := []struct {
		name      string
		widths    []int
		termWidth int
		want      []int
	}{
		{
			name:      "when table fits widths are unchanged",
			widths:    []int{10, 10},
			termWidth: 80,
			want:      []int{10, 10},
		},
		{
			name:      "when table is too wide widths shrink",
			widths:    []int{100, 100},
			termWidth: 110,
			want:      []int{51, 51},
		},
		{
			name:      "when scaled width is below minimum enforces floor",
			widths:    []int{2, 200},
			termWidth: 50,
			want:      []int{8, 44},
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			assert.Equal(suite.T(), tc.want, cli.ScaleColumnWidths(tc.widths, tc.termWidth))
		})
	}
}
