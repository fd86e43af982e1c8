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

package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/term"
)

// defaultTermWidth is used when stdout is not a terminal.
const defaultTermWidth = 120

// minStyledColWidth is the narrowest a scaled column may become.
const minStyledColWidth = 8

// PrintStyledTable renders bordered tables sized to the terminal.
func PrintStyledTable(
	sections []Section,
) {
	re := lipgloss.NewRenderer(os.Stdout)

	termWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		termWidth = defaultTermWidth
	}

	var (
		headerStyle  = re.NewStyle().Foreground(White).Bold(true).Align(lipgloss.Center)
		cellStyle    = re.NewStyle().PaddingLeft(1)
		oddRowStyle  = cellStyle.Foreground(Gray)
		evenRowStyle = cellStyle.Foreground(Teal)
		borderStyle  = re.NewStyle().Foreground(Purple)
		paddingStyle = re.NewStyle().Padding(0, 2)
		titleStyle   = re.NewStyle().Bold(true).Foreground(Purple).PaddingLeft(2).PaddingTop(1)
	)

	for _, section := range sections {
		widths := ScaleColumnWidths(StyledColumnWidths(section.Headers, section.Rows), termWidth)

		if section.Title != "" {
			fmt.Println(titleStyle.Render(section.Title) + ":")
		} else {
			fmt.Println()
		}

		t := table.New().
			Border(lipgloss.ThickBorder()).
			BorderStyle(borderStyle).
			StyleFunc(func(
				row int,
				col int,
			) lipgloss.Style {
				style := oddRowStyle
				if row%2 == 0 {
					style = evenRowStyle
				}
				if row == table.HeaderRow {
					style = headerStyle
				}
				if col < len(widths) {
					style = style.Width(widths[col])
				}

				return style
			})

		t.Headers(section.Headers...)
		t.Rows(section.Rows...)

		fmt.Println(paddingStyle.Render(t.String()))
	}
}

// StyledColumnWidths returns the widest line per column plus one cell of
// padding on each side.
func StyledColumnWidths(
	headers []string,
	rows [][]string,
) []int {
	widths := make([]int, len(headers))
	for i, header := range headers {
		widths[i] = len(header)
	}

	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				continue
			}
			for _, line := range strings.Split(cell, "\n") {
				if w := lipgloss.Width(line); w > widths[i] {
					widths[i] = w
				}
			}
		}
	}

	for i := range widths {
		widths[i] += 2
	}

	return widths
}

// ScaleColumnWidths shrinks widths proportionally when the table would not
// fit in termWidth, keeping every column at least minStyledColWidth wide.
func ScaleColumnWidths(
	widths []int,
	termWidth int,
) []int {
	total := 0
	for _, w := range widths {
		total += w
	}
	// Borders and spacing.
	total += len(widths) * 3

	available := termWidth - 4
	if total <= available || total == 0 {
		return widths
	}

	scaled := make([]int, len(widths))
	scale := float64(available) / float64(total)
	for i, w := range widths {
		scaled[i] = max(int(float64(w)*scale), minStyledColWidth)
	}

	return scaled
}
