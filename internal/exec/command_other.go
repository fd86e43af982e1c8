//go:build !windows

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
	"os/exec"
	"strings"
	"unicode"
)

// newCommand builds an unstarted command. The argument string is split into
// argv with Windows command-line rules so the same string means the same
// thing on every platform; showWindow has no meaning here.
func newCommand(
	fileName string,
	arguments string,
	_ bool,
) (*exec.Cmd, error) {
	return exec.Command(fileName, splitArguments(arguments)...), nil
}

// splitArguments splits a single argument string into argv.
//
// Arguments are separated by unquoted whitespace. A double quote toggles a
// quoted section and "" inside one yields a literal quote. Backslashes are
// literal unless they precede a double quote: 2n backslashes before a quote
// yield n backslashes and the quote toggles, 2n+1 yield n backslashes and a
// literal quote. Single quotes and shell operators carry no meaning. An
// unterminated quote runs to the end of the string.
func splitArguments(
	arguments string,
) []string {
	var args []string
	runes := []rune(arguments)
	i := 0

	for i < len(runes) {
		for i < len(runes) && unicode.IsSpace(runes[i]) {
			i++
		}
		if i == len(runes) {
			break
		}

		var sb strings.Builder
		inQuotes := false
		for i < len(runes) && (inQuotes || !unicode.IsSpace(runes[i])) {
			switch runes[i] {
			case '\\':
				n := 0
				for i < len(runes) && runes[i] == '\\' {
					n++
					i++
				}
				if i < len(runes) && runes[i] == '"' {
					sb.WriteString(strings.Repeat(`\`, n/2))
					if n%2 == 1 {
						sb.WriteRune('"')
						i++
					}
				} else {
					sb.WriteString(strings.Repeat(`\`, n))
				}
			case '"':
				if inQuotes && i+1 < len(runes) && runes[i+1] == '"' {
					sb.WriteRune('"')
					i += 2
				} else {
					inQuotes = !inQuotes
					i++
				}
			default:
				sb.WriteRune(runes[i])
				i++
			}
		}
		args = append(args, sb.String())
	}

	return args
}
