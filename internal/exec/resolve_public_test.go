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

package exec_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"

	"github.com/retr0h/xproc/internal/exec"
)

type ResolvePublicTestSuite struct {
	suite.Suite
}

func (s *ResolvePublicTestSuite) TearDownTest() {
	exec.SetConsoleEncoding(nil)
}

func (s *ResolvePublicTestSuite) TestResolveShellCommand() {
	tests := []struct {
		name        string
		platform    exec.Platform
		command     string
		expectError bool
		validate    func(exec.ShellCommand)
	}{
		{
			name:     "windows passes the command to cmd.exe unescaped",
			platform: exec.PlatformWindows,
			command:  `echo "Hello!" & dir`,
			validate: func(c exec.ShellCommand) {
				s.Equal("cmd.exe", c.FileName)
				s.Equal(`/c echo "Hello!" & dir`, c.Arguments)
			},
		},
		{
			name:     "linux wraps the command in bash -c",
			platform: exec.PlatformLinux,
			command:  "echo Hello!",
			validate: func(c exec.ShellCommand) {
				s.Equal("/bin/bash", c.FileName)
				s.Equal(`-c "echo Hello!"`, c.Arguments)
			},
		},
		{
			name:     "linux escapes embedded double quotes only",
			platform: exec.PlatformLinux,
			command:  `echo "a b" | tr a-z A-Z > /dev/null`,
			validate: func(c exec.ShellCommand) {
				s.Equal(`-c "echo \"a b\" | tr a-z A-Z > /dev/null"`, c.Arguments)
			},
		},
		{
			name:     "darwin wraps the command in bash -c",
			platform: exec.PlatformDarwin,
			command:  `say "hi"`,
			validate: func(c exec.ShellCommand) {
				s.Equal("/bin/bash", c.FileName)
				s.Equal(`-c "say \"hi\""`, c.Arguments)
			},
		},
		{
			name:        "unknown platform is unsupported",
			platform:    exec.Platform("plan9"),
			command:     "echo Hello!",
			expectError: true,
		},
		{
			name:        "empty platform is unsupported",
			platform:    exec.Platform(""),
			command:     "echo Hello!",
			expectError: true,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			shell, err := exec.ResolveShellCommand(tt.platform, tt.command)

			if tt.expectError {
				s.ErrorIs(err, exec.ErrUnsupportedPlatform)
				s.Empty(shell.FileName)

				return
			}

			s.NoError(err)
			s.NotNil(shell.Encoding)
			if tt.validate != nil {
				tt.validate(shell)
			}
		})
	}
}

func (s *ResolvePublicTestSuite) TestResolveShellCommandEncoding() {
	tests := []struct {
		name     string
		platform exec.Platform
		setup    func()
		validate func(exec.ShellCommand)
	}{
		{
			name:     "non-host windows uses shift_jis",
			platform: exec.PlatformWindows,
			validate: func(c exec.ShellCommand) {
				if exec.HostPlatform() != exec.PlatformWindows {
					s.Equal(japanese.ShiftJIS, c.Encoding)
				}
			},
		},
		{
			name:     "host platform honours the console override",
			platform: exec.HostPlatform(),
			setup: func() {
				exec.SetConsoleEncoding(unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM))
			},
			validate: func(c exec.ShellCommand) {
				s.Equal(exec.ConsoleEncoding(), c.Encoding)
			},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			if tt.setup != nil {
				tt.setup()
			}

			shell, err := exec.ResolveShellCommand(tt.platform, "echo")
			if err != nil {
				s.ErrorIs(err, exec.ErrUnsupportedPlatform)

				return
			}

			tt.validate(shell)
		})
	}
}

func TestResolvePublicTestSuite(t *testing.T) {
	suite.Run(t, new(ResolvePublicTestSuite))
}
