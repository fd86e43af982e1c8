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
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/text/encoding"
)

// Platform identifies a host operating system using GOOS names.
type Platform string

// Platforms with a known shell.
const (
	PlatformWindows Platform = "windows"
	PlatformDarwin  Platform = "darwin"
	PlatformLinux   Platform = "linux"
)

// HostPlatform returns the platform the binary is running on.
func HostPlatform() Platform {
	return Platform(runtime.GOOS)
}

// ShellCommand is a shell command string translated into the executable,
// argument string and output codec for one platform.
type ShellCommand struct {
	FileName  string
	Arguments string
	Encoding  encoding.Encoding
}

// ResolveShellCommand wraps command in the native shell of platform.
//
// On Windows the command is handed to cmd.exe untouched, so quoting shell
// metacharacters is the caller's responsibility. On macOS and Linux the
// command runs under bash -c with embedded double quotes escaped; no other
// escaping is applied.
func ResolveShellCommand(
	platform Platform,
	command string,
) (ShellCommand, error) {
	switch platform {
	case PlatformWindows:
		return ShellCommand{
			FileName:  "cmd.exe",
			Arguments: "/c " + command,
			Encoding:  consoleEncodingFor(platform),
		}, nil
	case PlatformDarwin, PlatformLinux:
		escaped := strings.ReplaceAll(command, `"`, `\"`)

		return ShellCommand{
			FileName:  "/bin/bash",
			Arguments: `-c "` + escaped + `"`,
			Encoding:  consoleEncodingFor(platform),
		}, nil
	default:
		return ShellCommand{}, fmt.Errorf("%w: %q", ErrUnsupportedPlatform, platform)
	}
}

// consoleEncodingFor honours the console override on the host platform and
// falls back to the platform default when resolving for another OS.
func consoleEncodingFor(
	platform Platform,
) encoding.Encoding {
	if platform == HostPlatform() {
		return ConsoleEncoding()
	}

	return DefaultConsoleEncoding(platform)
}
