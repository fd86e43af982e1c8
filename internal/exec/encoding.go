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
	"io"
	"strings"
	"sync"
	"sync/atomic"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	consoleEncodingOnce sync.Once
	consoleEncoding     atomic.Pointer[encoding.Encoding]
)

// ConsoleEncoding returns the codec used to decode shell command output.
// The platform default is published on first use unless SetConsoleEncoding
// already stored an override.
func ConsoleEncoding() encoding.Encoding {
	consoleEncodingOnce.Do(func() {
		enc := DefaultConsoleEncoding(HostPlatform())
		consoleEncoding.CompareAndSwap(nil, &enc)
	})

	return *consoleEncoding.Load()
}

// SetConsoleEncoding overrides the process-wide console codec. A nil codec
// restores the platform default.
func SetConsoleEncoding(
	enc encoding.Encoding,
) {
	if enc == nil {
		enc = DefaultConsoleEncoding(HostPlatform())
	}

	consoleEncoding.Store(&enc)
}

// DefaultConsoleEncoding returns the console codec for the given platform:
// Shift-JIS on Windows and UTF-8 without a byte-order mark elsewhere.
func DefaultConsoleEncoding(
	platform Platform,
) encoding.Encoding {
	if platform == PlatformWindows {
		return japanese.ShiftJIS
	}

	return unicode.UTF8
}

// LookupEncoding resolves a codec by its WHATWG label, e.g. "shift_jis",
// "utf-8" or "windows-1252".
func LookupEncoding(
	name string,
) (encoding.Encoding, error) {
	enc, err := htmlindex.Get(strings.TrimSpace(name))
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", name, err)
	}

	return enc, nil
}

// EncodingName returns the canonical label of enc, or "unknown".
func EncodingName(
	enc encoding.Encoding,
) string {
	name, err := htmlindex.Name(enc)
	if err != nil {
		return "unknown"
	}

	return name
}

// decode reads r to end-of-stream and decodes it with enc.
func decode(
	enc encoding.Encoding,
	r io.Reader,
) (string, error) {
	if enc == nil {
		enc = unicode.UTF8
	}

	b, err := io.ReadAll(transform.NewReader(r, enc.NewDecoder()))

	return string(b), err
}
