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

import "errors"

var (
	// ErrInvalidArgument is returned when a required command or file name is
	// empty, or when an argument string cannot be split into arguments.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidState is returned when a handle is used out of order: started
	// twice, queried before start, queried after its process was released, or
	// used after disposal.
	ErrInvalidState = errors.New("invalid state")
	// ErrUnsupportedPlatform is returned when no shell is known for the platform.
	ErrUnsupportedPlatform = errors.New("unsupported platform")
	// ErrSpawn is returned when the operating system refuses to start the process.
	ErrSpawn = errors.New("failed to start process")
)
