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

import "encoding/json"

// NoResponseMessage is the message of the result returned when a bounded wait
// elapses before the process produced its result.
const NoResponseMessage = "No Response"

// Result is the classified outcome of a process run. The zero value is an
// unsuccessful result with an empty message.
type Result struct {
	succeeded bool
	message   string
}

// NewSucceededResult returns a successful result carrying captured stdout.
func NewSucceededResult(
	message string,
) Result {
	return Result{succeeded: true, message: message}
}

// NewErrorResult returns a failed result carrying captured stderr or a
// failure description.
func NewErrorResult(
	message string,
) Result {
	return Result{succeeded: false, message: message}
}

// NoResponse returns the result reported when a bounded wait times out.
func NoResponse() Result {
	return NewErrorResult(NoResponseMessage)
}

// Succeeded reports whether the run was classified as successful.
func (r Result) Succeeded() bool {
	return r.succeeded
}

// Message returns stdout on success and stderr on failure.
func (r Result) Message() string {
	return r.message
}

// MarshalJSON encodes the result as {"succeeded":...,"message":...}.
func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Succeeded bool   `json:"succeeded"`
		Message   string `json:"message"`
	}{
		Succeeded: r.succeeded,
		Message:   r.message,
	})
}

// classify applies the output rule: stderr is only surfaced, as a failure,
// when stdout is empty. The exit status is never consulted.
func classify(
	stdout string,
	stderr string,
) Result {
	if stdout == "" && stderr != "" {
		return NewErrorResult(stderr)
	}

	return NewSucceededResult(stdout)
}
