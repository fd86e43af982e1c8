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
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/retr0h/xproc/internal/exec"
)

type ResultPublicTestSuite struct {
	suite.Suite
}

func (s *ResultPublicTestSuite) TestConstructors() {
	tests := []struct {
		name          string
		result        exec.Result
		wantSucceeded bool
		wantMessage   string
	}{
		{
			name:          "succeeded result carries stdout",
			result:        exec.NewSucceededResult("Hello!\n"),
			wantSucceeded: true,
			wantMessage:   "Hello!\n",
		},
		{
			name:          "error result carries stderr",
			result:        exec.NewErrorResult("boom\n"),
			wantSucceeded: false,
			wantMessage:   "boom\n",
		},
		{
			name:          "no response is an error result",
			result:        exec.NoResponse(),
			wantSucceeded: false,
			wantMessage:   "No Response",
		},
		{
			name:          "zero value is an empty failure",
			result:        exec.Result{},
			wantSucceeded: false,
			wantMessage:   "",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.Equal(tt.wantSucceeded, tt.result.Succeeded())
			s.Equal(tt.wantMessage, tt.result.Message())
		})
	}
}

func (s *ResultPublicTestSuite) TestMarshalJSON() {
	tests := []struct {
		name   string
		result exec.Result
		want   string
	}{
		{
			name:   "when succeeded",
			result: exec.NewSucceededResult("ok\n"),
			want:   `{"succeeded":true,"message":"ok\n"}`,
		},
		{
			name:   "when failed",
			result: exec.NewErrorResult("bad"),
			want:   `{"succeeded":false,"message":"bad"}`,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			b, err := json.Marshal(tt.result)

			s.NoError(err)
			s.JSONEq(tt.want, string(b))
		})
	}
}

func TestResultPublicTestSuite(t *testing.T) {
	suite.Run(t, new(ResultPublicTestSuite))
}
