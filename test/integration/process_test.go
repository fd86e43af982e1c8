//go:build integration

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

package integration_test

import (
	"os/exec"
	"strconv"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ProcessSmokeSuite struct {
	suite.Suite
}

func (s *ProcessSmokeSuite) TestPsAndKill() {
	sleeper := exec.Command("sleep", "30")
	s.Require().NoError(sleeper.Start())
	defer func() { _ = sleeper.Process.Kill() }()

	stdout, _, exitCode := runCLI(nil, "ps", "sleep", "--json")
	s.Require().Equal(0, exitCode)

	var infos []map[string]any
	s.Require().NoError(parseJSON(stdout, &infos))

	found := false
	for _, info := range infos {
		if info["pid"] == float64(sleeper.Process.Pid) {
			found = true
		}
	}
	s.True(found)

	_, _, exitCode = runCLI(nil, "kill", strconv.Itoa(sleeper.Process.Pid))
	s.Equal(0, exitCode)

	err := sleeper.Wait()
	s.Error(err)
}

func (s *ProcessSmokeSuite) TestDoctorAndVersion() {
	stdout, _, exitCode := runCLI(nil, "doctor", "--json")
	s.Require().Equal(0, exitCode)

	var report map[string]any
	s.Require().NoError(parseJSON(stdout, &report))
	s.NotEmpty(report["shell"])
	s.Equal("utf-8", report["console_encoding"])

	_, _, exitCode = runCLI(nil, "version")
	s.Equal(0, exitCode)
}

func TestProcessSmokeSuite(t *testing.T) {
	suite.Run(t, new(ProcessSmokeSuite))
}
