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

package command_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/retr0h/xproc/internal/exec"
	execMocks "github.com/retr0h/xproc/internal/exec/mocks"
	"github.com/retr0h/xproc/internal/provider/command"
)

type ShellPublicTestSuite struct {
	suite.Suite

	mockCtrl    *gomock.Controller
	mockExecMgr *execMocks.MockManager
	sut         *command.Executor
	ctx         context.Context
}

func (s *ShellPublicTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockExecMgr = execMocks.NewMockManager(s.mockCtrl)
	s.sut = command.New(slog.Default(), s.mockExecMgr, 0)
	s.ctx = context.Background()
}

func (s *ShellPublicTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *ShellPublicTestSuite) TestShell() {
	tests := []struct {
		name          string
		params        command.ShellParams
		setupMock     func()
		expectError   bool
		errorContains string
		validate      func(*command.Result)
	}{
		{
			name: "successful shell command",
			params: command.ShellParams{
				Command: "echo hello | tr a-z A-Z",
				Cwd:     "/tmp",
			},
			setupMock: func() {
				s.mockExecMgr.EXPECT().
					RunShell("echo hello | tr a-z A-Z", "/tmp").
					Return(exec.NewSucceededResult("HELLO\n"), nil)
			},
			validate: func(r *command.Result) {
				s.True(r.Succeeded)
				s.Equal("HELLO\n", r.Message)
			},
		},
		{
			name: "bounded wait with no response",
			params: command.ShellParams{
				Command: "sleep 60",
				Timeout: 1,
			},
			setupMock: func() {
				s.mockExecMgr.EXPECT().
					RunShellAsync(gomock.Any(), "sleep 60", "", 1).
					Return(exec.NoResponse(), nil)
			},
			validate: func(r *command.Result) {
				s.Equal(exec.NoResponseMessage, r.Message)
			},
		},
		{
			name: "async with zero timeout uses the immediate deadline",
			params: command.ShellParams{
				Command: "echo Hello!",
				Async:   true,
			},
			setupMock: func() {
				s.mockExecMgr.EXPECT().
					RunShellAsync(gomock.Any(), "echo Hello!", "", 0).
					Return(exec.NoResponse(), nil)
			},
			validate: func(r *command.Result) {
				s.False(r.Succeeded)
				s.Equal(exec.NoResponseMessage, r.Message)
			},
		},
		{
			name: "negative timeout falls back to the package default",
			params: command.ShellParams{
				Command: "uptime",
				Timeout: -5,
			},
			setupMock: func() {
				s.mockExecMgr.EXPECT().
					RunShellAsync(gomock.Any(), "uptime", "", exec.DefaultTimeout).
					Return(exec.NewSucceededResult("up 3 days\n"), nil)
			},
			validate: func(r *command.Result) {
				s.Equal("up 3 days\n", r.Message)
			},
		},
		{
			name: "stderr only result is reported as failed",
			params: command.ShellParams{
				Command: "ls /missing",
			},
			setupMock: func() {
				s.mockExecMgr.EXPECT().
					RunShell("ls /missing", "").
					Return(exec.NewErrorResult("ls: /missing: No such file or directory\n"), nil)
			},
			validate: func(r *command.Result) {
				s.False(r.Succeeded)
			},
		},
		{
			name: "shell execution error",
			params: command.ShellParams{
				Command: "bad command",
			},
			setupMock: func() {
				s.mockExecMgr.EXPECT().
					RunShell("bad command", "").
					Return(exec.Result{}, errors.New("shell failed"))
			},
			expectError:   true,
			errorContains: "shell execution failed",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			tt.setupMock()

			result, err := s.sut.Shell(s.ctx, tt.params)

			if tt.expectError {
				s.Error(err)
				s.Contains(err.Error(), tt.errorContains)
				s.Nil(result)
			} else {
				s.NoError(err)
				s.NotNil(result)
				if tt.validate != nil {
					tt.validate(result)
				}
			}
		})
	}
}

func TestShellPublicTestSuite(t *testing.T) {
	suite.Run(t, new(ShellPublicTestSuite))
}
