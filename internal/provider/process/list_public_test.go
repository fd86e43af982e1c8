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

package process_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shirou/gopsutil/v4/cpu"
	sysProcess "github.com/shirou/gopsutil/v4/process"
	"github.com/stretchr/testify/suite"

	"github.com/retr0h/xproc/internal/provider/process"
	"github.com/retr0h/xproc/internal/provider/process/mocks"
)

type ListPublicTestSuite struct {
	suite.Suite

	mockCtrl *gomock.Controller
	logger   *slog.Logger
	ctx      context.Context
}

func (s *ListPublicTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, nil))
	s.ctx = context.Background()
}

func (s *ListPublicTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

type fakeProc struct {
	pid  int32
	name string
	exe  string
	user float64
	sys  float64
	rss  uint64
	err  error
}

func (s *ListPublicTestSuite) newMockProc(
	f fakeProc,
) *mocks.MockProc {
	p := mocks.NewMockProc(s.mockCtrl)
	p.EXPECT().PID().Return(f.pid).AnyTimes()
	p.EXPECT().NameWithContext(gomock.Any()).Return(f.name, f.err).AnyTimes()
	p.EXPECT().ExeWithContext(gomock.Any()).Return(f.exe, f.err).AnyTimes()
	if f.err != nil {
		p.EXPECT().TimesWithContext(gomock.Any()).Return(nil, f.err).AnyTimes()
		p.EXPECT().MemoryInfoWithContext(gomock.Any()).Return(nil, f.err).AnyTimes()
	} else {
		p.EXPECT().
			TimesWithContext(gomock.Any()).
			Return(&cpu.TimesStat{User: f.user, System: f.sys}, nil).
			AnyTimes()
		p.EXPECT().
			MemoryInfoWithContext(gomock.Any()).
			Return(&sysProcess.MemoryInfoStat{RSS: f.rss}, nil).
			AnyTimes()
	}

	return p
}

func (s *ListPublicTestSuite) fixture() []process.Proc {
	return []process.Proc{
		s.newMockProc(fakeProc{
			pid:  1,
			name: "systemd",
			exe:  "/usr/lib/systemd/systemd",
			user: 1.5,
			sys:  0.5,
			rss:  4096,
		}),
		s.newMockProc(fakeProc{
			pid:  42,
			name: "nginx: worker",
			exe:  "/usr/sbin/nginx",
			user: 0.25,
			rss:  8192,
		}),
		s.newMockProc(fakeProc{
			pid:  99,
			name: "bash",
			exe:  "/opt/tools/bin/bash",
		}),
		s.newMockProc(fakeProc{
			pid: 100,
			err: errors.New("permission denied"),
		}),
	}
}

func (s *ListPublicTestSuite) TestList() {
	tests := []struct {
		name        string
		search      string
		processesFn func(context.Context) ([]process.Proc, error)
		wantPIDs    []int32
		wantErr     bool
		validate    func([]process.Info)
	}{
		{
			name:     "empty name matches every process",
			search:   "",
			wantPIDs: []int32{1, 42, 99, 100},
		},
		{
			name:     "matches on process name",
			search:   "worker",
			wantPIDs: []int32{42},
		},
		{
			name:     "matches on module name",
			search:   "systemd",
			wantPIDs: []int32{1},
		},
		{
			name:     "matches on executable path",
			search:   "/opt/tools",
			wantPIDs: []int32{99},
		},
		{
			name:     "no match returns empty",
			search:   "postgres",
			wantPIDs: []int32{},
		},
		{
			name:   "snapshot carries cpu time and working set",
			search: "nginx",
			validate: func(infos []process.Info) {
				s.Require().Len(infos, 1)
				s.Equal(process.Info{
					PID:                42,
					Name:               "nginx: worker",
					ExecutablePath:     "/usr/sbin/nginx",
					TotalProcessorTime: 250 * time.Millisecond,
					WorkingSetBytes:    8192,
				}, infos[0])
			},
		},
		{
			name:   "unreadable attributes are empty",
			search: "",
			validate: func(infos []process.Info) {
				s.Require().Len(infos, 4)
				s.Equal(process.Info{PID: 100}, infos[3])
				s.Equal(2*time.Second, infos[0].TotalProcessorTime)
			},
		},
		{
			name:   "listing failure",
			search: "",
			processesFn: func(context.Context) ([]process.Proc, error) {
				return nil, errors.New("proc unavailable")
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			f := process.New(s.logger)
			procs := s.fixture()
			f.ProcessesFn = func(context.Context) ([]process.Proc, error) {
				return procs, nil
			}
			if tt.processesFn != nil {
				f.ProcessesFn = tt.processesFn
			}

			infos, err := f.List(s.ctx, tt.search)

			if tt.wantErr {
				s.Error(err)
				s.Nil(infos)

				return
			}

			s.NoError(err)
			if tt.wantPIDs != nil {
				pids := make([]int32, 0, len(infos))
				for _, info := range infos {
					pids = append(pids, info.PID)
				}
				s.Equal(tt.wantPIDs, pids)
			}
			if tt.validate != nil {
				tt.validate(infos)
			}
		})
	}
}

func (s *ListPublicTestSuite) TestFind() {
	tests := []struct {
		name        string
		search      string
		wantPID     int32
		wantErrType error
	}{
		{
			name:    "returns the first match",
			search:  "s",
			wantPID: 1,
		},
		{
			name:        "no match is not found",
			search:      "postgres",
			wantErrType: process.ErrNotFound,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			f := process.New(s.logger)
			procs := s.fixture()
			f.ProcessesFn = func(context.Context) ([]process.Proc, error) {
				return procs, nil
			}

			info, err := f.Find(s.ctx, tt.search)

			if tt.wantErrType != nil {
				s.ErrorIs(err, tt.wantErrType)
				s.Nil(info)

				return
			}

			s.NoError(err)
			s.Equal(tt.wantPID, info.PID)
		})
	}
}

func (s *ListPublicTestSuite) TestListHost() {
	f := process.New(s.logger)

	infos, err := f.List(s.ctx, "")

	s.Require().NoError(err)
	self := int32(os.Getpid())
	found := false
	for _, info := range infos {
		if info.PID == self {
			found = true
		}
	}
	s.True(found)

	_, err = f.Find(s.ctx, "no-such-process-name-xyz-123")
	s.ErrorIs(err, process.ErrNotFound)
}

func TestListPublicTestSuite(t *testing.T) {
	suite.Run(t, new(ListPublicTestSuite))
}
