// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strconv"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-rga/internal/fzf"
	"github.com/MKhiriev/go-rga/internal/logger"
	"github.com/MKhiriev/go-rga/internal/mock"
)

func runCommand(t *testing.T, cmd *cobra.Command, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	color.NoColor = true

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	code = Execute(cmd)
	return out.String(), errOut.String(), code
}

func TestFzfCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mock.NewMockRunner(ctrl)

	var got *fzf.Invocation
	runner.EXPECT().
		Output(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inv *fzf.Invocation) ([]byte, error) {
			got = inv
			return []byte("final\nreport.pdf\n"), nil
		})

	cmd := NewFzfCommand(runner, "/usr/bin/rga-fzf", logger.Nop())
	stdout, stderr, code := runCommand(t, cmd, "--rg-params=-i", "--fzf-params=--height 40%", "start")

	assert.Equal(t, ExitSuccess, code)
	assert.Empty(t, stderr)
	assert.Equal(t, "query='final', file='report.pdf'\n", stdout)

	require.NotNil(t, got)
	assert.Equal(t, "fzf", got.Name)
	assert.Contains(t, got.Args, "start")
	assert.Contains(t, got.Args, "--bind=change:reload: /usr/bin/rga --files-with-matches --rga-cache-max-blob-len=10M -i {q}")
	assert.Equal(t, []string{"--height", "40%"}, got.Args[len(got.Args)-2:])
	assert.Contains(t, got.Env, fzf.InstanceEnvVar+"="+strconv.Itoa(os.Getpid()))
}

func TestFzfCommand_Errors(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		setup     func(runner *mock.MockRunner)
		errSubstr string
	}{
		{
			name: "fzf missing",
			args: []string{},
			setup: func(runner *mock.MockRunner) {
				runner.EXPECT().Output(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("executable not found: Please make sure you have fzf installed."))
			},
			errSubstr: "Please make sure you have fzf installed.",
		},
		{
			name: "malformed output",
			args: []string{},
			setup: func(runner *mock.MockRunner) {
				runner.EXPECT().Output(gomock.Any(), gomock.Any()).Return([]byte(""), nil)
			},
			errSubstr: "unexpected fzf output",
		},
		{
			name:      "too many arguments",
			args:      []string{"a", "b"},
			setup:     func(runner *mock.MockRunner) {},
			errSubstr: "accepts at most 1 arg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			runner := mock.NewMockRunner(ctrl)
			tt.setup(runner)

			cmd := NewFzfCommand(runner, "/usr/bin/rga-fzf", logger.Nop())
			_, stderr, code := runCommand(t, cmd, tt.args...)

			assert.Equal(t, ExitFailure, code)
			assert.Contains(t, stderr, "Error:")
			assert.Contains(t, stderr, tt.errSubstr)
		})
	}
}

func TestFzfOpenCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mock.NewMockRunner(ctrl)
	runner.EXPECT().Start("xdg-open", "notes.txt").Return(nil)

	opener := &fzf.Opener{Runner: runner, GOOS: "linux"}
	_, stderr, code := runCommand(t, NewFzfOpenCommand(opener, logger.Nop()), "needle", "notes.txt")

	assert.Equal(t, ExitSuccess, code)
	assert.Empty(t, stderr)
}

func TestFzfOpenCommand_RequiresTwoArgs(t *testing.T) {
	ctrl := gomock.NewController(t)
	opener := &fzf.Opener{Runner: mock.NewMockRunner(ctrl), GOOS: "linux"}

	_, stderr, code := runCommand(t, NewFzfOpenCommand(opener, logger.Nop()), "needle")

	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, stderr, "accepts 2 arg(s), received 1")
}

func TestPrintError(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	PrintError(&buf, errors.New("boom"))
	assert.Equal(t, "Error: boom\n", buf.String())
}
