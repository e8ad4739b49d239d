// SDVX Auto Portrait
// Copyright (c) 2026 The SDVX Auto Portrait Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of SDVX Auto Portrait.
//
// SDVX Auto Portrait is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// SDVX Auto Portrait is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with SDVX Auto Portrait.  If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/autoportrait/sdvx-auto-portrait/pkg/helpers"
	"github.com/autoportrait/sdvx-auto-portrait/pkg/portrait"
	"github.com/autoportrait/sdvx-auto-portrait/pkg/procwatch"
	"github.com/autoportrait/sdvx-auto-portrait/pkg/testing/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestExitCode(t *testing.T) {
	t.Parallel()

	timeout := fmt.Errorf("%w: %w", portrait.ErrGameStartTimeout, procwatch.ErrTimeout)
	restore := fmt.Errorf("%w: %w", portrait.ErrRestoreFailed, errors.New("bad mode"))

	tests := []struct {
		err  error
		name string
		want int
	}{
		{name: "success", err: nil, want: 0},
		{name: "timeout", err: timeout, want: 0},
		{name: "interrupted", err: context.Canceled, want: 0},
		{name: "launch failed", err: errors.New("failed to start launcher"), want: 1},
		{name: "restore failed", err: restore, want: 1},
		{name: "timeout then restore failed", err: errors.Join(timeout, restore), want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}

func TestLockFailed_AlreadyRunningShowsDialog(t *testing.T) {
	t.Parallel()

	notifier := &mocks.MockNotifier{}
	notifier.On("Info", "Already Running", mock.MatchedBy(func(msg string) bool {
		return strings.Contains(msg, "already running")
	})).Once()

	code := lockFailed(notifier, fmt.Errorf("lock: %w", helpers.ErrAlreadyRunning))

	assert.Equal(t, 0, code)
	notifier.AssertExpectations(t)
}

func TestLockFailed_OtherErrors(t *testing.T) {
	t.Parallel()

	notifier := &mocks.MockNotifier{}

	code := lockFailed(notifier, errors.New("acquire lock: permission denied"))

	assert.Equal(t, 1, code)
	notifier.AssertNotCalled(t, "Info", mock.Anything, mock.Anything)
}
