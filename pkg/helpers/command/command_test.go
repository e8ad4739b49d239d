//go:build !windows

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

package command

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealExecutor_Start(t *testing.T) {
	t.Parallel()

	executor := &RealExecutor{}

	t.Run("starts_command_without_waiting", func(t *testing.T) {
		t.Parallel()

		err := executor.Start(context.Background(), "true")

		assert.NoError(t, err)
	})

	t.Run("returns_error_for_nonexistent_command", func(t *testing.T) {
		t.Parallel()

		err := executor.Start(context.Background(), "nonexistent_launcher_binary_12345")

		require.Error(t, err)
	})
}

func TestRealExecutor_StartWithOptions(t *testing.T) {
	t.Parallel()

	executor := &RealExecutor{}

	t.Run("starts_in_working_directory", func(t *testing.T) {
		t.Parallel()

		opts := StartOptions{Dir: t.TempDir(), HideWindow: true}
		err := executor.StartWithOptions(context.Background(), opts, "true")

		assert.NoError(t, err)
	})

	t.Run("returns_error_for_missing_working_directory", func(t *testing.T) {
		t.Parallel()

		opts := StartOptions{Dir: "/nonexistent/launcher/dir/12345"}
		err := executor.StartWithOptions(context.Background(), opts, "true")

		require.Error(t, err)
	})
}

func TestRealExecutor_OutlivesCancelledContext(t *testing.T) {
	t.Parallel()

	executor := &RealExecutor{}

	t.Run("starts_with_already_cancelled_context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		require.NoError(t, executor.Start(ctx, "true"))
		require.NoError(t, executor.StartWithOptions(ctx, StartOptions{}, "true"))
	})

	t.Run("launched_program_keeps_running_after_cancel", func(t *testing.T) {
		t.Parallel()

		marker := filepath.Join(t.TempDir(), "launcher-ran")
		ctx, cancel := context.WithCancel(context.Background())

		err := executor.StartWithOptions(ctx, StartOptions{}, "sh", "-c", "sleep 0.3 && touch "+marker)
		require.NoError(t, err)
		cancel()

		assert.Eventually(t, func() bool {
			_, statErr := os.Stat(marker)
			return statErr == nil
		}, 5*time.Second, 50*time.Millisecond)
	})
}
