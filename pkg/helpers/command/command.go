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

// Package command wraps exec.Command so launching the game launcher and
// opening files in the OS shell can be replaced by a mock in tests.
package command

import (
	"context"
	"os/exec"
)

// StartOptions configures how a detached process is started.
type StartOptions struct {
	// Dir is the working directory of the new process. Empty means the
	// current directory.
	Dir string
	// HideWindow suppresses the console window flash of helper processes
	// such as cmd.exe. Ignored outside Windows.
	HideWindow bool
}

// Executor starts external processes.
type Executor interface {
	// Start starts a command without waiting for it to complete.
	Start(ctx context.Context, name string, args ...string) error

	// StartWithOptions starts a command with platform-specific options.
	StartWithOptions(ctx context.Context, opts StartOptions, name string, args ...string) error
}

// RealExecutor runs commands with os/exec.
type RealExecutor struct{}

// Start starts a command without waiting for it to complete.
func (*RealExecutor) Start(ctx context.Context, name string, args ...string) error {
	return startDetached(detachedCommand(ctx, name, args...))
}

// detachedCommand keeps ctx values but not its cancellation, so the
// started program outlives this process being interrupted.
func detachedCommand(ctx context.Context, name string, args ...string) *exec.Cmd {
	return exec.CommandContext(context.WithoutCancel(ctx), name, args...)
}

// startDetached starts cmd and reaps it in the background.
//
//nolint:wrapcheck // exec errors already name the binary
func startDetached(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() {
		_ = cmd.Wait()
	}()
	return nil
}
