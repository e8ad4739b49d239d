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

// Package procwatch polls the OS process table for processes by executable
// name, waiting for them to appear or go away.
package procwatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/v4/process"
)

// DefaultPollInterval is how often the process table is checked.
const DefaultPollInterval = 500 * time.Millisecond

// ErrTimeout is returned when a process doesn't appear in time.
var ErrTimeout = errors.New("timed out")

// Checker reports whether a process with the given executable name is
// currently running.
type Checker interface {
	Running(ctx context.Context, name string) (bool, error)
}

// ProcessTable checks the live OS process table.
type ProcessTable struct{}

// Running matches process names exactly, e.g. "launcher.exe".
func (ProcessTable) Running(ctx context.Context, name string) (bool, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to list processes: %w", err)
	}

	for _, p := range procs {
		pname, err := p.NameWithContext(ctx)
		if err != nil {
			// exited between listing and reading, or access denied
			continue
		}
		if pname == name {
			return true, nil
		}
	}
	return false, nil
}

// Watcher polls a Checker on a fixed interval.
type Watcher struct {
	Checker  Checker
	Clock    clockwork.Clock
	Interval time.Duration
}

// NewWatcher returns a Watcher on the real process table and clock.
func NewWatcher() *Watcher {
	return &Watcher{
		Checker:  ProcessTable{},
		Clock:    clockwork.NewRealClock(),
		Interval: DefaultPollInterval,
	}
}

// running treats checker errors as "not running" so a transient failure
// to read the process table doesn't abort a wait.
func (w *Watcher) running(ctx context.Context, name string) bool {
	ok, err := w.Checker.Running(ctx, name)
	if err != nil {
		log.Warn().Err(err).Str("process", name).Msg("process check failed")
		return false
	}
	return ok
}

func (w *Watcher) sleep(ctx context.Context) error {
	return Sleep(ctx, w.Clock, w.Interval)
}

// Sleep waits for d on clock, returning early with ctx.Err() if ctx is
// cancelled first.
func Sleep(ctx context.Context, clock clockwork.Clock, d time.Duration) error {
	timer := clock.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.Chan():
		return nil
	}
}

// WaitStart blocks until name is running. The deadline is checked after
// each sleep, so a zero timeout still gets one check.
func (w *Watcher) WaitStart(ctx context.Context, name string, timeout time.Duration) error {
	start := w.Clock.Now()
	for !w.running(ctx, name) {
		if err := w.sleep(ctx); err != nil {
			return err
		}
		if w.Clock.Since(start) > timeout {
			return fmt.Errorf("%s not running after %s: %w", name, timeout, ErrTimeout)
		}
	}
	log.Debug().Str("process", name).Msg("process is running")
	return nil
}

// WaitExit blocks until name is no longer running. There is no timeout.
// onPoll, if set, runs on every cycle while the process is still alive.
func (w *Watcher) WaitExit(ctx context.Context, name string, onPoll func()) error {
	for w.running(ctx, name) {
		if onPoll != nil {
			onPoll()
		}
		if err := w.sleep(ctx); err != nil {
			return err
		}
	}
	log.Debug().Str("process", name).Msg("process has exited")
	return nil
}
