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

package mocks

import (
	"context"

	"github.com/autoportrait/sdvx-auto-portrait/pkg/helpers/syncutil"
)

// FakeProcesses implements procwatch.Checker with a scripted answer per
// check. Each call for a name consumes the next scripted state; the last
// state repeats forever. Names with no script are never running.
type FakeProcesses struct {
	scripts map[string][]bool
	checks  map[string]int
	errs    map[string]error
	onCheck func(name string, n int)
	mu      syncutil.Mutex
}

// NewFakeProcesses creates an empty process table.
func NewFakeProcesses() *FakeProcesses {
	return &FakeProcesses{
		scripts: make(map[string][]bool),
		checks:  make(map[string]int),
		errs:    make(map[string]error),
	}
}

// Script sets the sequence of answers for name.
func (f *FakeProcesses) Script(name string, states ...bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scripts[name] = append([]bool(nil), states...)
}

// Fail makes every check of name return err.
func (f *FakeProcesses) Fail(name string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errs[name] = err
}

// OnCheck registers a hook called after every check with the 1-based
// check count for that name. Runs on the checking goroutine.
func (f *FakeProcesses) OnCheck(fn func(name string, n int)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.onCheck = fn
}

// Checks returns how many times name was checked.
func (f *FakeProcesses) Checks(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.checks[name]
}

// Running returns the next scripted state for name.
func (f *FakeProcesses) Running(_ context.Context, name string) (bool, error) {
	f.mu.Lock()
	f.checks[name]++
	n := f.checks[name]
	hook := f.onCheck
	err := f.errs[name]

	running := false
	if script := f.scripts[name]; len(script) > 0 {
		idx := n - 1
		if idx >= len(script) {
			idx = len(script) - 1
		}
		running = script[idx]
	}
	f.mu.Unlock()

	if hook != nil {
		hook(name, n)
	}
	if err != nil {
		return false, err
	}
	return running, nil
}
