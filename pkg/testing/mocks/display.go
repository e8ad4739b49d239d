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
	"github.com/autoportrait/sdvx-auto-portrait/pkg/display"
	"github.com/autoportrait/sdvx-auto-portrait/pkg/helpers/syncutil"
)

// FakeDisplay implements display.Display in memory and records every
// orientation change.
type FakeDisplay struct {
	getErr  error
	setErr  error
	sets    []display.Orientation
	current display.Orientation
	mu      syncutil.Mutex
}

// NewFakeDisplay creates a display currently in orientation o.
func NewFakeDisplay(o display.Orientation) *FakeDisplay {
	return &FakeDisplay{current: o}
}

// Orientation returns the current orientation.
func (d *FakeDisplay) Orientation() (display.Orientation, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.getErr != nil {
		return display.Landscape, d.getErr
	}
	return d.current, nil
}

// SetOrientation records and applies o.
func (d *FakeDisplay) SetOrientation(o display.Orientation) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sets = append(d.sets, o)
	if d.setErr != nil {
		return d.setErr
	}
	d.current = o
	return nil
}

// Revert changes the orientation behind the orchestrator's back, like a
// driver or another program resetting the display. Not recorded.
func (d *FakeDisplay) Revert(o display.Orientation) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.current = o
}

// FailGet makes Orientation return err.
func (d *FakeDisplay) FailGet(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.getErr = err
}

// FailSet makes SetOrientation return err without changing anything.
func (d *FakeDisplay) FailSet(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.setErr = err
}

// Current returns the orientation without going through the error hooks.
func (d *FakeDisplay) Current() display.Orientation {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.current
}

// Sets returns a copy of every orientation passed to SetOrientation.
func (d *FakeDisplay) Sets() []display.Orientation {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]display.Orientation(nil), d.sets...)
}
