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

// Package display reads and changes the rotation of the primary monitor.
package display

import (
	"errors"
	"fmt"
)

// ErrUnsupported is returned by Primary on platforms without a display
// rotation backend.
var ErrUnsupported = errors.New("display rotation is not supported on this platform")

// Orientation matches the DMDO_* values of the Windows display API.
type Orientation int

const (
	// Landscape is the unrotated home orientation.
	Landscape Orientation = iota
	// Portrait is rotated 90 degrees.
	Portrait
	// LandscapeFlipped is rotated 180 degrees.
	LandscapeFlipped
	// PortraitFlipped is rotated 270 degrees, i.e. portrait upside down.
	PortraitFlipped
)

func (o Orientation) String() string {
	switch o {
	case Landscape:
		return "landscape"
	case Portrait:
		return "portrait"
	case LandscapeFlipped:
		return "landscape-flipped"
	case PortraitFlipped:
		return "portrait-flipped"
	default:
		return fmt.Sprintf("orientation(%d)", int(o))
	}
}

// Valid reports whether o is one of the four known orientations.
func (o Orientation) Valid() bool {
	return o >= Landscape && o <= PortraitFlipped
}

// IsPortrait reports whether width and height are swapped relative to the
// panel's native landscape mode.
func (o Orientation) IsPortrait() bool {
	return o == Portrait || o == PortraitFlipped
}

// PortraitFor picks the portrait variant for the flipped setting.
func PortraitFor(flipped bool) Orientation {
	if flipped {
		return PortraitFlipped
	}
	return Portrait
}

// Display is a monitor whose rotation can be read and changed.
type Display interface {
	Orientation() (Orientation, error)
	SetOrientation(o Orientation) error
}
