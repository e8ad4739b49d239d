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

package display

import (
	"errors"
	"fmt"
)

// DISP_CHANGE_* results of ChangeDisplaySettingsEx.
const (
	dispChangeSuccessful  = 0
	dispChangeRestart     = 1
	dispChangeFailed      = -1
	dispChangeBadMode     = -2
	dispChangeNotUpdated  = -3
	dispChangeBadFlags    = -4
	dispChangeBadParam    = -5
	dispChangeBadDualView = -6
)

// ErrRestartRequired means the driver accepted the mode but only applies it
// after a reboot, which leaves the display in its old orientation.
var ErrRestartRequired = errors.New("display change requires a restart")

// dispChangeError maps a ChangeDisplaySettingsEx result to an error.
func dispChangeError(code int32) error {
	switch code {
	case dispChangeSuccessful:
		return nil
	case dispChangeRestart:
		return ErrRestartRequired
	case dispChangeFailed:
		return errors.New("display driver failed the mode change")
	case dispChangeBadMode:
		return errors.New("graphics mode not supported")
	case dispChangeNotUpdated:
		return errors.New("unable to write display settings to the registry")
	case dispChangeBadFlags:
		return errors.New("invalid display change flags")
	case dispChangeBadParam:
		return errors.New("invalid display change parameter")
	case dispChangeBadDualView:
		return errors.New("system is DualView capable")
	default:
		return fmt.Errorf("unknown display change result %d", code)
	}
}

// rotatedSize returns the pixel size for moving from one orientation to
// another. Width and height swap when crossing between the landscape and
// portrait families.
func rotatedSize(width, height uint32, from, to Orientation) (w, h uint32) {
	if from.IsPortrait() != to.IsPortrait() {
		return height, width
	}
	return width, height
}
