//go:build windows

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
	"unsafe"

	"github.com/rs/zerolog/log"
	"golang.org/x/sys/windows"
)

var (
	user32                       = windows.NewLazySystemDLL("user32.dll")
	procEnumDisplayDevicesW      = user32.NewProc("EnumDisplayDevicesW")
	procEnumDisplaySettingsW     = user32.NewProc("EnumDisplaySettingsW")
	procChangeDisplaySettingsExW = user32.NewProc("ChangeDisplaySettingsExW")
)

const (
	enumCurrentSettings = 0xFFFFFFFF // ENUM_CURRENT_SETTINGS

	displayDevicePrimaryDevice = 0x00000004

	dmDisplayOrientation = 0x00000080
	dmPelsWidth          = 0x00080000
	dmPelsHeight         = 0x00100000
)

// displayDevice mirrors DISPLAY_DEVICEW.
type displayDevice struct {
	Cb           uint32
	DeviceName   [32]uint16
	DeviceString [128]uint16
	StateFlags   uint32
	DeviceID     [128]uint16
	DeviceKey    [128]uint16
}

// devMode mirrors DEVMODEW with the display variant of its unions.
type devMode struct {
	DeviceName         [32]uint16
	SpecVersion        uint16
	DriverVersion      uint16
	Size               uint16
	DriverExtra        uint16
	Fields             uint32
	PositionX          int32
	PositionY          int32
	DisplayOrientation uint32
	DisplayFixedOutput uint32
	Color              int16
	Duplex             int16
	YResolution        int16
	TTOption           int16
	Collate            int16
	FormName           [32]uint16
	LogPixels          uint16
	BitsPerPel         uint32
	PelsWidth          uint32
	PelsHeight         uint32
	DisplayFlags       uint32
	DisplayFrequency   uint32
	ICMMethod          uint32
	ICMIntent          uint32
	MediaType          uint32
	DitherType         uint32
	Reserved1          uint32
	Reserved2          uint32
	PanningWidth       uint32
	PanningHeight      uint32
}

type primaryDisplay struct {
	name *uint16
	id   string
}

// Primary returns the primary monitor.
func Primary() (Display, error) {
	if err := user32.Load(); err != nil {
		return nil, fmt.Errorf("failed to load user32: %w", err)
	}

	for i := uint32(0); ; i++ {
		dd := displayDevice{}
		dd.Cb = uint32(unsafe.Sizeof(dd))
		r, _, _ := procEnumDisplayDevicesW.Call(
			0,
			uintptr(i),
			uintptr(unsafe.Pointer(&dd)), //nolint:gosec // required for Windows API
			0,
		)
		if r == 0 {
			break
		}
		if dd.StateFlags&displayDevicePrimaryDevice == 0 {
			continue
		}

		id := windows.UTF16ToString(dd.DeviceName[:])
		name, err := windows.UTF16PtrFromString(id)
		if err != nil {
			return nil, fmt.Errorf("invalid device name %q: %w", id, err)
		}
		log.Debug().Str("device", id).Msg("found primary display")
		return &primaryDisplay{name: name, id: id}, nil
	}

	return nil, errors.New("no primary display found")
}

func (d *primaryDisplay) currentMode() (devMode, error) {
	dm := devMode{}
	dm.Size = uint16(unsafe.Sizeof(dm))
	r, _, err := procEnumDisplaySettingsW.Call(
		uintptr(unsafe.Pointer(d.name)), //nolint:gosec // required for Windows API
		uintptr(enumCurrentSettings),
		uintptr(unsafe.Pointer(&dm)), //nolint:gosec // required for Windows API
	)
	if r == 0 {
		return dm, fmt.Errorf("EnumDisplaySettings on %s: %w", d.id, err)
	}
	return dm, nil
}

func (d *primaryDisplay) Orientation() (Orientation, error) {
	dm, err := d.currentMode()
	if err != nil {
		return Landscape, err
	}
	return Orientation(dm.DisplayOrientation), nil
}

func (d *primaryDisplay) SetOrientation(o Orientation) error {
	if !o.Valid() {
		return fmt.Errorf("invalid orientation %d", int(o))
	}

	dm, err := d.currentMode()
	if err != nil {
		return err
	}

	from := Orientation(dm.DisplayOrientation)
	dm.PelsWidth, dm.PelsHeight = rotatedSize(dm.PelsWidth, dm.PelsHeight, from, o)
	dm.DisplayOrientation = uint32(o)
	dm.Fields = dmDisplayOrientation | dmPelsWidth | dmPelsHeight

	r, _, _ := procChangeDisplaySettingsExW.Call(
		uintptr(unsafe.Pointer(d.name)), //nolint:gosec // required for Windows API
		uintptr(unsafe.Pointer(&dm)),    //nolint:gosec // required for Windows API
		0,
		0,
		0,
	)
	if err := dispChangeError(int32(r)); err != nil { //nolint:gosec // LONG result
		return fmt.Errorf("rotate %s from %s to %s: %w", d.id, from, o, err)
	}

	log.Debug().
		Str("device", d.id).
		Stringer("from", from).
		Stringer("to", o).
		Msg("changed display orientation")
	return nil
}
