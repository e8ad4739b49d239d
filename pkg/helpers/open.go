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

package helpers

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/autoportrait/sdvx-auto-portrait/pkg/helpers/command"
)

// ShellOpener opens files and folders with whatever the desktop associates
// with them, the same as double-clicking in the file manager.
type ShellOpener struct {
	Exec command.Executor
	GOOS string
}

// NewShellOpener returns an opener for the running OS.
func NewShellOpener(exec command.Executor) *ShellOpener {
	return &ShellOpener{Exec: exec, GOOS: runtime.GOOS}
}

// Open hands path to the OS shell without waiting for the viewer to exit.
func (o *ShellOpener) Open(ctx context.Context, path string) error {
	if path == "" {
		return errors.New("no path to open")
	}

	name := openCommand(o.GOOS)
	if err := o.Exec.Start(ctx, name, path); err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	return nil
}

func openCommand(goos string) string {
	switch goos {
	case "windows":
		return "explorer"
	case "darwin":
		return "open"
	default:
		return "xdg-open"
	}
}
