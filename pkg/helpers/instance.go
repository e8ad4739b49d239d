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
	"errors"
	"fmt"

	"github.com/gofrs/flock"
	"github.com/rs/zerolog/log"
)

// LockFile is the name of the single instance lock file.
const LockFile = "autoportrait.lock"

// ErrAlreadyRunning is returned when another copy holds the instance lock.
var ErrAlreadyRunning = errors.New("another instance is already running")

// InstanceLock keeps two copies of the tool from rotating the display at
// the same time.
type InstanceLock struct {
	lock *flock.Flock
	path string
}

// AcquireInstanceLock takes the lock at path without blocking.
func AcquireInstanceLock(path string) (*InstanceLock, error) {
	fl := flock.New(path)

	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, ErrAlreadyRunning
	}

	log.Debug().Str("path", path).Msg("acquired instance lock")
	return &InstanceLock{lock: fl, path: path}, nil
}

// Release drops the lock. Safe to call on a nil lock.
func (l *InstanceLock) Release() {
	if l == nil {
		return
	}
	if err := l.lock.Unlock(); err != nil {
		log.Warn().Err(err).Str("path", l.path).Msg("failed to release instance lock")
	}
}
