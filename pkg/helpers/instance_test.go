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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquireInstanceLock(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), LockFile)

	first, err := AcquireInstanceLock(path)
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := AcquireInstanceLock(path)
	require.ErrorIs(t, err, ErrAlreadyRunning)
	assert.Nil(t, second)

	first.Release()

	third, err := AcquireInstanceLock(path)
	require.NoError(t, err)
	third.Release()
}

func TestAcquireInstanceLock_BadPath(t *testing.T) {
	t.Parallel()

	_, err := AcquireInstanceLock(filepath.Join(t.TempDir(), "missing", "dir", LockFile))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrAlreadyRunning)
}

func TestInstanceLock_ReleaseNil(t *testing.T) {
	t.Parallel()

	var l *InstanceLock
	assert.NotPanics(t, l.Release)
}
