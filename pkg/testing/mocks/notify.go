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

	"github.com/stretchr/testify/mock"
)

// MockNotifier is a testify mock for cli.Notifier.
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Info(title, msg string) {
	m.Called(title, msg)
}

// MockOpener is a testify mock for cli.Opener.
type MockOpener struct {
	mock.Mock
}

func (m *MockOpener) Open(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	//nolint:wrapcheck // mock returns are wrapped by the caller
	return args.Error(0)
}
