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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestOrientation_Values(t *testing.T) {
	t.Parallel()

	// DMDO_DEFAULT, DMDO_90, DMDO_180, DMDO_270
	assert.Equal(t, 0, int(Landscape))
	assert.Equal(t, 1, int(Portrait))
	assert.Equal(t, 2, int(LandscapeFlipped))
	assert.Equal(t, 3, int(PortraitFlipped))
}

func TestOrientation_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "landscape", Landscape.String())
	assert.Equal(t, "portrait", Portrait.String())
	assert.Equal(t, "landscape-flipped", LandscapeFlipped.String())
	assert.Equal(t, "portrait-flipped", PortraitFlipped.String())
	assert.Equal(t, "orientation(7)", Orientation(7).String())
}

func TestOrientation_ValidAndPortrait(t *testing.T) {
	t.Parallel()

	tests := []struct {
		o        Orientation
		valid    bool
		portrait bool
	}{
		{o: Landscape, valid: true, portrait: false},
		{o: Portrait, valid: true, portrait: true},
		{o: LandscapeFlipped, valid: true, portrait: false},
		{o: PortraitFlipped, valid: true, portrait: true},
		{o: Orientation(-1), valid: false, portrait: false},
		{o: Orientation(4), valid: false, portrait: false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, tt.o.Valid(), tt.o.String())
		assert.Equal(t, tt.portrait, tt.o.IsPortrait(), tt.o.String())
	}
}

func TestPortraitFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, PortraitFlipped, PortraitFor(true))
	assert.Equal(t, Portrait, PortraitFor(false))
}

func TestRotatedSize(t *testing.T) {
	t.Parallel()

	w, h := rotatedSize(1920, 1080, Landscape, PortraitFlipped)
	assert.Equal(t, uint32(1080), w)
	assert.Equal(t, uint32(1920), h)

	w, h = rotatedSize(1080, 1920, Portrait, PortraitFlipped)
	assert.Equal(t, uint32(1080), w)
	assert.Equal(t, uint32(1920), h)

	w, h = rotatedSize(1920, 1080, Landscape, LandscapeFlipped)
	assert.Equal(t, uint32(1920), w)
	assert.Equal(t, uint32(1080), h)
}

func TestRotatedSize_RoundTrip(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		width := rapid.Uint32Range(1, 16384).Draw(t, "width")
		height := rapid.Uint32Range(1, 16384).Draw(t, "height")
		from := Orientation(rapid.IntRange(0, 3).Draw(t, "from"))
		to := Orientation(rapid.IntRange(0, 3).Draw(t, "to"))

		w, h := rotatedSize(width, height, from, to)
		backW, backH := rotatedSize(w, h, to, from)

		if backW != width || backH != height {
			t.Fatalf("round trip %s->%s gave %dx%d, want %dx%d", from, to, backW, backH, width, height)
		}
	})
}

func TestDispChangeError(t *testing.T) {
	t.Parallel()

	require.NoError(t, dispChangeError(dispChangeSuccessful))
	require.ErrorIs(t, dispChangeError(dispChangeRestart), ErrRestartRequired)

	for _, code := range []int32{
		dispChangeFailed,
		dispChangeBadMode,
		dispChangeNotUpdated,
		dispChangeBadFlags,
		dispChangeBadParam,
		dispChangeBadDualView,
		-42,
	} {
		err := dispChangeError(code)
		require.Error(t, err, "code %d", code)
		assert.NotErrorIs(t, err, ErrRestartRequired)
	}
}
