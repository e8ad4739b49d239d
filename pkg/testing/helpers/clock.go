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
	"time"

	"github.com/jonboulle/clockwork"
)

// MaxClockSteps bounds DriveClock so a poll loop that never exits fails the
// test instead of hanging it.
const MaxClockSteps = 10_000

// DriveClock runs fn on its own goroutine and advances clock by step each
// time fn is parked on a timer, until fn returns. It returns fn's error and
// the number of advances made. If fn is still running after maxSteps
// advances, fn's context is cancelled and ok is false.
func DriveClock(
	clock *clockwork.FakeClock,
	step time.Duration,
	maxSteps int,
	fn func(ctx context.Context) error,
) (steps int, ok bool, err error) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- fn(ctx)
	}()

	for {
		select {
		case fnErr := <-done:
			return steps, true, fnErr
		default:
		}

		waitCtx, waitCancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		blockErr := clock.BlockUntilContext(waitCtx, 1)
		waitCancel()
		if blockErr != nil {
			// fn is busy or already finished
			continue
		}

		if steps >= maxSteps {
			cancel()
			return steps, false, <-done
		}
		clock.Advance(step)
		steps++
	}
}
