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

// Package portrait runs one play session. It starts the launcher, waits for
// it to hand over to the game and keeps the screen in portrait while the
// game is running. The screen is put back the way it was afterwards.
package portrait

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"time"

	"github.com/autoportrait/sdvx-auto-portrait/pkg/config"
	"github.com/autoportrait/sdvx-auto-portrait/pkg/display"
	"github.com/autoportrait/sdvx-auto-portrait/pkg/helpers/command"
	"github.com/autoportrait/sdvx-auto-portrait/pkg/procwatch"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// GameSpawnDelay is how long to wait after the launcher closes before
// looking for the game process.
const GameSpawnDelay = 5 * time.Second

// Timeout kinds. Both are returned wrapped around a procwatch.ErrTimeout.
var (
	ErrLauncherStartTimeout = errors.New("timeout waiting for launcher to start")
	ErrGameStartTimeout     = errors.New("timeout waiting for game to start")
)

// ErrRestoreFailed means the display may have been left rotated.
var ErrRestoreFailed = errors.New("failed to restore display orientation")

// Deps are the OS facing pieces the orchestrator drives.
type Deps struct {
	Display   display.Display
	// Processes defaults to the live process table.
	Processes procwatch.Checker
	Exec      command.Executor
	Clock     clockwork.Clock
	// Progress receives the plain "Launcher started." style status lines.
	// Nil discards them.
	Progress io.Writer
	// PollInterval defaults to procwatch.DefaultPollInterval.
	PollInterval time.Duration
	// GOOS selects how the launcher is started. Defaults to runtime.GOOS.
	GOOS string
}

// Orchestrator runs the launcher/game sequence for one config.
type Orchestrator struct {
	progress io.Writer
	display  display.Display
	exec     command.Executor
	watcher  *procwatch.Watcher
	clock    clockwork.Clock
	goos     string
	cfg      config.Values
}

// New creates an orchestrator. The config is copied and never changes.
//
//nolint:gocritic // config struct copied for immutability
func New(cfg config.Values, deps Deps) *Orchestrator {
	clock := deps.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	interval := deps.PollInterval
	if interval <= 0 {
		interval = procwatch.DefaultPollInterval
	}
	goos := deps.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}
	progress := deps.Progress
	if progress == nil {
		progress = io.Discard
	}

	watcher := procwatch.NewWatcher()
	if deps.Processes != nil {
		watcher.Checker = deps.Processes
	}
	watcher.Clock = clock
	watcher.Interval = interval

	return &Orchestrator{
		cfg:      cfg,
		display:  deps.Display,
		exec:     deps.Exec,
		clock:    clock,
		goos:     goos,
		progress: progress,
		watcher:  watcher,
	}
}

// Run plays one session. The display is always returned to the
// orientation it had when Run started, even when the session ends early.
//
// Timeouts waiting for the launcher or the game are logged and returned
// after the restore; callers should treat them as a normal end of session.
func (o *Orchestrator) Run(ctx context.Context) (err error) {
	original, err := o.display.Orientation()
	if err != nil {
		return fmt.Errorf("failed to read display orientation: %w", err)
	}
	log.Info().Stringer("orientation", original).Msg("captured starting display orientation")

	defer func() {
		if restoreErr := o.restore(original); restoreErr != nil {
			err = errors.Join(err, restoreErr)
		}
	}()

	err = o.session(ctx, original)
	switch {
	case errors.Is(err, procwatch.ErrTimeout):
		log.Warn().Err(err).Msg("gave up waiting, restoring display")
		o.say(err.Error())
	case errors.Is(err, context.Canceled):
		log.Info().Msg("interrupted, restoring display")
	case err != nil:
		log.Error().Err(err).Msg("session failed")
	}
	return err
}

func (o *Orchestrator) session(ctx context.Context, original display.Orientation) error {
	if err := o.startLauncher(ctx); err != nil {
		return err
	}

	if err := o.watcher.WaitStart(ctx, o.cfg.LauncherProcess, o.cfg.LauncherTimeout()); err != nil {
		if errors.Is(err, procwatch.ErrTimeout) {
			return fmt.Errorf("%w: %w", ErrLauncherStartTimeout, err)
		}
		return err
	}
	o.say("Launcher started.")

	if err := o.watcher.WaitExit(ctx, o.cfg.LauncherProcess, nil); err != nil {
		return err
	}
	o.say("Launcher closed.")

	portrait := display.PortraitFor(o.cfg.Flipped)
	if original == display.Landscape {
		o.rotate(portrait)
	}

	if err := procwatch.Sleep(ctx, o.clock, GameSpawnDelay); err != nil {
		return err
	}

	if err := o.watcher.WaitStart(ctx, o.cfg.GameProcess, o.cfg.GameTimeout()); err != nil {
		if errors.Is(err, procwatch.ErrTimeout) {
			return fmt.Errorf("%w: %w", ErrGameStartTimeout, err)
		}
		return err
	}
	o.say("Game started.")

	err := o.watcher.WaitExit(ctx, o.cfg.GameProcess, func() {
		o.keepPortrait(portrait)
	})
	if err != nil {
		return err
	}
	o.say("Game closed.")

	return nil
}

// startLauncher starts the launcher detached from this process, from its
// own directory so it finds its modules.
func (o *Orchestrator) startLauncher(ctx context.Context) error {
	path := o.cfg.Launcher()
	name, args := launchCommand(o.goos, path)
	opts := command.StartOptions{
		Dir:        filepath.Dir(path),
		HideWindow: true,
	}

	log.Info().Str("path", path).Msg("starting launcher")
	if err := o.exec.StartWithOptions(ctx, opts, name, args...); err != nil {
		return fmt.Errorf("failed to start launcher %s: %w", path, err)
	}
	return nil
}

// launchCommand goes through the shell on Windows so the launcher gets
// the same treatment as a double-click, including UAC elevation prompts.
func launchCommand(goos, path string) (name string, args []string) {
	if goos == "windows" {
		return "cmd", []string{"/c", "start", "", path}
	}
	return path, nil
}

// rotate logs failures instead of returning them. A failed rotation
// doesn't end the session.
func (o *Orchestrator) rotate(to display.Orientation) {
	if err := o.display.SetOrientation(to); err != nil {
		log.Error().Err(err).Stringer("orientation", to).Msg("failed to rotate display")
		return
	}
	log.Info().Stringer("orientation", to).Msg("rotated display")
}

// keepPortrait puts portrait back if something reset the display to its
// unrotated state while the game was running.
func (o *Orchestrator) keepPortrait(portrait display.Orientation) {
	current, err := o.display.Orientation()
	if err != nil {
		log.Warn().Err(err).Msg("failed to read display orientation")
		return
	}
	if current != display.Landscape {
		return
	}
	log.Info().Msg("display reverted to landscape during play")
	o.rotate(portrait)
}

func (o *Orchestrator) restore(original display.Orientation) error {
	current, err := o.display.Orientation()
	if err == nil && current == original {
		log.Debug().Stringer("orientation", original).Msg("display already in starting orientation")
		return nil
	}

	if err := o.display.SetOrientation(original); err != nil {
		log.Error().Err(err).Stringer("orientation", original).Msg("failed to restore display")
		return fmt.Errorf("%w: %w", ErrRestoreFailed, err)
	}
	log.Info().Stringer("orientation", original).Msg("restored display orientation")
	return nil
}

func (o *Orchestrator) say(msg string) {
	_, _ = fmt.Fprintln(o.progress, msg)
}
