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

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/autoportrait/sdvx-auto-portrait/pkg/cli"
	"github.com/autoportrait/sdvx-auto-portrait/pkg/config"
	"github.com/autoportrait/sdvx-auto-portrait/pkg/display"
	"github.com/autoportrait/sdvx-auto-portrait/pkg/helpers"
	"github.com/autoportrait/sdvx-auto-portrait/pkg/helpers/command"
	"github.com/autoportrait/sdvx-auto-portrait/pkg/portrait"
	"github.com/autoportrait/sdvx-auto-portrait/pkg/procwatch"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfgPath := config.Path()
	cfgDir := filepath.Dir(cfgPath)

	err := helpers.InitLogging(cfgDir, false, []io.Writer{zerolog.ConsoleWriter{Out: os.Stderr}})
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
		return 1
	}

	lock, err := helpers.AcquireInstanceLock(filepath.Join(cfgDir, helpers.LockFile))
	if err != nil {
		return lockFailed(cli.DialogNotifier{}, err)
	}
	defer lock.Release()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	exec := &command.RealExecutor{}
	vals, err := cli.Prepare(ctx, cli.Env{
		Fs:       afero.NewOsFs(),
		Path:     cfgPath,
		Notifier: cli.DialogNotifier{},
		Opener:   helpers.NewShellOpener(exec),
	})
	if errors.Is(err, cli.ErrSetupRequired) {
		return 0
	} else if err != nil {
		return 1
	}

	if vals.DebugLogging {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	screen, err := display.Primary()
	if err != nil {
		log.Error().Err(err).Msg("failed to open primary display")
		_, _ = fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}

	err = portrait.New(vals, portrait.Deps{
		Display:   screen,
		Processes: procwatch.ProcessTable{},
		Exec:      exec,
		Progress:  os.Stdout,
	}).Run(ctx)

	return exitCode(err)
}

// lockFailed tells the user another copy already owns the display. That
// copy carries on, so this one exits cleanly.
func lockFailed(notifier cli.Notifier, err error) int {
	if errors.Is(err, helpers.ErrAlreadyRunning) {
		log.Warn().Msg("another instance is already running")
		notifier.Info("Already Running", "SDVX Auto Portrait is already running.")
		return 0
	}
	log.Error().Err(err).Msg("failed to acquire instance lock")
	_, _ = fmt.Fprintln(os.Stderr, "Error:", err)
	return 1
}

// exitCode treats giving up on the launcher or game and being interrupted
// as a normal end, unless the display couldn't be put back.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, portrait.ErrRestoreFailed):
		return 1
	case errors.Is(err, procwatch.ErrTimeout), errors.Is(err, context.Canceled):
		return 0
	default:
		return 1
	}
}
