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

// Package cli gates a session on a usable config, walking the user
// through setup with dialogs when it isn't.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/autoportrait/sdvx-auto-portrait/pkg/config"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// ErrSetupRequired means the user was asked to edit the config file and
// the program should exit without doing anything else.
var ErrSetupRequired = errors.New("config needs to be set up")

const launcherNotFoundMsg = "SDVX Launcher not found.\n" +
	"Please set the path in the config file.\n" +
	"e.g. \"D:/Games/SOUND VOLTEX EXCEED GEAR/launcher/modules/launcher.exe\""

// Notifier shows a blocking message to the user.
type Notifier interface {
	Info(title, msg string)
}

// Opener opens a file with its associated program.
type Opener interface {
	Open(ctx context.Context, path string) error
}

// Env is everything Prepare touches outside the process.
type Env struct {
	Fs       afero.Fs
	Notifier Notifier
	Opener   Opener
	Path     string
}

// Prepare loads the config at env.Path. When the config is missing or
// doesn't point at a launcher, the user is told what to fix, the config
// file is opened for editing and ErrSetupRequired is returned.
func Prepare(ctx context.Context, env Env) (config.Values, error) {
	vals, err := config.Load(env.Fs, env.Path)
	switch {
	case errors.Is(err, config.ErrCreated):
		log.Info().Str("path", env.Path).Msg("created default config")
		env.Notifier.Info("Setup Config", "Please setup the config file.")
		openConfig(ctx, env)
		return vals, ErrSetupRequired
	case err != nil:
		log.Error().Err(err).Str("path", env.Path).Msg("failed to load config")
		env.Notifier.Info("Invalid Config", fmt.Sprintf("Could not read %s:\n%s", env.Path, err))
		openConfig(ctx, env)
		return config.Values{}, fmt.Errorf("failed to load config: %w", err)
	}

	if !vals.LauncherValid(env.Fs) {
		log.Warn().Str("launcher", vals.Launcher()).Msg("launcher path not set or missing")
		env.Notifier.Info("SDVX Launcher Not Found", launcherNotFoundMsg)
		openConfig(ctx, env)
		return vals, ErrSetupRequired
	}

	log.Info().
		Str("launcher", vals.Launcher()).
		Bool("flipped", vals.Flipped).
		Msg("loaded config")
	return vals, nil
}

func openConfig(ctx context.Context, env Env) {
	if err := env.Opener.Open(ctx, env.Path); err != nil {
		log.Error().Err(err).Msg("failed to open config file")
	}
}
