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

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/autoportrait/sdvx-auto-portrait/pkg/helpers"
	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const (
	// CfgFile is the config file name, kept next to the executable.
	CfgFile = "config.json"
	// CfgEnv overrides the full config file path when set.
	CfgEnv = "SDVX_PORTRAIT_CFG"

	DefaultLauncherProcess = "launcher.exe"
	DefaultGameProcess     = "errorreporter.exe"
)

var (
	// ErrCreated is returned by Load when no config existed and a default
	// one was written in its place.
	ErrCreated = errors.New("config file created with defaults")
	// ErrInvalid wraps decode and validation failures.
	ErrInvalid = errors.New("invalid config")
)

// Values is the flat config record. JSON keys are upper case to stay
// compatible with existing config files.
type Values struct {
	LauncherPath        *string `json:"LAUNCHER_PATH"`
	LauncherProcess     string  `json:"LAUNCHER_PROCESS,omitempty" validate:"required"`
	GameProcess         string  `json:"GAME_PROCESS,omitempty" validate:"required"`
	WaitLauncherTimeout int     `json:"WAIT_LAUNCHER_TIMEOUT" validate:"min=0,max=2147483647"`
	WaitGameTimeout     int     `json:"WAIT_GAME_TIMEOUT" validate:"min=0,max=2147483647"`
	Flipped             bool    `json:"FLIPPED"`
	DebugLogging        bool    `json:"DEBUG_LOGGING,omitempty"`
}

// Defaults returns the values used for keys missing from the file.
func Defaults() Values {
	return Values{
		LauncherPath:        nil,
		WaitLauncherTimeout: 60,
		WaitGameTimeout:     5,
		Flipped:             true,
		LauncherProcess:     DefaultLauncherProcess,
		GameProcess:         DefaultGameProcess,
	}
}

// defaultFile is what gets written when no config exists. Only the four
// user facing keys are included, with the launcher path left null.
type defaultFile struct {
	LauncherPath        *string `json:"LAUNCHER_PATH"`
	WaitLauncherTimeout int     `json:"WAIT_LAUNCHER_TIMEOUT"`
	WaitGameTimeout     int     `json:"WAIT_GAME_TIMEOUT"`
	Flipped             bool    `json:"FLIPPED"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Path returns the config file location: the CfgEnv override if set,
// otherwise config.json next to the executable.
func Path() string {
	if p := os.Getenv(CfgEnv); p != "" {
		log.Debug().Msgf("env config path: %s", p)
		return p
	}
	return filepath.Join(helpers.ExeDir(), CfgFile)
}

// Load reads the config at path. If the file doesn't exist, a default one
// is written and ErrCreated is returned alongside the defaults.
func Load(fs afero.Fs, path string) (Values, error) {
	exists, err := afero.Exists(fs, path)
	if err != nil {
		return Values{}, fmt.Errorf("failed to stat config file: %w", err)
	}

	if !exists {
		log.Info().Str("path", path).Msg("saving new default config to disk")
		if err := WriteDefaults(fs, path); err != nil {
			return Values{}, err
		}
		return Defaults(), ErrCreated
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return Values{}, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes raw JSON on top of the defaults and validates the result.
func Parse(data []byte) (Values, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return Values{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	if err := checkWholeSeconds(raw); err != nil {
		return Values{}, err
	}

	vals := Defaults()
	var md mapstructure.Metadata
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &vals,
		TagName:          "json",
		WeaklyTypedInput: true,
		Metadata:         &md,
	})
	if err != nil {
		return Values{}, fmt.Errorf("failed to create decoder: %w", err)
	}

	if err := decoder.Decode(raw); err != nil {
		return Values{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	if len(md.Unused) > 0 {
		sort.Strings(md.Unused)
		log.Warn().Strs("keys", md.Unused).Msg("ignoring unknown config keys")
	}

	if err := validate.Struct(vals); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			msgs := make([]string, 0, len(validationErrors))
			for _, fe := range validationErrors {
				msgs = append(msgs, formatValidationError(fe))
			}
			return Values{}, fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
		}
		return Values{}, fmt.Errorf("validation failed: %w", err)
	}

	return vals, nil
}

// WriteDefaults writes the default config to path, creating its directory.
func WriteDefaults(fs afero.Fs, path string) error {
	d := Defaults()
	data, err := json.MarshalIndent(defaultFile{
		LauncherPath:        d.LauncherPath,
		WaitLauncherTimeout: d.WaitLauncherTimeout,
		WaitGameTimeout:     d.WaitGameTimeout,
		Flipped:             d.Flipped,
	}, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := fs.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := afero.WriteFile(fs, path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// LauncherValid reports whether the launcher path is set and exists.
func (v *Values) LauncherValid(fs afero.Fs) bool {
	if v.LauncherPath == nil || *v.LauncherPath == "" {
		return false
	}
	exists, err := afero.Exists(fs, *v.LauncherPath)
	if err != nil {
		log.Debug().Err(err).Msg("failed to stat launcher path")
		return false
	}
	return exists
}

// Launcher returns the launcher path, or an empty string when unset.
func (v *Values) Launcher() string {
	if v.LauncherPath == nil {
		return ""
	}
	return *v.LauncherPath
}

// LauncherTimeout is how long to wait for the launcher process to appear.
func (v *Values) LauncherTimeout() time.Duration {
	return time.Duration(v.WaitLauncherTimeout) * time.Second
}

// GameTimeout is how long to wait for the game process to appear.
func (v *Values) GameTimeout() time.Duration {
	return time.Duration(v.WaitGameTimeout) * time.Second
}

func formatValidationError(fe validator.FieldError) string {
	key := jsonKey(fe.StructField())
	switch fe.Tag() {
	case "min":
		return fmt.Sprintf("%s must be at least %s", key, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", key, fe.Param())
	case "required":
		return key + " must not be empty"
	default:
		return fmt.Sprintf("%s failed %s validation", key, fe.Tag())
	}
}

// checkWholeSeconds rejects fractional timeouts, which the weakly typed
// decode would otherwise truncate.
func checkWholeSeconds(raw map[string]any) error {
	for _, key := range []string{"WAIT_LAUNCHER_TIMEOUT", "WAIT_GAME_TIMEOUT"} {
		n, ok := raw[key].(float64)
		if ok && n != math.Trunc(n) {
			return fmt.Errorf("%w: %s must be a whole number of seconds", ErrInvalid, key)
		}
	}
	return nil
}

func jsonKey(field string) string {
	switch field {
	case "WaitLauncherTimeout":
		return "WAIT_LAUNCHER_TIMEOUT"
	case "WaitGameTimeout":
		return "WAIT_GAME_TIMEOUT"
	case "LauncherProcess":
		return "LAUNCHER_PROCESS"
	case "GameProcess":
		return "GAME_PROCESS"
	default:
		return field
	}
}
