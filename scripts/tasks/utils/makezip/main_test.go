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
	"archive/zip"
	"bytes"
	"encoding/json"
	"io"
	"path/filepath"
	"sort"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	buildDir = "/build"
	appBin   = "sdvx-auto-portrait.exe"
	zipName  = "sdvx-auto-portrait-windows.zip"
)

func newBuildFs(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(buildDir, 0o755))
	require.NoError(t, afero.WriteFile(fs, filepath.Join(buildDir, appBin), []byte("MZ"), 0o755))
	return fs
}

func readZip(t *testing.T, fs afero.Fs) map[string][]byte {
	t.Helper()
	data, err := afero.ReadFile(fs, filepath.Join(buildDir, zipName))
	require.NoError(t, err)

	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	out := make(map[string][]byte)
	for _, f := range r.File {
		rc, err := f.Open()
		require.NoError(t, err)
		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		out[f.Name] = content
	}
	return out
}

func names(files map[string][]byte) []string {
	out := make([]string, 0, len(files))
	for name := range files {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func TestBuild(t *testing.T) {
	t.Parallel()

	fs := newBuildFs(t)
	require.NoError(t, afero.WriteFile(fs, "/src/LICENSE", []byte("GPL"), 0o644))

	require.NoError(t, build(fs, buildDir, appBin, zipName, "/src/LICENSE"))

	files := readZip(t, fs)
	assert.Equal(t, []string{"LICENSE.txt", "README.txt", "config.json", appBin}, names(files))
	assert.Equal(t, []byte("MZ"), files[appBin])
	assert.Equal(t, []byte("GPL"), files["LICENSE.txt"])
	assert.Contains(t, string(files["README.txt"]), "LAUNCHER_PATH")

	var cfg map[string]any
	require.NoError(t, json.Unmarshal(files["config.json"], &cfg))
	assert.Equal(t, map[string]any{
		"LAUNCHER_PATH":         nil,
		"WAIT_LAUNCHER_TIMEOUT": float64(60),
		"WAIT_GAME_TIMEOUT":     float64(5),
		"FLIPPED":               true,
	}, cfg)
}

func TestBuild_WithoutLicense(t *testing.T) {
	t.Parallel()

	fs := newBuildFs(t)
	require.NoError(t, build(fs, buildDir, appBin, zipName, "/src/LICENSE"))

	files := readZip(t, fs)
	assert.NotContains(t, files, "LICENSE.txt")
}

func TestBuild_ReplacesOldZip(t *testing.T) {
	t.Parallel()

	fs := newBuildFs(t)
	require.NoError(t, afero.WriteFile(fs, filepath.Join(buildDir, zipName), []byte("stale"), 0o644))

	require.NoError(t, build(fs, buildDir, appBin, zipName, "/src/LICENSE"))
	assert.Contains(t, readZip(t, fs), appBin)
}

func TestBuild_MissingInputs(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	err := build(fs, buildDir, appBin, zipName, "/src/LICENSE")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "build directory")

	require.NoError(t, fs.MkdirAll(buildDir, 0o755))
	err = build(fs, buildDir, appBin, zipName, "/src/LICENSE")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}
