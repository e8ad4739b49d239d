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

// Command makezip packages a Windows build for release: the executable, a
// default config.json, a README and the license.
package main

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/autoportrait/sdvx-auto-portrait/pkg/config"
	"github.com/spf13/afero"
)

const readme = `SDVX Auto Portrait

1. Run the executable once. It creates config.json and opens it.
2. Set LAUNCHER_PATH to the SDVX launcher, for example
   "D:/Games/SOUND VOLTEX EXCEED GEAR/launcher/modules/launcher.exe".
3. Start the game through this executable from now on.

config.json keys:
  LAUNCHER_PATH          path to launcher.exe
  WAIT_LAUNCHER_TIMEOUT  seconds to wait for the launcher to start
  WAIT_GAME_TIMEOUT      seconds to wait for the game after the launcher closes
  FLIPPED                rotate to portrait upside down
`

func main() {
	if len(os.Args) < 4 {
		_, _ = fmt.Println("Usage: go run ./scripts/tasks/utils/makezip <build_dir> <app_bin> <zip_name>")
		os.Exit(1)
	}

	if err := build(afero.NewOsFs(), os.Args[1], os.Args[2], os.Args[3], "LICENSE"); err != nil {
		_, _ = fmt.Printf("Error creating zip: %v\n", err)
		os.Exit(1)
	}
}

// build writes zipName into buildDir. The license is optional so
// snapshot builds can be packaged from a bare checkout.
func build(fs afero.Fs, buildDir, appBin, zipName, licensePath string) error {
	if ok, _ := afero.DirExists(fs, buildDir); !ok {
		return fmt.Errorf("build directory %s does not exist", buildDir)
	}

	appPath := filepath.Join(buildDir, appBin)
	if ok, _ := afero.Exists(fs, appPath); !ok {
		return fmt.Errorf("binary %s does not exist", appPath)
	}

	cfgPath := filepath.Join(buildDir, config.CfgFile)
	if err := config.WriteDefaults(fs, cfgPath); err != nil {
		return err
	}

	readmePath := filepath.Join(buildDir, "README.txt")
	if err := afero.WriteFile(fs, readmePath, []byte(strings.ReplaceAll(readme, "\n", "\r\n")), 0o644); err != nil {
		return fmt.Errorf("error writing readme: %w", err)
	}

	files := []string{appPath, cfgPath, readmePath}
	if ok, _ := afero.Exists(fs, licensePath); ok && licensePath != "" {
		dest := filepath.Join(buildDir, "LICENSE.txt")
		data, err := afero.ReadFile(fs, licensePath)
		if err != nil {
			return fmt.Errorf("error reading license: %w", err)
		}
		if err := afero.WriteFile(fs, dest, data, 0o644); err != nil {
			return fmt.Errorf("error copying license: %w", err)
		}
		files = append(files, dest)
	}

	zipPath := filepath.Join(buildDir, zipName)
	_ = fs.Remove(zipPath)
	return createZipFile(fs, zipPath, files)
}

func createZipFile(fs afero.Fs, zipPath string, files []string) (err error) {
	zipFile, err := fs.Create(zipPath)
	if err != nil {
		return fmt.Errorf("error creating zip file: %w", err)
	}
	defer func() {
		if closeErr := zipFile.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("error closing zip file: %w", closeErr)
		}
	}()

	zipWriter := zip.NewWriter(zipFile)
	for _, path := range files {
		if err := addFileToZip(fs, zipWriter, path, filepath.Base(path)); err != nil {
			return fmt.Errorf("error adding %s to zip: %w", path, err)
		}
	}
	if err := zipWriter.Close(); err != nil {
		return fmt.Errorf("error finishing zip: %w", err)
	}
	return nil
}

func addFileToZip(fs afero.Fs, zipWriter *zip.Writer, filePath, arcname string) error {
	file, err := fs.Open(filePath)
	if err != nil {
		return err
	}
	defer func() {
		_ = file.Close()
	}()

	info, err := file.Stat()
	if err != nil {
		return err
	}

	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}
	header.Name = arcname
	header.Method = zip.Deflate

	writer, err := zipWriter.CreateHeader(header)
	if err != nil {
		return err
	}

	_, err = io.Copy(writer, file)
	return err
}
