// Steamscope
// Copyright (c) 2026 The Steamscope Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Steamscope.
//
// Steamscope is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Steamscope is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Steamscope.  If not, see <http://www.gnu.org/licenses/>.

package helpers

import (
	"os"
	"path/filepath"

	"github.com/SteamscopeProject/steamscope/pkg/config"
	"github.com/adrg/xdg"
)

// ConfigDir returns the directory holding the global config document and
// the per-app overrides beneath it.
func ConfigDir() string {
	if dir := os.Getenv(config.CfgDirEnv); dir != "" {
		return dir
	}
	return filepath.Join(xdg.ConfigHome, config.AppName)
}

// GlobalConfigPath returns the location of the global config document.
func GlobalConfigPath() string {
	return filepath.Join(ConfigDir(), config.CfgFile)
}

// AppConfigPath returns the location of the per-app override document for
// an app id.
func AppConfigPath(appID uint32) string {
	return filepath.Join(ConfigDir(), config.GamesDir, config.AppFileName(appID))
}

// StateDir returns the directory for logs and other mutable state.
func StateDir() string {
	return filepath.Join(xdg.StateHome, config.AppName)
}
