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
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"

	"github.com/SteamscopeProject/steamscope/pkg/config"
)

func TestConfigDir(t *testing.T) {
	// Note: Cannot use t.Parallel() with t.Setenv

	t.Run("env_var_overrides_the_default", func(t *testing.T) {
		t.Setenv(config.CfgDirEnv, "/tmp/steamscope-test")

		assert.Equal(t, "/tmp/steamscope-test", ConfigDir())
	})

	t.Run("defaults_under_xdg_config_home", func(t *testing.T) {
		t.Setenv(config.CfgDirEnv, "")

		assert.Equal(t, filepath.Join(xdg.ConfigHome, config.AppName), ConfigDir())
	})
}

func TestConfigPaths(t *testing.T) {
	t.Setenv(config.CfgDirEnv, "/cfg")

	assert.Equal(t, "/cfg/config.toml", GlobalConfigPath())
	assert.Equal(t, "/cfg/games/730.toml", AppConfigPath(730))
}

func TestStateDir(t *testing.T) {
	t.Parallel()

	assert.Equal(t, filepath.Join(xdg.StateHome, config.AppName), StateDir())
}
