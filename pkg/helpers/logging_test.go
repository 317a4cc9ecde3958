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
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SteamscopeProject/steamscope/pkg/config"
)

// redirectStateHome points xdg.StateHome at a temp directory for the
// duration of the test. Cleanup order matters: the env var is restored
// first, then xdg re-reads the original value.
func redirectStateHome(t *testing.T) string {
	t.Helper()
	t.Cleanup(xdg.Reload)
	stateHome := t.TempDir()
	t.Setenv("XDG_STATE_HOME", stateHome)
	xdg.Reload()
	return stateHome
}

func TestInitLogging(t *testing.T) {
	// Note: Cannot use t.Parallel() because InitLogging modifies global log.Logger

	t.Run("creates_the_state_directory", func(t *testing.T) {
		redirectStateHome(t)

		require.NoError(t, InitLogging())

		info, err := os.Stat(StateDir())
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("writes_through_extra_writers", func(t *testing.T) {
		redirectStateHome(t)

		var buf bytes.Buffer
		require.NoError(t, InitLogging(&buf))

		log.Info().Msg("hello from the test")

		assert.Contains(t, buf.String(), "hello from the test")
	})

	t.Run("log_file_appears_on_first_write", func(t *testing.T) {
		redirectStateHome(t)

		require.NoError(t, InitLogging())

		// lumberjack creates the file lazily, on the first message.
		logPath := filepath.Join(StateDir(), config.LogFile)
		_, err := os.Stat(logPath)
		require.Error(t, err)

		log.Info().Msg("first entry")

		_, err = os.Stat(logPath)
		require.NoError(t, err)
	})
}

func TestSetDebugLogging(t *testing.T) {
	// Note: Cannot use t.Parallel() because the global log level is shared

	SetDebugLogging(true)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	SetDebugLogging(false)
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}
