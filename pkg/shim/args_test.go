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

package shim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SteamscopeProject/steamscope/pkg/config"
)

func TestSplitWrapped(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		args           []string
		wantCompositor []string
		wantWrapped    []string
		wantFound      bool
	}{
		{
			name:           "no_separator",
			args:           []string{"-f", "-w", "1920"},
			wantCompositor: []string{"-f", "-w", "1920"},
			wantWrapped:    nil,
			wantFound:      false,
		},
		{
			name:           "separator_in_the_middle",
			args:           []string{"-f", "--", "game", "-vulkan"},
			wantCompositor: []string{"-f"},
			wantWrapped:    []string{"game", "-vulkan"},
			wantFound:      true,
		},
		{
			name:           "separator_first",
			args:           []string{"--", "game"},
			wantCompositor: []string{},
			wantWrapped:    []string{"game"},
			wantFound:      true,
		},
		{
			name:           "separator_last",
			args:           []string{"-f", "--"},
			wantCompositor: []string{"-f"},
			wantWrapped:    []string{},
			wantFound:      true,
		},
		{
			name:           "only_first_separator_splits",
			args:           []string{"--", "env", "--", "game"},
			wantCompositor: []string{},
			wantWrapped:    []string{"env", "--", "game"},
			wantFound:      true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			compositor, wrapped, found := SplitWrapped(tt.args)

			assert.Equal(t, tt.wantCompositor, compositor)
			assert.Equal(t, tt.wantWrapped, wrapped)
			assert.Equal(t, tt.wantFound, found)
		})
	}
}

func TestBuildArgv(t *testing.T) {
	t.Parallel()

	const target = "/usr/bin/gamescope"

	t.Run("injects_args_and_pre_command", func(t *testing.T) {
		t.Parallel()

		eff := config.Effective{
			GamescopeEnabled: true,
			GamescopeArgs:    "-w 1920 -h 1080",
			PreCommand:       "mangohud",
		}

		argv, err := BuildArgv(target, eff, []string{"-f", "--", "/games/cs2.sh", "-vulkan"})

		require.NoError(t, err)
		assert.Equal(t, []string{
			target, "-w", "1920", "-h", "1080", "-f",
			"--", "mangohud", "/games/cs2.sh", "-vulkan",
		}, argv)
	})

	t.Run("quoted_configured_args_stay_single_tokens", func(t *testing.T) {
		t.Parallel()

		eff := config.Effective{GamescopeEnabled: true, GamescopeArgs: `--title "My Game"`}

		argv, err := BuildArgv(target, eff, []string{"--", "game"})

		require.NoError(t, err)
		assert.Equal(t, []string{target, "--title", "My Game", "--", "game"}, argv)
	})

	t.Run("no_separator_keeps_caller_args_in_place", func(t *testing.T) {
		t.Parallel()

		eff := config.Effective{GamescopeEnabled: true, GamescopeArgs: "-f"}

		argv, err := BuildArgv(target, eff, []string{"game"})

		require.NoError(t, err)
		assert.Equal(t, []string{target, "-f", "game"}, argv)
	})

	t.Run("pre_command_needs_a_separator_to_anchor_to", func(t *testing.T) {
		t.Parallel()

		eff := config.Effective{GamescopeEnabled: true, PreCommand: "mangohud"}

		argv, err := BuildArgv(target, eff, []string{"game"})

		require.NoError(t, err)
		assert.Equal(t, []string{target, "game"}, argv)
	})

	t.Run("bare_separator_is_kept", func(t *testing.T) {
		t.Parallel()

		eff := config.Effective{GamescopeEnabled: true}

		argv, err := BuildArgv(target, eff, []string{"-f", "--"})

		require.NoError(t, err)
		assert.Equal(t, []string{target, "-f", "--"}, argv)
	})

	t.Run("empty_config_passes_caller_args_through", func(t *testing.T) {
		t.Parallel()

		argv, err := BuildArgv(target, config.Effective{GamescopeEnabled: true},
			[]string{"--", "game", "-opt"})

		require.NoError(t, err)
		assert.Equal(t, []string{target, "--", "game", "-opt"}, argv)
	})

	t.Run("unparseable_configured_args_fail", func(t *testing.T) {
		t.Parallel()

		eff := config.Effective{GamescopeEnabled: true, GamescopeArgs: `-w "1920`}

		_, err := BuildArgv(target, eff, []string{"--", "game"})

		require.Error(t, err)
	})
}

func TestMergeEnv(t *testing.T) {
	t.Parallel()

	environ := []string{"HOME=/home/u", "DISPLAY=:0", "PATH=/usr/bin"}

	t.Run("adds_missing_variables_in_sorted_order", func(t *testing.T) {
		t.Parallel()

		merged := MergeEnv(environ, map[string]string{
			"MANGOHUD":    "1",
			"GAMEMODERUN": "1",
		}, nil)

		assert.Equal(t, []string{
			"HOME=/home/u", "DISPLAY=:0", "PATH=/usr/bin",
			"GAMEMODERUN=1", "MANGOHUD=1",
		}, merged)
	})

	t.Run("session_value_wins_unless_forced", func(t *testing.T) {
		t.Parallel()

		merged := MergeEnv(environ, map[string]string{"DISPLAY": ":9"}, nil)

		assert.Equal(t, environ, merged)
	})

	t.Run("forced_variable_overwrites_in_place", func(t *testing.T) {
		t.Parallel()

		merged := MergeEnv(environ, map[string]string{"DISPLAY": ":9"}, []string{"DISPLAY"})

		assert.Equal(t, []string{"HOME=/home/u", "DISPLAY=:9", "PATH=/usr/bin"}, merged)
	})

	t.Run("forced_name_absent_from_session_is_added", func(t *testing.T) {
		t.Parallel()

		merged := MergeEnv(environ, map[string]string{"MANGOHUD": "1"}, []string{"MANGOHUD"})

		assert.Equal(t, []string{
			"HOME=/home/u", "DISPLAY=:0", "PATH=/usr/bin", "MANGOHUD=1",
		}, merged)
	})

	t.Run("nothing_to_add_returns_environ_unchanged", func(t *testing.T) {
		t.Parallel()

		merged := MergeEnv(environ, nil, []string{"DISPLAY"})

		assert.Equal(t, environ, merged)
	})

	t.Run("does_not_mutate_the_input", func(t *testing.T) {
		t.Parallel()

		in := []string{"DISPLAY=:0"}
		_ = MergeEnv(in, map[string]string{"DISPLAY": ":9"}, []string{"DISPLAY"})

		assert.Equal(t, []string{"DISPLAY=:0"}, in)
	})
}
