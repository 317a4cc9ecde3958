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
)

func TestIsShimInvocation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		argv0 string
		want  bool
	}{
		{"bare_shim_name", "gamescope", true},
		{"full_path", "/home/u/.local/bin/gamescope", true},
		{"relative_path", "./gamescope", true},
		{"cli_name", "steamscope", false},
		{"cli_full_path", "/usr/bin/steamscope", false},
		{"similar_name", "gamescope-session", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, IsShimInvocation(tt.argv0))
		})
	}
}

func TestAppIDFromEnv(t *testing.T) {
	t.Parallel()

	t.Run("parses_numeric_id", func(t *testing.T) {
		t.Parallel()

		id, err := AppIDFromEnv("730")

		require.NoError(t, err)
		assert.Equal(t, uint32(730), id)
	})

	t.Run("empty_value_means_missing", func(t *testing.T) {
		t.Parallel()

		_, err := AppIDFromEnv("")

		require.ErrorIs(t, err, ErrMissingAppID)
	})

	t.Run("garbage_value_means_missing", func(t *testing.T) {
		t.Parallel()

		_, err := AppIDFromEnv("not-a-number")

		require.ErrorIs(t, err, ErrMissingAppID)
	})

	t.Run("rejects_ids_beyond_32_bits", func(t *testing.T) {
		t.Parallel()

		_, err := AppIDFromEnv("76561198012345678")

		require.ErrorIs(t, err, ErrMissingAppID)
	})
}
