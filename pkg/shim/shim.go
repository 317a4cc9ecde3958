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

// Package shim implements the compositor stand-in. When the binary is
// invoked under the compositor's name it resolves the effective
// configuration for the launching game, rewrites the argument list and
// environment, finds the real compositor on PATH, and replaces itself
// with it via exec.
package shim

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/SteamscopeProject/steamscope/pkg/config"
)

var (
	// ErrMissingAppID reports that Steam did not export an app id to the
	// launched process. The shim still runs, with global config only.
	ErrMissingAppID = errors.New("no app id in environment")
	// ErrTargetNotFound reports that no real compositor exists on PATH.
	// This one is fatal: there is nothing to hand the game over to.
	ErrTargetNotFound = errors.New("real compositor not found in PATH")
)

// IsShimInvocation reports whether argv[0] says the binary was launched
// as the compositor shim rather than as the CLI.
func IsShimInvocation(argv0 string) bool {
	return filepath.Base(argv0) == config.ShimName
}

// AppIDFromEnv parses the app id Steam exports to launched processes.
func AppIDFromEnv(raw string) (uint32, error) {
	if raw == "" {
		return 0, ErrMissingAppID
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%s=%q: %w", config.AppIDEnv, raw, ErrMissingAppID)
	}
	return uint32(id), nil
}
