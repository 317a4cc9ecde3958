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
	"fmt"
	"slices"
	"strings"

	"github.com/mattn/go-shellwords"

	"github.com/SteamscopeProject/steamscope/pkg/config"
)

// SplitWrapped splits the shim's arguments at the first "--" into
// compositor flags and the wrapped game command, mirroring how the real
// compositor reads its command line.
func SplitWrapped(args []string) (compositor, wrapped []string, found bool) {
	for i, arg := range args {
		if arg == "--" {
			return args[:i], args[i+1:], true
		}
	}
	return args, nil, false
}

// BuildArgv assembles the argv for the real compositor. Configured
// compositor flags go first so flags the user typed into their launch
// options can still override them, then the caller's flags, then the
// "--" separator with the configured pre-command prefixed onto the
// wrapped game command.
func BuildArgv(target string, eff config.Effective, callerArgs []string) ([]string, error) {
	extra, err := shellwords.Parse(eff.GamescopeArgs)
	if err != nil {
		return nil, fmt.Errorf("failed to parse configured args %q: %w", eff.GamescopeArgs, err)
	}
	pre, err := shellwords.Parse(eff.PreCommand)
	if err != nil {
		return nil, fmt.Errorf("failed to parse pre-command %q: %w", eff.PreCommand, err)
	}

	compositor, wrapped, found := SplitWrapped(callerArgs)

	argv := make([]string, 0, 2+len(extra)+len(callerArgs)+len(pre))
	argv = append(argv, target)
	argv = append(argv, extra...)
	argv = append(argv, compositor...)
	if found || len(wrapped) > 0 {
		argv = append(argv, "--")
		argv = append(argv, pre...)
		argv = append(argv, wrapped...)
	}
	return argv, nil
}

// MergeEnv layers configured variables over the inherited environment.
// A variable the game session already has keeps its value unless its
// name is force-listed. Added variables are appended in sorted order so
// the result is deterministic.
func MergeEnv(environ []string, add map[string]string, force []string) []string {
	if len(add) == 0 {
		return environ
	}

	forced := make(map[string]struct{}, len(force))
	for _, name := range force {
		forced[name] = struct{}{}
	}

	out := make([]string, len(environ))
	copy(out, environ)
	present := make(map[string]int, len(out))
	for i, kv := range out {
		if eq := strings.IndexByte(kv, '='); eq >= 0 {
			present[kv[:eq]] = i
		}
	}

	names := make([]string, 0, len(add))
	for name := range add {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		entry := name + "=" + add[name]
		idx, exists := present[name]
		_, isForced := forced[name]
		switch {
		case !exists:
			out = append(out, entry)
		case isForced:
			out[idx] = entry
		}
	}
	return out
}
