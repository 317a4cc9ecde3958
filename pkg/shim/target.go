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
	"os"
	"path/filepath"
	"strings"
)

// FindTarget returns the first executable with the given name on the
// search path that is not this shim. The directory the shim was invoked
// from is skipped entirely, and any candidate resolving to the shim's
// own binary is skipped too, so a PATH listing the shim first can never
// make it exec itself.
func FindTarget(name, pathList, argv0, selfPath string) (string, error) {
	var excludeDir string
	if strings.ContainsRune(argv0, os.PathSeparator) {
		if abs, err := filepath.Abs(filepath.Dir(argv0)); err == nil {
			excludeDir = abs
		}
	}
	var selfResolved string
	if selfPath != "" {
		if resolved, err := filepath.EvalSymlinks(selfPath); err == nil {
			selfResolved = resolved
		}
	}

	for _, dir := range filepath.SplitList(pathList) {
		if dir == "" {
			// POSIX treats an empty PATH entry as the current directory.
			dir = "."
		}
		if excludeDir != "" {
			if abs, err := filepath.Abs(dir); err == nil && abs == excludeDir {
				continue
			}
		}
		candidate := filepath.Join(dir, name)
		if !isExecutable(candidate) {
			continue
		}
		if selfResolved != "" {
			if resolved, err := filepath.EvalSymlinks(candidate); err == nil && resolved == selfResolved {
				continue
			}
		}
		return candidate, nil
	}
	return "", fmt.Errorf("%q: %w", name, ErrTargetNotFound)
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	return info.Mode()&0o111 != 0
}
