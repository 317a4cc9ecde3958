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

	"github.com/SteamscopeProject/steamscope/pkg/config"
)

// ShimPath returns where the compositor symlink is installed, inside
// the user's local bin directory.
func ShimPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".local", "bin", config.ShimName), nil
}

// Install symlinks the compositor name to this executable, replacing a
// previous install. A regular file squatting on the link path is left
// alone and reported instead.
func Install() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to resolve own executable path: %w", err)
	}
	link, err := ShimPath()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(link), 0o750); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", filepath.Dir(link), err)
	}

	if info, err := os.Lstat(link); err == nil {
		if info.Mode()&os.ModeSymlink == 0 {
			return "", fmt.Errorf("%s exists and is not a symlink, refusing to replace it", link)
		}
		if err := os.Remove(link); err != nil {
			return "", fmt.Errorf("failed to remove old link: %w", err)
		}
	}

	if err := os.Symlink(exe, link); err != nil {
		return "", fmt.Errorf("failed to create symlink: %w", err)
	}
	return link, nil
}

// Uninstall removes the compositor symlink. A missing link is fine; a
// regular file under the link name is reported, not deleted.
func Uninstall() (string, error) {
	link, err := ShimPath()
	if err != nil {
		return "", err
	}
	info, err := os.Lstat(link)
	if os.IsNotExist(err) {
		return link, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to inspect %s: %w", link, err)
	}
	if info.Mode()&os.ModeSymlink == 0 {
		return "", fmt.Errorf("%s is not a symlink, refusing to remove it", link)
	}
	if err := os.Remove(link); err != nil {
		return "", fmt.Errorf("failed to remove %s: %w", link, err)
	}
	return link, nil
}

// Status describes whether the shim link exists and whether it is the
// copy of the compositor a PATH search actually finds.
type Status struct {
	LinkPath   string
	Target     string
	ActivePath string
	Installed  bool
	Active     bool
}

// CheckStatus inspects the shim link and walks the given PATH list the
// way a shell would, reporting which compositor wins.
func CheckStatus(pathList string) (Status, error) {
	link, err := ShimPath()
	if err != nil {
		return Status{}, err
	}
	st := Status{LinkPath: link}
	if target, err := os.Readlink(link); err == nil {
		st.Installed = true
		st.Target = target
	}

	for _, dir := range filepath.SplitList(pathList) {
		if dir == "" {
			dir = "."
		}
		candidate := filepath.Join(dir, config.ShimName)
		if !isExecutable(candidate) {
			continue
		}
		st.ActivePath = candidate
		resolved, rerr := filepath.EvalSymlinks(candidate)
		linkResolved, lerr := filepath.EvalSymlinks(link)
		st.Active = rerr == nil && lerr == nil && resolved == linkResolved
		break
	}
	return st, nil
}
