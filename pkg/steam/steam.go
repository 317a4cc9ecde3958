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

// Package steam models the local Steam installation: root discovery,
// userdata enumeration, installed game scanning, and editing of the
// per-user localconfig.vdf launch options.
package steam

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

var (
	// ErrSteamNotFound reports that no Steam installation was located.
	ErrSteamNotFound = errors.New("steam installation not found")
	// ErrNoUsers reports an empty or unusable userdata directory.
	ErrNoUsers = errors.New("no steam users found")
	// ErrAmbiguousUser reports multiple users when no explicit choice was
	// given.
	ErrAmbiguousUser = errors.New("multiple steam users found")
	// ErrNoAppsSection reports a localconfig with no apps section to read.
	ErrNoAppsSection = errors.New("no apps section in localconfig")
	// ErrBackupFailed reports that the pre-edit backup could not be
	// written. Nothing is mutated on disk when this happens.
	ErrBackupFailed = errors.New("backup failed")
)

// BackupSuffix is appended to localconfig.vdf for the pre-edit copy.
const BackupSuffix = ".backup"

// Library is a handle on one Steam installation rooted at a directory
// like ~/.steam/steam.
type Library struct {
	fs   afero.Fs
	root string
}

// NewLibrary returns a Library reading through the given filesystem.
func NewLibrary(fsys afero.Fs, root string) *Library {
	return &Library{fs: fsys, root: root}
}

// Root returns the installation root directory.
func (l *Library) Root() string { return l.root }

// DefaultRootCandidates returns the usual Steam root locations on Linux,
// including the Flatpak sandbox path.
func DefaultRootCandidates() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	return []string{
		filepath.Join(home, ".steam", "steam"),
		filepath.Join(home, ".local", "share", "Steam"),
		filepath.Join(home, ".var", "app", "com.valvesoftware.Steam", ".steam", "steam"),
	}
}

// FindRoot probes the default candidates and returns the first existing
// Steam root.
func FindRoot(fsys afero.Fs) (string, error) {
	for _, dir := range DefaultRootCandidates() {
		if ok, _ := afero.DirExists(fsys, dir); ok {
			return dir, nil
		}
	}
	return "", ErrSteamNotFound
}

// steamAppsDir resolves the steamapps directory under a library root,
// tolerating the mixed-case spelling older installations use.
func (l *Library) steamAppsDir(root string) string {
	candidates := []string{"steamapps", "SteamApps"}
	for _, candidate := range candidates {
		path := filepath.Join(root, candidate)
		if ok, _ := afero.DirExists(l.fs, path); ok {
			return path
		}
	}
	return filepath.Join(root, "steamapps")
}

// hasManifestName reports whether a directory entry looks like an app
// manifest file.
func hasManifestName(name string) bool {
	return strings.HasPrefix(name, "appmanifest_") && strings.HasSuffix(name, ".acf")
}
