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

package steam

import (
	"fmt"
	"path/filepath"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/andygrunwald/vdf"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// InstalledGame is one installed app read from its manifest.
type InstalledGame struct {
	Name       string
	InstallDir string
	AppID      uint32
}

// normalizeVDFKeys recursively lowercases map keys. Valve's readers treat
// keys case-insensitively, so lookups here go through lowercase.
func normalizeVDFKeys(m map[string]any) map[string]any {
	result := make(map[string]any, len(m))
	for k, v := range m {
		if nested, ok := v.(map[string]any); ok {
			v = normalizeVDFKeys(nested)
		}
		result[strings.ToLower(k)] = v
	}
	return result
}

// SteamAppsDirs returns the steamapps directory of every library folder,
// starting with the installation root's own. Additional folders come from
// libraryfolders.vdf; a missing or unreadable file just means no extras.
func (l *Library) SteamAppsDirs() []string {
	main := l.steamAppsDir(l.root)
	dirs := []string{main}

	//nolint:gosec // Safe: reads Steam config files
	f, err := l.fs.Open(filepath.Join(main, "libraryfolders.vdf"))
	if err != nil {
		log.Debug().Err(err).Msg("failed to open libraryfolders.vdf")
		return dirs
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("error closing libraryfolders.vdf")
		}
	}()

	p := vdf.NewParser(f)
	m, err := p.Parse()
	if err != nil {
		log.Warn().Err(err).Msg("failed to parse libraryfolders.vdf")
		return dirs
	}
	m = normalizeVDFKeys(m)

	lfs, ok := m["libraryfolders"].(map[string]any)
	if !ok {
		log.Warn().Msg("libraryfolders is not a map")
		return dirs
	}
	for id, v := range lfs {
		ls, ok := v.(map[string]any)
		if !ok {
			log.Debug().Msgf("library %s is not a map", id)
			continue
		}
		libraryPath, ok := ls["path"].(string)
		if !ok {
			continue
		}
		dir := l.steamAppsDir(libraryPath)
		if !slices.Contains(dirs, dir) {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// InstalledGames scans every library folder's app manifests and returns
// the installed games, deduplicated by app id and sorted by name. It
// fails only when no steamapps directory is readable at all, since a bulk
// edit must not run against a half-resolved installation.
func (l *Library) InstalledGames() ([]InstalledGame, error) {
	var (
		games    []InstalledGame
		readable int
	)
	seen := make(map[uint32]struct{})

	for _, dir := range l.SteamAppsDirs() {
		entries, err := afero.ReadDir(l.fs, dir)
		if err != nil {
			log.Debug().Err(err).Str("dir", dir).Msg("skipping unreadable steamapps dir")
			continue
		}
		readable++

		for _, entry := range entries {
			if !hasManifestName(entry.Name()) {
				continue
			}
			game, ok := l.readAppManifest(filepath.Join(dir, entry.Name()))
			if !ok {
				continue
			}
			if _, dup := seen[game.AppID]; dup {
				continue
			}
			seen[game.AppID] = struct{}{}
			games = append(games, game)
		}
	}

	if readable == 0 {
		return nil, fmt.Errorf("no readable steamapps directory under %s: %w", l.root, ErrSteamNotFound)
	}

	sort.Slice(games, func(i, j int) bool {
		return strings.ToLower(games[i].Name) < strings.ToLower(games[j].Name)
	})
	return games, nil
}

// readAppManifest pulls the appid, name and install directory out of one
// appmanifest_*.acf file.
func (l *Library) readAppManifest(path string) (InstalledGame, bool) {
	//nolint:gosec // Safe: reads Steam manifest files
	f, err := l.fs.Open(path)
	if err != nil {
		log.Debug().Err(err).Str("path", path).Msg("failed to open app manifest")
		return InstalledGame{}, false
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("error closing app manifest")
		}
	}()

	p := vdf.NewParser(f)
	m, err := p.Parse()
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("failed to parse app manifest")
		return InstalledGame{}, false
	}
	m = normalizeVDFKeys(m)

	appState, ok := m["appstate"].(map[string]any)
	if !ok {
		log.Warn().Str("path", path).Msg("AppState not found in manifest")
		return InstalledGame{}, false
	}

	appIDStr, ok := appState["appid"].(string)
	if !ok {
		log.Warn().Str("path", path).Msg("appid not found in manifest")
		return InstalledGame{}, false
	}
	appID, err := strconv.ParseUint(appIDStr, 10, 32)
	if err != nil {
		log.Warn().Str("path", path).Str("appid", appIDStr).Msg("appid is not numeric")
		return InstalledGame{}, false
	}

	name, ok := appState["name"].(string)
	if !ok {
		log.Warn().Str("path", path).Msg("name not found in manifest")
		return InstalledGame{}, false
	}

	installDir, _ := appState["installdir"].(string) //nolint:revive // installdir is optional

	return InstalledGame{
		AppID:      uint32(appID),
		Name:       name,
		InstallDir: installDir,
	}, true
}
