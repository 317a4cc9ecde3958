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
	"strconv"

	"github.com/andygrunwald/vdf"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// UserIDs returns the numeric account ids found under userdata, sorted
// ascending. The "0" entry Steam keeps for anonymous sessions is skipped.
func (l *Library) UserIDs() ([]uint64, error) {
	entries, err := afero.ReadDir(l.fs, filepath.Join(l.root, "userdata"))
	if err != nil {
		return nil, fmt.Errorf("failed to list userdata: %w", err)
	}

	var ids []uint64
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		id, err := strconv.ParseUint(entry.Name(), 10, 64)
		if err != nil || id == 0 {
			continue
		}
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids, nil
}

// LocalConfigPath returns the localconfig.vdf location for a user.
func (l *Library) LocalConfigPath(userID uint64) string {
	return filepath.Join(
		l.root, "userdata", strconv.FormatUint(userID, 10), "config", "localconfig.vdf",
	)
}

// AccountNames maps account ids to persona names from loginusers.vdf.
// Steam keys that file by SteamID64; the account id is its low 32 bits.
// A missing or unreadable file yields an empty map, not an error, since
// names are cosmetic.
func (l *Library) AccountNames() map[uint64]string {
	names := make(map[uint64]string)

	//nolint:gosec // Safe: reads Steam config files
	f, err := l.fs.Open(filepath.Join(l.root, "config", "loginusers.vdf"))
	if err != nil {
		log.Debug().Err(err).Msg("failed to open loginusers.vdf")
		return names
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("error closing loginusers.vdf")
		}
	}()

	p := vdf.NewParser(f)
	m, err := p.Parse()
	if err != nil {
		log.Warn().Err(err).Msg("failed to parse loginusers.vdf")
		return names
	}
	m = normalizeVDFKeys(m)

	users, ok := m["users"].(map[string]any)
	if !ok {
		return names
	}
	for sid, v := range users {
		um, ok := v.(map[string]any)
		if !ok {
			continue
		}
		id64, err := strconv.ParseUint(sid, 10, 64)
		if err != nil {
			continue
		}
		name, _ := um["personaname"].(string)
		names[id64&0xFFFFFFFF] = name
	}
	return names
}

// ResolveUser picks the user whose localconfig to edit. A zero hint
// auto-selects a sole user; several users require an explicit choice.
func (l *Library) ResolveUser(hint uint64) (uint64, error) {
	ids, err := l.UserIDs()
	if err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, ErrNoUsers
	}
	if hint != 0 {
		if slices.Contains(ids, hint) {
			return hint, nil
		}
		return 0, fmt.Errorf("user %d not in userdata: %w", hint, ErrNoUsers)
	}
	if len(ids) > 1 {
		return 0, fmt.Errorf("%w: %v", ErrAmbiguousUser, ids)
	}
	return ids[0], nil
}
