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

	"github.com/spf13/afero"

	"github.com/SteamscopeProject/steamscope/internal/vdftext"
)

// LocalConfig is an open localconfig.vdf with its parse tree and the
// exact bytes it was read from. Edits go through Document; nothing
// touches disk until Save.
type LocalConfig struct {
	fs       afero.Fs
	path     string
	doc      *vdftext.Document
	original []byte
}

// OpenUserLocalConfig opens the localconfig.vdf of one user in this
// installation.
func (l *Library) OpenUserLocalConfig(userID uint64) (*LocalConfig, error) {
	return OpenLocalConfig(l.fs, l.LocalConfigPath(userID))
}

// OpenLocalConfig reads and parses a localconfig.vdf file.
func OpenLocalConfig(fsys afero.Fs, path string) (*LocalConfig, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	doc, err := vdftext.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &LocalConfig{
		fs:       fsys,
		path:     path,
		doc:      doc,
		original: data,
	}, nil
}

// Document returns the parse tree for reading and editing.
func (lc *LocalConfig) Document() *vdftext.Document {
	return lc.doc
}

// Path returns the file the document was read from.
func (lc *LocalConfig) Path() string {
	return lc.path
}

// BackupPath returns where Save writes the pre-edit copy.
func (lc *LocalConfig) BackupPath() string {
	return lc.path + BackupSuffix
}

// Save writes the document back to its file. The bytes originally read
// are copied to the backup path first; if that copy cannot be written
// the file is left untouched and Save fails with ErrBackupFailed. The
// new content goes through a temp file and rename so a crash mid-write
// cannot leave a truncated localconfig.vdf behind.
func (lc *LocalConfig) Save() error {
	if err := afero.WriteFile(lc.fs, lc.BackupPath(), lc.original, 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrBackupFailed, err)
	}

	data := lc.doc.Serialize()
	tmp := lc.path + ".tmp"
	if err := afero.WriteFile(lc.fs, tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}
	if err := lc.fs.Rename(tmp, lc.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", lc.path, err)
	}

	lc.original = data
	return nil
}
