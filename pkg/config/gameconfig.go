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

package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// AppValues is a per-app override document. Pointer fields distinguish an
// absent field from an explicit value: only present fields override the
// global document.
type AppValues struct {
	Gamescope AppGamescope `toml:"gamescope"`
	Wrapper   AppWrapper   `toml:"wrapper"`
	Name      string       `toml:"name"`
}

// AppGamescope mirrors Gamescope with every field optional.
type AppGamescope struct {
	Enabled *bool   `toml:"enabled"`
	Args    *string `toml:"args" validate:"omitempty,shellcmd"`
}

// AppWrapper mirrors Wrapper with every field optional.
type AppWrapper struct {
	Env        map[string]string `toml:"env"         validate:"dive,keys,envname,endkeys"`
	PreCommand *string           `toml:"pre_command" validate:"omitempty,shellcmd"`
	EnvForce   []string          `toml:"env_force"   validate:"dive,envname"`
}

// AppFileName returns the file name of a per-app override document.
func AppFileName(appID uint32) string {
	return strconv.FormatUint(uint64(appID), 10) + ".toml"
}

// LoadApp reads the per-app override document at path. A missing file is
// not an error: absence simply means no overrides.
//
//nolint:nilnil // absent override file intentionally yields no document
func LoadApp(path string) (*AppValues, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read app config: %w", err)
	}

	var vals AppValues
	if err := toml.Unmarshal(data, &vals); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedConfig, err)
	}
	if err := Validate(&vals); err != nil {
		return nil, err
	}
	return &vals, nil
}
