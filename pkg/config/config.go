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

// Package config holds the layered launch configuration: a global document
// plus optional per-app overrides, merged field by field into the effective
// settings the shim applies.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
)

var (
	// ErrConfigNotFound reports a missing config file at its expected path.
	ErrConfigNotFound = errors.New("config file not found")
	// ErrMalformedConfig reports a config file that cannot be decoded or
	// fails validation.
	ErrMalformedConfig = errors.New("malformed config")
)

// Values is the global configuration document.
type Values struct {
	Wrapper      Wrapper   `toml:"wrapper"`
	Gamescope    Gamescope `toml:"gamescope"`
	ConfigSchema int       `toml:"config_schema"`
	DebugLogging bool      `toml:"debug_logging"`
}

// Gamescope controls what the shim injects ahead of the caller's own
// compositor arguments.
type Gamescope struct {
	Args    string `toml:"args"    validate:"shellcmd"`
	Enabled bool   `toml:"enabled"`
}

// Wrapper controls the process environment and an optional command
// prepended to the wrapped game command.
type Wrapper struct {
	Env        map[string]string `toml:"env"         validate:"dive,keys,envname,endkeys"`
	PreCommand string            `toml:"pre_command" validate:"shellcmd"`
	EnvForce   []string          `toml:"env_force"   validate:"dive,envname"`
}

// BaseDefaults returns the hard-coded baseline every load starts from.
// Fields missing from disk keep these values.
func BaseDefaults() Values {
	return Values{
		ConfigSchema: SchemaVersion,
		Gamescope: Gamescope{
			Enabled: true,
			Args:    "",
		},
	}
}

// LoadGlobal reads and validates the global document at path. A missing
// file returns ErrConfigNotFound; undecodable or invalid content returns
// ErrMalformedConfig.
func LoadGlobal(path string) (Values, error) {
	vals := BaseDefaults()

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return vals, fmt.Errorf("%s: %w", path, ErrConfigNotFound)
		}
		return vals, fmt.Errorf("failed to stat config file: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return vals, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := toml.Unmarshal(data, &vals); err != nil {
		return BaseDefaults(), fmt.Errorf("%w: %w", ErrMalformedConfig, err)
	}
	if vals.ConfigSchema != SchemaVersion {
		return BaseDefaults(), fmt.Errorf(
			"%w: schema version %d, expecting %d",
			ErrMalformedConfig, vals.ConfigSchema, SchemaVersion,
		)
	}
	if err := Validate(&vals); err != nil {
		return BaseDefaults(), err
	}

	log.Debug().Str("path", path).Msg("loaded global config")
	return vals, nil
}

// LoadGlobalOrDefault is LoadGlobal with a missing file downgraded to the
// baseline defaults. Malformed content still fails.
func LoadGlobalOrDefault(path string) (Values, error) {
	vals, err := LoadGlobal(path)
	if errors.Is(err, ErrConfigNotFound) {
		log.Debug().Str("path", path).Msg("no global config, using defaults")
		return BaseDefaults(), nil
	}
	return vals, err
}

// SaveGlobal writes the document to path, creating the directory as
// needed. The schema version is stamped on every save.
func SaveGlobal(path string, vals Values) error {
	vals.ConfigSchema = SchemaVersion

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(&vals)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
