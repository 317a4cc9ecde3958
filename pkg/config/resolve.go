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
	"maps"
	"slices"
)

// Effective is the fully resolved configuration the shim applies. Every
// field is defined; nothing downstream needs to consult the layers again.
type Effective struct {
	Env              map[string]string
	Name             string
	GamescopeArgs    string
	PreCommand       string
	EnvForce         []string
	GamescopeEnabled bool
}

// Resolve merges the global document with an optional per-app override.
// Each field resolves independently: a present per-app field wins, an
// absent one falls through to the global value. The env map is the one
// exception, merging by union with the per-app entry winning per variable.
func Resolve(global Values, app *AppValues) Effective {
	eff := Effective{
		GamescopeEnabled: global.Gamescope.Enabled,
		GamescopeArgs:    global.Gamescope.Args,
		PreCommand:       global.Wrapper.PreCommand,
		EnvForce:         slices.Clone(global.Wrapper.EnvForce),
		Env:              make(map[string]string, len(global.Wrapper.Env)),
	}
	maps.Copy(eff.Env, global.Wrapper.Env)

	if app == nil {
		return eff
	}

	eff.Name = app.Name
	if app.Gamescope.Enabled != nil {
		eff.GamescopeEnabled = *app.Gamescope.Enabled
	}
	if app.Gamescope.Args != nil {
		eff.GamescopeArgs = *app.Gamescope.Args
	}
	if app.Wrapper.PreCommand != nil {
		eff.PreCommand = *app.Wrapper.PreCommand
	}
	if app.Wrapper.EnvForce != nil {
		eff.EnvForce = slices.Clone(app.Wrapper.EnvForce)
	}
	maps.Copy(eff.Env, app.Wrapper.Env)

	return eff
}
