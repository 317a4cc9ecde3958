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
	"github.com/rs/zerolog/log"

	"github.com/SteamscopeProject/steamscope/pkg/config"
	"github.com/SteamscopeProject/steamscope/pkg/helpers"
)

// Dispatcher turns a shim invocation into an exec of the real
// compositor with the resolved configuration applied. Every dependency
// on process state is a field so tests can drive it without forking.
type Dispatcher struct {
	Exec     Execer
	Getenv   func(string) string
	Environ  func() []string
	Argv0    string
	SelfPath string
}

// Run resolves configuration for the launching game and replaces this
// process with the real compositor. A game launch must never die to a
// config problem, so every failure short of a missing compositor
// degrades: bad global config or unparseable args pass the original
// arguments through untouched, a missing app id or bad per-app config
// applies the global layer only.
func (d *Dispatcher) Run(args []string) error {
	target, err := FindTarget(config.ShimName, d.Getenv("PATH"), d.Argv0, d.SelfPath)
	if err != nil {
		return err
	}

	global, err := config.LoadGlobalOrDefault(helpers.GlobalConfigPath())
	if err != nil {
		log.Error().Err(err).Msg("global config unusable, passing through untouched")
		return d.passThrough(target, args)
	}

	var app *config.AppValues
	appID, err := AppIDFromEnv(d.Getenv(config.AppIDEnv))
	if err != nil {
		log.Warn().Err(err).Msg("no app id, applying global config only")
	} else {
		app, err = config.LoadApp(helpers.AppConfigPath(appID))
		if err != nil {
			log.Warn().Err(err).Uint32("app", appID).
				Msg("per-app config unusable, applying global config only")
			app = nil
		}
	}

	eff := config.Resolve(global, app)
	if !eff.GamescopeEnabled {
		log.Debug().Uint32("app", appID).Msg("wrapping disabled, passing through untouched")
		return d.passThrough(target, args)
	}

	argv, err := BuildArgv(target, eff, args)
	if err != nil {
		log.Error().Err(err).Msg("failed to build argv, passing through untouched")
		return d.passThrough(target, args)
	}
	env := MergeEnv(d.Environ(), eff.Env, eff.EnvForce)

	log.Info().Uint32("app", appID).Str("target", target).Strs("argv", argv[1:]).
		Msg("handing off to real compositor")
	return d.Exec.Exec(target, argv, env)
}

func (d *Dispatcher) passThrough(target string, args []string) error {
	argv := append([]string{target}, args...)
	return d.Exec.Exec(target, argv, d.Environ())
}
