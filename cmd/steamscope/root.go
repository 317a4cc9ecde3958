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

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/SteamscopeProject/steamscope/pkg/config"
	"github.com/SteamscopeProject/steamscope/pkg/helpers"
	"github.com/SteamscopeProject/steamscope/pkg/steam"
)

var (
	flagVerbose   bool
	flagUser      uint64
	flagSteamRoot string
)

var rootCmd = &cobra.Command{
	Use:          config.AppName,
	Short:        "Manage Steam launch options and the gamescope wrapper",
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		var writers []io.Writer
		if flagVerbose {
			writers = append(writers, os.Stderr)
		}
		if err := helpers.InitLogging(writers...); err != nil {
			return err
		}

		debug := flagVerbose
		if cfg, err := config.LoadGlobalOrDefault(helpers.GlobalConfigPath()); err == nil {
			debug = debug || cfg.DebugLogging
		}
		helpers.SetDebugLogging(debug)
		return nil
	},
}

func init() {
	rootCmd.Version = config.AppVersion
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false,
		"log debug output to stderr")
	rootCmd.PersistentFlags().Uint64Var(&flagUser, "user", 0,
		"steam account id to operate on (default: the only user)")
	rootCmd.PersistentFlags().StringVar(&flagSteamRoot, "steam-root", "",
		"steam installation root (default: auto-detect)")
}

// openLibrary resolves the Steam installation the command operates on.
func openLibrary() (*steam.Library, error) {
	fsys := afero.NewOsFs()
	root := flagSteamRoot
	if root == "" {
		var err error
		root, err = steam.FindRoot(fsys)
		if err != nil {
			return nil, fmt.Errorf("%w (pass --steam-root)", err)
		}
	}
	return steam.NewLibrary(fsys, root), nil
}

// resolveUser picks the user from --user or the sole userdata entry. An
// ambiguous choice is reported with persona names so the right account
// id is easy to spot.
func resolveUser(lib *steam.Library) (uint64, error) {
	userID, err := lib.ResolveUser(flagUser)
	if err == nil {
		return userID, nil
	}
	if !errors.Is(err, steam.ErrAmbiguousUser) {
		return 0, err
	}

	ids, idsErr := lib.UserIDs()
	if idsErr != nil {
		return 0, err
	}
	names := lib.AccountNames()
	choices := make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := names[id]; ok && name != "" {
			choices = append(choices, fmt.Sprintf("%d (%s)", id, name))
			continue
		}
		choices = append(choices, fmt.Sprintf("%d", id))
	}
	return 0, fmt.Errorf("%w: pick one with --user: %s",
		steam.ErrAmbiguousUser, strings.Join(choices, ", "))
}

// openLibraryConfig opens the resolved user's localconfig.vdf along
// with the library it came from.
func openLibraryConfig() (*steam.Library, *steam.LocalConfig, error) {
	lib, err := openLibrary()
	if err != nil {
		return nil, nil, err
	}
	userID, err := resolveUser(lib)
	if err != nil {
		return nil, nil, err
	}
	lc, err := lib.OpenUserLocalConfig(userID)
	if err != nil {
		return nil, nil, err
	}
	return lib, lc, nil
}
