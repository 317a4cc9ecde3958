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
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SteamscopeProject/steamscope/pkg/steam"
)

var (
	flagDryRun   bool
	flagOnlyOurs bool
)

var launchOptionsCmd = &cobra.Command{
	Use:     "launch-options",
	Aliases: []string{"lo"},
	Short:   "Read and edit per-game launch options",
}

var loGetCmd = &cobra.Command{
	Use:   "get <appid>",
	Short: "Print a game's launch options",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		appID, err := parseAppID(args[0])
		if err != nil {
			return err
		}
		_, lc, err := openLibraryConfig()
		if err != nil {
			return err
		}
		table, err := steam.AppsTable(lc.Document())
		if err != nil {
			if errors.Is(err, steam.ErrNoAppsSection) {
				fmt.Println("(not set)")
				return nil
			}
			return err
		}
		value, ok := table.Get(appID)
		if !ok {
			fmt.Println("(not set)")
			return nil
		}
		fmt.Println(value)
		return nil
	},
}

var loSetCmd = &cobra.Command{
	Use:   "set <appid> [options...]",
	Short: "Set a game's launch options (default: wrap with gamescope)",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		appID, err := parseAppID(args[0])
		if err != nil {
			return err
		}
		value := steam.DefaultLaunchOptions()
		if len(args) > 1 {
			value = strings.Join(args[1:], " ")
		}

		_, lc, err := openLibraryConfig()
		if err != nil {
			return err
		}
		table, err := steam.EnsureAppsTable(lc.Document())
		if err != nil {
			return err
		}
		if err := table.Set(appID, value); err != nil {
			return err
		}
		return saveOrPreview(lc, fmt.Sprintf("launch options for %d set to %q", appID, value))
	},
}

var loClearCmd = &cobra.Command{
	Use:   "clear <appid>",
	Short: "Remove a game's launch options",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		appID, err := parseAppID(args[0])
		if err != nil {
			return err
		}
		_, lc, err := openLibraryConfig()
		if err != nil {
			return err
		}
		table, err := steam.AppsTable(lc.Document())
		if err != nil {
			if errors.Is(err, steam.ErrNoAppsSection) {
				fmt.Printf("no launch options set for %d\n", appID)
				return nil
			}
			return err
		}
		if !table.Clear(appID) {
			fmt.Printf("no launch options set for %d\n", appID)
			return nil
		}
		return saveOrPreview(lc, fmt.Sprintf("launch options for %d cleared", appID))
	},
}

var loListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every game with launch options set",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		lib, lc, err := openLibraryConfig()
		if err != nil {
			return err
		}
		table, err := steam.AppsTable(lc.Document())
		if err != nil {
			if errors.Is(err, steam.ErrNoAppsSection) {
				fmt.Println("no launch options set")
				return nil
			}
			return err
		}

		// Names are cosmetic here, so a failed scan just leaves them out.
		names := make(map[uint32]string)
		if games, gamesErr := lib.InstalledGames(); gamesErr == nil {
			for _, game := range games {
				names[game.AppID] = game.Name
			}
		}

		found := false
		for _, id := range table.AppIDs() {
			value, ok := table.Get(id)
			if !ok {
				continue
			}
			found = true
			fmt.Printf("%d\t%s\t%s\n", id, names[id], value)
		}
		if !found {
			fmt.Println("no launch options set")
		}
		return nil
	},
}

var loSetAllCmd = &cobra.Command{
	Use:   "set-all [options...]",
	Short: "Set the same launch options for every installed game",
	RunE: func(_ *cobra.Command, args []string) error {
		value := steam.DefaultLaunchOptions()
		if len(args) > 0 {
			value = strings.Join(args, " ")
		}

		lib, lc, err := openLibraryConfig()
		if err != nil {
			return err
		}
		table, err := steam.EnsureAppsTable(lc.Document())
		if err != nil {
			return err
		}
		count, err := table.SetAllFromLibrary(lib.InstalledGames, value)
		if err != nil {
			return err
		}
		return saveOrPreview(lc,
			fmt.Sprintf("launch options for %d installed games set to %q", count, value))
	},
}

var loClearAllCmd = &cobra.Command{
	Use:   "clear-all",
	Short: "Remove launch options from every game",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		_, lc, err := openLibraryConfig()
		if err != nil {
			return err
		}
		table, err := steam.AppsTable(lc.Document())
		if err != nil {
			if errors.Is(err, steam.ErrNoAppsSection) {
				fmt.Println("nothing to clear")
				return nil
			}
			return err
		}

		ids := table.AppIDs()
		if flagOnlyOurs {
			kept := ids[:0]
			for _, id := range ids {
				if value, ok := table.Get(id); ok && steam.IsManagedLaunchOptions(value) {
					kept = append(kept, id)
				}
			}
			ids = kept
		}

		count := table.ClearAll(ids)
		if count == 0 {
			fmt.Println("nothing to clear")
			return nil
		}
		return saveOrPreview(lc, fmt.Sprintf("launch options cleared for %d games", count))
	},
}

func parseAppID(raw string) (uint32, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid app id %q", raw)
	}
	return uint32(id), nil
}

// saveOrPreview writes the document back unless --dry-run was given.
func saveOrPreview(lc *steam.LocalConfig, summary string) error {
	if flagDryRun {
		fmt.Printf("dry run: %s; %s left untouched\n", summary, lc.Path())
		return nil
	}
	if err := lc.Save(); err != nil {
		return err
	}
	fmt.Printf("%s\nprevious version backed up to %s\n", summary, lc.BackupPath())
	return nil
}

func init() {
	rootCmd.AddCommand(launchOptionsCmd)
	launchOptionsCmd.AddCommand(loGetCmd)
	launchOptionsCmd.AddCommand(loSetCmd)
	launchOptionsCmd.AddCommand(loClearCmd)
	launchOptionsCmd.AddCommand(loListCmd)
	launchOptionsCmd.AddCommand(loSetAllCmd)
	launchOptionsCmd.AddCommand(loClearAllCmd)
	launchOptionsCmd.PersistentFlags().BoolVarP(&flagDryRun, "dry-run", "n", false,
		"report what would change without writing")
	loClearAllCmd.Flags().BoolVar(&flagOnlyOurs, "only-ours", false,
		"only clear launch options this tool wrote")
	// Launch-option values start with dashes; everything after the first
	// positional argument must reach RunE unparsed.
	loSetCmd.Flags().SetInterspersed(false)
	loSetAllCmd.Flags().SetInterspersed(false)
}
