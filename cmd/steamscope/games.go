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
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SteamscopeProject/steamscope/pkg/steam"
)

// Fuzzy search tuning. Queries tend to be short fragments of long store
// titles, so the distance cap stays generous and similarity does the work.
const (
	fuzzyMaxDistance   = 25
	fuzzyMinSimilarity = 0.6
	fuzzyTopResults    = 5
)

var gamesCmd = &cobra.Command{
	Use:   "games",
	Short: "Inspect the installed game library",
}

var gamesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed games across all library folders",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		lib, err := openLibrary()
		if err != nil {
			return err
		}
		games, err := lib.InstalledGames()
		if err != nil {
			return err
		}
		if len(games) == 0 {
			fmt.Println("no installed games found")
			return nil
		}
		for _, game := range games {
			fmt.Printf("%d\t%s\n", game.AppID, game.Name)
		}
		return nil
	},
}

var gamesFindCmd = &cobra.Command{
	Use:   "find <name>",
	Short: "Fuzzy-search installed games by name",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		lib, err := openLibrary()
		if err != nil {
			return err
		}
		games, err := lib.InstalledGames()
		if err != nil {
			return err
		}

		matches := steam.FindGames(query, games, fuzzyMaxDistance, fuzzyMinSimilarity)
		matches = steam.RankByEditDistance(query, matches, fuzzyTopResults)
		if len(matches) == 0 {
			fmt.Printf("no installed game matches %q\n", query)
			return nil
		}
		for _, match := range matches {
			fmt.Printf("%d\t%s\t%.0f%%\n",
				match.Game.AppID, match.Game.Name, match.Similarity*100)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(gamesCmd)
	gamesCmd.AddCommand(gamesListCmd)
	gamesCmd.AddCommand(gamesFindCmd)
}
