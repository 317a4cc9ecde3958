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
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/SteamscopeProject/steamscope/pkg/config"
	"github.com/SteamscopeProject/steamscope/pkg/helpers"
	"github.com/SteamscopeProject/steamscope/pkg/helpers/command"
)

var flagConfigApp uint32

// executor is swappable so tests can intercept the editor spawn.
var executor command.Executor = &command.RealExecutor{}

const appConfigTemplate = `# Per-game overrides. Absent keys fall back to the global config.
#
# [gamescope]
# enabled = true
# args = "-w 1920 -h 1080"
#
# [wrapper]
# pre_command = "mangohud"
`

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage global and per-game configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the global config, or the effective config for one game",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		global, err := config.LoadGlobalOrDefault(helpers.GlobalConfigPath())
		if err != nil {
			return err
		}

		if flagConfigApp == 0 {
			out, err := toml.Marshal(global)
			if err != nil {
				return fmt.Errorf("failed to render config: %w", err)
			}
			fmt.Print(string(out))
			return nil
		}

		app, err := config.LoadApp(helpers.AppConfigPath(flagConfigApp))
		if err != nil {
			return err
		}
		eff := config.Resolve(global, app)

		fmt.Printf("app: %d\n", flagConfigApp)
		if eff.Name != "" {
			fmt.Printf("name: %s\n", eff.Name)
		}
		fmt.Printf("gamescope enabled: %t\n", eff.GamescopeEnabled)
		fmt.Printf("gamescope args: %s\n", eff.GamescopeArgs)
		fmt.Printf("pre-command: %s\n", eff.PreCommand)
		keys := make([]string, 0, len(eff.Env))
		for key := range eff.Env {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			fmt.Printf("env: %s=%s\n", key, eff.Env[key])
		}
		for _, name := range eff.EnvForce {
			fmt.Printf("env-force: %s\n", name)
		}
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default global config",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		path := helpers.GlobalConfigPath()
		if _, err := os.Stat(path); err == nil {
			fmt.Printf("config already exists at %s\n", path)
			return nil
		}
		if err := config.SaveGlobal(path, config.BaseDefaults()); err != nil {
			return err
		}
		fmt.Printf("wrote default config to %s\n", path)
		return nil
	},
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the config in $EDITOR, seeding it first if missing",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		path := helpers.GlobalConfigPath()
		if flagConfigApp != 0 {
			path = helpers.AppConfigPath(flagConfigApp)
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			if flagConfigApp == 0 {
				if err := config.SaveGlobal(path, config.BaseDefaults()); err != nil {
					return err
				}
			} else {
				if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
					return fmt.Errorf("failed to create config directory: %w", err)
				}
				if err := os.WriteFile(path, []byte(appConfigTemplate), 0o600); err != nil {
					return fmt.Errorf("failed to seed config: %w", err)
				}
			}
		}

		editor := os.Getenv("EDITOR")
		if editor == "" {
			editor = os.Getenv("VISUAL")
		}
		if editor == "" {
			editor = "nano"
		}
		if err := executor.RunInteractive(cmd.Context(), editor, path); err != nil {
			return fmt.Errorf("editor failed: %w", err)
		}

		// Surface mistakes now rather than at the next game launch.
		if flagConfigApp == 0 {
			_, err := config.LoadGlobal(path)
			return err
		}
		_, err := config.LoadApp(path)
		return err
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print config file locations",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		if flagConfigApp != 0 {
			fmt.Println(helpers.AppConfigPath(flagConfigApp))
			return
		}
		fmt.Println(helpers.GlobalConfigPath())
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configEditCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.PersistentFlags().Uint32Var(&flagConfigApp, "app", 0,
		"operate on the per-game config for this app id")
}
