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

	"github.com/spf13/cobra"

	"github.com/SteamscopeProject/steamscope/pkg/config"
	"github.com/SteamscopeProject/steamscope/pkg/shim"
)

var shimCmd = &cobra.Command{
	Use:   "shim",
	Short: "Install and inspect the " + config.ShimName + " stand-in",
}

var shimInstallCmd = &cobra.Command{
	Use:   "install",
	Short: "Symlink the shim into ~/.local/bin",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		link, err := shim.Install()
		if err != nil {
			return err
		}
		fmt.Printf("shim installed at %s\n", link)

		status, err := shim.CheckStatus(os.Getenv("PATH"))
		if err != nil {
			return err
		}
		switch {
		case status.Active:
			fmt.Println("PATH resolves " + config.ShimName + " to the shim")
		case status.ActivePath != "":
			fmt.Printf("warning: %s shadows the shim on PATH\n", status.ActivePath)
		default:
			fmt.Println("warning: ~/.local/bin is not on PATH, the shim will not run")
		}
		return nil
	},
}

var shimUninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove the shim symlink",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		link, err := shim.Uninstall()
		if err != nil {
			return err
		}
		fmt.Printf("shim removed from %s\n", link)
		return nil
	},
}

var shimStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report whether the shim is installed and first on PATH",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		status, err := shim.CheckStatus(os.Getenv("PATH"))
		if err != nil {
			return err
		}

		if status.Installed {
			fmt.Printf("link: %s -> %s\n", status.LinkPath, status.Target)
		} else {
			fmt.Printf("link: %s (not installed)\n", status.LinkPath)
		}
		switch {
		case status.ActivePath == "":
			fmt.Println(config.ShimName + " not found on PATH")
		case status.Active:
			fmt.Printf("active: %s (the shim)\n", status.ActivePath)
		default:
			fmt.Printf("active: %s (not the shim)\n", status.ActivePath)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(shimCmd)
	shimCmd.AddCommand(shimInstallCmd)
	shimCmd.AddCommand(shimUninstallCmd)
	shimCmd.AddCommand(shimStatusCmd)
}
