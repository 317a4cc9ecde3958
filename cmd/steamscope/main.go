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

	"github.com/rs/zerolog/log"

	"github.com/SteamscopeProject/steamscope/pkg/helpers"
	"github.com/SteamscopeProject/steamscope/pkg/shim"
)

func main() {
	// Steam execs this binary under the compositor's name through the
	// installed symlink. Everything else is the normal CLI.
	if shim.IsShimInvocation(os.Args[0]) {
		runShim(os.Args[1:])
		return
	}
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// runShim only returns to the caller on failure; on success the process
// image is replaced by the real compositor.
func runShim(args []string) {
	if err := helpers.InitLogging(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
	if err := shim.NewDispatcher().Run(args); err != nil {
		log.Error().Err(err).Msg("shim dispatch failed")
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
