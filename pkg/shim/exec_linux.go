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
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"golang.org/x/sys/unix"
)

// SysExecer hands the process over via execve(2). The game keeps this
// process id, which Steam watches to track the session.
type SysExecer struct{}

// Exec replaces the current process image. It only returns on failure.
func (SysExecer) Exec(path string, argv, env []string) error {
	if err := unix.Exec(path, argv, env); err != nil {
		return fmt.Errorf("failed to exec %s: %w", path, err)
	}
	return nil
}

// NewDispatcher returns a Dispatcher wired to the real process state.
func NewDispatcher() *Dispatcher {
	self, err := os.Executable()
	if err != nil {
		log.Warn().Err(err).Msg("cannot resolve own executable path")
	}
	return &Dispatcher{
		Exec:     SysExecer{},
		Getenv:   os.Getenv,
		Environ:  os.Environ,
		Argv0:    os.Args[0],
		SelfPath: self,
	}
}
