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
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/mattn/go-shellwords"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Registration only errors on an empty tag name.
	_ = v.RegisterValidation("shellcmd", validateShellCommand)
	_ = v.RegisterValidation("envname", validateEnvName)
	return v
}

// validateShellCommand accepts strings that tokenize as shell words. An
// unterminated quote here would otherwise surface much later, in the
// middle of a game launch.
func validateShellCommand(fl validator.FieldLevel) bool {
	_, err := shellwords.Parse(fl.Field().String())
	return err == nil
}

var envNameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func validateEnvName(fl validator.FieldLevel) bool {
	return envNameRe.MatchString(fl.Field().String())
}

// Validate checks a config document against its declared constraints.
func Validate(doc any) error {
	if err := validate.Struct(doc); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedConfig, err)
	}
	return nil
}
