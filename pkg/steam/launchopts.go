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

package steam

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/SteamscopeProject/steamscope/internal/vdftext"
	"github.com/SteamscopeProject/steamscope/pkg/config"
)

// Launch options live under this chain inside localconfig.vdf. Steam
// writes the section names with varying casing across client versions,
// so lookups fold case while new sections use these spellings.
var launchOptionsChain = []string{"Software", "Valve", "Steam", "apps"}

const (
	launchOptionsKey = "LaunchOptions"
	topSectionName   = "UserLocalConfigStore"
)

// LaunchOptionsTable edits per-app launch options inside a parsed
// localconfig document. All edits are in-memory; the caller saves the
// document when done.
type LaunchOptionsTable struct {
	apps *vdftext.Node
}

// AppsTable finds the launch options table in a parsed localconfig
// document.
func AppsTable(doc *vdftext.Document) (*LaunchOptionsTable, error) {
	apps, ok := findAppsSection(doc)
	if !ok {
		return nil, ErrNoAppsSection
	}
	return &LaunchOptionsTable{apps: apps}, nil
}

// EnsureAppsTable finds the launch options table, creating the section
// chain when the document does not have one yet. A scalar occupying a
// chain segment is an error.
func EnsureAppsTable(doc *vdftext.Document) (*LaunchOptionsTable, error) {
	if apps, ok := findAppsSection(doc); ok {
		return &LaunchOptionsTable{apps: apps}, nil
	}

	top := firstSection(doc.Nodes())
	if top == nil {
		var err error
		top, err = doc.EnsureSection(topSectionName)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", topSectionName, err)
		}
	}

	n := top
	for _, seg := range launchOptionsChain {
		if c, ok := n.ChildFold(seg); ok {
			if !c.IsSection() {
				return nil, fmt.Errorf("%q: %w", c.Name(), vdftext.ErrNotSection)
			}
			n = c
			continue
		}
		c, err := n.EnsureSection(seg)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", seg, err)
		}
		n = c
	}
	return &LaunchOptionsTable{apps: n}, nil
}

// findAppsSection walks the Software/Valve/Steam/apps chain under each
// top-level section, folding case the way Steam's reader does. When no
// full chain exists it falls back to the first section named "apps"
// anywhere in the document.
func findAppsSection(doc *vdftext.Document) (*vdftext.Node, bool) {
	for _, top := range doc.Nodes() {
		if !top.IsSection() {
			continue
		}
		if apps, ok := foldWalk(top, launchOptionsChain); ok {
			return apps, true
		}
	}
	for _, top := range doc.Nodes() {
		if !top.IsSection() {
			continue
		}
		if apps, ok := findSectionFold(top, "apps"); ok {
			return apps, true
		}
	}
	return nil, false
}

func foldWalk(n *vdftext.Node, path []string) (*vdftext.Node, bool) {
	for _, seg := range path {
		c, ok := n.ChildFold(seg)
		if !ok || !c.IsSection() {
			return nil, false
		}
		n = c
	}
	return n, true
}

func findSectionFold(n *vdftext.Node, name string) (*vdftext.Node, bool) {
	for _, c := range n.Children() {
		if !c.IsSection() {
			continue
		}
		if strings.EqualFold(c.Name(), name) {
			return c, true
		}
		if found, ok := findSectionFold(c, name); ok {
			return found, true
		}
	}
	return nil, false
}

func firstSection(nodes []*vdftext.Node) *vdftext.Node {
	for _, n := range nodes {
		if n.IsSection() {
			return n
		}
	}
	return nil
}

func formatAppID(appID uint32) string {
	return strconv.FormatUint(uint64(appID), 10)
}

// Get returns the launch options for an app, and whether any were set.
func (t *LaunchOptionsTable) Get(appID uint32) (string, bool) {
	app, ok := t.apps.Child(formatAppID(appID))
	if !ok || !app.IsSection() {
		return "", false
	}
	lo, ok := app.ChildFold(launchOptionsKey)
	if !ok || lo.IsSection() {
		return "", false
	}
	return lo.Text(), true
}

// Set writes the launch options for an app, creating its entry when
// absent. An existing value keeps its key spelling and layout.
func (t *LaunchOptionsTable) Set(appID uint32, value string) error {
	app, err := t.apps.EnsureSection(formatAppID(appID))
	if err != nil {
		return fmt.Errorf("app %d: %w", appID, err)
	}
	if lo, ok := app.ChildFold(launchOptionsKey); ok {
		if err := lo.SetStringValue(value); err != nil {
			return fmt.Errorf("app %d launch options: %w", appID, err)
		}
		return nil
	}
	if _, err := app.SetString(launchOptionsKey, value); err != nil {
		return fmt.Errorf("app %d launch options: %w", appID, err)
	}
	return nil
}

// Clear removes an app's launch options, leaving the rest of its entry
// alone. Reports whether anything was removed.
func (t *LaunchOptionsTable) Clear(appID uint32) bool {
	app, ok := t.apps.Child(formatAppID(appID))
	if !ok || !app.IsSection() {
		return false
	}
	lo, ok := app.ChildFold(launchOptionsKey)
	if !ok || lo.IsSection() {
		return false
	}
	return app.RemoveChild(lo.Name())
}

// checkSettable reports whether Set would succeed for an app without
// mutating anything.
func (t *LaunchOptionsTable) checkSettable(appID uint32) error {
	app, ok := t.apps.Child(formatAppID(appID))
	if !ok {
		return nil
	}
	if !app.IsSection() {
		return fmt.Errorf("app %d: %w", appID, vdftext.ErrNotSection)
	}
	if lo, ok := app.ChildFold(launchOptionsKey); ok && lo.IsSection() {
		return fmt.Errorf("app %d launch options: %w", appID, vdftext.ErrNotLeaf)
	}
	return nil
}

// SetAll writes the same launch options for every listed app. Every id
// is checked before any write, so a malformed entry leaves the whole
// document unchanged.
func (t *LaunchOptionsTable) SetAll(appIDs []uint32, value string) error {
	for _, id := range appIDs {
		if err := t.checkSettable(id); err != nil {
			return err
		}
	}
	for _, id := range appIDs {
		if err := t.Set(id, value); err != nil {
			return err
		}
	}
	return nil
}

// ClearAll removes launch options for every listed app and returns how
// many entries actually held one.
func (t *LaunchOptionsTable) ClearAll(appIDs []uint32) int {
	cleared := 0
	for _, id := range appIDs {
		if t.Clear(id) {
			cleared++
		}
	}
	return cleared
}

// SetAllFromLibrary resolves the installed games and writes the same
// launch options for each. Nothing is written when the resolver fails,
// keeping bulk edits all-or-nothing.
func (t *LaunchOptionsTable) SetAllFromLibrary(list func() ([]InstalledGame, error), value string) (int, error) {
	games, err := list()
	if err != nil {
		return 0, fmt.Errorf("failed to list installed games: %w", err)
	}
	ids := make([]uint32, 0, len(games))
	for _, game := range games {
		ids = append(ids, game.AppID)
	}
	if err := t.SetAll(ids, value); err != nil {
		return 0, err
	}
	return len(ids), nil
}

// AppIDs returns every numeric app id present in the table, ascending.
func (t *LaunchOptionsTable) AppIDs() []uint32 {
	var ids []uint32
	for _, c := range t.apps.Children() {
		if !c.IsSection() {
			continue
		}
		id, err := strconv.ParseUint(c.Name(), 10, 32)
		if err != nil {
			continue
		}
		ids = append(ids, uint32(id))
	}
	slices.Sort(ids)
	return ids
}

// DefaultLaunchOptions is the value written when the user asks for the
// standard wrapper without giving explicit options.
func DefaultLaunchOptions() string {
	return config.ShimName + " -- %command%"
}

// IsManagedLaunchOptions reports whether a launch options value looks
// like one written by this tool, meaning it starts with the wrapper
// name and still carries the %command% placeholder. Bulk clears use it
// to avoid wiping options the user wrote by hand.
func IsManagedLaunchOptions(value string) bool {
	fields := strings.Fields(value)
	if len(fields) == 0 || fields[0] != config.ShimName {
		return false
	}
	return strings.Contains(value, "%command%")
}
