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

package vdftext

import (
	"fmt"
	"strconv"
	"strings"
)

// Child returns the child with exactly the given name.
func (n *Node) Child(name string) (*Node, bool) {
	for _, c := range n.children {
		if c.name == name {
			return c, true
		}
	}
	return nil, false
}

// ChildFold returns the first child, in document order, whose name matches
// under case folding. Steam's own reader treats keys case-insensitively,
// so lookups that mirror its behavior go through here.
func (n *Node) ChildFold(name string) (*Node, bool) {
	for _, c := range n.children {
		if strings.EqualFold(c.name, name) {
			return c, true
		}
	}
	return nil, false
}

// EnsureSection returns the named child section, appending an empty one
// when absent. A scalar already holding the name is an error.
func (n *Node) EnsureSection(name string) (*Node, error) {
	if c, ok := n.Child(name); ok {
		if c.kind != KindSection {
			return nil, fmt.Errorf("%q: %w", name, ErrNotSection)
		}
		return c, nil
	}
	c := &Node{name: name, kind: KindSection, synth: true}
	n.children = append(n.children, c)
	return c, nil
}

// SetString writes a string leaf under a section. An existing leaf keeps
// its key spelling and surrounding layout; only the value token changes.
func (n *Node) SetString(key, value string) (*Node, error) {
	if c, ok := n.Child(key); ok {
		if err := c.SetStringValue(value); err != nil {
			return nil, fmt.Errorf("%q: %w", key, err)
		}
		return c, nil
	}
	c := &Node{
		name:     key,
		kind:     KindString,
		strVal:   value,
		rawValue: quoteString(value),
		synth:    true,
	}
	n.children = append(n.children, c)
	return c, nil
}

// SetInt writes an integer leaf under a section, replacing an existing
// leaf's value in place.
func (n *Node) SetInt(key string, value int64) (*Node, error) {
	if c, ok := n.Child(key); ok {
		if err := c.SetIntValue(value); err != nil {
			return nil, fmt.Errorf("%q: %w", key, err)
		}
		return c, nil
	}
	c := &Node{
		name:     key,
		kind:     KindInt,
		intVal:   value,
		rawValue: strconv.FormatInt(value, 10),
		synth:    true,
	}
	n.children = append(n.children, c)
	return c, nil
}

// SetStringValue replaces a leaf's scalar with a string value.
func (n *Node) SetStringValue(value string) error {
	if n.kind == KindSection {
		return ErrNotLeaf
	}
	n.kind = KindString
	n.strVal = value
	n.rawValue = quoteString(value)
	return nil
}

// SetIntValue replaces a leaf's scalar with an integer value.
func (n *Node) SetIntValue(value int64) error {
	if n.kind == KindSection {
		return ErrNotLeaf
	}
	n.kind = KindInt
	n.intVal = value
	n.strVal = ""
	n.rawValue = strconv.FormatInt(value, 10)
	return nil
}

// RemoveChild removes the named child of any shape and reports whether it
// was present.
func (n *Node) RemoveChild(name string) bool {
	for i, c := range n.children {
		if c.name == name {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return true
		}
	}
	return false
}

// Lookup walks the path from the document root. Intermediate segments must
// be sections; the final node may have any shape.
func (d *Document) Lookup(path ...string) (*Node, bool) {
	n := d.root
	for i, seg := range path {
		if n.kind != KindSection {
			return nil, false
		}
		c, ok := n.Child(seg)
		if !ok {
			return nil, false
		}
		if i == len(path)-1 {
			return c, true
		}
		n = c
	}
	return nil, false
}

// Section resolves the path to a section node, never creating one.
func (d *Document) Section(path ...string) (*Node, bool) {
	if len(path) == 0 {
		return d.root, true
	}
	n, ok := d.Lookup(path...)
	if !ok || n.kind != KindSection {
		return nil, false
	}
	return n, true
}

// EnsureSection resolves the path to a section node, creating missing
// segments along the way. A scalar occupying any segment is an error.
func (d *Document) EnsureSection(path ...string) (*Node, error) {
	n := d.root
	for _, seg := range path {
		c, err := n.EnsureSection(seg)
		if err != nil {
			return nil, err
		}
		n = c
	}
	return n, nil
}

// SetString writes a string leaf at the path, creating intermediate
// sections as needed. The final path element names the leaf.
func (d *Document) SetString(path []string, value string) error {
	if len(path) == 0 {
		return fmt.Errorf("empty path: %w", ErrNotLeaf)
	}
	sec, err := d.EnsureSection(path[:len(path)-1]...)
	if err != nil {
		return err
	}
	_, err = sec.SetString(path[len(path)-1], value)
	return err
}

// SetInt writes an integer leaf at the path, creating intermediate
// sections as needed.
func (d *Document) SetInt(path []string, value int64) error {
	if len(path) == 0 {
		return fmt.Errorf("empty path: %w", ErrNotLeaf)
	}
	sec, err := d.EnsureSection(path[:len(path)-1]...)
	if err != nil {
		return err
	}
	_, err = sec.SetInt(path[len(path)-1], value)
	return err
}

// RemoveLeaf deletes the scalar at the path. Removing a section this way
// is refused. Reports whether a leaf was removed.
func (d *Document) RemoveLeaf(path []string) bool {
	if len(path) == 0 {
		return false
	}
	sec, ok := d.Section(path[:len(path)-1]...)
	if !ok {
		return false
	}
	c, ok := sec.Child(path[len(path)-1])
	if !ok || c.kind == KindSection {
		return false
	}
	return sec.RemoveChild(c.name)
}
