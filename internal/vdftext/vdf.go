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

// Package vdftext reads and writes Valve's text VDF (KeyValues) format.
//
// Parsed documents keep every source byte: token spelling and surrounding
// whitespace survive a parse/serialize cycle unchanged. Only nodes that are
// mutated or created are re-emitted, using the conventions Steam's own
// writer follows (tab indentation by nesting depth, quoted tokens, braces
// on their own lines).
package vdftext

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed reports input that violates the VDF grammar.
	ErrMalformed = errors.New("malformed vdf document")
	// ErrNotSection reports a path segment that exists but holds a scalar.
	ErrNotSection = errors.New("path segment is not a section")
	// ErrNotLeaf reports a scalar write colliding with an existing section.
	ErrNotLeaf = errors.New("existing entry is not a scalar")
)

// ParseError carries the line number of the first grammar violation.
type ParseError struct {
	Msg  string
	Line int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("vdf: line %d: %s", e.Line, e.Msg)
}

func (e *ParseError) Unwrap() error {
	return ErrMalformed
}

// Kind discriminates section nodes from the two scalar leaf shapes.
type Kind int

const (
	KindSection Kind = iota
	KindString
	KindInt
)

// Node is one entry of a parsed document: a named section with ordered
// children, or a named scalar leaf. Nodes created by mutation carry no
// source trivia and serialize canonically.
type Node struct {
	name     string
	rawKey   string
	strVal   string
	rawValue string
	leadWS   string
	midWS    string
	openWS   string
	closeWS  string
	children []*Node
	intVal   int64
	kind     Kind
	synth    bool
}

// Name returns the decoded key of the node.
func (n *Node) Name() string { return n.name }

// Kind returns the node shape.
func (n *Node) Kind() Kind { return n.kind }

// IsSection reports whether the node holds children rather than a scalar.
func (n *Node) IsSection() bool { return n.kind == KindSection }

// String returns the decoded scalar and true when the node is a string leaf.
func (n *Node) String() (string, bool) {
	if n.kind != KindString {
		return "", false
	}
	return n.strVal, true
}

// Int returns the scalar and true when the node is an integer leaf.
func (n *Node) Int() (int64, bool) {
	if n.kind != KindInt {
		return 0, false
	}
	return n.intVal, true
}

// Text returns the scalar of either leaf shape in textual form. Sections
// return the empty string.
func (n *Node) Text() string {
	switch n.kind {
	case KindString:
		return n.strVal
	case KindInt:
		return n.rawValue
	default:
		return ""
	}
}

// Children returns the ordered child list of a section. The slice is owned
// by the node and must not be reordered by callers.
func (n *Node) Children() []*Node { return n.children }

// Document is the parsed form of one VDF file. The zero value is not
// usable; obtain documents from Parse or NewDocument.
type Document struct {
	root *Node
	tail string
}

// NewDocument returns an empty document that serializes to no bytes until
// nodes are added.
func NewDocument() *Document {
	return &Document{root: &Node{kind: KindSection, synth: true}}
}

// Nodes returns the ordered top-level nodes of the document.
func (d *Document) Nodes() []*Node { return d.root.children }
