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
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Parse builds a document from raw VDF bytes. Every byte of the input is
// retained in the tree, so Serialize on an unmodified document reproduces
// the input exactly. Grammar violations return a *ParseError wrapping
// ErrMalformed.
func Parse(data []byte) (*Document, error) {
	l := &lexer{data: data, line: 1}
	root := &Node{kind: KindSection}
	tail, err := parsePairs(l, root, true)
	if err != nil {
		return nil, err
	}
	return &Document{root: root, tail: tail}, nil
}

// parsePairs consumes key/value pairs until the enclosing scope ends: EOF
// at top level, '}' inside a section. It returns the trivia preceding the
// terminator.
func parsePairs(l *lexer, parent *Node, top bool) (string, error) {
	seen := make(map[string]struct{})
	for {
		lead, tok, err := l.next()
		if err != nil {
			return "", err
		}
		switch tok.kind {
		case tkEOF:
			if !top {
				return "", &ParseError{Line: tok.line, Msg: "unexpected end of input inside section"}
			}
			return lead, nil
		case tkClose:
			if top {
				return "", &ParseError{Line: tok.line, Msg: "unmatched '}'"}
			}
			return lead, nil
		case tkOpen:
			return "", &ParseError{Line: tok.line, Msg: "expected key before '{'"}
		case tkString, tkBare:
		}
		if _, dup := seen[tok.val]; dup {
			return "", &ParseError{Line: tok.line, Msg: fmt.Sprintf("duplicate key %q", tok.val)}
		}
		seen[tok.val] = struct{}{}

		child := &Node{name: tok.val, rawKey: tok.raw, leadWS: lead}
		if err := parseValue(l, child); err != nil {
			return "", err
		}
		parent.children = append(parent.children, child)
	}
}

// parseValue consumes whatever follows a key: a scalar token or a braced
// child list.
func parseValue(l *lexer, n *Node) error {
	ws, tok, err := l.next()
	if err != nil {
		return err
	}
	switch tok.kind {
	case tkString:
		n.kind = KindString
		n.strVal = tok.val
		n.rawValue = tok.raw
		n.midWS = ws
	case tkBare:
		n.rawValue = tok.raw
		n.midWS = ws
		if iv, perr := strconv.ParseInt(tok.raw, 10, 64); perr == nil {
			n.kind = KindInt
			n.intVal = iv
		} else {
			n.kind = KindString
			n.strVal = tok.val
		}
	case tkOpen:
		n.kind = KindSection
		n.openWS = ws
		closeWS, err := parsePairs(l, n, false)
		if err != nil {
			return err
		}
		n.closeWS = closeWS
	case tkClose:
		return &ParseError{Line: tok.line, Msg: fmt.Sprintf("key %q has no value", n.name)}
	case tkEOF:
		return &ParseError{Line: tok.line, Msg: fmt.Sprintf("unexpected end of input after key %q", n.name)}
	}
	return nil
}

type tokenKind int

const (
	tkEOF tokenKind = iota
	tkOpen
	tkClose
	tkString
	tkBare
)

type token struct {
	raw  string
	val  string
	kind tokenKind
	line int
}

type lexer struct {
	data []byte
	pos  int
	line int
}

// next returns the trivia (whitespace, comments, a leading BOM) preceding
// the next token together with the token itself.
func (l *lexer) next() (string, token, error) {
	start := l.pos
	if l.pos == 0 && bytes.HasPrefix(l.data, utf8BOM) {
		l.pos += len(utf8BOM)
	}
trivia:
	for l.pos < len(l.data) {
		switch c := l.data[l.pos]; {
		case c == '\n':
			l.line++
			l.pos++
		case c == ' ' || c == '\t' || c == '\r':
			l.pos++
		case c == '/' && l.pos+1 < len(l.data) && l.data[l.pos+1] == '/':
			for l.pos < len(l.data) && l.data[l.pos] != '\n' {
				l.pos++
			}
		default:
			break trivia
		}
	}
	lead := string(l.data[start:l.pos])
	if l.pos >= len(l.data) {
		return lead, token{kind: tkEOF, line: l.line}, nil
	}

	tokLine := l.line
	tokStart := l.pos
	switch l.data[l.pos] {
	case '{':
		l.pos++
		return lead, token{kind: tkOpen, raw: "{", line: tokLine}, nil
	case '}':
		l.pos++
		return lead, token{kind: tkClose, raw: "}", line: tokLine}, nil
	case '"':
		val, err := l.scanQuoted()
		if err != nil {
			return "", token{}, err
		}
		return lead, token{kind: tkString, raw: string(l.data[tokStart:l.pos]), val: val, line: tokLine}, nil
	default:
		for l.pos < len(l.data) && !isBareEnd(l.data[l.pos]) {
			l.pos++
		}
		raw := string(l.data[tokStart:l.pos])
		return lead, token{kind: tkBare, raw: raw, val: raw, line: tokLine}, nil
	}
}

// scanQuoted decodes a quoted token. Only backslash-quote and
// backslash-backslash are escapes; any other backslash is literal, which
// matches how Steam writes these files.
func (l *lexer) scanQuoted() (string, error) {
	l.pos++
	var sb strings.Builder
	for l.pos < len(l.data) {
		c := l.data[l.pos]
		switch c {
		case '"':
			l.pos++
			return sb.String(), nil
		case '\\':
			if l.pos+1 < len(l.data) && (l.data[l.pos+1] == '"' || l.data[l.pos+1] == '\\') {
				sb.WriteByte(l.data[l.pos+1])
				l.pos += 2
				continue
			}
			sb.WriteByte(c)
			l.pos++
		case '\n':
			l.line++
			sb.WriteByte(c)
			l.pos++
		default:
			sb.WriteByte(c)
			l.pos++
		}
	}
	return "", &ParseError{Line: l.line, Msg: "unterminated quoted string"}
}

func isBareEnd(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '{', '}', '"':
		return true
	}
	return false
}
