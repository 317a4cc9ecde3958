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
	"strings"
)

// Serialize renders the document. Nodes untouched since Parse reproduce
// their source bytes exactly; nodes created by mutation are written in the
// layout Steam's writer uses, one pair per line with tab indentation and a
// double tab between a key and its value.
func (d *Document) Serialize() []byte {
	var buf bytes.Buffer
	for _, n := range d.root.children {
		writeNode(&buf, n, 0)
	}
	buf.WriteString(d.tail)
	return buf.Bytes()
}

func writeNode(buf *bytes.Buffer, n *Node, depth int) {
	if n.synth {
		if buf.Len() > 0 {
			buf.WriteByte('\n')
		}
		writeTabs(buf, depth)
	} else {
		buf.WriteString(n.leadWS)
	}
	if n.rawKey != "" {
		buf.WriteString(n.rawKey)
	} else {
		buf.WriteString(quoteString(n.name))
	}

	if n.kind == KindSection {
		if n.synth {
			buf.WriteByte('\n')
			writeTabs(buf, depth)
		} else {
			buf.WriteString(n.openWS)
		}
		buf.WriteByte('{')
		for _, c := range n.children {
			writeNode(buf, c, depth+1)
		}
		if n.synth {
			buf.WriteByte('\n')
			writeTabs(buf, depth)
		} else {
			buf.WriteString(n.closeWS)
		}
		buf.WriteByte('}')
		return
	}

	if n.synth {
		buf.WriteString("\t\t")
	} else {
		buf.WriteString(n.midWS)
	}
	buf.WriteString(n.rawValue)
}

func writeTabs(buf *bytes.Buffer, n int) {
	for i := 0; i < n; i++ {
		buf.WriteByte('\t')
	}
}

// quoteString renders a decoded value as a quoted token, escaping only the
// two characters Steam's writer escapes.
func quoteString(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"', '\\':
			sb.WriteByte('\\')
			sb.WriteByte(c)
		default:
			sb.WriteByte(c)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
