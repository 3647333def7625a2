// Copyright 2026 Notedown Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package wtast

import "strings"

// ListItem is a single "* text", "# text", ":text", ";text", "----" or
// " text" line. Prefix carries the exact marker text that was matched.
type ListItem struct {
	Inlines []InlineNode
	Prefix  string
}

func NewListItem(prefix string, inlines ...InlineNode) *ListItem {
	return &ListItem{Inlines: append([]InlineNode{}, inlines...), Prefix: prefix}
}

// Append adds an inline child, coalescing adjacent PlainText the same way
// Run.Append does.
func (l *ListItem) Append(n InlineNode) {
	if pt, ok := n.(*PlainText); ok && len(l.Inlines) > 0 {
		if last, ok := l.Inlines[len(l.Inlines)-1].(*PlainText); ok {
			last.Content += pt.Content
			return
		}
	}
	l.Inlines = append(l.Inlines, n)
}

func (l *ListItem) lineNode() {}

func (l *ListItem) String() string {
	var b strings.Builder
	b.WriteString(l.Prefix)
	for _, n := range l.Inlines {
		b.WriteString(n.String())
	}
	return b.String()
}

func (l *ListItem) Clone() Node {
	clone := &ListItem{Inlines: make([]InlineNode, len(l.Inlines)), Prefix: l.Prefix}
	for i, n := range l.Inlines {
		clone.Inlines[i] = n.Clone().(InlineNode)
	}
	return clone
}
