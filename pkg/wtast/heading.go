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

// Heading is a "=== title ===" style section header. Level is in [1,6].
type Heading struct {
	Inlines []InlineNode
	Level   int
}

func NewHeading(level int, inlines ...InlineNode) *Heading {
	return &Heading{Inlines: append([]InlineNode{}, inlines...), Level: level}
}

// Append adds an inline child, coalescing adjacent PlainText the same way
// Run.Append does.
func (h *Heading) Append(n InlineNode) {
	if pt, ok := n.(*PlainText); ok && len(h.Inlines) > 0 {
		if last, ok := h.Inlines[len(h.Inlines)-1].(*PlainText); ok {
			last.Content += pt.Content
			return
		}
	}
	h.Inlines = append(h.Inlines, n)
}

func (h *Heading) lineNode() {}

func (h *Heading) String() string {
	eq := strings.Repeat("=", h.Level)
	var b strings.Builder
	b.WriteString(eq)
	for _, n := range h.Inlines {
		b.WriteString(n.String())
	}
	b.WriteString(eq)
	return b.String()
}

func (h *Heading) Clone() Node {
	clone := &Heading{Inlines: make([]InlineNode, len(h.Inlines)), Level: h.Level}
	for i, n := range h.Inlines {
		clone.Inlines[i] = n.Clone().(InlineNode)
	}
	return clone
}
