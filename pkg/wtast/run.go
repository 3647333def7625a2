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

// Run is an ordered sequence of inline nodes confined to a single logical
// line: used wherever the grammar forbids a newline (link targets, link
// text, template names, tag attribute names).
type Run struct {
	Inlines []InlineNode
}

func NewRun(inlines ...InlineNode) *Run {
	return &Run{Inlines: append([]InlineNode{}, inlines...)}
}

// Append adds an inline child, coalescing with a trailing PlainText when
// both the new node and the current last child are PlainText.
func (r *Run) Append(n InlineNode) {
	if pt, ok := n.(*PlainText); ok && len(r.Inlines) > 0 {
		if last, ok := r.Inlines[len(r.Inlines)-1].(*PlainText); ok {
			last.Content += pt.Content
			return
		}
	}
	r.Inlines = append(r.Inlines, n)
}

func (r *Run) String() string {
	var b strings.Builder
	for _, n := range r.Inlines {
		b.WriteString(n.String())
	}
	return b.String()
}

func (r *Run) Clone() *Run {
	clone := &Run{Inlines: make([]InlineNode, len(r.Inlines))}
	for i, n := range r.Inlines {
		clone.Inlines[i] = n.Clone().(InlineNode)
	}
	return clone
}

func (r *Run) Empty() bool { return len(r.Inlines) == 0 }
