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

// Paragraph holds a run of inline content that isn't a heading or list
// item. Compact is true while the paragraph is still open for appending;
// it turns false once a blank line, or a line break with nothing after it
// before the end of the enclosing scope, closes the paragraph.
type Paragraph struct {
	Inlines []InlineNode
	Compact bool
}

func NewParagraph(compact bool, inlines ...InlineNode) *Paragraph {
	return &Paragraph{Inlines: append([]InlineNode{}, inlines...), Compact: compact}
}

// Append adds an inline child to the paragraph, coalescing adjacent
// PlainText the same way Run.Append does.
func (p *Paragraph) Append(n InlineNode) {
	if pt, ok := n.(*PlainText); ok && len(p.Inlines) > 0 {
		if last, ok := p.Inlines[len(p.Inlines)-1].(*PlainText); ok {
			last.Content += pt.Content
			return
		}
	}
	p.Inlines = append(p.Inlines, n)
}

// AppendText appends a raw string as plain text content, used by
// ParseLineEnd to fold a continuation's leading "\n"+whitespace directly
// into the still-open paragraph.
func (p *Paragraph) AppendText(s string) {
	if s == "" {
		return
	}
	p.Append(&PlainText{Content: s})
}

func (p *Paragraph) lineNode() {}

// String renders the paragraph back to wikitext. A closed paragraph carries
// its terminating newline; the blank line that separates it from the next
// line node comes from the Wikitext-level join.
func (p *Paragraph) String() string {
	var b strings.Builder
	for _, n := range p.Inlines {
		b.WriteString(n.String())
	}
	if !p.Compact {
		b.WriteString("\n")
	}
	return b.String()
}

func (p *Paragraph) Clone() Node {
	clone := &Paragraph{Inlines: make([]InlineNode, len(p.Inlines)), Compact: p.Compact}
	for i, n := range p.Inlines {
		clone.Inlines[i] = n.Clone().(InlineNode)
	}
	return clone
}
