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

// Wikitext is an ordered sequence of LineNode: the root of a parsed
// document, and also what ArgumentReference/Template-argument/tag content
// re-parses into wherever the grammar allows newlines again.
type Wikitext struct {
	Lines []LineNode
}

func NewWikitext(lines ...LineNode) *Wikitext {
	return &Wikitext{Lines: append([]LineNode{}, lines...)}
}

func (w *Wikitext) String() string {
	var b strings.Builder
	for i, line := range w.Lines {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(line.String())
	}
	return b.String()
}

func (w *Wikitext) Clone() Node {
	clone := &Wikitext{Lines: make([]LineNode, len(w.Lines))}
	for i, l := range w.Lines {
		clone.Lines[i] = l.Clone().(LineNode)
	}
	return clone
}
