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

// ExternalLink is either a bracketed "[url text]" link or a bare URL.
// Brackets is false for a bare URL, in which case Text is always nil and
// Separator is empty. Separator holds the single " " or "\t" consumed
// between target and text, when Text is non-nil, so stringify reproduces
// the exact byte that was there.
type ExternalLink struct {
	Target    Run
	Text      *Run
	Separator string
	Brackets  bool
}

func NewExternalLink(target Run, text *Run, separator string, brackets bool) *ExternalLink {
	return &ExternalLink{Target: target, Text: text, Separator: separator, Brackets: brackets}
}

func (e *ExternalLink) inlineNode() {}

func (e *ExternalLink) String() string {
	if !e.Brackets {
		return e.Target.String()
	}
	var b strings.Builder
	b.WriteString("[")
	b.WriteString(e.Target.String())
	if e.Text != nil {
		b.WriteString(e.Separator)
		b.WriteString(e.Text.String())
	}
	b.WriteString("]")
	return b.String()
}

func (e *ExternalLink) Clone() Node {
	clone := &ExternalLink{Target: *e.Target.Clone(), Separator: e.Separator, Brackets: e.Brackets}
	if e.Text != nil {
		clone.Text = e.Text.Clone()
	}
	return clone
}
