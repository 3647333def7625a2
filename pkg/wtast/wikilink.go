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

// WikiLink is a "[[target]]" or "[[target|text]]" link. Text is nil when
// no "|" separator was present; it may be an empty, non-nil Run when the
// separator was present with nothing after it.
type WikiLink struct {
	Target Run
	Text   *Run
}

func NewWikiLink(target Run, text *Run) *WikiLink {
	return &WikiLink{Target: target, Text: text}
}

func (w *WikiLink) inlineNode() {}

func (w *WikiLink) String() string {
	var b strings.Builder
	b.WriteString("[[")
	b.WriteString(w.Target.String())
	if w.Text != nil {
		b.WriteString("|")
		b.WriteString(w.Text.String())
	}
	b.WriteString("]]")
	return b.String()
}

func (w *WikiLink) Clone() Node {
	clone := &WikiLink{Target: *w.Target.Clone()}
	if w.Text != nil {
		clone.Text = w.Text.Clone()
	}
	return clone
}
