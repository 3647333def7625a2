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

// TagAttribute is a single "name=value" (or bare "name") attribute of a
// tag. LeadingWhitespace is the non-empty whitespace run that separated it
// from the previous token (the tag name or the prior attribute).
//
// Quote records the quoting style (", ', or bare) so that stringify can
// reproduce the exact source bytes. Quote == 0 means the value was written
// bare, with no quote characters at all.
type TagAttribute struct {
	LeadingWhitespace string
	Name              Run
	Value             Wikitext
	Quote             byte
}

func NewTagAttribute(leadingWhitespace string, name Run, value Wikitext, quote byte) TagAttribute {
	return TagAttribute{LeadingWhitespace: leadingWhitespace, Name: name, Value: value, Quote: quote}
}

// HasValue reports whether this is a "name=value" attribute as opposed to
// a bare "name" attribute (an empty, absent value is represented by a
// zero-length Wikitext with Quote == 0, which HasValue treats as bare).
func (a TagAttribute) HasValue() bool {
	return a.Quote != 0 || len(a.Value.Lines) > 0
}

func (a TagAttribute) String() string {
	var b strings.Builder
	b.WriteString(a.LeadingWhitespace)
	b.WriteString(a.Name.String())
	if a.HasValue() {
		b.WriteString("=")
		if a.Quote != 0 {
			b.WriteByte(a.Quote)
		}
		b.WriteString(a.Value.String())
		if a.Quote != 0 {
			b.WriteByte(a.Quote)
		}
	}
	return b.String()
}

func (a TagAttribute) Clone() TagAttribute {
	return TagAttribute{
		LeadingWhitespace: a.LeadingWhitespace,
		Name:              *a.Name.Clone(),
		Value:             *a.Value.Clone().(*Wikitext),
		Quote:             a.Quote,
	}
}
