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

// ArgumentReference is a "{{{name}}}" or "{{{name|default}}}" template
// parameter reference.
type ArgumentReference struct {
	Name         Wikitext
	DefaultValue *Wikitext
}

func NewArgumentReference(name Wikitext, defaultValue *Wikitext) *ArgumentReference {
	return &ArgumentReference{Name: name, DefaultValue: defaultValue}
}

func (a *ArgumentReference) inlineNode() {}

func (a *ArgumentReference) String() string {
	var b strings.Builder
	b.WriteString("{{{")
	b.WriteString(a.Name.String())
	if a.DefaultValue != nil {
		b.WriteString("|")
		b.WriteString(a.DefaultValue.String())
	}
	b.WriteString("}}}")
	return b.String()
}

func (a *ArgumentReference) Clone() Node {
	clone := &ArgumentReference{Name: *a.Name.Clone().(*Wikitext)}
	if a.DefaultValue != nil {
		clone.DefaultValue = a.DefaultValue.Clone().(*Wikitext)
	}
	return clone
}
