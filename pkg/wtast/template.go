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

// TemplateArgument is one "|value" or "|name=value" segment of a template
// invocation. Name is nil for an anonymous (positional) argument.
type TemplateArgument struct {
	Name  *Wikitext
	Value Wikitext
}

func NewTemplateArgument(name *Wikitext, value Wikitext) TemplateArgument {
	return TemplateArgument{Name: name, Value: value}
}

func (a TemplateArgument) String() string {
	var b strings.Builder
	if a.Name != nil {
		b.WriteString(a.Name.String())
		b.WriteString("=")
	}
	b.WriteString(a.Value.String())
	return b.String()
}

func (a TemplateArgument) Clone() TemplateArgument {
	clone := TemplateArgument{Value: *a.Value.Clone().(*Wikitext)}
	if a.Name != nil {
		clone.Name = a.Name.Clone().(*Wikitext)
	}
	return clone
}

// Template is a "{{name|arg|...}}" transclusion.
type Template struct {
	Name      Run
	Arguments []TemplateArgument
}

func NewTemplate(name Run, arguments ...TemplateArgument) *Template {
	return &Template{Name: name, Arguments: append([]TemplateArgument{}, arguments...)}
}

func (t *Template) inlineNode() {}

func (t *Template) String() string {
	var b strings.Builder
	b.WriteString("{{")
	b.WriteString(t.Name.String())
	for _, a := range t.Arguments {
		b.WriteString("|")
		b.WriteString(a.String())
	}
	b.WriteString("}}")
	return b.String()
}

func (t *Template) Clone() Node {
	clone := &Template{Name: *t.Name.Clone(), Arguments: make([]TemplateArgument, len(t.Arguments))}
	for i, a := range t.Arguments {
		clone.Arguments[i] = a.Clone()
	}
	return clone
}
