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

// Package wikitest provides a terse DSL for building expected syntax
// trees in tests, plus the shared round-trip verifier.
package wikitest

import "github.com/notedownorg/wikitext/pkg/wtast"

// Provide a DSL like API for creating test cases.
func Wt(lines ...wtast.LineNode) *wtast.Wikitext {
	return wtast.NewWikitext(lines...)
}

// P is a compact (still open) paragraph.
func P(inlines ...wtast.InlineNode) wtast.LineNode {
	return wtast.NewParagraph(true, inlines...)
}

// Pc is a closed paragraph.
func Pc(inlines ...wtast.InlineNode) wtast.LineNode {
	return wtast.NewParagraph(false, inlines...)
}

func H(level int, inlines ...wtast.InlineNode) wtast.LineNode {
	return wtast.NewHeading(level, inlines...)
}

func Li(prefix string, inlines ...wtast.InlineNode) wtast.LineNode {
	return wtast.NewListItem(prefix, inlines...)
}

func Tx(content string) wtast.InlineNode {
	return wtast.NewPlainText(content)
}

func R(inlines ...wtast.InlineNode) *wtast.Run {
	return wtast.NewRun(inlines...)
}

// Rs is shorthand for a run holding a single text node.
func Rs(content string) *wtast.Run {
	return wtast.NewRun(wtast.NewPlainText(content))
}

// Ws is shorthand for a wikitext holding a single compact paragraph of text.
func Ws(content string) *wtast.Wikitext {
	return wtast.NewWikitext(wtast.NewParagraph(true, wtast.NewPlainText(content)))
}

func Italics() wtast.InlineNode { return wtast.NewFormatSwitch(false, true) }

func Bold() wtast.InlineNode { return wtast.NewFormatSwitch(true, false) }

func BoldItalics() wtast.InlineNode { return wtast.NewFormatSwitch(true, true) }

func Wl(target *wtast.Run, text *wtast.Run) wtast.InlineNode {
	return wtast.NewWikiLink(*target, text)
}

// El is a bracketed external link; sep is the single space or tab between
// target and text.
func El(target *wtast.Run, sep string, text *wtast.Run) wtast.InlineNode {
	return wtast.NewExternalLink(*target, text, sep, true)
}

// Url is a bare external link.
func Url(url string) wtast.InlineNode {
	return wtast.NewExternalLink(*Rs(url), nil, "", false)
}

func Tm(name *wtast.Run, arguments ...wtast.TemplateArgument) wtast.InlineNode {
	return wtast.NewTemplate(*name, arguments...)
}

// Anon is an anonymous (positional) template argument.
func Anon(value *wtast.Wikitext) wtast.TemplateArgument {
	return wtast.NewTemplateArgument(nil, *value)
}

// Named is a name=value template argument.
func Named(name, value *wtast.Wikitext) wtast.TemplateArgument {
	return wtast.NewTemplateArgument(name, *value)
}

func Ar(name *wtast.Wikitext, defaultValue *wtast.Wikitext) wtast.InlineNode {
	return wtast.NewArgumentReference(*name, defaultValue)
}

func Cm(content string) wtast.InlineNode {
	return wtast.NewComment(content)
}

// Pt is a parser tag with raw content; content may be nil for the
// self-closing form.
func Pt(name string, content *string) wtast.InlineNode {
	return wtast.NewParserTag(wtast.TagCommon{Name: name, IsSelfClosing: content == nil}, content)
}

// Str returns a pointer to s, for optional raw tag content.
func Str(s string) *string { return &s }
