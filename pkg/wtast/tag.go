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

// TagCommon is the data shared by ParserTag and HtmlTag: the two concrete
// tag variants embed it by value.
//
// The source this grammar was distilled from keeps TrailingWhitespace and
// ClosingTagTrailingWhitespace on a single shared backing field, which
// looks like a bug (setting one clobbers the other). This port gives them
// independent storage; see DESIGN.md.
type TagCommon struct {
	Name                         string
	ClosingTagName               *string // nil means "same as Name"
	Attributes                   []TagAttribute
	TrailingWhitespace           string
	ClosingTagTrailingWhitespace string
	IsSelfClosing                bool
}

// SetTrailingWhitespace validates and sets the whitespace immediately
// before the tag's closing ">" or "/>".
func (t *TagCommon) SetTrailingWhitespace(s string) error {
	if err := requireWhitespace("TrailingWhitespace", s); err != nil {
		return err
	}
	t.TrailingWhitespace = s
	return nil
}

// SetClosingTagTrailingWhitespace validates and sets the whitespace
// immediately before the closing tag's ">".
func (t *TagCommon) SetClosingTagTrailingWhitespace(s string) error {
	if err := requireWhitespace("ClosingTagTrailingWhitespace", s); err != nil {
		return err
	}
	t.ClosingTagTrailingWhitespace = s
	return nil
}

func (t *TagCommon) closingName() string {
	if t.ClosingTagName != nil {
		return *t.ClosingTagName
	}
	return t.Name
}

func (t *TagCommon) openTag() string {
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(t.Name)
	for _, a := range t.Attributes {
		b.WriteString(a.String())
	}
	b.WriteString(t.TrailingWhitespace)
	if t.IsSelfClosing {
		b.WriteString("/>")
	} else {
		b.WriteString(">")
	}
	return b.String()
}

func (t *TagCommon) closeTag() string {
	var b strings.Builder
	b.WriteString("</")
	b.WriteString(t.closingName())
	b.WriteString(t.ClosingTagTrailingWhitespace)
	b.WriteString(">")
	return b.String()
}

func (t *TagCommon) cloneCommon() TagCommon {
	clone := TagCommon{
		Name:                         t.Name,
		Attributes:                   make([]TagAttribute, len(t.Attributes)),
		TrailingWhitespace:           t.TrailingWhitespace,
		ClosingTagTrailingWhitespace: t.ClosingTagTrailingWhitespace,
		IsSelfClosing:                t.IsSelfClosing,
	}
	if t.ClosingTagName != nil {
		name := *t.ClosingTagName
		clone.ClosingTagName = &name
	}
	for i, a := range t.Attributes {
		clone.Attributes[i] = a.Clone()
	}
	return clone
}

// ParserTag is a tag whose content is never re-parsed as wikitext (e.g.
// <nowiki>, <pre>): its raw text is stored verbatim.
type ParserTag struct {
	TagCommon
	Content *string
}

func NewParserTag(common TagCommon, content *string) *ParserTag {
	return &ParserTag{TagCommon: common, Content: content}
}

func (t *ParserTag) inlineNode() {}

func (t *ParserTag) String() string {
	if t.IsSelfClosing || t.Content == nil {
		return t.openTag()
	}
	return t.openTag() + *t.Content + t.closeTag()
}

// SetSelfClosing toggles IsSelfClosing, refusing to do so while Content is
// non-empty.
func (t *ParserTag) SetSelfClosing(v bool) error {
	if v && t.Content != nil && *t.Content != "" {
		return ErrInvalidState
	}
	t.IsSelfClosing = v
	return nil
}

func (t *ParserTag) Clone() Node {
	clone := &ParserTag{TagCommon: t.cloneCommon()}
	if t.Content != nil {
		content := *t.Content
		clone.Content = &content
	}
	return clone
}

// HtmlTag is a tag whose content is re-parsed as wikitext.
type HtmlTag struct {
	TagCommon
	Content *Wikitext
}

func NewHtmlTag(common TagCommon, content *Wikitext) *HtmlTag {
	return &HtmlTag{TagCommon: common, Content: content}
}

func (t *HtmlTag) inlineNode() {}

func (t *HtmlTag) String() string {
	if t.IsSelfClosing || t.Content == nil {
		return t.openTag()
	}
	return t.openTag() + t.Content.String() + t.closeTag()
}

// SetSelfClosing toggles IsSelfClosing, refusing to do so while Content is
// non-empty.
func (t *HtmlTag) SetSelfClosing(v bool) error {
	if v && t.Content != nil && len(t.Content.Lines) > 0 {
		return ErrInvalidState
	}
	t.IsSelfClosing = v
	return nil
}

func (t *HtmlTag) Clone() Node {
	clone := &HtmlTag{TagCommon: t.cloneCommon()}
	if t.Content != nil {
		clone.Content = t.Content.Clone().(*Wikitext)
	}
	return clone
}
