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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunAppendCoalescesPlainText(t *testing.T) {
	r := NewRun()
	r.Append(NewPlainText("foo"))
	r.Append(NewPlainText("bar"))
	r.Append(NewFormatSwitch(true, false))
	r.Append(NewPlainText("baz"))

	require.Len(t, r.Inlines, 3)
	assert.Equal(t, "foobar", r.Inlines[0].(*PlainText).Content)
	assert.Equal(t, "baz", r.Inlines[2].(*PlainText).Content)
}

func TestParagraphString(t *testing.T) {
	compact := NewParagraph(true, NewPlainText("abc"))
	assert.Equal(t, "abc", compact.String())

	closed := NewParagraph(false, NewPlainText("abc"))
	assert.Equal(t, "abc\n", closed.String())
}

func TestWikitextStringJoinsLines(t *testing.T) {
	doc := NewWikitext(
		NewHeading(2, NewPlainText(" Title ")),
		NewParagraph(false, NewPlainText("abc")),
		NewParagraph(true, NewPlainText("def")),
	)
	assert.Equal(t, "== Title ==\nabc\n\ndef", doc.String())
}

func TestListItemString(t *testing.T) {
	assert.Equal(t, "* item", NewListItem("*", NewPlainText(" item")).String())
	assert.Equal(t, "----", NewListItem("----").String())
}

func TestFormatSwitchString(t *testing.T) {
	assert.Equal(t, "''", NewFormatSwitch(false, true).String())
	assert.Equal(t, "'''", NewFormatSwitch(true, false).String())
	assert.Equal(t, "'''''", NewFormatSwitch(true, true).String())
}

func TestWikiLinkString(t *testing.T) {
	target := NewRun(NewPlainText("Page"))
	assert.Equal(t, "[[Page]]", NewWikiLink(*target, nil).String())

	empty := NewRun()
	assert.Equal(t, "[[Page|]]", NewWikiLink(*target.Clone(), empty).String(),
		"present but empty text must keep its pipe")

	text := NewRun(NewPlainText("label"))
	assert.Equal(t, "[[Page|label]]", NewWikiLink(*target.Clone(), text).String())
}

func TestExternalLinkString(t *testing.T) {
	target := NewRun(NewPlainText("http://example.com"))
	bare := NewExternalLink(*target, nil, "", false)
	assert.Equal(t, "http://example.com", bare.String())

	text := NewRun(NewPlainText("Example"))
	bracketed := NewExternalLink(*target.Clone(), text, "\t", true)
	assert.Equal(t, "[http://example.com\tExample]", bracketed.String())
}

func TestTemplateString(t *testing.T) {
	name := NewRun(NewPlainText("t"))
	anon := NewTemplateArgument(nil, *NewWikitext(NewParagraph(true, NewPlainText("2"))))
	named := NewTemplateArgument(
		NewWikitext(NewParagraph(true, NewPlainText("a"))),
		*NewWikitext(NewParagraph(true, NewPlainText("1"))),
	)
	assert.Equal(t, "{{t|a=1|2}}", NewTemplate(*name, named, anon).String())
}

func TestArgumentReferenceString(t *testing.T) {
	name := NewWikitext(NewParagraph(true, NewPlainText("1")))
	assert.Equal(t, "{{{1}}}", NewArgumentReference(*name, nil).String())

	def := NewWikitext(NewParagraph(true, NewPlainText("x")))
	assert.Equal(t, "{{{1|x}}}", NewArgumentReference(*name.Clone().(*Wikitext), def).String())
}

func TestCommentString(t *testing.T) {
	assert.Equal(t, "<!-- note -->", NewComment(" note ").String())
}

func TestCloneIsDeep(t *testing.T) {
	original := NewParagraph(true, NewPlainText("abc"))
	clone := original.Clone().(*Paragraph)
	clone.Inlines[0].(*PlainText).Content = "xyz"
	assert.Equal(t, "abc", original.Inlines[0].(*PlainText).Content)

	link := NewWikiLink(*NewRun(NewPlainText("Page")), NewRun(NewPlainText("label")))
	linkClone := link.Clone().(*WikiLink)
	linkClone.Text.Inlines[0].(*PlainText).Content = "other"
	assert.Equal(t, "label", link.Text.Inlines[0].(*PlainText).Content)
}
