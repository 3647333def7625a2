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

func TestParserTagString(t *testing.T) {
	content := "[[x]]"
	tag := NewParserTag(TagCommon{Name: "nowiki"}, &content)
	assert.Equal(t, "<nowiki>[[x]]</nowiki>", tag.String())

	selfClosing := NewParserTag(TagCommon{Name: "references", IsSelfClosing: true}, nil)
	assert.Equal(t, "<references/>", selfClosing.String())
}

func TestHtmlTagString(t *testing.T) {
	content := NewWikitext(NewParagraph(true, NewPlainText("bold")))
	tag := NewHtmlTag(TagCommon{Name: "b"}, content)
	assert.Equal(t, "<b>bold</b>", tag.String())
}

func TestTagClosingNamePreservesSpelling(t *testing.T) {
	closing := "NOWIKI"
	content := "x"
	tag := NewParserTag(TagCommon{Name: "nowiki", ClosingTagName: &closing}, &content)
	assert.Equal(t, "<nowiki>x</NOWIKI>", tag.String())
}

func TestTagAttributeString(t *testing.T) {
	name := NewRun(NewPlainText("class"))
	value := NewWikitext(NewParagraph(true, NewPlainText("wide")))

	quoted := NewTagAttribute(" ", *name, *value, '"')
	assert.Equal(t, ` class="wide"`, quoted.String())

	bare := NewTagAttribute(" ", *name.Clone(), *value.Clone().(*Wikitext), 0)
	assert.Equal(t, ` class=wide`, bare.String())

	flag := NewTagAttribute(" ", *NewRun(NewPlainText("disabled")), Wikitext{}, 0)
	assert.Equal(t, ` disabled`, flag.String())
}

func TestTrailingWhitespaceGuards(t *testing.T) {
	tag := &TagCommon{Name: "div"}
	require.NoError(t, tag.SetTrailingWhitespace(" \t"))
	assert.Equal(t, " \t", tag.TrailingWhitespace)

	err := tag.SetTrailingWhitespace("x")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Equal(t, " \t", tag.TrailingWhitespace, "failed set must not clobber the field")

	assert.ErrorIs(t, tag.SetClosingTagTrailingWhitespace("no"), ErrInvalidArgument)
}

func TestWhitespaceFieldsAreIndependent(t *testing.T) {
	tag := &TagCommon{Name: "div"}
	require.NoError(t, tag.SetTrailingWhitespace(" "))
	require.NoError(t, tag.SetClosingTagTrailingWhitespace("\t"))
	assert.Equal(t, " ", tag.TrailingWhitespace)
	assert.Equal(t, "\t", tag.ClosingTagTrailingWhitespace)
}

func TestSetSelfClosingRejectsContent(t *testing.T) {
	content := "raw"
	parserTag := NewParserTag(TagCommon{Name: "nowiki"}, &content)
	assert.ErrorIs(t, parserTag.SetSelfClosing(true), ErrInvalidState)

	htmlTag := NewHtmlTag(TagCommon{Name: "b"}, NewWikitext(NewParagraph(true, NewPlainText("x"))))
	assert.ErrorIs(t, htmlTag.SetSelfClosing(true), ErrInvalidState)

	empty := NewHtmlTag(TagCommon{Name: "br"}, nil)
	require.NoError(t, empty.SetSelfClosing(true))
	assert.True(t, empty.IsSelfClosing)
}
