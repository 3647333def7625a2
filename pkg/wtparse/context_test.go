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

package wtparse

import (
	"strings"
	"testing"

	"github.com/notedownorg/wikitext/pkg/wtast"
	"github.com/notedownorg/wikitext/pkg/wtscan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeTerminator(t *testing.T) {
	assert.Equal(t, "", mergeTerminator("", "", true))
	assert.Equal(t, `\n`, mergeTerminator("", `\n`, true), "empty pattern inherits unchanged")
	assert.Equal(t, "", mergeTerminator("", `\n`, false))
	assert.Equal(t, `\|`, mergeTerminator(`\|`, `\n`, false), "masking drops the parent")
	assert.Equal(t, `(?:\|)|(?:\n)`, mergeTerminator(`\|`, `\n`, true))
	assert.Equal(t, `\|`, mergeTerminator(`\|`, "", true))
}

func TestRollbackRestoresSnapshotExactly(t *testing.T) {
	p := newParser("line one\nline two", newOptions())
	p.ParseStartDefault()
	p.ConsumeToken(`line`)
	before := p.Pos()

	p.ParseStartDefault()
	_, ok := p.ConsumeToken(` one\nline`)
	require.True(t, ok)
	assert.NotEqual(t, before, p.Pos())
	_, failed := ParseFailed[wtast.LineNode](p)
	assert.False(t, failed)
	assert.Equal(t, before, p.Pos(), "position, line, and column must match the pre-attempt snapshot")
}

func TestParseSuccessfulWithoutAccept(t *testing.T) {
	p := newParser("abc", newOptions())
	p.ParseStartDefault()
	before := p.Pos()
	p.ParseStartDefault()
	p.ConsumeToken(`abc`)
	node := ParseSuccessful[wtast.LineNode](p, nil, false)
	assert.Nil(t, node)
	assert.Equal(t, before, p.Pos(), "accept=false commits the result but not the cursor")
}

func TestNeedsTerminate(t *testing.T) {
	p := newParser("abc|def", newOptions())
	p.ParseStart(`\|`, false)
	assert.False(t, p.NeedsTerminate(nil))
	p.scanner.MoveTo(3)
	assert.True(t, p.NeedsTerminate(nil))

	override := `\n`
	assert.False(t, p.NeedsTerminate(&override))

	p.scanner.MoveTo(7)
	assert.True(t, p.NeedsTerminate(nil), "end of input always terminates")
}

func TestNeedsTerminateExceptNewline(t *testing.T) {
	p := newParser("\n|", newOptions())
	p.ParseStart(`\n|\|`, false)
	assert.False(t, p.NeedsTerminateExceptNewline(), "a bare newline match does not count")
	p.scanner.MoveTo(1)
	assert.True(t, p.NeedsTerminateExceptNewline())
}

func TestFindTerminator(t *testing.T) {
	p := newParser("ab|cd", newOptions())
	p.ParseStart(`\|`, false)
	assert.Equal(t, 2, p.FindTerminator(1))

	p.scanner.MoveTo(2)
	assert.Equal(t, 5, p.FindTerminator(1), "searching past the only match runs to end of input")
}

func TestAccept(t *testing.T) {
	p := newParser("abcdef", newOptions())
	p.ParseStartDefault()
	p.ConsumeToken(`abc`)
	p.Accept()
	p.ConsumeToken(`def`)
	p.Fallback()
	assert.Equal(t, 3, p.Pos().Offset, "Fallback rewinds to the accepted checkpoint, not the frame start")
}

func TestParseConsumesEntireInput(t *testing.T) {
	inputs := []string{
		"",
		"hello",
		"== Title ==\nhello",
		"* a\n* b\n\nparagraph",
		"{{t|a=1|2}} and [[link|text]]",
		"<nowiki>[[x]]</nowiki>\n\nrest",
		"unclosed [[link and {{template",
	}
	for _, input := range inputs {
		p := newParser(input, newOptions())
		p.parseWikitext()
		pos := p.Pos()
		assert.Equal(t, wtscan.New(input).Len(), pos.Offset, "input %q not fully consumed", input)
		assert.Equal(t, strings.Count(input, "\n")+1, pos.Line, "line count mismatch for %q", input)
	}
}
