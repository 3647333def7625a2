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

package wtparse_test

import (
	"testing"

	. "github.com/notedownorg/wikitext/pkg/wikitest"
	"github.com/notedownorg/wikitext/pkg/wtast"
	"github.com/notedownorg/wikitext/pkg/wtparse"
	"github.com/stretchr/testify/assert"
)

func TestFormatSwitches(t *testing.T) {
	VerifyRoundTrip(t, []RoundTripTest{
		{
			Name:     "italics toggles",
			Input:    "''italics''",
			Expected: Wt(P(Italics(), Tx("italics"), Italics())),
		},
		{
			Name:     "bold toggles",
			Input:    "'''bold'''",
			Expected: Wt(P(Bold(), Tx("bold"), Bold())),
		},
		{
			Name:     "five apostrophes toggle both",
			Input:    "'''''both'''''",
			Expected: Wt(P(BoldItalics(), Tx("both"), BoldItalics())),
		},
		{
			Name:     "four apostrophes leave a literal apostrophe beside the bold toggle",
			Input:    "''''bold''''",
			Expected: Wt(P(Tx("'"), Bold(), Tx("bold'"), Bold())),
		},
		{
			Name:     "a single apostrophe is plain text",
			Input:    "it's",
			Expected: Wt(P(Tx("it's"))),
		},
	})
}

func TestWikiLinks(t *testing.T) {
	VerifyRoundTrip(t, []RoundTripTest{
		{
			Name:     "target only",
			Input:    "[[Page]]",
			Expected: Wt(P(Wl(Rs("Page"), nil))),
		},
		{
			Name:     "target and text",
			Input:    "[[A|B]]",
			Expected: Wt(P(Wl(Rs("A"), Rs("B")))),
		},
		{
			Name:     "empty text keeps its pipe",
			Input:    "[[Page|]]",
			Expected: Wt(P(Wl(Rs("Page"), R()))),
		},
		{
			Name:     "second pipe is literal inside the text",
			Input:    "[[A|B|C]]",
			Expected: Wt(P(Wl(Rs("A"), Rs("B|C")))),
		},
		{
			Name:     "template inside a link target",
			Input:    "[[{{ns}}:Page]]",
			Expected: Wt(P(Wl(R(Tm(Rs("ns")), Tx(":Page")), nil))),
		},
		{
			Name:     "newline aborts the link",
			Input:    "[[x\ny]]",
			Expected: Wt(P(Tx("[[x\ny]]"))),
		},
		{
			Name:     "unclosed link degrades to text",
			Input:    "[[abc",
			Expected: Wt(P(Tx("[[abc"))),
		},
	})
}

func TestExternalLinks(t *testing.T) {
	VerifyRoundTrip(t, []RoundTripTest{
		{
			Name:     "bracketed target only",
			Input:    "[http://x]",
			Expected: Wt(P(El(Rs("http://x"), "", nil))),
		},
		{
			Name:     "bracketed with text",
			Input:    "[http://x y]",
			Expected: Wt(P(El(Rs("http://x"), " ", Rs("y")))),
		},
		{
			Name:     "tab separator is preserved",
			Input:    "[http://x\ty]",
			Expected: Wt(P(El(Rs("http://x"), "\t", Rs("y")))),
		},
		{
			Name:     "bare URL in prose",
			Input:    "visit http://example.com now",
			Expected: Wt(P(Tx("visit "), Url("http://example.com"), Tx(" now"))),
		},
		{
			Name:     "trailing punctuation stays outside a bare URL",
			Input:    "see http://x, next",
			Expected: Wt(P(Tx("see "), Url("http://x"), Tx(", next"))),
		},
		{
			Name:     "protocol relative URL",
			Input:    "//cdn.example/lib.js",
			Expected: Wt(P(Url("//cdn.example/lib.js"))),
		},
		{
			Name:     "bracket without a URL scheme is plain text",
			Input:    "[[A|B]] and [C http://x ok]",
			Expected: Wt(P(Wl(Rs("A"), Rs("B")), Tx(" and [C "), Url("http://x"), Tx(" ok]"))),
		},
	})
}

// No run may hold two adjacent PlainText children, however the chunks were
// produced.
func TestPlainTextCoalescing(t *testing.T) {
	inputs := []string{
		"[[abc",
		"a [ b [ c",
		"'''' four",
		"{{x and [[y",
		"plain text only",
	}
	for _, input := range inputs {
		document := wtparse.Parse(input)
		for _, line := range document.Lines {
			para, ok := line.(*wtast.Paragraph)
			if !ok {
				continue
			}
			for i := 1; i < len(para.Inlines); i++ {
				_, prev := para.Inlines[i-1].(*wtast.PlainText)
				_, cur := para.Inlines[i].(*wtast.PlainText)
				assert.False(t, prev && cur, "adjacent PlainText in %q at %d", input, i)
			}
		}
		assert.Equal(t, input, document.String())
	}
}
