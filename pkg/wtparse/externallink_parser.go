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

import "github.com/notedownorg/wikitext/pkg/wtast"

// urlToken is the URL matcher from the external link grammar: a scheme
// (or a protocol-relative //), then URL characters or <...> groups,
// stopping before trailing punctuation that is followed by whitespace, a
// URL-terminating character, or end of input.
const urlToken = `(?i)(?:(?:\bhttps?:|\bftp:|\birc:|\bgopher:)//|//|\bnews:|\bmailto:)` +
	`(?:[^\x00-\x20\s"\[\]\x7f|{}<>]|<[^>]*>)+?` +
	`(?=[!"().,:;` + "‘-•" + `]*\s|[\x00-\x20\s"\[\]\x7f|{}<>]|$)`

// parseExternalLink matches both bracketed "[url text]" links and bare
// URLs. A bracketed link whose target is not a URL fails as a whole, so
// the "[" falls through to plain text; a bare URL is a single URL token.
func (p *Parser) parseExternalLink() (wtast.InlineNode, bool) {
	p.ParseStart(`[\s\]\|]`, true)
	_, brackets := p.ConsumeToken(`\[`)
	target := wtast.NewRun()
	if brackets {
		if !p.parseRun(modeExpandableURL, target) {
			return ParseFailed[wtast.InlineNode](p)
		}
	} else {
		token, ok := p.parseURLText()
		if !ok {
			return ParseFailed[wtast.InlineNode](p)
		}
		target.Append(token)
	}
	if !brackets {
		node := wtast.NewExternalLink(*target, nil, "", false)
		return ParseSuccessful[wtast.InlineNode](p, node, true), true
	}
	var text *wtast.Run
	separator, ok := p.ConsumeToken(`[ \t]`)
	if ok {
		p.SetTerminator(`[\]\n]`)
		text = wtast.NewRun()
		p.parseRun(modeRun, text)
	}
	if _, ok := p.ConsumeToken(`\]`); !ok {
		return ParseFailed[wtast.InlineNode](p)
	}
	node := wtast.NewExternalLink(*target, text, separator, true)
	return ParseSuccessful[wtast.InlineNode](p, node, true), true
}

// parseURLText consumes a single URL token as plain text.
func (p *Parser) parseURLText() (wtast.InlineNode, bool) {
	p.ParseStartDefault()
	token, ok := p.ConsumeToken(urlToken)
	if !ok {
		return ParseFailed[wtast.InlineNode](p)
	}
	return ParseSuccessful[wtast.InlineNode](p, wtast.NewPlainText(token), true), true
}
