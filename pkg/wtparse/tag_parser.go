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

const (
	tagOpen  = `<([a-zA-Z][\w-]*)`
	tagClose = `(?i)</([a-zA-Z][\w-]*)(\s*)>`
)

// parseTag matches <name attrs*> ... </name> and the self-closing
// <name attrs*/>. Whether the content is kept raw (ParserTag) or re-parsed
// as wikitext (HtmlTag) depends on the configured parser-tag name set.
// Closing-tag matching is case-insensitive; the closing name's own
// spelling is preserved when it differs from the opener.
func (p *Parser) parseTag() (wtast.InlineNode, bool) {
	p.ParseStartDefault()
	open, ok := p.scanner.ConsumeGroups(tagOpen)
	if !ok {
		return ParseFailed[wtast.InlineNode](p)
	}
	common := wtast.TagCommon{Name: open[1]}
	for {
		attr, ok := p.parseTagAttribute()
		if !ok {
			break
		}
		common.Attributes = append(common.Attributes, attr)
	}
	trailing, _ := p.ConsumeToken(`\s*`)
	common.TrailingWhitespace = trailing

	if _, ok := p.ConsumeToken(`/>`); ok {
		common.IsSelfClosing = true
		var node wtast.InlineNode
		if p.opts.isParserTag(common.Name) {
			node = wtast.NewParserTag(common, nil)
		} else {
			node = wtast.NewHtmlTag(common, nil)
		}
		return ParseSuccessful(p, node, true), true
	}
	if _, ok := p.ConsumeToken(`>`); !ok {
		return ParseFailed[wtast.InlineNode](p)
	}

	closer := `(?i)</` + common.Name + `\s*>`
	if p.opts.isParserTag(common.Name) {
		// Raw content: everything up to the first matching closer,
		// markup and all. No closer means no tag.
		start := p.scanner.Offset()
		end := p.scanner.FindFrom(closer, start)
		if end < 0 {
			return ParseFailed[wtast.InlineNode](p)
		}
		content := p.scanner.Slice(start, end)
		p.scanner.MoveTo(end)
		if !p.consumeClosingTag(&common) {
			return ParseFailed[wtast.InlineNode](p)
		}
		return ParseSuccessful[wtast.InlineNode](p, wtast.NewParserTag(common, &content), true), true
	}

	p.ParseStart(closer, false)
	content := p.parseWikitext()
	ParseSuccessful(p, content, true)
	if !p.consumeClosingTag(&common) {
		return ParseFailed[wtast.InlineNode](p)
	}
	return ParseSuccessful[wtast.InlineNode](p, wtast.NewHtmlTag(common, content), true), true
}

func (p *Parser) consumeClosingTag(common *wtast.TagCommon) bool {
	groups, ok := p.scanner.ConsumeGroups(tagClose)
	if !ok {
		return false
	}
	if groups[1] != common.Name {
		name := groups[1]
		common.ClosingTagName = &name
	}
	common.ClosingTagTrailingWhitespace = groups[2]
	return true
}

// parseTagAttribute matches one attribute: mandatory leading whitespace, a
// name run, and optionally = with a double-quoted, single-quoted, or bare
// value. Quoted values are full wikitext scopes; bare values stop at
// whitespace or the tag's closers.
func (p *Parser) parseTagAttribute() (wtast.TagAttribute, bool) {
	p.ParseStartDefault()
	leading, ok := p.ConsumeToken(`\s+`)
	if !ok {
		return ParseFailed[wtast.TagAttribute](p)
	}
	name := wtast.NewRun()
	p.ParseStart(`[=\s>]|/>`, true)
	nameOK := p.parseRun(modeExpandableText, name)
	ParseSuccessful(p, name, true)
	if !nameOK {
		return ParseFailed[wtast.TagAttribute](p)
	}
	attr := wtast.TagAttribute{LeadingWhitespace: leading, Name: *name}
	if _, ok := p.ConsumeToken(`=`); ok {
		switch {
		case p.consumeQuote(`"`):
			attr.Quote = '"'
			p.ParseStart(`"`, false)
			attr.Value = *p.parseWikitext()
			ParseSuccessful(p, 0, true)
			if !p.consumeQuote(`"`) {
				return ParseFailed[wtast.TagAttribute](p)
			}
		case p.consumeQuote(`'`):
			attr.Quote = '\''
			p.ParseStart(`'`, false)
			attr.Value = *p.parseWikitext()
			ParseSuccessful(p, 0, true)
			if !p.consumeQuote(`'`) {
				return ParseFailed[wtast.TagAttribute](p)
			}
		default:
			p.ParseStart(`[\s>]|/>`, true)
			attr.Value = *p.parseWikitext()
			ParseSuccessful(p, 0, true)
		}
	}
	return ParseSuccessful(p, attr, true), true
}

func (p *Parser) consumeQuote(quote string) bool {
	_, ok := p.ConsumeToken(quote)
	return ok
}
