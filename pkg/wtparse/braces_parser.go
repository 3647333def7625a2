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

// parseBraces distinguishes {{{argument reference}}} from {{template}} by
// trying the triple-brace form first, the same longest-opener-wins rule
// MediaWiki applies.
func (p *Parser) parseBraces() (wtast.InlineNode, bool) {
	if node, ok := p.parseArgumentReference(); ok {
		return node, true
	}
	return p.parseTemplate()
}

// parseArgumentReference matches {{{name}}} and {{{name|default}}}. Name
// and default are full wikitext scopes: they may span lines and hold any
// nested construct, so the inherited terminators are masked for their
// duration.
func (p *Parser) parseArgumentReference() (wtast.InlineNode, bool) {
	p.ParseStartDefault()
	if _, ok := p.ConsumeToken(`\{\{\{`); !ok {
		return ParseFailed[wtast.InlineNode](p)
	}
	p.ParseStart(`\||\}\}\}`, false)
	name := p.parseWikitext()
	ParseSuccessful(p, name, true)
	var defaultValue *wtast.Wikitext
	if _, ok := p.ConsumeToken(`\|`); ok {
		p.ParseStart(`\}\}\}`, false)
		defaultValue = p.parseWikitext()
		ParseSuccessful(p, defaultValue, true)
	}
	if _, ok := p.ConsumeToken(`\}\}\}`); !ok {
		return ParseFailed[wtast.InlineNode](p)
	}
	node := wtast.NewArgumentReference(*name, defaultValue)
	return ParseSuccessful[wtast.InlineNode](p, node, true), true
}

// parseTemplate matches {{name|arg|...}}. The name is a run (no structural
// inlines) up to the first pipe or closing braces; each argument is a full
// wikitext scope.
func (p *Parser) parseTemplate() (wtast.InlineNode, bool) {
	p.ParseStartDefault()
	if _, ok := p.ConsumeToken(`\{\{`); !ok {
		return ParseFailed[wtast.InlineNode](p)
	}
	name := wtast.NewRun()
	p.ParseStart(`\||\}\}`, false)
	nameOK := p.parseRun(modeExpandableText, name)
	ParseSuccessful(p, name, true)
	if !nameOK {
		return ParseFailed[wtast.InlineNode](p)
	}
	node := wtast.NewTemplate(*name)
	for {
		if _, ok := p.ConsumeToken(`\|`); !ok {
			break
		}
		node.Arguments = append(node.Arguments, p.parseTemplateArgument())
	}
	if _, ok := p.ConsumeToken(`\}\}`); !ok {
		return ParseFailed[wtast.InlineNode](p)
	}
	return ParseSuccessful[wtast.InlineNode](p, node, true), true
}

// parseTemplateArgument parses one |-delimited segment. It first assumes a
// named argument by parsing up to an '='; when no '=' follows, the attempt
// rolls back and the whole segment re-parses as an anonymous value. It
// cannot fail: the worst case is an empty anonymous value.
func (p *Parser) parseTemplateArgument() wtast.TemplateArgument {
	p.ParseStart(`\||\}\}`, false)
	p.ParseStart(`=`, true)
	name := p.parseWikitext()
	ParseSuccessful(p, name, true)
	if _, ok := p.ConsumeToken(`=`); ok {
		value := p.parseWikitext()
		return ParseSuccessful(p, wtast.NewTemplateArgument(name, *value), true)
	}
	p.Fallback()
	value := p.parseWikitext()
	return ParseSuccessful(p, wtast.NewTemplateArgument(nil, *value), true)
}
