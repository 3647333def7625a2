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

// Package wikiconfig loads the parser's configuration knobs (which tag
// names get opaque, un-reparsed content, and whether that name comparison
// case-folds) from a workspace settings file, the way a real deployment
// supplies them instead of hardcoding the defaults.
package wikiconfig

import "fmt"

// Config is the on-disk shape of a workspace's wikitext settings.
type Config struct {
	ParserTags         []string `yaml:"parserTags" json:"parserTags"`
	CaseFoldParserTags bool     `yaml:"caseFoldParserTags" json:"caseFoldParserTags"`
}

// Default returns the built-in configuration: the conventional MediaWiki
// parser-tag set (nowiki, pre, math, source, syntaxhighlight, ref) with
// case-folded name comparison.
func Default() *Config {
	return &Config{
		ParserTags:         []string{"nowiki", "pre", "math", "source", "syntaxhighlight", "ref"},
		CaseFoldParserTags: true,
	}
}

// Validate rejects a config with no parser tags at all, the one state that
// would silently turn every <nowiki>-style tag into a re-parsed HtmlTag.
func (c *Config) Validate() error {
	if len(c.ParserTags) == 0 {
		return fmt.Errorf("wikiconfig: parserTags must not be empty")
	}
	seen := make(map[string]struct{}, len(c.ParserTags))
	for _, name := range c.ParserTags {
		if name == "" {
			return fmt.Errorf("wikiconfig: parserTags entries must not be empty")
		}
		key := name
		if c.CaseFoldParserTags {
			key = foldCase(name)
		}
		if _, dup := seen[key]; dup {
			return fmt.Errorf("wikiconfig: duplicate parser tag %q", name)
		}
		seen[key] = struct{}{}
	}
	return nil
}

func foldCase(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
