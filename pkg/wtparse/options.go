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

	"github.com/notedownorg/wikitext/pkg/wikiconfig"
	"github.com/notedownorg/wikitext/pkg/wikilog"
)

// Options carries the parser's configuration knobs. The zero value is not
// usable on its own; construct through newOptions so the defaults from
// wikiconfig.Default are applied.
type Options struct {
	parserTags map[string]struct{}
	caseFold   bool
	log        *wikilog.Logger
}

// Option configures a single Parse call.
type Option func(*Options)

// WithParserTags replaces the set of tag names whose content is kept as an
// opaque string instead of being re-parsed as wikitext.
func WithParserTags(names ...string) Option {
	return func(o *Options) {
		o.parserTags = make(map[string]struct{}, len(names))
		for _, n := range names {
			o.parserTags[n] = struct{}{}
		}
	}
}

// WithCaseFoldParserTags controls whether parser-tag name comparison is
// case-insensitive.
func WithCaseFoldParserTags(fold bool) Option {
	return func(o *Options) { o.caseFold = fold }
}

// WithLogger attaches a logger for debug traces of frame pushes and
// rollbacks. The default discards everything.
func WithLogger(log *wikilog.Logger) Option {
	return func(o *Options) { o.log = log }
}

// WithConfig applies a loaded workspace configuration.
func WithConfig(config *wikiconfig.Config) Option {
	return func(o *Options) {
		WithParserTags(config.ParserTags...)(o)
		o.caseFold = config.CaseFoldParserTags
	}
}

func newOptions(opts ...Option) *Options {
	o := &Options{}
	WithConfig(wikiconfig.Default())(o)
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *Options) logger() *wikilog.Logger {
	if o.log == nil {
		return wikilog.Noop()
	}
	return o.log
}

func (o *Options) isParserTag(name string) bool {
	if o.caseFold {
		for tag := range o.parserTags {
			if strings.EqualFold(tag, name) {
				return true
			}
		}
		return false
	}
	_, ok := o.parserTags[name]
	return ok
}
