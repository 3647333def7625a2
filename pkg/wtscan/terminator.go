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

package wtscan

import (
	"sync"

	"github.com/dlclark/regexp2"
)

// registry memoizes compiled regexp2 patterns so that the same terminator
// or token pattern is never compiled twice. Go's stdlib regexp (RE2) can't
// express the negative lookahead the grammar needs (e.g. '''' (?!')), so
// regexp2 is the engine for every pattern in the parser, not just this one.
type registry struct {
	mu    sync.Mutex
	plain map[string]*regexp2.Regexp
	anchd map[string]*regexp2.Regexp
}

var global = &registry{
	plain: make(map[string]*regexp2.Regexp),
	anchd: make(map[string]*regexp2.Regexp),
}

// Search compiles (or fetches) pattern for unanchored, left-to-right search.
func Search(pattern string) *regexp2.Regexp {
	return global.get(global.plain, pattern, pattern)
}

// Anchored compiles (or fetches) pattern wrapped so that it only matches
// starting exactly at the offset passed to FindStringMatchStartingAt — the
// regexp2 \G contiguous-match anchor, equivalent to .NET's Regex.Match(s,
// start) used together with \G.
func Anchored(pattern string) *regexp2.Regexp {
	return global.get(global.anchd, pattern, `\G(?:`+pattern+`)`)
}

func (r *registry) get(bucket map[string]*regexp2.Regexp, key, compiled string) *regexp2.Regexp {
	r.mu.Lock()
	defer r.mu.Unlock()
	if re, ok := bucket[key]; ok {
		return re
	}
	re := regexp2.MustCompile(compiled, regexp2.None)
	re.MatchTimeout = 0
	bucket[key] = re
	return re
}
