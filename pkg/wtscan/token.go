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

import "github.com/dlclark/regexp2"

// ConsumeToken anchor-matches pattern at the current cursor position. On a
// match it advances the cursor past the match and returns (text, true); on
// failure the cursor is left untouched and ("", false) is returned.
func (s *Scanner) ConsumeToken(pattern string) (string, bool) {
	m := s.lookAhead(pattern)
	if m == nil {
		return "", false
	}
	s.MoveTo(s.pos.Offset + m.Length)
	return m.String(), true
}

// ConsumeGroups is ConsumeToken for patterns with capture groups: on a
// match it returns the text of every group, full match first.
func (s *Scanner) ConsumeGroups(pattern string) ([]string, bool) {
	m := s.lookAhead(pattern)
	if m == nil {
		return nil, false
	}
	groups := make([]string, 0, m.GroupCount())
	for _, g := range m.Groups() {
		groups = append(groups, g.String())
	}
	s.MoveTo(s.pos.Offset + m.Length)
	return groups, true
}

// LookAheadToken has the same match semantics as ConsumeToken but never
// advances the cursor.
func (s *Scanner) LookAheadToken(pattern string) (string, bool) {
	m := s.lookAhead(pattern)
	if m == nil {
		return "", false
	}
	return m.String(), true
}

func (s *Scanner) lookAhead(pattern string) *regexp2.Match {
	re := Anchored(pattern)
	m, err := re.FindStringMatchStartingAt(s.source, s.pos.Offset)
	if err != nil || m == nil {
		return nil
	}
	return m
}

// FindFrom returns the rune offset of the earliest match of pattern at or
// after from, or -1 if the pattern never matches again before end of input.
func (s *Scanner) FindFrom(pattern string, from int) int {
	if from > len(s.runes) {
		from = len(s.runes)
	}
	re := Search(pattern)
	m, err := re.FindStringMatchStartingAt(s.source, from)
	if err != nil || m == nil {
		return -1
	}
	return m.Index
}
