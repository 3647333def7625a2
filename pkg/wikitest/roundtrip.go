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

package wikitest

import (
	"fmt"
	"testing"

	"github.com/notedownorg/wikitext/pkg/wtast"
	"github.com/notedownorg/wikitext/pkg/wtparse"
	"github.com/stretchr/testify/assert"
)

// RoundTripTest drives one input through parse -> stringify. Expected is
// optional; when set, the parsed tree must match it exactly.
type RoundTripTest struct {
	Name     string
	Input    string
	Expected *wtast.Wikitext
	Options  []wtparse.Option
}

func VerifyRoundTrip(t *testing.T, tests []RoundTripTest) {
	for _, test := range tests {
		t.Run(fmt.Sprintf("Roundtrip: %v", test.Name), func(t *testing.T) {
			document := wtparse.Parse(test.Input, test.Options...)
			got := document.String()
			assert.Equal(t, test.Input, got, "Roundtrip mismatch from original input")
			if test.Expected != nil {
				assert.Equal(t, test.Expected, document, "Parsed tree mismatch")
			}

			// Do multiple round trips to ensure that the AST is stable
			// Only run if we haven't already failed to avoid spamming the output
			if !t.Failed() {
				for i := 0; i < 10; i++ {
					document = wtparse.Parse(got, test.Options...)
					got = document.String()
					assert.Equal(t, test.Input, got, "Mismatch after multiple roundtrips")
				}
			}
		})
	}
}

// VerifyIdempotent checks the weaker law that holds for every input, even
// ones whose blank-line whitespace is normalized: one parse -> stringify
// pass reaches a fixed point.
func VerifyIdempotent(t *testing.T, inputs []string) {
	for _, input := range inputs {
		t.Run(fmt.Sprintf("Idempotent: %q", input), func(t *testing.T) {
			first := wtparse.Parse(input).String()
			second := wtparse.Parse(first).String()
			assert.Equal(t, first, second, "parse/stringify did not reach a fixed point")
		})
	}
}
