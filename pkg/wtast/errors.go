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

package wtast

import (
	"errors"
	"fmt"
	"unicode"
)

// ErrInvalidArgument is returned when a TrailingWhitespace-class field is
// set to a string containing non-whitespace characters.
var ErrInvalidArgument = errors.New("wtast: argument must contain only whitespace")

// ErrInvalidState is returned when IsSelfClosing is toggled on a tag that
// has non-empty content.
var ErrInvalidState = errors.New("wtast: tag has content and cannot be self-closing")

func requireWhitespace(field, s string) error {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return fmt.Errorf("%s: %w", field, ErrInvalidArgument)
		}
	}
	return nil
}
