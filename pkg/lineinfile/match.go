// Copyright 2025 walteh LLC
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

package lineinfile

import (
	"regexp"

	"gitlab.com/tozd/go/errors"
)

// 🎯 Match points at a line selected by a pattern
type Match struct {
	Index int
	Line  string
}

// 🔍 FindMatchingLine returns the first line containing a match for pattern,
// or nil when no line matches. An invalid pattern returns ErrPattern.
func FindMatchingLine(lines []string, pattern string) (*Match, error) {
	re, err := compilePattern(pattern)
	if err != nil {
		return nil, err
	}
	return findMatch(lines, re), nil
}

func compilePattern(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.Errorf("%w: %q: %s", ErrPattern, pattern, err.Error())
	}
	return re, nil
}

func findMatch(lines []string, re *regexp.Regexp) *Match {
	for i, line := range lines {
		if re.MatchString(line) {
			return &Match{Index: i, Line: line}
		}
	}
	return nil
}
