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
	"slices"
)

// ➕ AddLine appends line unless an identical line already exists.
func AddLine(lines []string, line string) []string {
	return AddLineAt(lines, line, len(lines))
}

// ➕ AddLineAt inserts line at index unless an identical line already exists.
// index is clamped to [0, len(lines)].
func AddLineAt(lines []string, line string, index int) []string {
	out := slices.Clone(lines)
	if slices.Contains(out, line) {
		return out
	}
	index = max(0, min(index, len(out)))
	return slices.Insert(out, index, line)
}

// ➖ RemoveLine drops the first line equal to line. Removing a line that is
// not there is not an error.
func RemoveLine(lines []string, line string) []string {
	out := slices.Clone(lines)
	if i := slices.Index(out, line); i >= 0 {
		return slices.Delete(out, i, i+1)
	}
	return out
}

// ➖ RemoveMatchingLine drops the first line matching pattern.
func RemoveMatchingLine(lines []string, pattern string) ([]string, error) {
	m, err := FindMatchingLine(lines, pattern)
	if err != nil {
		return nil, err
	}
	out := slices.Clone(lines)
	if m == nil {
		return out, nil
	}
	return slices.Delete(out, m.Index, m.Index+1), nil
}

// 🔄 ReplaceLine removes the first line matching pattern and inserts line at
// its position. When line already exists elsewhere the match is only removed,
// so no duplicate is introduced. When nothing matches, line is added as by
// AddLine.
func ReplaceLine(lines []string, line, pattern string) ([]string, error) {
	m, err := FindMatchingLine(lines, pattern)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return AddLine(lines, line), nil
	}
	out := slices.Delete(slices.Clone(lines), m.Index, m.Index+1)
	return AddLineAt(out, line, m.Index), nil
}
