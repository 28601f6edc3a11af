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
	"strings"
)

const separator = "\n"

// 📊 Action describes what an edit did to the file
type Action string

const (
	ActionAdded     Action = "added"
	ActionRemoved   Action = "removed"
	ActionReplaced  Action = "replaced"
	ActionUnchanged Action = "unchanged"
)

// 📦 Outcome is the result of applying a LineSpec to some content
type Outcome struct {
	Content string
	Action  Action
}

// Changed reports whether the content differs from the input.
func (o Outcome) Changed() bool {
	return o.Action != ActionUnchanged
}

// ✂️ SplitLines splits content into lines. A single trailing newline ends the
// last line rather than starting an empty one, and empty content has no lines.
func SplitLines(content string) (lines []string, trailingNewline bool) {
	if content == "" {
		return []string{}, false
	}
	if strings.HasSuffix(content, separator) {
		content = strings.TrimSuffix(content, separator)
		trailingNewline = true
	}
	return strings.Split(content, separator), trailingNewline
}

// 🧵 JoinLines is the inverse of SplitLines.
func JoinLines(lines []string, trailingNewline bool) string {
	out := strings.Join(lines, separator)
	if trailingNewline && len(lines) > 0 {
		out += separator
	}
	return out
}

// 🚀 Apply validates spec and applies it to content.
func Apply(content string, spec LineSpec) (*Outcome, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	before, trailing := SplitLines(content)
	after, err := applyLines(before, spec)
	if err != nil {
		return nil, err
	}

	return &Outcome{
		Content: JoinLines(after, trailing),
		Action:  classify(before, after),
	}, nil
}

// 🔀 ApplyLines applies a validated spec to a line slice.
func ApplyLines(lines []string, spec LineSpec) ([]string, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return applyLines(lines, spec)
}

func applyLines(lines []string, spec LineSpec) ([]string, error) {
	switch {
	case spec.State == StateAbsent && spec.Regex != nil:
		return RemoveMatchingLine(lines, *spec.Regex)
	case spec.State == StateAbsent:
		return RemoveLine(lines, *spec.Line), nil
	case spec.Regex != nil:
		return ReplaceLine(lines, *spec.Line, *spec.Regex)
	default:
		return AddLine(lines, *spec.Line), nil
	}
}

func classify(before, after []string) Action {
	switch {
	case slices.Equal(before, after):
		return ActionUnchanged
	case len(after) > len(before):
		return ActionAdded
	case len(after) < len(before):
		return ActionRemoved
	default:
		return ActionReplaced
	}
}
