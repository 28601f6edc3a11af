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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		wantLines    []string
		wantTrailing bool
	}{
		{name: "empty", content: "", wantLines: []string{}},
		{name: "single_line", content: "a", wantLines: []string{"a"}},
		{name: "no_trailing_newline", content: "a\nb\nc", wantLines: []string{"a", "b", "c"}},
		{name: "trailing_newline", content: "a\nb\n", wantLines: []string{"a", "b"}, wantTrailing: true},
		{name: "only_newline", content: "\n", wantLines: []string{""}, wantTrailing: true},
		{name: "blank_lines_kept", content: "a\n\nb", wantLines: []string{"a", "", "b"}},
		{name: "two_trailing_newlines", content: "a\n\n", wantLines: []string{"a", ""}, wantTrailing: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, trailing := SplitLines(tt.content)
			assert.Equal(t, tt.wantLines, lines)
			assert.Equal(t, tt.wantTrailing, trailing)
			assert.Equal(t, tt.content, JoinLines(lines, trailing), "join should restore content")
		})
	}
}

func TestJoinLines_EmptyDropsTrailingNewline(t *testing.T) {
	assert.Equal(t, "", JoinLines([]string{}, true))
}

func TestApply(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		spec       LineSpec
		want       string
		wantAction Action
		wantErr    error
	}{
		{
			name:       "present_appends",
			content:    "a\nb\nc",
			spec:       Present("d"),
			want:       "a\nb\nc\nd",
			wantAction: ActionAdded,
		},
		{
			name:       "present_existing_unchanged",
			content:    "a\nb\nc",
			spec:       Present("b"),
			want:       "a\nb\nc",
			wantAction: ActionUnchanged,
		},
		{
			name:       "absent_removes",
			content:    "a\nb\nc",
			spec:       Absent("b"),
			want:       "a\nc",
			wantAction: ActionRemoved,
		},
		{
			name:       "absent_missing_unchanged",
			content:    "a\nc",
			spec:       Absent("b"),
			want:       "a\nc",
			wantAction: ActionUnchanged,
		},
		{
			name:       "regex_replaces",
			content:    "foo=1\nbar=2",
			spec:       PresentMatching("^foo=", "foo=2"),
			want:       "foo=2\nbar=2",
			wantAction: ActionReplaced,
		},
		{
			name:       "regex_replace_already_applied",
			content:    "foo=2\nbar=2",
			spec:       PresentMatching("^foo=", "foo=2"),
			want:       "foo=2\nbar=2",
			wantAction: ActionUnchanged,
		},
		{
			name:       "regex_replacement_already_present",
			content:    "foo=1\nfoo=2",
			spec:       PresentMatching("^foo=", "foo=2"),
			want:       "foo=2",
			wantAction: ActionRemoved,
		},
		{
			name:       "absent_empty_line_keeps_trailing_newline",
			content:    "a\n",
			spec:       Absent(""),
			want:       "a\n",
			wantAction: ActionUnchanged,
		},
		{
			name:       "regex_no_match_appends",
			content:    "bar=2",
			spec:       PresentMatching("^foo=", "foo=2"),
			want:       "bar=2\nfoo=2",
			wantAction: ActionAdded,
		},
		{
			name:       "regex_absent_removes",
			content:    "foo=1\nbar=2",
			spec:       AbsentMatching("^bar"),
			want:       "foo=1",
			wantAction: ActionRemoved,
		},
		{
			name:       "empty_content_present",
			content:    "",
			spec:       Present("x"),
			want:       "x",
			wantAction: ActionAdded,
		},
		{
			name:       "empty_content_absent",
			content:    "",
			spec:       Absent("x"),
			want:       "",
			wantAction: ActionUnchanged,
		},
		{
			name:       "trailing_newline_preserved",
			content:    "a\nb\n",
			spec:       Present("c"),
			want:       "a\nb\nc\n",
			wantAction: ActionAdded,
		},
		{
			name:       "removing_last_line_leaves_empty",
			content:    "a\n",
			spec:       Absent("a"),
			want:       "",
			wantAction: ActionRemoved,
		},
		{
			name:    "invalid_spec",
			content: "a",
			spec:    LineSpec{State: StatePresent, Regex: ptr("^a")},
			wantErr: ErrInvalidSpec,
		},
		{
			name:    "invalid_pattern",
			content: "a",
			spec:    PresentMatching("(", "b"),
			wantErr: ErrPattern,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Apply(tt.content, tt.spec)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Content)
			assert.Equal(t, tt.wantAction, got.Action)
			assert.Equal(t, tt.wantAction != ActionUnchanged, got.Changed())
		})
	}
}

func TestApply_Idempotent(t *testing.T) {
	specs := []LineSpec{
		Present("d"),
		Absent("b"),
		PresentMatching("^foo=", "foo=9"),
		AbsentMatching("^bar="),
	}

	for _, spec := range specs {
		t.Run(spec.String(), func(t *testing.T) {
			first, err := Apply("a\nb\nfoo=1\nbar=2\n", spec)
			require.NoError(t, err)
			second, err := Apply(first.Content, spec)
			require.NoError(t, err)
			assert.Equal(t, first.Content, second.Content)
			assert.Equal(t, ActionUnchanged, second.Action)
		})
	}
}

func TestApplyLines(t *testing.T) {
	t.Run("dispatches", func(t *testing.T) {
		got, err := ApplyLines([]string{"a", "b"}, Absent("a"))
		require.NoError(t, err)
		assert.Equal(t, []string{"b"}, got)
	})

	t.Run("validates_first", func(t *testing.T) {
		_, err := ApplyLines([]string{"a"}, LineSpec{State: StateAbsent, Line: ptr("a"), Regex: ptr("a")})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidSpec))
	})
}
