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
	"fmt"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 🎚️ State is whether the target line should end up in the file or not
type State string

const (
	StatePresent State = "present"
	StateAbsent  State = "absent"
)

// 🔍 ParseState converts user input into a State
func ParseState(s string) (State, error) {
	st := State(strings.ToLower(strings.TrimSpace(s)))
	if !st.Valid() {
		return "", errors.Errorf("%w: state %q must be one of present, absent", ErrInvalidSpec, s)
	}
	return st, nil
}

// Valid reports whether s is a known state.
func (s State) Valid() bool {
	return s == StatePresent || s == StateAbsent
}

func (s State) String() string {
	return string(s)
}

// 📋 LineSpec describes the desired change to a file.
//
// Line and Regex are pointers so that an empty line ("") can be told apart
// from a line that was not supplied at all.
type LineSpec struct {
	State State
	Line  *string
	Regex *string
}

// 🏭 Present ensures line exists, appending it when missing.
func Present(line string) LineSpec {
	return LineSpec{State: StatePresent, Line: &line}
}

// 🏭 PresentMatching replaces the first line matching regex with line, or
// appends line when nothing matches.
func PresentMatching(regex, line string) LineSpec {
	return LineSpec{State: StatePresent, Line: &line, Regex: &regex}
}

// 🏭 Absent removes the first line equal to line.
func Absent(line string) LineSpec {
	return LineSpec{State: StateAbsent, Line: &line}
}

// 🏭 AbsentMatching removes the first line matching regex.
func AbsentMatching(regex string) LineSpec {
	return LineSpec{State: StateAbsent, Regex: &regex}
}

// ✅ Validate rejects specs whose intent is ambiguous or under-specified.
// Rules are checked in order and the first failure is reported.
func (s LineSpec) Validate() error {
	if !s.State.Valid() {
		return errors.Errorf("%w: state %q must be one of present, absent", ErrInvalidSpec, s.State)
	}
	if s.Line == nil && s.Regex == nil {
		return errors.Errorf("%w: one of line or regex is required", ErrInvalidSpec)
	}
	if s.State == StateAbsent && s.Line != nil && s.Regex != nil {
		return errors.Errorf("%w: state=absent takes either line or regex, not both", ErrInvalidSpec)
	}
	if s.State == StatePresent && s.Line == nil {
		return errors.Errorf("%w: state=present requires line", ErrInvalidSpec)
	}
	return nil
}

// 📝 String returns a short description for logs
func (s LineSpec) String() string {
	var b strings.Builder
	b.WriteString("state=" + string(s.State))
	if s.Regex != nil {
		fmt.Fprintf(&b, " regex=%q", *s.Regex)
	}
	if s.Line != nil {
		fmt.Fprintf(&b, " line=%q", *s.Line)
	}
	return b.String()
}
