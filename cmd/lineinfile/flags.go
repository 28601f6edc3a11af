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

package main

import (
	"github.com/spf13/pflag"
	"github.com/walteh/lineinfile/pkg/lineinfile"
)

// stateValue restricts --state to present or absent
type stateValue lineinfile.State

var _ pflag.Value = (*stateValue)(nil)

func (s *stateValue) String() string {
	return string(*s)
}

func (s *stateValue) Set(v string) error {
	st, err := lineinfile.ParseState(v)
	if err != nil {
		return err
	}
	*s = stateValue(st)
	return nil
}

func (s *stateValue) Type() string {
	return "state"
}
