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

package lineinfile_test

import (
	"fmt"

	"github.com/walteh/lineinfile/pkg/lineinfile"
)

func ExampleApply() {
	out, err := lineinfile.Apply("foo=1\nbar=2", lineinfile.PresentMatching("^foo=", "foo=2"))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("%q %s\n", out.Content, out.Action)

	// Output:
	// "foo=2\nbar=2" replaced
}

func ExampleLineSpec_Validate() {
	spec := lineinfile.LineSpec{State: lineinfile.StatePresent}
	fmt.Println(spec.Validate())

	// Output:
	// invalid line spec: one of line or regex is required
}

func ExampleRemoveLine() {
	fmt.Println(lineinfile.RemoveLine([]string{"a", "b", "c", "b"}, "b"))

	// Output:
	// [a c b]
}
