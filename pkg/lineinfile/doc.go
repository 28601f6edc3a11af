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

/*
Package lineinfile decides how a file's lines change so that a single line
ends up present in, or absent from, the file.

	+-----------+     +-----------+     +-----------+
	| LineSpec  | --> | Validate  | --> |   Apply   |
	| (request) |     | (reject)  |     | (dispatch)|
	+-----------+     +-----------+     +-----+-----+
	                                          |
	           +--------------+---------------+--------------+
	           |              |                              |
	      AddLine        RemoveLine /                  ReplaceLine
	                  RemoveMatchingLine                     |
	                          |                              |
	                          +------ FindMatchingLine ------+

🎯 Dispatch:

	state    regex  line   action
	absent   yes    -      RemoveMatchingLine
	absent   no     yes    RemoveLine
	present  yes    yes    ReplaceLine
	present  no     yes    AddLine

Every mutator takes a line slice and returns a new one. The input slice is
never modified, so a caller can hold on to the original lines.

Only the first matching line is ever targeted. Patterns use Go's regexp
(RE2) syntax with search semantics: a pattern matches a line when it matches
any substring of it, unless the pattern itself is anchored.

File I/O is not part of this package; see pkg/fileio and pkg/operation.
*/
package lineinfile
