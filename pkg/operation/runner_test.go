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

package operation

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/walteh/lineinfile/pkg/fileio"
	"github.com/walteh/lineinfile/pkg/lineinfile"
	"gitlab.com/tozd/go/errors"
)

func TestOperator_RunAll(t *testing.T) {
	ctx := setupTestLogger(t)
	dir := t.TempDir()
	hosts := filepath.Join(dir, "hosts")
	conf := filepath.Join(dir, "app.conf")
	require.NoError(t, os.WriteFile(hosts, []byte("127.0.0.1 localhost\n"), 0o644))
	require.NoError(t, os.WriteFile(conf, []byte("foo=1\nbar=2"), 0o644))

	op, err := New(Options{Files: fileio.New(), Parallelism: 2})
	require.NoError(t, err)

	reqs := []Request{
		{Path: hosts, Spec: lineinfile.Present("10.0.0.1 db")},
		{Path: conf, Spec: lineinfile.PresentMatching("^foo=", "foo=2")},
		{Path: hosts, Spec: lineinfile.Present("10.0.0.2 cache")},
		{Path: conf, Spec: lineinfile.AbsentMatching("^bar=")},
		{Path: filepath.Join(dir, "new"), Spec: lineinfile.Present("x"), Create: true},
	}

	results, err := op.RunAll(ctx, reqs)
	require.NoError(t, err)
	require.Len(t, results, len(reqs))

	assert.Equal(t, lineinfile.ActionAdded, results[0].Action)
	assert.Equal(t, lineinfile.ActionReplaced, results[1].Action)
	assert.Equal(t, lineinfile.ActionAdded, results[2].Action)
	assert.Equal(t, lineinfile.ActionRemoved, results[3].Action)
	assert.True(t, results[4].Created)

	got, err := os.ReadFile(hosts)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1 localhost\n10.0.0.1 db\n10.0.0.2 cache\n", string(got), "same-file edits keep their order")

	got, err = os.ReadFile(conf)
	require.NoError(t, err)
	assert.Equal(t, "foo=2", string(got))
}

func TestOperator_RunAll_ValidatesBeforeReading(t *testing.T) {
	ctx := setupTestLogger(t)
	files := &MockFileManager{}

	op, err := New(Options{Files: files})
	require.NoError(t, err)

	_, err = op.RunAll(ctx, []Request{
		{Path: "a", Spec: lineinfile.Present("x")},
		{Path: "b", Spec: lineinfile.LineSpec{State: lineinfile.StateAbsent}},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, lineinfile.ErrInvalidSpec))
	assert.Contains(t, err.Error(), "edit 1")
	files.AssertNotCalled(t, "ReadFile", mock.Anything, mock.Anything)
}

func TestOperator_RunAll_StopsPathOnError(t *testing.T) {
	ctx := setupTestLogger(t)
	files := &MockFileManager{}
	files.On("ReadFile", mock.Anything, "missing").Return(nil, notFound("missing"))

	op, err := New(Options{Files: files, Parallelism: 1})
	require.NoError(t, err)

	results, err := op.RunAll(ctx, []Request{
		{Path: "missing", Spec: lineinfile.Present("x")},
		{Path: "missing", Spec: lineinfile.Present("y")},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, fileio.ErrFileNotFound))
	assert.Nil(t, results[0])
	assert.Nil(t, results[1])
	files.AssertNumberOfCalls(t, "ReadFile", 1)
}

func TestOperator_RunAll_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(setupTestLogger(t))
	cancel()

	op, err := New(Options{Files: &MockFileManager{}})
	require.NoError(t, err)

	_, err = op.RunAll(ctx, []Request{{Path: "a", Spec: lineinfile.Present("x")}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestGroupByPath(t *testing.T) {
	order, byPath := groupByPath([]Request{
		{Path: "b"}, {Path: "./a"}, {Path: "b"}, {Path: "a"},
	})
	assert.Equal(t, []string{"b", "a"}, order)
	assert.Equal(t, []int{0, 2}, byPath["b"])
	assert.Equal(t, []int{1, 3}, byPath["a"])
}
