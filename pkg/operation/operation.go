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

	"github.com/rs/zerolog"
	"github.com/walteh/lineinfile/pkg/fileio"
	"github.com/walteh/lineinfile/pkg/lineinfile"
	"github.com/walteh/lineinfile/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// 🔧 Options contains configuration for the operator
type Options struct {
	// Files reads and writes the target files
	Files fileio.FileManager
	// Reporter prints a line per edit, optional
	Reporter *log.Logger
	// Parallelism caps how many files RunAll edits at once, defaults to the CPU count
	Parallelism int
}

// 📋 Request is a single line-in-file edit
type Request struct {
	Path   string
	Spec   lineinfile.LineSpec
	Create bool
}

// ✅ Validate checks the request without touching the filesystem
func (r Request) Validate() error {
	if r.Path == "" {
		return errors.Errorf("%w: path is required", lineinfile.ErrInvalidSpec)
	}
	return r.Spec.Validate()
}

// 📦 Result is the outcome of a Request
type Result struct {
	Path    string
	Content string
	Action  lineinfile.Action
	Created bool
}

// Changed reports whether the file on disk differs from before the edit.
func (r *Result) Changed() bool {
	return r.Created || r.Action != lineinfile.ActionUnchanged
}

// 🎮 Operator runs line-in-file edits against a FileManager
type Operator struct {
	files       fileio.FileManager
	reporter    *log.Logger
	parallelism int
}

// 🏭 New creates a new operator with the given options
func New(opts Options) (*Operator, error) {
	if opts.Files == nil {
		return nil, errors.Errorf("file manager is required")
	}
	return &Operator{
		files:       opts.Files,
		reporter:    opts.Reporter,
		parallelism: opts.Parallelism,
	}, nil
}

// 🚀 Run applies one request: validate, read, apply, write.
func (o *Operator) Run(ctx context.Context, req Request) (*Result, error) {
	logger := zerolog.Ctx(ctx).With().Str("path", req.Path).Str("spec", req.Spec.String()).Logger()

	if err := req.Validate(); err != nil {
		return nil, errors.Errorf("validating request: %w", err)
	}

	created := false
	content, err := o.files.ReadFile(ctx, req.Path)
	if err != nil {
		if !req.Create || !errors.Is(err, fileio.ErrFileNotFound) {
			return nil, errors.Errorf("reading %s: %w", req.Path, err)
		}
		logger.Debug().Msg("file does not exist, starting from empty content")
		created = true
		content = nil
	}

	out, err := lineinfile.Apply(string(content), req.Spec)
	if err != nil {
		return nil, errors.Errorf("applying %s: %w", req.Spec, err)
	}

	if err := o.files.WriteFile(ctx, req.Path, []byte(out.Content)); err != nil {
		return nil, errors.Errorf("writing %s: %w", req.Path, err)
	}

	logger.Debug().Str("action", string(out.Action)).Bool("created", created).Msg("edit applied")

	if o.reporter != nil {
		o.reporter.LogEdit(ctx, log.Edit{
			Path:    req.Path,
			Action:  out.Action,
			Created: created,
			Spec:    req.Spec.String(),
		})
	}

	return &Result{
		Path:    req.Path,
		Content: out.Content,
		Action:  out.Action,
		Created: created,
	}, nil
}
