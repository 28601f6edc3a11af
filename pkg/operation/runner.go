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
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// 🏃 RunAll applies a batch of requests. Every request is validated before
// any file is read. Requests for the same path run sequentially in the order
// given; distinct paths run concurrently. Results are returned in request
// order; on error, the results of edits that completed are still set.
func (o *Operator) RunAll(ctx context.Context, reqs []Request) ([]*Result, error) {
	for i, req := range reqs {
		if err := req.Validate(); err != nil {
			return nil, errors.Errorf("validating edit %d (%s): %w", i, req.Path, err)
		}
	}

	order, byPath := groupByPath(reqs)
	zerolog.Ctx(ctx).Debug().Int("edits", len(reqs)).Int("files", len(order)).Msg("running edits")

	results := make([]*Result, len(reqs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.limit())

	for _, path := range order {
		indexes := byPath[path]
		g.Go(func() error {
			for _, i := range indexes {
				if err := gctx.Err(); err != nil {
					return errors.Errorf("edit %d cancelled: %w", i, err)
				}
				res, err := o.Run(gctx, reqs[i])
				if err != nil {
					return errors.Errorf("edit %d: %w", i, err)
				}
				results[i] = res
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func (o *Operator) limit() int {
	if o.parallelism > 0 {
		return o.parallelism
	}
	return runtime.NumCPU()
}

// groupByPath returns the distinct cleaned paths in first-seen order, and the
// request indexes for each path.
func groupByPath(reqs []Request) ([]string, map[string][]int) {
	var order []string
	byPath := make(map[string][]int)
	for i, req := range reqs {
		key := filepath.Clean(req.Path)
		if _, ok := byPath[key]; !ok {
			order = append(order, key)
		}
		byPath[key] = append(byPath[key], i)
	}
	return order, byPath
}
