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

package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/lineinfile/pkg/lineinfile"
	"github.com/walteh/lineinfile/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes; filename is the absolute path of the file
	Parse(ctx context.Context, filename string, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// ✏️ Edit is one line-in-file edit from a batch file
type Edit struct {
	Name   string  `json:"name,omitempty" yaml:"name,omitempty"`
	Path   string  `json:"path" yaml:"path"`
	Line   *string `json:"line,omitempty" yaml:"line,omitempty"`
	Regex  *string `json:"regex,omitempty" yaml:"regex,omitempty"`
	State  string  `json:"state,omitempty" yaml:"state,omitempty"`
	Create bool    `json:"create,omitempty" yaml:"create,omitempty"`
}

// 📚 Config is a batch of edits
type Config struct {
	Edits []Edit `json:"edits" yaml:"edits"`

	// dir is where relative edit paths are resolved from
	dir string
}

// 🎯 Load loads and validates a batch file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Errorf("resolving config path: %w", err)
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(abs)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, abs, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}
	cfg.dir = filepath.Dir(abs)

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	logger.Debug().Int("edits", len(cfg.Edits)).Msg("configuration loaded")
	return cfg, nil
}

// 🔍 Validate checks every edit without touching the target files
func (cfg *Config) Validate() error {
	if len(cfg.Edits) == 0 {
		return errors.Errorf("at least one edit is required")
	}
	for i, e := range cfg.Edits {
		if e.Path == "" {
			return errors.Errorf("edit %s: path is required", e.label(i))
		}
		if _, err := e.Spec(); err != nil {
			return errors.Errorf("edit %s: %w", e.label(i), err)
		}
		if isGlob(e.Path) && e.Create {
			return errors.Errorf("edit %s: create cannot be used with a glob path", e.label(i))
		}
	}
	return nil
}

// 📋 Spec converts the edit into a validated LineSpec. State defaults to present.
func (e Edit) Spec() (lineinfile.LineSpec, error) {
	state := lineinfile.StatePresent
	if e.State != "" {
		st, err := lineinfile.ParseState(e.State)
		if err != nil {
			return lineinfile.LineSpec{}, err
		}
		state = st
	}

	spec := lineinfile.LineSpec{State: state, Line: e.Line, Regex: e.Regex}
	if err := spec.Validate(); err != nil {
		return lineinfile.LineSpec{}, err
	}
	return spec, nil
}

func (e Edit) label(i int) string {
	if e.Name != "" {
		return fmt.Sprintf("%q", e.Name)
	}
	return fmt.Sprintf("#%d", i)
}

// 🗂️ Requests resolves every edit into operation requests, expanding globs.
// Edits keep their order; a glob expands to its matches in lexical order.
func (cfg *Config) Requests(ctx context.Context) ([]operation.Request, error) {
	var reqs []operation.Request
	for i, e := range cfg.Edits {
		spec, err := e.Spec()
		if err != nil {
			return nil, errors.Errorf("edit %s: %w", e.label(i), err)
		}

		if !isGlob(e.Path) {
			path := e.Path
			if !filepath.IsAbs(path) && cfg.dir != "" {
				path = filepath.Join(cfg.dir, path)
			}
			reqs = append(reqs, operation.Request{Path: path, Spec: spec, Create: e.Create})
			continue
		}

		matches, err := cfg.expand(e.Path)
		if err != nil {
			return nil, errors.Errorf("edit %s: expanding %q: %w", e.label(i), e.Path, err)
		}
		if len(matches) == 0 {
			return nil, errors.Errorf("edit %s: glob %q matched no files", e.label(i), e.Path)
		}
		zerolog.Ctx(ctx).Debug().Str("glob", e.Path).Int("matches", len(matches)).Msg("expanded glob")

		for _, m := range matches {
			reqs = append(reqs, operation.Request{Path: m, Spec: spec})
		}
	}
	return reqs, nil
}

// expand matches glob starting from the literal directory before its first
// meta character. The config directory itself is never treated as a pattern.
func (cfg *Config) expand(glob string) ([]string, error) {
	base, pattern := doublestar.SplitPattern(filepath.ToSlash(glob))
	base = filepath.FromSlash(base)
	if !filepath.IsAbs(base) && cfg.dir != "" {
		base = filepath.Join(cfg.dir, base)
	}

	matches, err := doublestar.Glob(os.DirFS(base), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, filepath.Join(base, filepath.FromSlash(m)))
	}
	slices.Sort(out)
	return out, nil
}

func isGlob(path string) bool {
	return strings.ContainsAny(path, "*?[{")
}
