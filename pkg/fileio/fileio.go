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

// Package fileio reads and writes whole text files for lineinfile.
package fileio

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// ErrFileNotFound is returned by ReadFile when the path does not exist.
var ErrFileNotFound = errors.Base("file not found")

const defaultFileMode fs.FileMode = 0o644

// 💾 FileManager reads and overwrites whole files
type FileManager interface {
	// ReadFile returns the full content of path, or an error wrapping
	// ErrFileNotFound when it does not exist.
	ReadFile(ctx context.Context, path string) ([]byte, error)
	// WriteFile replaces the content of path.
	WriteFile(ctx context.Context, path string, content []byte) error
}

// 🔧 Manager implements FileManager on the local filesystem. Writes go to a
// temp file in the target directory that is then renamed over the target.
type Manager struct{}

// 🏭 New creates a new file manager
func New() *Manager {
	return &Manager{}
}

var _ FileManager = (*Manager)(nil)

func (m *Manager) ReadFile(ctx context.Context, path string) ([]byte, error) {
	zerolog.Ctx(ctx).Debug().Str("path", path).Msg("reading file")

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, errors.Errorf("reading file: %w", err)
	}
	return content, nil
}

func (m *Manager) WriteFile(ctx context.Context, path string, content []byte) error {
	zerolog.Ctx(ctx).Debug().Str("path", path).Int("bytes", len(content)).Msg("writing file")

	// A symlink is written through so the link itself survives the rename.
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}

	mode := defaultFileMode
	info, err := os.Stat(path)
	switch {
	case err == nil:
		if info.IsDir() {
			return errors.Errorf("writing file: %s is a directory", path)
		}
		mode = info.Mode().Perm()
	case errors.Is(err, fs.ErrNotExist):
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return errors.Errorf("creating parent directories: %w", err)
		}
	default:
		return errors.Errorf("checking file: %w", err)
	}

	return writeFileAtomic(path, content, mode)
}

func writeFileAtomic(path string, content []byte, mode fs.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return errors.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return errors.Errorf("setting file mode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return errors.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return errors.Errorf("renaming temp file: %w", err)
	}
	return nil
}
