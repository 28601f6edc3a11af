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

package log

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/walteh/lineinfile/pkg/lineinfile"
)

// 🎨 Display configuration
const (
	fileIndent  = 2  // spaces to indent file entries
	nameWidth   = 35 // Base width for filename
	actionWidth = 10 // Width for action text
)

// 🎯 Edit describes one edited file for reporting
type Edit struct {
	Path    string            // File path
	Action  lineinfile.Action // What happened to the file
	Created bool              // Whether the file did not exist before
	Spec    string            // Short description of the requested change
}

// 🎯 Logger prints one line per edited file and mirrors it to zerolog
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
	edits   []Edit
}

// 🏭 New creates a new logger
func New(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
	}
}

func (l *Logger) formatEdit(e Edit) string {
	var symbol rune
	var symbolColor color.Attribute
	switch e.Action {
	case lineinfile.ActionAdded:
		symbol = '✓'
		symbolColor = color.FgGreen
	case lineinfile.ActionRemoved:
		symbol = '✗'
		symbolColor = color.FgRed
	case lineinfile.ActionReplaced:
		symbol = '⟳'
		symbolColor = color.FgBlue
	default:
		symbol = '•'
		symbolColor = color.FgCyan
	}

	status := string(e.Action)
	if e.Created {
		status += " (created)"
	}

	return fmt.Sprintf("%s%s %s %s",
		fmt.Sprintf("%*s", fileIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", nameWidth, e.Path),
		color.New(color.Faint).Sprint(fmt.Sprintf("%-*s", actionWidth, status)))
}

// 📝 LogEdit reports the result of one edit
func (l *Logger) LogEdit(ctx context.Context, e Edit) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.edits = append(l.edits, e)

	fmt.Fprintln(l.console, l.formatEdit(e))

	l.zlog.Info().
		Str("file", e.Path).
		Str("action", string(e.Action)).
		Bool("created", e.Created).
		Str("spec", e.Spec).
		Msg("line in file")
}

// 📊 Summary prints how many of the reported edits changed a file
func (l *Logger) Summary() {
	l.mu.Lock()
	defer l.mu.Unlock()

	changed := 0
	for _, e := range l.edits {
		if e.Action != lineinfile.ActionUnchanged || e.Created {
			changed++
		}
	}

	msg := fmt.Sprintf("%d changed, %d unchanged", changed, len(l.edits)-changed)
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Int("changed", changed).Int("total", len(l.edits)).Msg("edits complete")
}
