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
	"context"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/lineinfile/pkg/config"
	"github.com/walteh/lineinfile/pkg/fileio"
	"github.com/walteh/lineinfile/pkg/lineinfile"
	"github.com/walteh/lineinfile/pkg/log"
	"github.com/walteh/lineinfile/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// rootOpts holds the parsed command line
type rootOpts struct {
	regex      string
	line       string
	state      stateValue
	create     bool
	configFile string
	debug      bool
	quiet      bool
}

// 🏗️ newRootCmd builds the lineinfile command
func newRootCmd() *cobra.Command {
	o := &rootOpts{state: stateValue(lineinfile.StatePresent)}

	cmd := &cobra.Command{
		Use:   "lineinfile <path>",
		Short: "Ensure a line is present in, or absent from, a text file",
		Long: `lineinfile makes sure a single line is present in, or absent from, a file.
It will:
1. Validate the combination of --line, --regex and --state
2. Read the file (or start empty with --create)
3. Add, replace or remove the first matching line
4. Write the result back

Running the same command twice leaves the file as the first run did.`,
		Example: `  lineinfile /etc/hosts --line "10.0.0.1 db"
  lineinfile app.conf --regex '^port=' --line 'port=8080'
  lineinfile app.conf --regex '^debug' --state absent
  lineinfile --config edits.yaml`,
		Args:          cobra.MaximumNArgs(1),
		Version:       GetVersionInfo().Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, args)
		},
	}
	cmd.SetVersionTemplate(FormatVersion())

	addRootFlags(cmd, o)

	return cmd
}

// addRootFlags adds the edit flags to the root command
func addRootFlags(cmd *cobra.Command, o *rootOpts) {
	flags := cmd.Flags()
	flags.StringVar(&o.regex, "regex", "", "pattern to look for to be replaced")
	flags.StringVar(&o.line, "line", "", "line to place or remove")
	flags.Var(&o.state, "state", "whether the line should be present or absent (present|absent)")
	flags.BoolVar(&o.create, "create", false, "create the file if it doesn't exist yet")
	flags.StringVarP(&o.configFile, "config", "c", "", "batch file of edits (.yaml, .yml, .hcl, .json)")
	flags.BoolVarP(&o.debug, "debug", "d", false, "enable debug logging")
	flags.BoolVarP(&o.quiet, "quiet", "q", false, "do not report edits")

	for _, f := range []string{"regex", "line", "state", "create"} {
		cmd.MarkFlagsMutuallyExclusive("config", f)
	}
}

// newLogger configures zerolog for the command's stderr
func newLogger(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).Level(level).With().Timestamp().Logger()
}

func (o *rootOpts) run(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd.ErrOrStderr(), o.debug)
	ctx := logger.WithContext(cmd.Context())

	console := cmd.OutOrStdout()
	if o.quiet {
		console = io.Discard
	}
	reporter := log.New(console, logger)

	op, err := operation.New(operation.Options{
		Files:    fileio.New(),
		Reporter: reporter,
	})
	if err != nil {
		return errors.Errorf("creating operator: %w", err)
	}

	if o.configFile != "" {
		if len(args) > 0 {
			return errors.Errorf("a path argument cannot be combined with --config")
		}
		return o.runBatch(ctx, op, reporter)
	}

	if len(args) == 0 {
		return errors.Errorf("requires a path argument or --config")
	}

	_, err = op.Run(ctx, operation.Request{
		Path:   args[0],
		Spec:   o.spec(cmd),
		Create: o.create,
	})
	return err
}

func (o *rootOpts) runBatch(ctx context.Context, op *operation.Operator, reporter *log.Logger) error {
	cfg, err := config.Load(ctx, o.configFile)
	if err != nil {
		return errors.Errorf("loading config: %w", err)
	}

	reqs, err := cfg.Requests(ctx)
	if err != nil {
		return errors.Errorf("resolving edits: %w", err)
	}

	if _, err := op.RunAll(ctx, reqs); err != nil {
		return err
	}

	reporter.Summary()
	return nil
}

// spec builds the LineSpec from the flags. A flag counts as supplied only
// when it was set on the command line, so --line "" is an empty line.
func (o *rootOpts) spec(cmd *cobra.Command) lineinfile.LineSpec {
	spec := lineinfile.LineSpec{State: lineinfile.State(o.state)}
	if cmd.Flags().Changed("line") {
		line := o.line
		spec.Line = &line
	}
	if cmd.Flags().Changed("regex") {
		regex := o.regex
		spec.Regex = &regex
	}
	return spec
}
