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
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&HCLParser{})
}

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".hcl")
}

// 📝 Parse parses the config from HCL. The variable config_dir holds the
// directory of the file being parsed.
func (p *HCLParser) Parse(ctx context.Context, filename string, data []byte) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"config_dir": cty.StringVal(filepath.Dir(filename)),
		},
	}

	// Define HCL schema
	type hclEdit struct {
		Name   string  `hcl:"name,label"`
		Path   string  `hcl:"path"`
		Line   *string `hcl:"line,optional"`
		Regex  *string `hcl:"regex,optional"`
		State  *string `hcl:"state,optional"`
		Create *bool   `hcl:"create,optional"`
	}
	type hclConfig struct {
		Edits []hclEdit `hcl:"edit,block"`
	}

	var hclCfg hclConfig
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &hclCfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	// Convert to model
	cfg := &Config{}
	for _, e := range hclCfg.Edits {
		edit := Edit{
			Name:  e.Name,
			Path:  e.Path,
			Line:  e.Line,
			Regex: e.Regex,
		}
		if e.State != nil {
			edit.State = *e.State
		}
		if e.Create != nil {
			edit.Create = *e.Create
		}
		cfg.Edits = append(cfg.Edits, edit)
	}

	return cfg, nil
}
