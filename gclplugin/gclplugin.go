// Copyright 2025 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package gclplugin

import (
	"fmt"
	"log/slog"

	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/tools/go/analysis"

	withcheck "fillmore-labs.com/with/analyzer"
)

// name is the linter name in .golangci.yaml.
const name = "withcheck"

func init() { register.Plugin(name, New) }

// New creates a new [Plugin] instance with the given [Settings].
func New(rawSettings any) (register.LinterPlugin, error) {
	settings, err := register.DecodeSettings[Settings](rawSettings)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid settings: %w", name, err)
	}

	slog.Debug("Plugin settings decoded", slog.String("linter", name), slog.Any("settings", settings))

	return Plugin{settings: settings}, nil
}

// Plugin is the withcheck linter as a [register.LinterPlugin].
type Plugin struct {
	settings Settings
}

// GetLoadMode returns the golangci load mode. withcheck resolves binder calls by type.
func (Plugin) GetLoadMode() string {
	return register.LoadModeTypesInfo
}

// BuildAnalyzers returns the [analysis.Analyzer]s for a withcheck run.
//
// golangci-lint filters generated files itself, so the analyzer reports in all files.
func (p Plugin) BuildAnalyzers() ([]*analysis.Analyzer, error) {
	opts := withcheck.Options(p.settings.Options())
	opts = append(opts, withcheck.WithGenerated(true))

	slog.Debug("Building analyzer", slog.String("linter", name), opts.LogAttr())

	return []*analysis.Analyzer{withcheck.New(opts)}, nil
}
