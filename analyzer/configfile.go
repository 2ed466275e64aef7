// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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

package analyzer

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/BurntSushi/toml"

	"fillmore-labs.com/with/analyzer/level"
	"fillmore-labs.com/with/internal/run"
)

// ErrUnknownKey is returned when a configuration file contains unsupported settings.
var ErrUnknownKey = errors.New("unknown configuration key")

// fileSettings is the TOML representation of the analyzer settings.
type fileSettings struct {
	Generated *bool         `toml:"generated"`
	Escape    *level.Escape `toml:"escape"`
	ReadOnly  *bool         `toml:"readonly"`
	Release   *bool         `toml:"release"`
	Unused    *bool         `toml:"unused"`
}

// options converts the settings present in the file.
func (s fileSettings) options() Options {
	var opts Options

	if s.Generated != nil {
		opts = append(opts, WithGenerated(*s.Generated))
	}

	if s.Escape != nil {
		opts = append(opts, WithEscape(*s.Escape))
	}

	if s.ReadOnly != nil {
		opts = append(opts, WithReadOnly(*s.ReadOnly))
	}

	if s.Release != nil {
		opts = append(opts, WithRelease(*s.Release))
	}

	if s.Unused != nil {
		opts = append(opts, WithUnused(*s.Unused))
	}

	return opts
}

// loadConfig reads analyzer options from a TOML file.
func loadConfig(path string) (Options, error) {
	var s fileSettings

	md, err := toml.DecodeFile(path, &s)
	if err != nil {
		return nil, fmt.Errorf("can't read config %q: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}

		return nil, fmt.Errorf("%w in %q: %s", ErrUnknownKey, path, strings.Join(keys, ", "))
	}

	return s.options(), nil
}

// configFile is a [flag.Value] applying the settings of a TOML file.
type configFile struct {
	o    *run.Options
	path *string
}

// Set implements [flag.Value].
func (c configFile) Set(path string) error {
	opts, err := loadConfig(path)
	if err != nil {
		return err
	}

	slog.Debug("Loaded configuration", slog.String("path", path), slog.Any("options", opts))

	opts.apply(c.o)

	if c.path != nil {
		*c.path = path
	}

	return nil
}

// String implements [flag.Value].
func (c configFile) String() string {
	if c.path == nil {
		return ""
	}

	return *c.path
}
