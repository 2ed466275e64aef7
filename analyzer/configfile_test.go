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

package analyzer_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	. "fillmore-labs.com/with/analyzer"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "withcheck.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Can't write config: %v", err)
	}

	return path
}

func TestConfigFile(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
escape = "resource"
generated = true
release = false
`)

	a := New()
	if err := a.Flags.Set("config", path); err != nil {
		t.Fatalf("Can't load configuration: %v", err)
	}

	want := map[string]string{
		"config":    path,
		"escape":    "resource",
		"generated": "true",
		"readonly":  "true",
		"release":   "false",
		"unused":    "true",
	}

	for name, value := range want {
		if got := a.Flags.Lookup(name).Value.String(); got != value {
			t.Errorf("Flag %q = %q, want %q", name, got, value)
		}
	}
}

func TestConfigFileErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "UnknownKey",
			content: "escape = \"off\"\nshadow = true\n",
			wantErr: ErrUnknownKey,
		},
		{
			name:    "InvalidEscape",
			content: "escape = \"partial\"\n",
		},
		{
			name:    "InvalidType",
			content: "readonly = \"yes\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := New()

			err := a.Flags.Set("config", writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("Loading configuration succeeded, want error")
			}

			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Got error %v, want %v", err, tt.wantErr)
			}
		})
	}
}
