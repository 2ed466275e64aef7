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

package report

import (
	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/with/internal/binder"
)

var underscore = []byte("_")

// blankFix suggests replacing an unused block parameter with the blank identifier.
func blankFix(b binder.Binding) []analysis.SuggestedFix {
	if b.Param == nil || b.Param.Name == "_" {
		return nil
	}

	return []analysis.SuggestedFix{{
		Message:   "Replace '" + b.Param.Name + "' with '_'",
		TextEdits: []analysis.TextEdit{{Pos: b.Param.Pos(), End: b.Param.End(), NewText: underscore}},
	}}
}
