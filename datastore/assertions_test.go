// Copyright 2025 The LUCI Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package datastore

import (
	"fmt"
	"strings"
)

// shouldErrLike asserts that actual is a non-nil error whose message
// contains expected[0].
func shouldErrLike(actual any, expected ...any) string {
	if len(expected) != 1 {
		return fmt.Sprintf("shouldErrLike takes one expected value, got %d", len(expected))
	}
	substr, ok := expected[0].(string)
	if !ok {
		return fmt.Sprintf("shouldErrLike expects a string, got %T", expected[0])
	}
	err, ok := actual.(error)
	if !ok || err == nil {
		return fmt.Sprintf("Expected an error containing %q\nActual:   (%T, %v)", substr, actual, actual)
	}
	if !strings.Contains(err.Error(), substr) {
		return fmt.Sprintf("Expected error to contain: %q\nActual error:             %q", substr, err.Error())
	}
	return ""
}
