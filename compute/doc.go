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

// Package compute implements request parameter objects for Compute Engine
// API calls: immutable snapshots assembled through builders that validate
// required fields at build time.
//
// The snapshots carry no transport behavior. A request-assembly layer above
// this package maps them onto URL path segments, query parameters and the
// request body.
package compute
