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

// Package datastore implements the query result-type layer of a Cloud
// Datastore client: the mapping from EntityResult wire tags to typed result
// values, and the decoding of raw entity protos into those values.
//
// It sits below the transport layer. Callers hand it decoded
// datastorepb.Entity messages; it hands back *Entity, *ProjectionEntity or
// *Key values depending on the result type the server reported.
package datastore
