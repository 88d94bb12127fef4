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
)

// Query is an immutable description of a datastore query: the result type it
// expects, the namespace it runs in, and either a GQL string or a structured
// kind.
//
// Mutating methods return a derived copy.
type Query struct {
	resultType ResultType
	namespace  string
	kind       string
	gql        string
}

// NewGqlQuery returns a GQL query expecting the given result type. Use
// ResultUnknown when the result shape can't be known up front (GQL decides
// it server-side).
func NewGqlQuery(rt ResultType, gql string) *Query {
	return &Query{resultType: rt, gql: gql}
}

// NewFullQuery returns a structured query over a kind, fetching complete
// entities.
func NewFullQuery(kind string) *Query {
	return &Query{resultType: ResultFull, kind: kind}
}

// NewKeyOnlyQuery returns a structured query over a kind, fetching only
// keys.
func NewKeyOnlyQuery(kind string) *Query {
	return &Query{resultType: ResultKeyOnly, kind: kind}
}

// NewProjectionQuery returns a structured query over a kind, fetching
// projection-limited entities.
func NewProjectionQuery(kind string) *Query {
	return &Query{resultType: ResultProjection, kind: kind}
}

// InNamespace returns a derived query scoped to the given namespace.
func (q *Query) InNamespace(ns string) *Query {
	ret := *q
	ret.namespace = ns
	return &ret
}

// ResultType returns the result type this query expects.
func (q *Query) ResultType() ResultType { return q.resultType }

// Namespace returns the namespace the query runs in ("" is the default
// namespace).
func (q *Query) Namespace() string { return q.namespace }

// Kind returns the structured query's kind, or "" for a GQL query.
func (q *Query) Kind() string { return q.kind }

// GQL returns the GQL string, or "" for a structured query.
func (q *Query) GQL() string { return q.gql }

// Compatible reports whether a response with the given actual result type
// satisfies this query's declared expectation.
func (q *Query) Compatible(actual ResultType) bool {
	return q.resultType.Compatible(actual)
}

func (q *Query) String() string {
	if q.gql != "" {
		return fmt.Sprintf("Query(%s, ns=%q, gql=%q)", q.resultType, q.namespace, q.gql)
	}
	return fmt.Sprintf("Query(%s, ns=%q, kind=%q)", q.resultType, q.namespace, q.kind)
}
