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
	"reflect"

	"cloud.google.com/go/datastore/apiv1/datastorepb"
)

// ResultType says what shape of value an EntityResult decodes to.
//
// The set is closed: every result type is one of the constants below, and
// each has its own Convert behavior. ResultUnknown is the fallback for wire
// tags this package doesn't know about; it has no wire tag of its own.
type ResultType int

const (
	// ResultUnknown converts on a best-effort basis: an empty entity decodes
	// to nil, a bare key to *Key, anything else to *ProjectionEntity.
	ResultUnknown ResultType = iota

	// ResultFull decodes a complete entity (*Entity).
	ResultFull

	// ResultKeyOnly decodes just the key portion (*Key).
	ResultKeyOnly

	// ResultProjection decodes a projection-limited entity
	// (*ProjectionEntity).
	ResultProjection
)

// String returns the lowercase name of the result type.
func (rt ResultType) String() string {
	switch rt {
	case ResultUnknown:
		return "unknown"
	case ResultFull:
		return "full"
	case ResultKeyOnly:
		return "keyOnly"
	case ResultProjection:
		return "projection"
	}
	return fmt.Sprintf("ResultType(%d)", int(rt))
}

var (
	typeOfAny              = reflect.TypeOf((*any)(nil)).Elem()
	typeOfKey              = reflect.TypeOf((*Key)(nil))
	typeOfEntity           = reflect.TypeOf((*Entity)(nil))
	typeOfProjectionEntity = reflect.TypeOf((*ProjectionEntity)(nil))
)

// ResultClass returns the reflect.Type of the values Convert produces for
// this result type. ResultUnknown's class is `any`.
//
// Identity between result types is result-class identity. Every constant in
// the closed set has a distinct class, so it coincides with == on ResultType.
func (rt ResultType) ResultClass() reflect.Type {
	switch rt {
	case ResultFull:
		return typeOfEntity
	case ResultKeyOnly:
		return typeOfKey
	case ResultProjection:
		return typeOfProjectionEntity
	}
	return typeOfAny
}

// Compatible reports whether values of result type `other` are acceptable
// where values of this result type are expected.
//
// The relation is the subtype lattice of the result classes: every type is
// compatible with itself, ResultUnknown (class `any`) accepts everything,
// and ResultProjection accepts ResultFull since a full entity carries a
// ProjectionEntity. Used to check a query's declared result type against
// the type the server actually returned.
func (rt ResultType) Compatible(other ResultType) bool {
	switch {
	case rt == other:
		return true
	case rt == ResultUnknown:
		return true
	case rt == ResultProjection && other == ResultFull:
		return true
	}
	return false
}

// Convert decodes a raw entity proto into this result type's value.
//
// The concrete return type is ResultClass(). Decode errors from the entity
// and key decoding propagate as-is; Convert adds no error kinds of its own.
func (rt ResultType) Convert(pb *datastorepb.Entity) (any, error) {
	switch rt {
	case ResultFull:
		return entityFromPB(pb)
	case ResultKeyOnly:
		return keyFromPB(pb.GetKey())
	case ResultProjection:
		return projectionFromPB(pb)
	case ResultUnknown:
		if len(pb.GetProperties()) == 0 {
			if pb.GetKey() == nil {
				return nil, nil
			}
			return keyFromPB(pb.GetKey())
		}
		return projectionFromPB(pb)
	}
	return nil, fmt.Errorf("datastore: invalid result type %d", int(rt))
}

// wireIndex maps EntityResult wire tags to result types. Built exactly once
// below and never mutated afterwards, so it is safe for unsynchronized
// concurrent reads.
var wireIndex = buildWireIndex()

// buildWireIndex returns the wire tag index: exactly one entry per tagged
// result type. ResultUnknown deliberately has no entry.
func buildWireIndex() map[datastorepb.EntityResult_ResultType]ResultType {
	return map[datastorepb.EntityResult_ResultType]ResultType{
		datastorepb.EntityResult_FULL:       ResultFull,
		datastorepb.EntityResult_KEY_ONLY:   ResultKeyOnly,
		datastorepb.EntityResult_PROJECTION: ResultProjection,
	}
}

// ResultTypeOf maps an EntityResult wire tag to its ResultType. Tags with no
// registered result type (including RESULT_TYPE_UNSPECIFIED) map to
// ResultUnknown; this never fails.
func ResultTypeOf(tag datastorepb.EntityResult_ResultType) ResultType {
	if rt, ok := wireIndex[tag]; ok {
		return rt
	}
	return ResultUnknown
}
