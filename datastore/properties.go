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

	"cloud.google.com/go/datastore/apiv1/datastorepb"
)

// GeoPoint is a lat/lng pair, decoded from a geo point property value.
type GeoPoint struct {
	Lat, Lng float64
}

// Valid returns whether a GeoPoint is within [-90, 90] latitude and
// [-180, 180] longitude.
func (g GeoPoint) Valid() bool {
	return -90 <= g.Lat && g.Lat <= 90 && -180 <= g.Lng && g.Lng <= 180
}

// PropertyMap maps property names to decoded property values.
//
// Values are the decoded native forms: nil, bool, int64, float64, string,
// []byte, time.Time, GeoPoint, *Key, []any for arrays and *Entity for nested
// entities.
type PropertyMap map[string]any

// ProjectionEntity is the decoded form of an entity whose properties were
// limited by a projection. Its Key may be nil (grouped projection results
// carry no key).
type ProjectionEntity struct {
	Key   *Key
	Props PropertyMap
}

// Entity is a fully decoded entity. A full result always carries a key.
type Entity struct {
	ProjectionEntity
}

// entityFromPB decodes a FULL entity result. The key is mandatory.
func entityFromPB(pb *datastorepb.Entity) (*Entity, error) {
	if pb.GetKey() == nil {
		return nil, fmt.Errorf("datastore: full entity result has no key")
	}
	proj, err := projectionFromPB(pb)
	if err != nil {
		return nil, err
	}
	return &Entity{*proj}, nil
}

// projectionFromPB decodes a projection-limited entity result. The key is
// optional.
func projectionFromPB(pb *datastorepb.Entity) (*ProjectionEntity, error) {
	ent := &ProjectionEntity{}
	if pb.GetKey() != nil {
		key, err := keyFromPB(pb.GetKey())
		if err != nil {
			return nil, err
		}
		ent.Key = key
	}
	if props := pb.GetProperties(); len(props) > 0 {
		ent.Props = make(PropertyMap, len(props))
		for name, val := range props {
			v, err := propertyValue(val)
			if err != nil {
				return nil, fmt.Errorf("datastore: property %q: %w", name, err)
			}
			ent.Props[name] = v
		}
	}
	return ent, nil
}

// propertyValue decodes a single datastore v1 Value proto into its native
// form.
func propertyValue(pb *datastorepb.Value) (any, error) {
	switch vt := pb.GetValueType().(type) {
	case *datastorepb.Value_NullValue:
		return nil, nil
	case *datastorepb.Value_BooleanValue:
		return vt.BooleanValue, nil
	case *datastorepb.Value_IntegerValue:
		return vt.IntegerValue, nil
	case *datastorepb.Value_DoubleValue:
		return vt.DoubleValue, nil
	case *datastorepb.Value_TimestampValue:
		return vt.TimestampValue.AsTime(), nil
	case *datastorepb.Value_StringValue:
		return vt.StringValue, nil
	case *datastorepb.Value_BlobValue:
		return vt.BlobValue, nil
	case *datastorepb.Value_GeoPointValue:
		return GeoPoint{
			Lat: vt.GeoPointValue.GetLatitude(),
			Lng: vt.GeoPointValue.GetLongitude(),
		}, nil
	case *datastorepb.Value_KeyValue:
		return keyFromPB(vt.KeyValue)
	case *datastorepb.Value_EntityValue:
		// Nested entities, unlike full results, are allowed to be keyless.
		proj, err := projectionFromPB(vt.EntityValue)
		if err != nil {
			return nil, err
		}
		return &Entity{*proj}, nil
	case *datastorepb.Value_ArrayValue:
		vals := vt.ArrayValue.GetValues()
		out := make([]any, len(vals))
		for i, v := range vals {
			var err error
			if out[i], err = propertyValue(v); err != nil {
				return nil, err
			}
		}
		return out, nil
	case nil:
		return nil, fmt.Errorf("value has no type")
	default:
		return nil, fmt.Errorf("unknown value type %T", vt)
	}
}
