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

package compute

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"google.golang.org/protobuf/proto"

	"cloud.google.com/go/compute/apiv1/computepb"
)

// MissingFieldsError is returned by Build when required request fields are
// unset. Missing holds the wire names of every missing field, in field
// order, so callers can branch on specific fields instead of parsing the
// message.
type MissingFieldsError struct {
	Missing []string
}

func (e *MissingFieldsError) Error() string {
	return "compute: missing required properties: " + strings.Join(e.Missing, ", ")
}

// UpdateNetworkInterfaceRequest is an immutable snapshot of the parameters
// of an instances.updateNetworkInterface call.
//
// Optional scalar fields are nullable: a nil field is absent and is skipped
// by QueryParams and MergeFrom. Field names map 1:1 onto the wire parameter
// names (instance and networkInterface are path parameters, the network
// interface resource is the request body, the rest are query parameters).
//
// Instances are only produced by Build (or DefaultUpdateNetworkInterfaceRequest)
// and are never mutated afterwards, so they're safe to share between
// goroutines.
type UpdateNetworkInterfaceRequest struct {
	accessToken              *string
	callback                 *string
	fieldMask                []string
	fields                   *string
	instance                 *string
	key                      *string
	networkInterface         *string
	networkInterfaceResource *computepb.NetworkInterface
	prettyPrint              *string
	quotaUser                *string
	requestID                *string
	userIP                   *string
}

var defaultUpdateNetworkInterfaceRequest = &UpdateNetworkInterfaceRequest{}

// DefaultUpdateNetworkInterfaceRequest returns the canonical empty instance.
// Merging it into a builder is a no-op.
func DefaultUpdateNetworkInterfaceRequest() *UpdateNetworkInterfaceRequest {
	return defaultUpdateNetworkInterfaceRequest
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// GetAccessToken returns the access_token parameter, or "" if unset.
func (r *UpdateNetworkInterfaceRequest) GetAccessToken() string { return deref(r.accessToken) }

// GetCallback returns the callback parameter, or "" if unset.
func (r *UpdateNetworkInterfaceRequest) GetCallback() string { return deref(r.callback) }

// GetFields returns the fields parameter, or "" if unset.
func (r *UpdateNetworkInterfaceRequest) GetFields() string { return deref(r.fields) }

// GetInstance returns the target instance identifier.
func (r *UpdateNetworkInterfaceRequest) GetInstance() string { return deref(r.instance) }

// GetKey returns the key parameter, or "" if unset.
func (r *UpdateNetworkInterfaceRequest) GetKey() string { return deref(r.key) }

// GetNetworkInterface returns the name of the network interface to update.
func (r *UpdateNetworkInterfaceRequest) GetNetworkInterface() string {
	return deref(r.networkInterface)
}

// GetPrettyPrint returns the prettyPrint parameter, or "" if unset.
func (r *UpdateNetworkInterfaceRequest) GetPrettyPrint() string { return deref(r.prettyPrint) }

// GetQuotaUser returns the quotaUser parameter, or "" if unset.
func (r *UpdateNetworkInterfaceRequest) GetQuotaUser() string { return deref(r.quotaUser) }

// GetRequestID returns the requestId parameter, or "" if unset.
func (r *UpdateNetworkInterfaceRequest) GetRequestID() string { return deref(r.requestID) }

// GetUserIP returns the userIp parameter, or "" if unset.
func (r *UpdateNetworkInterfaceRequest) GetUserIP() string { return deref(r.userIP) }

// Body returns the network interface resource sent as the request body, or
// nil if unset.
func (r *UpdateNetworkInterfaceRequest) Body() *computepb.NetworkInterface {
	return r.networkInterfaceResource
}

// FieldMaskPaths returns the field mask as an opaque ordered list of field
// paths, or nil if unset. Callers must not mutate the returned slice.
func (r *UpdateNetworkInterfaceRequest) FieldMaskPaths() []string {
	return r.fieldMask
}

// FieldValue looks a field up by its wire name. The second return is false
// for names this request doesn't have. Unset fields read as nil.
func (r *UpdateNetworkInterfaceRequest) FieldValue(name string) (any, bool) {
	str := func(s *string) any {
		if s == nil {
			return nil
		}
		return *s
	}
	switch name {
	case "access_token":
		return str(r.accessToken), true
	case "callback":
		return str(r.callback), true
	case "fieldMask":
		if r.fieldMask == nil {
			return nil, true
		}
		return r.fieldMask, true
	case "fields":
		return str(r.fields), true
	case "instance":
		return str(r.instance), true
	case "key":
		return str(r.key), true
	case "networkInterface":
		return str(r.networkInterface), true
	case "networkInterfaceResource":
		if r.networkInterfaceResource == nil {
			return nil, true
		}
		return r.networkInterfaceResource, true
	case "prettyPrint":
		return str(r.prettyPrint), true
	case "quotaUser":
		return str(r.quotaUser), true
	case "requestId":
		return str(r.requestID), true
	case "userIp":
		return str(r.userIP), true
	}
	return nil, false
}

// QueryParams maps the set system parameters onto their query parameter
// names. Unset parameters are omitted. Path parameters (instance,
// networkInterface), the field mask and the body are not query parameters
// and never appear here.
func (r *UpdateNetworkInterfaceRequest) QueryParams() url.Values {
	v := url.Values{}
	set := func(name string, p *string) {
		if p != nil {
			v.Set(name, *p)
		}
	}
	set("access_token", r.accessToken)
	set("callback", r.callback)
	set("fields", r.fields)
	set("key", r.key)
	set("prettyPrint", r.prettyPrint)
	set("quotaUser", r.quotaUser)
	set("requestId", r.requestID)
	set("userIp", r.userIP)
	return v
}

// Equal reports field-wise equality. The resource body is compared with
// proto.Equal.
func (r *UpdateNetworkInterfaceRequest) Equal(other *UpdateNetworkInterfaceRequest) bool {
	if r == nil || other == nil {
		return r == other
	}
	eq := func(a, b *string) bool {
		if a == nil || b == nil {
			return a == nil && b == nil
		}
		return *a == *b
	}
	return eq(r.accessToken, other.accessToken) &&
		eq(r.callback, other.callback) &&
		(r.fieldMask == nil) == (other.fieldMask == nil) &&
		slices.Equal(r.fieldMask, other.fieldMask) &&
		eq(r.fields, other.fields) &&
		eq(r.instance, other.instance) &&
		eq(r.key, other.key) &&
		eq(r.networkInterface, other.networkInterface) &&
		proto.Equal(r.networkInterfaceResource, other.networkInterfaceResource) &&
		eq(r.prettyPrint, other.prettyPrint) &&
		eq(r.quotaUser, other.quotaUser) &&
		eq(r.requestID, other.requestID) &&
		eq(r.userIP, other.userIP)
}

func (r *UpdateNetworkInterfaceRequest) String() string {
	return fmt.Sprintf(
		"UpdateNetworkInterfaceRequest(instance=%q, networkInterface=%q, fieldMask=%v, params=%v, body=%v)",
		r.GetInstance(), r.GetNetworkInterface(), r.fieldMask, r.QueryParams(), r.networkInterfaceResource)
}

// ToBuilder returns a fresh builder seeded with this request's set fields.
func (r *UpdateNetworkInterfaceRequest) ToBuilder() *UpdateNetworkInterfaceRequestBuilder {
	return NewUpdateNetworkInterfaceRequestBuilder().MergeFrom(r)
}

// UpdateNetworkInterfaceRequestBuilder assembles an
// UpdateNetworkInterfaceRequest incrementally.
//
// Setters overwrite prior values and return the builder for chaining. The
// builder is a private, single-owner object: it must not be shared between
// goroutines. Build does not consume the builder; it can keep accumulating
// fields and build again.
type UpdateNetworkInterfaceRequestBuilder struct {
	req UpdateNetworkInterfaceRequest
}

// NewUpdateNetworkInterfaceRequestBuilder returns an empty builder.
func NewUpdateNetworkInterfaceRequestBuilder() *UpdateNetworkInterfaceRequestBuilder {
	return &UpdateNetworkInterfaceRequestBuilder{}
}

// SetAccessToken sets the access_token query parameter.
func (b *UpdateNetworkInterfaceRequestBuilder) SetAccessToken(v string) *UpdateNetworkInterfaceRequestBuilder {
	b.req.accessToken = &v
	return b
}

// SetCallback sets the callback query parameter.
func (b *UpdateNetworkInterfaceRequestBuilder) SetCallback(v string) *UpdateNetworkInterfaceRequestBuilder {
	b.req.callback = &v
	return b
}

// SetFieldMask sets the field mask. The paths are copied and kept as-is: an
// opaque ordered sequence with no deduplication or validation.
func (b *UpdateNetworkInterfaceRequestBuilder) SetFieldMask(paths []string) *UpdateNetworkInterfaceRequestBuilder {
	b.req.fieldMask = slices.Clone(paths)
	return b
}

// SetFields sets the fields query parameter.
func (b *UpdateNetworkInterfaceRequestBuilder) SetFields(v string) *UpdateNetworkInterfaceRequestBuilder {
	b.req.fields = &v
	return b
}

// SetInstance sets the target instance identifier. Required.
func (b *UpdateNetworkInterfaceRequestBuilder) SetInstance(v string) *UpdateNetworkInterfaceRequestBuilder {
	b.req.instance = &v
	return b
}

// SetKey sets the key query parameter.
func (b *UpdateNetworkInterfaceRequestBuilder) SetKey(v string) *UpdateNetworkInterfaceRequestBuilder {
	b.req.key = &v
	return b
}

// SetNetworkInterface sets the name of the network interface to update.
// Required.
func (b *UpdateNetworkInterfaceRequestBuilder) SetNetworkInterface(v string) *UpdateNetworkInterfaceRequestBuilder {
	b.req.networkInterface = &v
	return b
}

// SetNetworkInterfaceResource sets the request body.
func (b *UpdateNetworkInterfaceRequestBuilder) SetNetworkInterfaceResource(v *computepb.NetworkInterface) *UpdateNetworkInterfaceRequestBuilder {
	b.req.networkInterfaceResource = v
	return b
}

// SetPrettyPrint sets the prettyPrint query parameter.
func (b *UpdateNetworkInterfaceRequestBuilder) SetPrettyPrint(v string) *UpdateNetworkInterfaceRequestBuilder {
	b.req.prettyPrint = &v
	return b
}

// SetQuotaUser sets the quotaUser query parameter.
func (b *UpdateNetworkInterfaceRequestBuilder) SetQuotaUser(v string) *UpdateNetworkInterfaceRequestBuilder {
	b.req.quotaUser = &v
	return b
}

// SetRequestID sets the requestId query parameter.
func (b *UpdateNetworkInterfaceRequestBuilder) SetRequestID(v string) *UpdateNetworkInterfaceRequestBuilder {
	b.req.requestID = &v
	return b
}

// SetUserIP sets the userIp query parameter.
func (b *UpdateNetworkInterfaceRequestBuilder) SetUserIP(v string) *UpdateNetworkInterfaceRequestBuilder {
	b.req.userIP = &v
	return b
}

// MergeFrom overwrites this builder's fields with every field that is set
// on `other`; unset fields on `other` are left untouched. Merging the
// default instance (or nil) changes nothing.
func (b *UpdateNetworkInterfaceRequestBuilder) MergeFrom(other *UpdateNetworkInterfaceRequest) *UpdateNetworkInterfaceRequestBuilder {
	if other == nil || other == defaultUpdateNetworkInterfaceRequest {
		return b
	}
	if other.accessToken != nil {
		b.req.accessToken = other.accessToken
	}
	if other.callback != nil {
		b.req.callback = other.callback
	}
	if other.fieldMask != nil {
		b.req.fieldMask = slices.Clone(other.fieldMask)
	}
	if other.fields != nil {
		b.req.fields = other.fields
	}
	if other.instance != nil {
		b.req.instance = other.instance
	}
	if other.key != nil {
		b.req.key = other.key
	}
	if other.networkInterface != nil {
		b.req.networkInterface = other.networkInterface
	}
	if other.networkInterfaceResource != nil {
		b.req.networkInterfaceResource = other.networkInterfaceResource
	}
	if other.prettyPrint != nil {
		b.req.prettyPrint = other.prettyPrint
	}
	if other.quotaUser != nil {
		b.req.quotaUser = other.quotaUser
	}
	if other.requestID != nil {
		b.req.requestID = other.requestID
	}
	if other.userIP != nil {
		b.req.userIP = other.userIP
	}
	return b
}

// Clone returns an independent builder with the same field values. Mutating
// either builder afterwards does not affect the other.
func (b *UpdateNetworkInterfaceRequestBuilder) Clone() *UpdateNetworkInterfaceRequestBuilder {
	ret := &UpdateNetworkInterfaceRequestBuilder{req: b.req}
	ret.req.fieldMask = slices.Clone(b.req.fieldMask)
	if b.req.networkInterfaceResource != nil {
		ret.req.networkInterfaceResource = proto.Clone(b.req.networkInterfaceResource).(*computepb.NetworkInterface)
	}
	return ret
}

// Build validates the required fields and returns an immutable snapshot of
// the builder's current values.
//
// If any required field is unset, Build fails with a *MissingFieldsError
// naming every missing field, not just the first. The builder itself is
// untouched either way and stays usable.
func (b *UpdateNetworkInterfaceRequestBuilder) Build() (*UpdateNetworkInterfaceRequest, error) {
	var missing []string
	if b.req.instance == nil {
		missing = append(missing, "instance")
	}
	if b.req.networkInterface == nil {
		missing = append(missing, "networkInterface")
	}
	if len(missing) > 0 {
		return nil, &MissingFieldsError{Missing: missing}
	}
	req := b.req
	req.fieldMask = slices.Clone(b.req.fieldMask)
	if b.req.networkInterfaceResource != nil {
		req.networkInterfaceResource = proto.Clone(b.req.networkInterfaceResource).(*computepb.NetworkInterface)
	}
	return &req, nil
}
