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

	"cloud.google.com/go/datastore/apiv1/datastorepb"
)

// KeyContext is the (AppID, Namespace) pair a Key lives in.
type KeyContext struct {
	AppID     string
	Namespace string
}

// MkKeyContext is a shorthand for KeyContext{appID, namespace}.
func MkKeyContext(appID, namespace string) KeyContext {
	return KeyContext{appID, namespace}
}

// NewKey makes a single-token Key in this context.
func (kc KeyContext) NewKey(kind, stringID string, intID int64, parent *Key) *Key {
	if parent == nil {
		return &Key{kc: kc, toks: []KeyTok{{kind, intID, stringID}}}
	}
	toks := make([]KeyTok, len(parent.toks), len(parent.toks)+1)
	copy(toks, parent.toks)
	return &Key{kc: kc, toks: append(toks, KeyTok{kind, intID, stringID})}
}

// NewKeyToks makes a Key from the given token list. The tokens are copied.
func (kc KeyContext) NewKeyToks(toks []KeyTok) *Key {
	newToks := make([]KeyTok, len(toks))
	copy(newToks, toks)
	return &Key{kc: kc, toks: newToks}
}

// KeyTok is a single token of a Key path. At most one of IntID/StringID is
// set; a token with neither is incomplete.
type KeyTok struct {
	Kind     string
	IntID    int64
	StringID string
}

// Incomplete returns true iff this token doesn't define an id.
func (k KeyTok) Incomplete() bool {
	return k.StringID == "" && k.IntID == 0
}

// Key is an immutable datastore key: a KeyContext plus one or more path
// tokens, ordered from root to leaf.
type Key struct {
	kc   KeyContext
	toks []KeyTok
}

// KeyContext returns the KeyContext this Key belongs to.
func (k *Key) KeyContext() KeyContext { return k.kc }

// Kind returns the Kind of the leaf token.
func (k *Key) Kind() string { return k.toks[len(k.toks)-1].Kind }

// StringID returns the StringID of the leaf token.
func (k *Key) StringID() string { return k.toks[len(k.toks)-1].StringID }

// IntID returns the IntID of the leaf token.
func (k *Key) IntID() int64 { return k.toks[len(k.toks)-1].IntID }

// Incomplete returns true iff the leaf token has no id.
func (k *Key) Incomplete() bool {
	return k.toks[len(k.toks)-1].Incomplete()
}

// Parent returns the parent Key, or nil for a root Key. The parent shares
// this Key's context.
func (k *Key) Parent() *Key {
	if len(k.toks) <= 1 {
		return nil
	}
	return k.kc.NewKeyToks(k.toks[:len(k.toks)-1])
}

// Equal returns true iff the two keys have the same context and the same
// token path.
func (k *Key) Equal(other *Key) bool {
	if k == nil || other == nil {
		return k == other
	}
	if k.kc != other.kc || len(k.toks) != len(other.toks) {
		return false
	}
	for i, t := range k.toks {
		if t != other.toks[i] {
			return false
		}
	}
	return true
}

// String renders the Key as `app:ns:/Kind,id/Kind,"name"`.
func (k *Key) String() string {
	b := strings.Builder{}
	fmt.Fprintf(&b, "%s:%s:", k.kc.AppID, k.kc.Namespace)
	for _, t := range k.toks {
		if t.StringID != "" {
			fmt.Fprintf(&b, "/%s,%q", t.Kind, t.StringID)
		} else {
			fmt.Fprintf(&b, "/%s,%d", t.Kind, t.IntID)
		}
	}
	return b.String()
}

// keyFromPB decodes a datastore v1 Key proto.
//
// Every path element needs a kind, every element carries an id or a name,
// and an element may carry at most one of the two (guaranteed by the proto
// oneof). Result keys coming back from the service are always complete, so
// an id-less element anywhere in the path is a decode error.
func keyFromPB(pb *datastorepb.Key) (*Key, error) {
	if pb == nil {
		return nil, fmt.Errorf("datastore: key proto is missing")
	}
	if len(pb.GetPath()) == 0 {
		return nil, fmt.Errorf("datastore: key proto has an empty path")
	}
	kc := MkKeyContext(
		pb.GetPartitionId().GetProjectId(),
		pb.GetPartitionId().GetNamespaceId())

	toks := make([]KeyTok, len(pb.GetPath()))
	for i, elem := range pb.GetPath() {
		if elem.GetKind() == "" {
			return nil, fmt.Errorf("datastore: key path element %d has no kind", i)
		}
		tok := KeyTok{Kind: elem.GetKind()}
		switch id := elem.GetIdType().(type) {
		case *datastorepb.Key_PathElement_Id:
			tok.IntID = id.Id
		case *datastorepb.Key_PathElement_Name:
			tok.StringID = id.Name
		default:
			return nil, fmt.Errorf("datastore: key path element %d (%s) is incomplete", i, elem.GetKind())
		}
		toks[i] = tok
	}
	return &Key{kc: kc, toks: toks}, nil
}
