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
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestQuery(t *testing.T) {
	t.Parallel()

	Convey(`Query`, t, func() {
		Convey(`structured constructors fix the result type`, func() {
			So(NewFullQuery("Kind").ResultType(), ShouldEqual, ResultFull)
			So(NewKeyOnlyQuery("Kind").ResultType(), ShouldEqual, ResultKeyOnly)
			So(NewProjectionQuery("Kind").ResultType(), ShouldEqual, ResultProjection)
			So(NewFullQuery("Kind").Kind(), ShouldEqual, "Kind")
			So(NewFullQuery("Kind").GQL(), ShouldEqual, "")
		})

		Convey(`GQL queries carry their string`, func() {
			q := NewGqlQuery(ResultUnknown, "SELECT * FROM Kind")
			So(q.ResultType(), ShouldEqual, ResultUnknown)
			So(q.GQL(), ShouldEqual, "SELECT * FROM Kind")
			So(q.Kind(), ShouldEqual, "")
		})

		Convey(`InNamespace derives a copy`, func() {
			q := NewFullQuery("Kind")
			scoped := q.InNamespace("ns")
			So(scoped.Namespace(), ShouldEqual, "ns")
			So(q.Namespace(), ShouldEqual, "")
			So(scoped.Kind(), ShouldEqual, "Kind")
		})

		Convey(`Compatible follows the result type lattice`, func() {
			So(NewProjectionQuery("Kind").Compatible(ResultFull), ShouldBeTrue)
			So(NewKeyOnlyQuery("Kind").Compatible(ResultFull), ShouldBeFalse)
			So(NewGqlQuery(ResultUnknown, "SELECT __key__ FROM Kind").Compatible(ResultKeyOnly), ShouldBeTrue)
		})

		Convey(`String mentions the shape`, func() {
			So(NewFullQuery("Kind").InNamespace("ns").String(),
				ShouldEqual, `Query(full, ns="ns", kind="Kind")`)
			So(NewGqlQuery(ResultKeyOnly, "SELECT __key__ FROM K").String(),
				ShouldEqual, `Query(keyOnly, ns="", gql="SELECT __key__ FROM K")`)
		})
	})
}
