package inline

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/aizenverse/aizen/api"
	"github.com/aizenverse/aizen/source"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

type fakeLister struct {
	kind  api.Kind
	query string
	page  int
}

func (f *fakeLister) Catalog(_ context.Context, kind api.Kind, page int) (*source.Page[*source.AnimeSummary], error) {
	f.kind, f.page = kind, page
	return &source.Page[*source.AnimeSummary]{
		CurrentPage: page,
		HasNextPage: true,
		Results:     []*source.AnimeSummary{{ID: "frieren-18542", Title: "Frieren", Type: "TV"}},
	}, nil
}

func (f *fakeLister) Search(_ context.Context, query string, page int) (*source.Page[*source.AnimeSummary], error) {
	f.query, f.page = query, page
	return &source.Page[*source.AnimeSummary]{CurrentPage: page}, nil
}

func TestRun(t *testing.T) {
	Convey("Given a lister", t, func() {
		lister := &fakeLister{}
		var buf bytes.Buffer

		Convey("A catalog page is printed one anime per line", func() {
			err := Run(context.Background(), lister, &Options{Out: &buf, Catalog: mo.Some(api.TopAiring)})
			So(err, ShouldBeNil)
			So(lister.kind, ShouldEqual, api.TopAiring)
			So(lister.page, ShouldEqual, 1)
			So(buf.String(), ShouldEqual, "frieren-18542\tFrieren\tTV\n# more results with --page 2\n")
		})

		Convey("An empty search still produces a JSON result list", func() {
			err := Run(context.Background(), lister, &Options{Out: &buf, Json: true, Query: "nothing", Page: 3})
			So(err, ShouldBeNil)
			So(lister.query, ShouldEqual, "nothing")

			var output Output
			So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
			So(output.Query, ShouldEqual, "nothing")
			So(output.Page, ShouldEqual, 3)
			So(output.Result, ShouldHaveLength, 0)
			So(buf.String(), ShouldContainSubstring, `"result":[]`)
		})

		Convey("A blank query is rejected", func() {
			So(Run(context.Background(), lister, &Options{Out: &buf}), ShouldNotBeNil)
		})
	})
}

func TestSchema(t *testing.T) {
	Convey("The schema describes the output document", t, func() {
		schema, err := json.Marshal(Schema())
		So(err, ShouldBeNil)
		So(string(schema), ShouldContainSubstring, "hasNextPage")
		So(string(schema), ShouldContainSubstring, "bannerUrl")
	})
}
