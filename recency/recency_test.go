package recency

import (
	"path/filepath"
	"testing"

	"github.com/aizenverse/aizen/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

type item struct {
	ID   string `json:"id"`
	Note string `json:"note"`
}

func (i item) Key() string { return i.ID }

func ids(items []item) []string {
	return lo.Map(items, func(i item, _ int) string { return i.ID })
}

func TestPrepend(t *testing.T) {
	Convey("Given the records a, b, a, c and a cap of 2", t, func() {
		var list []item
		for _, id := range []string{"a", "b", "a", "c"} {
			list = prepend(list, item{ID: id}, 2)
		}

		Convey("The list holds c then a", func() {
			So(ids(list), ShouldResemble, []string{"c", "a"})
		})
	})

	Convey("Re-recording replaces the stored entry", t, func() {
		list := prepend([]item{{ID: "a", Note: "old"}, {ID: "b"}}, item{ID: "a", Note: "new"}, 10)
		So(ids(list), ShouldResemble, []string{"a", "b"})
		So(list[0].Note, ShouldEqual, "new")
	})
}

func TestStore(t *testing.T) {
	Convey("Given an empty store", t, func() {
		path := filepath.Join("recency", t.Name()+".json")
		_ = filesystem.API().Remove(path)
		store := New[item](path, 3)

		Convey("It lists nothing", func() {
			So(store.List(), ShouldBeEmpty)
		})

		Convey("When recording more entries than the cap", func() {
			for _, id := range []string{"a", "b", "c", "d", "b"} {
				store.Record(item{ID: id})
			}

			Convey("The newest entries are kept, newest first and unique", func() {
				So(ids(store.List()), ShouldResemble, []string{"b", "d", "c"})
			})

			Convey("The list survives reopening", func() {
				So(ids(New[item](path, 3).List()), ShouldResemble, []string{"b", "d", "c"})
			})

			Convey("Remove drops a single key", func() {
				store.Remove("d")
				So(ids(store.List()), ShouldResemble, []string{"b", "c"})
			})

			Convey("Remove of an unknown key changes nothing", func() {
				store.Remove("zzz")
				So(len(store.List()), ShouldEqual, 3)
			})

			Convey("Clear empties the list", func() {
				store.Clear()
				So(store.List(), ShouldBeEmpty)
			})
		})
	})

	Convey("Given a store whose storage becomes read-only", t, func() {
		path := filepath.Join("recency", "readonly.json")
		store := New[item](path, 3)
		store.Record(item{ID: "a"})
		store.Record(item{ID: "b"})

		filesystem.SetReadOnly()
		defer filesystem.SetMemMapFs()

		Convey("Failed writes leave the list untouched", func() {
			So(func() {
				store.Record(item{ID: "c"})
				store.Remove("a")
				store.Clear()
			}, ShouldNotPanic)
			So(ids(store.List()), ShouldResemble, []string{"b", "a"})
		})

		Convey("A store opened on it degrades to an empty list", func() {
			other := New[item](filepath.Join("recency", "other.json"), 3)
			So(func() { other.Record(item{ID: "x"}) }, ShouldNotPanic)
			So(other.List(), ShouldBeEmpty)
		})
	})

	Convey("Given a corrupt store file", t, func() {
		path := filepath.Join("recency", "corrupt.json")
		So(filesystem.API().MkdirAll("recency", 0o755), ShouldBeNil)
		So(filesystem.API().WriteFile(path, []byte("not json"), 0o644), ShouldBeNil)
		store := New[item](path, 3)

		Convey("Reads degrade to an empty list", func() {
			So(store.List(), ShouldBeEmpty)
		})
	})
}
