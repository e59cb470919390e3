package navigation

import (
	"fmt"
	"testing"
	"time"

	"github.com/aizenverse/aizen/source"
	. "github.com/smartystreets/goconvey/convey"
)

func episodes(n int) []*source.Episode {
	list := make([]*source.Episode, n)
	for i := range list {
		list[i] = &source.Episode{ID: fmt.Sprintf("ep-%d", i+1), Number: i + 1}
	}
	return list
}

func TestEpisodes(t *testing.T) {
	Convey("Given five episodes", t, func() {
		list := episodes(5)

		Convey("At the first episode", func() {
			nav := NewEpisodes(list, "ep-1")

			Convey("Previous is disabled", func() {
				So(nav.HasPrev(), ShouldBeFalse)
				So(nav.Prev().IsAbsent(), ShouldBeTrue)
			})

			Convey("Next is the second episode", func() {
				So(nav.Next().MustGet().ID, ShouldEqual, "ep-2")
			})

			Convey("Following next four times reaches the last episode", func() {
				for i := 0; i < len(list)-1; i++ {
					nav = NewEpisodes(list, nav.Next().MustGet().ID)
				}
				So(nav.Current().MustGet().ID, ShouldEqual, "ep-5")
				So(nav.HasNext(), ShouldBeFalse)
				So(nav.HasPrev(), ShouldBeTrue)
			})
		})

		Convey("At the last episode next is disabled", func() {
			nav := NewEpisodes(list, "ep-5")
			So(nav.HasNext(), ShouldBeFalse)
			So(nav.Next().IsAbsent(), ShouldBeTrue)
			So(nav.Prev().MustGet().ID, ShouldEqual, "ep-4")
		})

		Convey("At an unknown episode nothing is available", func() {
			nav := NewEpisodes(list, "nope")
			So(nav.Index(), ShouldEqual, -1)
			So(nav.HasPrev(), ShouldBeFalse)
			So(nav.HasNext(), ShouldBeFalse)
			So(nav.Current().IsAbsent(), ShouldBeTrue)
		})
	})

	Convey("A single episode has no neighbours", t, func() {
		nav := NewEpisodes(episodes(1), "ep-1")
		So(nav.HasPrev(), ShouldBeFalse)
		So(nav.HasNext(), ShouldBeFalse)
	})
}

func TestCarousel(t *testing.T) {
	Convey("Given a carousel of five slides", t, func() {
		c := NewCarousel(5, 0)

		Convey("It defaults to a six second interval", func() {
			So(c.Interval(), ShouldEqual, 6*time.Second)
		})

		Convey("Next wraps around", func() {
			c.Go(4)
			c.Next()
			So(c.Current(), ShouldEqual, 0)
		})

		Convey("Prev wraps around", func() {
			c.Prev()
			So(c.Current(), ShouldEqual, 4)
		})

		Convey("n steps in either direction return to the start", func() {
			for i := 0; i < 5; i++ {
				c.Next()
			}
			So(c.Current(), ShouldEqual, 0)
			for i := 0; i < 5; i++ {
				c.Prev()
			}
			So(c.Current(), ShouldEqual, 0)
		})

		Convey("Go clamps out of range indices", func() {
			c.Go(42)
			So(c.Current(), ShouldEqual, 4)
			c.Go(-3)
			So(c.Current(), ShouldEqual, 0)
		})

		Convey("Ticks advance once per interval", func() {
			start := time.Unix(0, 0)
			So(c.Tick(start), ShouldBeFalse)
			So(c.Tick(start.Add(5*time.Second)), ShouldBeFalse)
			So(c.Tick(start.Add(6*time.Second)), ShouldBeTrue)
			So(c.Current(), ShouldEqual, 1)

			Convey("But not while dragging", func() {
				c.SetDragging(true)
				So(c.Tick(start.Add(20*time.Second)), ShouldBeFalse)
				So(c.Current(), ShouldEqual, 1)
			})
		})

		Convey("Swipes past the threshold change slides", func() {
			c.SetDragging(true)
			c.Swipe(51)
			So(c.Current(), ShouldEqual, 1)
			So(c.Dragging(), ShouldBeFalse)
			c.Swipe(-51)
			So(c.Current(), ShouldEqual, 0)
		})

		Convey("Short swipes change nothing", func() {
			c.Swipe(50)
			c.Swipe(-50)
			So(c.Current(), ShouldEqual, 0)
		})
	})

	Convey("An empty carousel ignores every move", t, func() {
		c := NewCarousel(0, time.Second)
		c.Next()
		c.Prev()
		c.Go(3)
		So(c.Current(), ShouldEqual, 0)
	})
}

func TestSplitHero(t *testing.T) {
	Convey("SplitHero", t, func() {
		items := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
		slides, side := SplitHero(items)
		So(slides, ShouldResemble, []int{0, 1, 2, 3, 4})
		So(side, ShouldResemble, []int{5, 6, 7})

		slides, side = SplitHero(items[:3])
		So(slides, ShouldResemble, []int{0, 1, 2})
		So(side, ShouldBeEmpty)
	})
}
