package ui

import (
	"strings"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestModel(t *testing.T) {
	Convey("Given a notifier", t, func() {
		m := &Model{}

		Convey("A string message becomes the notification", func() {
			So(m.Update("saved"), ShouldNotBeNil)
			So(m.Notification(), ShouldEqual, "saved")
			So(m.View("a\nb"), ShouldStartWith, "a\nb  ")
			So(m.View("a\nb"), ShouldContainSubstring, "saved")
		})

		Convey("A stale clear message keeps the newer notification", func() {
			m.Update("first")
			stale := ClearNotificationMsg{At: m.notifiedAt.Add(-time.Second)}
			m.Update(stale)
			So(m.Notification(), ShouldEqual, "first")

			m.Update(ClearNotificationMsg{At: m.notifiedAt})
			So(m.Notification(), ShouldBeEmpty)
		})

		Convey("Without a notification the view is untouched", func() {
			So(m.View("main"), ShouldEqual, "main")
			So(strings.Count(m.View("a\nb"), "\n"), ShouldEqual, 1)
		})

		Convey("Notifyf formats its message", func() {
			So(Notifyf("%d added", 2)(), ShouldEqual, "2 added")
		})
	})
}
