package open

import (
	"testing"

	"github.com/aizenverse/aizen/constant"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCommand(t *testing.T) {
	Convey("Given a link", t, func() {
		link := "https://megaplay.buzz/stream/s-2/07258/sub?a=1&b=2"

		Convey("Linux uses xdg-open", func() {
			cmd, ok := command(constant.Linux, link, "")
			So(ok, ShouldBeTrue)
			So(cmd.Args, ShouldResemble, []string{"xdg-open", link})
		})

		Convey("A chosen app is used directly on Linux", func() {
			cmd, _ := command(constant.Linux, link, "firefox")
			So(cmd.Args, ShouldResemble, []string{"firefox", link})
		})

		Convey("macOS uses open -a for apps", func() {
			cmd, _ := command(constant.Darwin, link, "Safari")
			So(cmd.Args, ShouldResemble, []string{"open", "-a", "Safari", link})
		})

		Convey("Windows escapes ampersands for start", func() {
			cmd, _ := command(constant.Windows, link, "chrome")
			So(cmd.Args[len(cmd.Args)-1], ShouldEqual, "https://megaplay.buzz/stream/s-2/07258/sub?a=1^&b=2")
		})

		Convey("Unknown systems are unsupported", func() {
			_, ok := command("plan9", link, "")
			So(ok, ShouldBeFalse)
		})
	})

	Convey("validate", t, func() {
		So(validate("https://example.com"), ShouldBeNil)
		So(validate("file:///etc/passwd"), ShouldNotBeNil)
		So(validate("--help"), ShouldNotBeNil)
	})
}
