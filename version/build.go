package version

import (
	"runtime"
	"strings"

	"github.com/aizenverse/aizen/constant"
)

// Build describes the running binary.
type Build struct {
	App      string `json:"app"`
	Version  string `json:"version"`
	Revision string `json:"revision"`
	BuiltAt  string `json:"builtAt"`
	BuiltBy  string `json:"builtBy"`
	Go       string `json:"go"`
	Platform string `json:"platform"`
}

// Current reports the build metadata injected at link time.
func Current() Build {
	return Build{
		App:      constant.App,
		Version:  constant.Version,
		Revision: constant.Revision,
		BuiltAt:  strings.TrimSpace(constant.BuiltAt),
		BuiltBy:  constant.BuiltBy,
		Go:       runtime.Version(),
		Platform: runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// Rows lists the metadata as label and value pairs in display order.
func (b Build) Rows() [][2]string {
	return [][2]string{
		{"Version", b.Version},
		{"Git Commit", b.Revision},
		{"Build Date", b.BuiltAt},
		{"Built By", b.BuiltBy},
		{"Go", b.Go},
		{"Platform", b.Platform},
	}
}
