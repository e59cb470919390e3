package version

import (
	"context"
	"fmt"

	"github.com/aizenverse/aizen/color"
	"github.com/aizenverse/aizen/constant"
	"github.com/aizenverse/aizen/icon"
	"github.com/aizenverse/aizen/key"
	"github.com/aizenverse/aizen/log"
	"github.com/aizenverse/aizen/style"
	"github.com/aizenverse/aizen/util"
	"github.com/spf13/viper"
)

// Notify prints a banner when a newer release exists. Lookup failures stay quiet.
func Notify(ctx context.Context) {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	erase := util.PrintErasable(fmt.Sprintf("%s Checking for a new version...", icon.Get(icon.Progress)))
	latest, err := Latest(ctx)
	erase()
	if err != nil {
		log.Warnf("version check failed: %v", err)
		return
	}

	if cmp, err := Compare(latest, constant.Version); err != nil || cmp <= 0 {
		return
	}

	fmt.Printf(`
%s New version is available %s %s
%s

`,
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(latest),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint(fmt.Sprintf("https://github.com/%s/releases/tag/v%s", constant.Repository, latest)),
	)
}
