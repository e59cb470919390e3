package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/aizenverse/aizen/constant"
	"github.com/aizenverse/aizen/icon"
	"github.com/aizenverse/aizen/key"
	"github.com/aizenverse/aizen/player"
	"github.com/aizenverse/aizen/style"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"
)

// checkDependencies exits when the configured player needs a binary that is not in PATH.
// The browser player has no such requirement.
func checkDependencies() {
	if viper.GetString(key.Player) != player.NameMPV {
		return
	}

	if _, err := exec.LookPath("mpv"); err != nil {
		printMissingDependencyError("mpv")
		os.Exit(1)
	}
}

func printMissingDependencyError(dep string) {
	var installCmd string
	switch runtime.GOOS {
	case constant.Darwin:
		installCmd = "brew install mpv"
	case constant.Linux:
		installCmd = "sudo apt install mpv"
	case constant.Windows:
		installCmd = "scoop install mpv"
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.HiRed).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(style.HiRed).Render(fmt.Sprintf("%s Missing dependency", icon.Get(icon.Fail)))
	body := style.New().Foreground(style.Text).Render(fmt.Sprintf("The player '%s' was not found in your PATH.", dep))

	hint := fmt.Sprintf(
		"\n\nInstall it, or switch to the browser player with %s",
		style.New().Foreground(style.AccentColor).Bold(true).Render(fmt.Sprintf("%s config set %s %s", constant.App, key.Player, player.NameBrowser)),
	)
	if installCmd != "" {
		hint = fmt.Sprintf("\n\nTo install it, try running:\n  %s", style.New().Foreground(style.AccentColor).Bold(true).Render(installCmd)) + hint
	}

	fmt.Println(box.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"\n",
			body,
			hint,
		),
	))
}
