package mini

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/aizenverse/aizen/color"
	"github.com/aizenverse/aizen/icon"
	"github.com/aizenverse/aizen/style"
	"github.com/aizenverse/aizen/util"
)

type prompter interface {
	Input(message string, suggest func(string) []string) (string, error)
	Select(message string, options []string) (int, error)
}

type surveyPrompter struct{}

func (surveyPrompter) Input(message string, suggest func(string) []string) (string, error) {
	prompt := survey.Input{
		Message: message,
		Suggest: suggest,
	}

	var response string
	err := survey.AskOne(&prompt, &response)
	return strings.TrimSpace(response), err
}

func (surveyPrompter) Select(message string, options []string) (int, error) {
	prompt := survey.Select{
		Message:  message,
		Options:  options,
		PageSize: 15,
	}

	var index int
	err := survey.AskOne(&prompt, &index)
	return index, err
}

// bind is a menu entry that is not one of the listed items.
type bind string

const (
	back   bind = "← Back"
	search bind = "Search"
	next   bind = "Next episode"
	prev   bind = "Previous episode"
	replay bind = "Replay"
	quit   bind = "Quit"
)

// menu offers items followed by binds. Exactly one of the returned index and bind is meaningful:
// the index is -1 when a bind was picked.
func (m *mini) menu(message string, items []string, binds ...bind) (int, bind, error) {
	options := make([]string, 0, len(items)+len(binds))
	for _, item := range items {
		options = append(options, util.Ellipsize(item, truncateAt()))
	}
	for _, b := range binds {
		options = append(options, string(b))
	}

	i, err := m.prompter.Select(message, options)
	if err != nil {
		return -1, "", err
	}

	if i < len(items) {
		return i, "", nil
	}
	return -1, binds[i-len(items)], nil
}

func truncateAt() int {
	if w, _, err := util.TerminalSize(); err == nil && w > 10 {
		return w - 6
	}
	return 100
}

func title(s string) {
	fmt.Println(style.New().Bold(true).Foreground(color.Purple).Render(s))
}

func fail(s string) {
	fmt.Println(style.Fg(color.Red)(icon.Get(icon.Fail) + " " + s))
}

func progress(s string) (erase func()) {
	return util.PrintErasable(icon.Get(icon.Progress) + " " + s)
}
