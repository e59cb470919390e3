// Package open hands URLs to the operating system's default handler.
package open

import (
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/aizenverse/aizen/constant"
)

// Start opens link with the default handler without waiting for it.
func Start(link string) error {
	return StartWith(link, "")
}

// StartWith opens link with app, or the default handler when app is empty.
func StartWith(link, app string) error {
	if err := validate(link); err != nil {
		return err
	}

	cmd, ok := command(runtime.GOOS, link, app)
	if !ok {
		return fmt.Errorf("opening links is not supported on %s", runtime.GOOS)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open %s: %w", link, err)
	}

	go func() { _ = cmd.Wait() }()
	return nil
}

// validate only lets absolute http(s) links through so nothing reaches a shell as a flag.
func validate(link string) error {
	u, err := url.Parse(link)
	if err != nil {
		return fmt.Errorf("invalid link %q: %w", link, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("refusing to open %q: only http and https links are supported", link)
	}
	return nil
}

func command(goos, link, app string) (*exec.Cmd, bool) {
	switch goos {
	case constant.Windows:
		if app != "" {
			// cmd's start treats & as a command separator.
			return exec.Command("cmd", "/C", "start", "", app, strings.ReplaceAll(link, "&", "^&")), true
		}
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return exec.Command(rundll, "url.dll,FileProtocolHandler", link), true
	case constant.Darwin:
		if app != "" {
			return exec.Command("open", "-a", app, link), true
		}
		return exec.Command("open", link), true
	case constant.Linux:
		if app != "" {
			return exec.Command(app, link), true
		}
		return exec.Command("xdg-open", link), true
	case constant.Android:
		return exec.Command("termux-open-url", link), true
	default:
		return nil, false
	}
}
