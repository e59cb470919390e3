package player

import (
	"context"
	"fmt"
	"net/url"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aizenverse/aizen/log"
	"github.com/sirupsen/logrus"
)

// MPV plays targets with a detached mpv process.
type MPV struct {
	binary string
	// start launches the prepared command. It is swapped out in tests.
	start func(cmd *exec.Cmd) error
}

// NewMPV returns an mpv launcher using the binary found in PATH.
func NewMPV() *MPV {
	return &MPV{binary: "mpv", start: startDetached}
}

func (m *MPV) Name() string { return NameMPV }

// Play launches mpv for the target and returns without waiting for it.
// The process lives in its own process group so closing the terminal does not kill it.
func (m *MPV) Play(ctx context.Context, target Target) error {
	args, err := m.args(target)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	cmd := exec.Command(m.binary, args...)
	cmd.SysProcAttr = sysProcAttr()

	log.WithFields(logrus.Fields{"title": target.Title}).Info("launching mpv")
	if err := m.start(cmd); err != nil {
		return fmt.Errorf("start mpv: %w", err)
	}
	return nil
}

func (m *MPV) args(target Target) ([]string, error) {
	media, err := sanitizeMediaTarget(target.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid media target: %w", err)
	}

	args := []string{
		"--no-terminal",
		"--really-quiet",
		"--force-window=yes",
	}

	if title := sanitizeTitle(target.Title); title != "" {
		args = append(args, "--force-media-title="+title, "--title="+title)
	}

	if fields := headerFields(target.Headers); fields != "" {
		args = append(args, "--http-header-fields="+fields)
	}

	for _, sub := range target.Subtitles {
		if s, err := sanitizeMediaTarget(sub); err == nil {
			args = append(args, "--sub-file="+s)
		}
	}

	// Everything after "--" is a file, even if it looks like a flag.
	return append(args, "--", media), nil
}

// headerFields renders headers as mpv's comma separated "Name: value" list, sorted by name.
func headerFields(headers map[string]string) string {
	names := make([]string, 0, len(headers))
	for name := range headers {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := make([]string, 0, len(names))
	for _, name := range names {
		fields = append(fields, fmt.Sprintf("%s: %s", name, strings.ReplaceAll(headers[name], ",", "%2C")))
	}
	return strings.Join(fields, ",")
}

func startDetached(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}

	// Reap the process so it does not linger as a zombie.
	go func() { _ = cmd.Wait() }()
	return nil
}

// sanitizeMediaTarget accepts http(s) URLs and local paths, rejecting anything mpv
// could read as an option.
func sanitizeMediaTarget(link string) (string, error) {
	l := strings.TrimSpace(link)
	if l == "" {
		return "", fmt.Errorf("empty URL")
	}

	if strings.ContainsAny(l, "\x00\n\r") {
		return "", fmt.Errorf("invalid control characters in URL")
	}

	if strings.HasPrefix(l, "-") {
		return "", fmt.Errorf("url must not start with '-' (looks like a flag)")
	}

	if strings.Contains(l, "://") {
		u, err := url.Parse(l)
		if err != nil {
			return "", fmt.Errorf("invalid URL: %w", err)
		}
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return l, nil
		default:
			return "", fmt.Errorf("unsupported URL scheme: %s", u.Scheme)
		}
	}

	return filepath.Clean(l), nil
}

func sanitizeTitle(title string) string {
	t := strings.NewReplacer("\n", " ", "\r", " ", "\t", " ", "\x00", "").Replace(title)
	return strings.TrimSpace(t)
}
