// Package version checks for newer releases on GitHub.
package version

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/aizenverse/aizen/constant"
	"github.com/aizenverse/aizen/filesystem"
	"github.com/aizenverse/aizen/network"
	"github.com/aizenverse/aizen/util"
	"github.com/aizenverse/aizen/where"
	"github.com/metafates/gache"
)

var cacher = sync.OnceValue(func() *gache.Cache[string] {
	return gache.New[string](&gache.Options{
		Path:       filepath.Join(where.Cache(), "version.json"),
		Lifetime:   48 * time.Hour,
		FileSystem: &filesystem.GacheFs{},
	})
})

// releasesURL is a variable so tests can point it at a local server.
var releasesURL = fmt.Sprintf("https://api.github.com/repos/%s/releases/latest", constant.Repository)

// Latest returns the newest released version without the "v" prefix.
// The answer is cached for two days.
func Latest(ctx context.Context) (string, error) {
	if ver, expired, err := cacher().Get(); err == nil && !expired && ver != "" {
		return ver, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, releasesURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", constant.UserAgent)

	resp, err := network.WithTimeout(5 * time.Second).Do(req)
	if err != nil {
		return "", err
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("release lookup: unexpected status %s", resp.Status)
	}

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", err
	}

	if release.TagName == "" {
		return "", errors.New("empty tag name")
	}

	ver := strings.TrimPrefix(release.TagName, "v")
	_ = cacher().Set(ver)
	return ver, nil
}
