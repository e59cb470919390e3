// Package api is the client of the remote anime catalog and streaming API.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/aizenverse/aizen/constant"
	"github.com/aizenverse/aizen/internal/cache"
	"github.com/aizenverse/aizen/key"
	"github.com/aizenverse/aizen/log"
	"github.com/aizenverse/aizen/network"
	"github.com/aizenverse/aizen/util"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"golang.org/x/time/rate"
)

const (
	basePath    = "/anime/hianime"
	maxBodySize = 5 << 20
)

// StatusError is returned when the API answers with a non-2xx status.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api: %s returned %d %s", e.URL, e.Code, http.StatusText(e.Code))
}

// Options configure a Client. Zero values disable the optional parts.
type Options struct {
	BaseURL string
	Timeout time.Duration
	// RateLimit caps requests per second. Zero means unlimited.
	RateLimit float64
	Cache     cache.Store
	CacheTTL  time.Duration
}

// Client talks to the remote API. It is safe for concurrent use.
type Client struct {
	baseURL  string
	http     *http.Client
	limiter  *rate.Limiter
	cache    cache.Store
	cacheTTL time.Duration
}

// New builds a client from explicit options.
func New(opts Options) *Client {
	c := &Client{
		baseURL:  strings.TrimRight(opts.BaseURL, "/"),
		http:     network.WithTimeout(opts.Timeout),
		cache:    opts.Cache,
		cacheTTL: opts.CacheTTL,
	}

	if c.cache == nil {
		c.cache = cache.Nop{}
	}

	if opts.RateLimit > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), max(1, int(opts.RateLimit)))
	}

	return c
}

// FromConfig builds a client from the api.* and cache.* settings.
func FromConfig(ctx context.Context) *Client {
	return New(Options{
		BaseURL:   viper.GetString(key.APIBaseURL),
		Timeout:   time.Duration(viper.GetInt(key.APITimeout)) * time.Second,
		RateLimit: viper.GetFloat64(key.APIRateLimit),
		Cache:     cache.Open(ctx),
		CacheTTL:  time.Duration(viper.GetInt(key.APICacheTTL)) * time.Minute,
	})
}

// BaseURL is the API root the client targets.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// get fetches endpoint and decodes the JSON body into target.
// Cacheable responses are served from and stored into the response cache.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values, target any, cacheable bool) error {
	u := c.baseURL + basePath + endpoint
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	cacheKey := cache.Key(u)
	if cacheable {
		var raw json.RawMessage
		if c.cache.Get(ctx, cacheKey, &raw) {
			if err := json.Unmarshal(raw, target); err == nil {
				log.WithFields(logrus.Fields{"url": u}).Debug("api cache hit")
				return nil
			}
		}
	}

	body, err := c.fetch(ctx, u)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("api: decode %s: %w", u, err)
	}

	if cacheable {
		if err := c.cache.Set(ctx, cacheKey, json.RawMessage(body), c.cacheTTL); err != nil {
			log.WithFields(logrus.Fields{"url": u}).WithError(err).Warn("failed to cache response")
		}
	}

	return nil
}

func (c *Client) fetch(ctx context.Context, u string) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("api: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", constant.UserAgent)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("api: request %s: %w", u, err)
	}
	defer util.Ignore(resp.Body.Close)

	log.WithFields(logrus.Fields{
		"url":     u,
		"status":  resp.StatusCode,
		"elapsed": time.Since(start).String(),
	}).Debug("api request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode, URL: u}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("api: read %s: %w", u, err)
	}
	if len(body) > maxBodySize {
		return nil, fmt.Errorf("api: response from %s exceeds %d bytes", u, maxBodySize)
	}

	return body, nil
}

func pageParams(page int) url.Values {
	return url.Values{"page": {fmt.Sprint(max(page, 1))}}
}
