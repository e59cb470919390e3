// Package network provides the pre-configured HTTP client shared by every remote call.
package network

import (
	"net/http"
	"time"
)

// Client is the shared HTTP client. Per-request deadlines come from the caller's context.
var Client = &http.Client{
	Timeout:   time.Minute,
	Transport: newTransport(),
}

// WithTimeout returns a client sharing the pooled transport but bounded by timeout.
func WithTimeout(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		return Client
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: Client.Transport,
	}
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxIdleConnsPerHost = 20
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	t.ExpectContinueTimeout = time.Second
	return t
}
