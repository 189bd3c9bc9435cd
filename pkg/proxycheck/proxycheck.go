// Package proxycheck filters a scraped proxy list down to entries that
// can actually relay a request.
package proxycheck

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

const (
	defaultCanaryURL = "http://httpbin.org/ip"
	defaultTimeout   = 5 * time.Second
)

type Checker struct {
	canaryURL string
	timeout   time.Duration
}

func New(opts ...checkerOption) *Checker {
	c := &Checker{
		canaryURL: defaultCanaryURL,
		timeout:   defaultTimeout,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Live returns the first n candidates that successfully proxy a GET to
// the canary URL, preserving candidate order. Candidates are checked
// sequentially and checking stops once n live entries are found.
func (c *Checker) Live(ctx context.Context, candidates []string, n int) []string {
	live := make([]string, 0, n)

	for _, candidate := range candidates {
		if len(live) >= n {
			break
		}

		if ctx.Err() != nil {
			break
		}

		if c.check(ctx, candidate) {
			live = append(live, candidate)
		}
	}

	return live
}

func (c *Checker) check(ctx context.Context, hostport string) bool {
	proxyURL := &url.URL{
		Scheme: "http",
		Host:   hostport,
	}

	client := &http.Client{
		Transport: &http.Transport{
			Proxy: http.ProxyURL(proxyURL),
		},
		Timeout: c.timeout,
	}
	defer client.CloseIdleConnections()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.canaryURL, nil)
	if err != nil {
		return false
	}

	resp, err := client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices
}
