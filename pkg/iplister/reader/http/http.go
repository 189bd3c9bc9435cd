package http

import (
	"context"
	"fmt"
	"io"
	"net/http"

	apperrors "github.com/cf-utils/ipsync/pkg/errors"
)

type HTTP struct {
	url       string
	username  string
	password  string
	userAgent string
}

func New(url string, opts ...httpOption) *HTTP {
	h := &HTTP{
		url: url,
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

func (h *HTTP) Data(ctx context.Context) (io.ReadCloser, error) {
	client := &http.Client{}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.url, nil)
	if err != nil {
		return nil, apperrors.NewFetchError(err)
	}

	if h.username != "" || h.password != "" {
		req.SetBasicAuth(h.username, h.password)
	}

	if h.userAgent != "" {
		req.Header.Set("User-Agent", h.userAgent)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, apperrors.NewFetchError(err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		resp.Body.Close()
		return nil, apperrors.NewFetchError(fmt.Errorf("received non-success response from %s: %d", h.url, resp.StatusCode))
	}

	return resp.Body, nil
}
