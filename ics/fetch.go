package ics

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// maxBodySize limits how much of a calendar feed is read.
const maxBodySize = 16 << 20

// Fetcher loads calendar payloads from http(s) URLs or local files.
type Fetcher struct {
	Client *http.Client
}

// NewFetcher returns a fetcher with a 15s HTTP timeout.
func NewFetcher() *Fetcher {
	return &Fetcher{Client: &http.Client{Timeout: 15 * time.Second}}
}

// Fetch reads src. Sources starting with http:// or https:// are downloaded,
// webcal:// is treated as https://, anything else is a file path.
func (f *Fetcher) Fetch(ctx context.Context, src string) ([]byte, error) {
	if src == "" {
		return nil, fmt.Errorf("calendar source is empty")
	}
	if strings.HasPrefix(src, "webcal://") {
		src = "https://" + strings.TrimPrefix(src, "webcal://")
	}
	if !strings.HasPrefix(src, "http://") && !strings.HasPrefix(src, "https://") {
		body, err := os.ReadFile(src)
		if err != nil {
			return nil, fmt.Errorf("read calendar %s: %w", src, err)
		}
		return body, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/calendar")
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}

	tracer().Infof("fetching calendar %s", redactURL(src))
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch calendar %s: %w", redactURL(src), err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch calendar %s: unexpected status %s", redactURL(src), resp.Status)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read calendar %s: %w", redactURL(src), err)
	}
	return body, nil
}

// redactURL drops the query string, which often carries a private token.
func redactURL(u string) string {
	if i := strings.IndexByte(u, '?'); i >= 0 {
		return u[:i] + "?…"
	}
	return u
}
