package sources

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sheetsync/sheetsync/internal/log"
)

// HTTPFetcher downloads sheets from a spreadsheet CSV export endpoint
type HTTPFetcher struct {
	ctx    context.Context
	client *http.Client
	base   *url.URL
}

func NewHTTPFetcher(ctx context.Context, baseURL string, timeout time.Duration) (*HTTPFetcher, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("unsupported source URL scheme %q", base.Scheme)
	}
	l := log.GetLogger(ctx).WithField("source", base.Host)
	return &HTTPFetcher{
		ctx:    log.WithLogger(ctx, l),
		client: &http.Client{Timeout: timeout},
		base:   base,
	}, nil
}

// URL returns the CSV export location of the sheet identified by gid
func (hf *HTTPFetcher) URL(gid string) string {
	u := *hf.base
	q := u.Query()
	q.Set("format", "csv")
	q.Set("gid", gid)
	u.RawQuery = q.Encode()
	return u.String()
}

func (hf *HTTPFetcher) Fetch(ctx context.Context, gid string) (Table, error) {
	t, err := hf.fetch(ctx, gid)
	if err != nil {
		return Table{}, &FetchError{GID: gid, Err: err}
	}
	return t, nil
}

func (hf *HTTPFetcher) fetch(ctx context.Context, gid string) (Table, error) {
	link := hf.URL(gid)
	log.GetLogger(hf.ctx).WithField("url", link).Debug("downloading sheet")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return Table{}, err
	}
	resp, err := hf.client.Do(req)
	if err != nil {
		return Table{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Table{}, fmt.Errorf("unexpected response status %s", resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Table{}, err
	}
	return ParseTable(body)
}
