package content

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path"
	"time"
)

var (
	// ErrFetch wraps any failure to retrieve a document.
	ErrFetch = errors.New("fetch failed")
	// ErrDecode wraps any failure to parse a document body.
	ErrDecode = errors.New("decode failed")
)

// Fetcher retrieves the raw body of a section document by its site-relative
// path, e.g. "data/hero.json".
type Fetcher interface {
	Fetch(ctx context.Context, relPath string) ([]byte, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, relPath string) ([]byte, error)

// Fetch calls f.
func (f FetcherFunc) Fetch(ctx context.Context, relPath string) ([]byte, error) {
	return f(ctx, relPath)
}

// HTTPFetcher issues GET requests relative to a base URL.
type HTTPFetcher struct {
	BaseURL *url.URL
	Client  *http.Client
	// Timeout bounds each request. Zero means no timeout: a hung request
	// stalls its section until ctx is cancelled.
	Timeout time.Duration
}

// NewHTTPFetcher parses baseURL and returns a fetcher that resolves document
// paths against it.
func NewHTTPFetcher(baseURL string, timeout time.Duration) (*HTTPFetcher, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base url %q: %w", baseURL, err)
	}
	// Resolve "data/x.json" under the base path, not beside it.
	if u.Path != "" && u.Path[len(u.Path)-1] != '/' {
		u.Path += "/"
	}
	return &HTTPFetcher{BaseURL: u, Client: http.DefaultClient, Timeout: timeout}, nil
}

// Fetch implements Fetcher.
func (f *HTTPFetcher) Fetch(ctx context.Context, relPath string) ([]byte, error) {
	ref, err := url.Parse(relPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFetch, relPath, err)
	}
	target := f.BaseURL.ResolveReference(ref)

	if f.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFetch, target, err)
	}
	req.Header.Set("Accept", "application/json")

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFetch, target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s: status %d", ErrFetch, target, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrFetch, target, err)
	}
	return body, nil
}

// DirFetcher reads documents from a filesystem rooted at the site directory.
type DirFetcher struct {
	FS fs.FS
}

// NewDirFetcher returns a fetcher reading from dir.
func NewDirFetcher(dir string) *DirFetcher {
	return &DirFetcher{FS: os.DirFS(dir)}
}

// Fetch implements Fetcher.
func (f *DirFetcher) Fetch(ctx context.Context, relPath string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFetch, relPath, err)
	}
	clean := path.Clean(relPath)
	if !fs.ValidPath(clean) {
		return nil, fmt.Errorf("%w: invalid path %q", ErrFetch, relPath)
	}
	data, err := fs.ReadFile(f.FS, clean)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	return data, nil
}
