package recipe

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// Loads and parses a recipe from a local file path or an HTTP(S) URL.
func Load(ctx context.Context, ref string) (*Recipe, error) {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return fetch(ctx, ref)
	}

	text, err := os.ReadFile(ref)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrFetch, ref, err)
	}
	return Parse(text)
}

// Fetches a recipe document over HTTP.
//
// The fetch is a single attempt with no retry; a transport failure or a
// non-success status aborts the invocation.
func fetch(ctx context.Context, url string) (*Recipe, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFetch, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %s: HTTP %d", ErrFetch, url, resp.StatusCode)
	}

	text, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response from %s: %w", ErrFetch, url, err)
	}

	return Parse(text)
}
