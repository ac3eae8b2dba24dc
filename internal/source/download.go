package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
)

// Fallback artifact name when the URL path carries none.
const defaultArtifactName = "source.tar.gz"

// Downloads the artifact at rawURL into dir and returns the local path.
// The local filename is taken from the URL path so the extraction format
// can be recognized from its extension.
func download(ctx context.Context, rawURL, dir string) (string, error) {
	dest := filepath.Join(dir, filenameFromURL(rawURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDownload, err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDownload, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: %s returned status %d", ErrDownload, rawURL, resp.StatusCode)
	}

	f, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDownload, err)
	}

	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		return "", fmt.Errorf("%w: %w", ErrDownload, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrDownload, err)
	}

	return dest, nil
}

// Derives a local filename from the URL path, falling back to a generic
// name when the path has none.
func filenameFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return defaultArtifactName
	}

	name := path.Base(u.Path)
	if name == "" || name == "." || name == "/" {
		return defaultArtifactName
	}
	return name
}
