package source

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Acquirer stages source artifacts inside a build workspace.
type Acquirer struct {
	workspace string
}

// Creates an acquirer that downloads and unpacks into subdirectories of
// the given workspace.
func New(workspace string) *Acquirer {
	return &Acquirer{workspace: workspace}
}

// Downloads the artifact at rawURL, verifies it against expectedHash if
// one is given, unpacks it, and returns the source root directory.
//
// With an empty expectedHash the artifact is accepted as-is and its
// digest is logged so a hash can be pinned in the recipe afterwards.
func (a *Acquirer) Acquire(ctx context.Context, rawURL, expectedHash string) (string, error) {
	downloadDir := filepath.Join(a.workspace, "download")
	extractDir := filepath.Join(a.workspace, "source")
	for _, dir := range []string{downloadDir, extractDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("%w: %w", ErrDownload, err)
		}
	}

	slog.Info("downloading source", "url", rawURL)
	artifact, err := download(ctx, rawURL, downloadDir)
	if err != nil {
		return "", err
	}

	if expectedHash != "" {
		if err := verifyChecksum(artifact, expectedHash); err != nil {
			return "", err
		}
		slog.Debug("source checksum verified", "artifact", filepath.Base(artifact))
	} else {
		actual, err := fileDigest(artifact)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrDownload, err)
		}
		slog.Warn("recipe declares no source hash", "sha256", actual)
	}

	slog.Info("extracting source", "artifact", filepath.Base(artifact))
	if err := extract(artifact, extractDir); err != nil {
		return "", err
	}

	root, err := resolveRoot(extractDir)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrExtraction, err)
	}

	slog.Debug("source acquired", "root", root)
	return root, nil
}
