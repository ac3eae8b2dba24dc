package pax

import (
	"archive/tar"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/klauspost/compress/zstd"

	"github.com/paxhq/paxbuild/internal/archive"
	"github.com/paxhq/paxbuild/internal/recipe"
)

// Assembles a .pax archive at destPath from the files installed under
// installRoot. The archive holds the install tree plus a metadata.yaml
// derived from the recipe and the file manifest. A missing installRoot
// produces a valid archive with an empty manifest.
func Assemble(r *recipe.Recipe, arch, installRoot, destPath string) error {
	files, err := manifest(installRoot)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPackaging, err)
	}
	if len(files) == 0 {
		slog.Warn("install root is empty, packaging metadata only", "package", r.PackageID(), "arch", arch)
	}

	meta, err := metadataFor(r, arch, files).Marshal()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPackaging, err)
	}

	out, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPackaging, err)
	}

	if err := writeArchive(out, installRoot, meta); err != nil {
		out.Close()
		os.Remove(destPath)
		return fmt.Errorf("%w: %w", ErrPackaging, err)
	}
	if err := out.Close(); err != nil {
		os.Remove(destPath)
		return fmt.Errorf("%w: %w", ErrPackaging, err)
	}

	slog.Info("assembled package", "path", destPath, "files", len(files))
	return nil
}

// Writes the zstd-compressed tar stream: the install tree first, then the
// metadata entry.
func writeArchive(out *os.File, installRoot string, meta []byte) error {
	zw, err := zstd.NewWriter(out, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return err
	}

	tw := tar.NewWriter(zw)

	if _, err := os.Stat(installRoot); err == nil {
		if err := archive.WriteDir(tw, installRoot); err != nil {
			return err
		}
	}

	if err := archive.WriteBytes(tw, MetadataFilename, meta, 0o644); err != nil {
		return err
	}

	if err := tw.Close(); err != nil {
		return err
	}
	return zw.Close()
}

// Collects the sorted relative paths of every regular file under root.
// A missing root yields an empty manifest.
func manifest(root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}
