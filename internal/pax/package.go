package pax

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/klauspost/compress/zstd"
	"github.com/opencontainers/go-digest"

	"github.com/paxhq/paxbuild/internal/archive"
)

// Package is a read handle on an existing .pax archive. Opening is a
// stat only; the archive is decompressed on demand by the query methods.
type Package struct {
	Path string

	meta *Metadata
}

// Opens a package archive for reading.
func Open(path string) (*Package, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: %w", ErrPackaging, err)
	}
	return &Package{Path: path}, nil
}

// Unpacks the archive contents, metadata.yaml included, into dir.
func (p *Package) ExtractTo(dir string) error {
	f, err := os.Open(p.Path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPackaging, err)
	}
	defer f.Close()

	zr, err := zstd.NewReader(f)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPackaging, err)
	}
	defer zr.Close()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: %w", ErrPackaging, err)
	}
	if err := archive.Untar(zr, dir); err != nil {
		return fmt.Errorf("%w: %w", ErrPackaging, err)
	}
	return nil
}

// Reads the embedded metadata. The first call extracts the archive into
// a private temporary directory; the result is cached for the handle's
// life.
func (p *Package) LoadMetadata() (*Metadata, error) {
	if p.meta != nil {
		return p.meta, nil
	}

	tmp, err := os.MkdirTemp("", "pax-meta-")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPackaging, err)
	}
	defer os.RemoveAll(tmp)

	if err := p.ExtractTo(tmp); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(tmp, MetadataFilename))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrMetadataMissing, p.Path)
		}
		return nil, fmt.Errorf("%w: %w", ErrPackaging, err)
	}

	meta, err := ParseMetadata(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPackaging, err)
	}

	p.meta = meta
	return meta, nil
}

// Reports the archive size in bytes.
func (p *Package) Size() (int64, error) {
	info, err := os.Stat(p.Path)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrPackaging, err)
	}
	return info.Size(), nil
}

// Computes the hex SHA-256 digest of the compressed archive bytes.
func (p *Package) Hash() (string, error) {
	f, err := os.Open(p.Path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPackaging, err)
	}
	defer f.Close()

	d, err := digest.SHA256.FromReader(f)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPackaging, err)
	}
	return d.Encoded(), nil
}

// Lists the sorted relative paths of the regular files in the archive,
// metadata.yaml included. Each call extracts afresh.
func (p *Package) ListFiles() ([]string, error) {
	tmp, err := os.MkdirTemp("", "pax-list-")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPackaging, err)
	}
	defer os.RemoveAll(tmp)

	if err := p.ExtractTo(tmp); err != nil {
		return nil, err
	}

	var files []string
	err = filepath.WalkDir(tmp, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(tmp, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPackaging, err)
	}

	sort.Strings(files)
	return files, nil
}

// Checks structural integrity: the archive must decompress, carry
// readable metadata, and yield a file listing. This is the gate before
// any signature verification.
func (p *Package) Verify() error {
	if _, err := p.LoadMetadata(); err != nil {
		return err
	}
	_, err := p.ListFiles()
	return err
}
