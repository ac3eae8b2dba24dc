package archive

import (
	"archive/tar"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Permission mode for directories created during extraction when the
// archive does not carry one.
const extractDirMode os.FileMode = 0755

// Writes a directory tree to a tar writer, entry names relative to dir.
func WriteDir(tw *tar.Writer, dir string) error {
	return filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		if relPath == "." {
			return nil
		}

		return writeEntry(tw, path, filepath.ToSlash(relPath), d)
	})
}

// Writes a single in-memory file entry to a tar writer.
func WriteBytes(tw *tar.Writer, name string, data []byte, mode os.FileMode) error {
	header := &tar.Header{
		Name: name,
		Mode: int64(mode),
		Size: int64(len(data)),
	}
	if err := tw.WriteHeader(header); err != nil {
		return err
	}
	_, err := tw.Write(data)
	return err
}

// Writes a single file or directory entry to a tar writer.
func writeEntry(tw *tar.Writer, hostPath, archivePath string, d os.DirEntry) error {
	info, err := d.Info()
	if err != nil {
		return err
	}

	link := ""
	if info.Mode()&os.ModeSymlink != 0 {
		if link, err = os.Readlink(hostPath); err != nil {
			return err
		}
	}

	header, err := tar.FileInfoHeader(info, link)
	if err != nil {
		return err
	}
	header.Name = archivePath

	if err := tw.WriteHeader(header); err != nil {
		return err
	}

	if info.Mode().IsRegular() {
		f, err := os.Open(hostPath)
		if err != nil {
			return err
		}
		defer f.Close()
		_, err = io.Copy(tw, f)
		return err
	}

	return nil
}

// Extracts a tar stream into dest.
//
// Directories, regular files, and symlinks are restored with their recorded
// modes. Entry names that escape dest are rejected. A failed entry aborts
// the extraction with the error; already-written entries are left in place
// for the caller's workspace cleanup to remove.
func Untar(r io.Reader, dest string) error {
	tr := tar.NewReader(r)

	for {
		header, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		target, err := entryPath(dest, header.Name)
		if err != nil {
			return err
		}
		if target == "" {
			continue // Archive root entry ("." or "./").
		}

		switch header.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, os.FileMode(header.Mode)&os.ModePerm|0o700); err != nil {
				return err
			}

		case tar.TypeReg:
			if err := writeRegular(target, tr, os.FileMode(header.Mode)&os.ModePerm); err != nil {
				return err
			}

		case tar.TypeSymlink:
			if err := os.MkdirAll(filepath.Dir(target), extractDirMode); err != nil {
				return err
			}
			if err := os.Symlink(header.Linkname, target); err != nil {
				return err
			}

		default:
			// Hard links, devices, and the rest are not expected in source
			// or package archives; skip rather than fail.
		}
	}
}

// Resolves an archive entry name against the destination directory,
// rejecting names that escape it.
func entryPath(dest, name string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(name))
	if cleaned == "." {
		return "", nil
	}
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(os.PathSeparator)) || filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("archive entry %q escapes extraction directory", name)
	}
	return filepath.Join(dest, cleaned), nil
}

// Writes one regular file from the tar stream.
func writeRegular(target string, r io.Reader, mode os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(target), extractDirMode); err != nil {
		return err
	}

	f, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return err
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
