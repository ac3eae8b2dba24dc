package archive

import (
	"archive/tar"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteDirUntarRoundTrip(t *testing.T) {
	src := t.TempDir()
	mustWriteFile(t, filepath.Join(src, "bin", "hello"), "#!/bin/sh\necho hi\n", 0o755)
	mustWriteFile(t, filepath.Join(src, "share", "doc", "README"), "docs\n", 0o644)
	if err := os.Symlink("hello", filepath.Join(src, "bin", "hi")); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	tw := tar.NewWriter(&buf)
	if err := WriteDir(tw, src); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := tw.Close(); err != nil {
		t.Fatal(err)
	}

	dest := t.TempDir()
	if err := Untar(&buf, dest); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dest, "bin", "hello"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "#!/bin/sh\necho hi\n" {
		t.Errorf("file content = %q", data)
	}

	info, err := os.Stat(filepath.Join(dest, "bin", "hello"))
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o755 {
		t.Errorf("mode = %v, want 0755", info.Mode().Perm())
	}

	link, err := os.Readlink(filepath.Join(dest, "bin", "hi"))
	if err != nil {
		t.Fatal(err)
	}
	if link != "hello" {
		t.Errorf("symlink target = %q, want hello", link)
	}

	if _, err := os.Stat(filepath.Join(dest, "share", "doc", "README")); err != nil {
		t.Errorf("nested file missing: %v", err)
	}
}

func TestWriteBytes(t *testing.T) {
	var buf bytes.Buffer
	tw := tar.NewWriter(&buf)
	if err := WriteBytes(tw, "metadata.yaml", []byte("name: hello\n"), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := tw.Close(); err != nil {
		t.Fatal(err)
	}

	tr := tar.NewReader(&buf)
	header, err := tr.Next()
	if err != nil {
		t.Fatal(err)
	}
	if header.Name != "metadata.yaml" {
		t.Errorf("entry name = %q, want metadata.yaml", header.Name)
	}
	var out bytes.Buffer
	if _, err := out.ReadFrom(tr); err != nil {
		t.Fatal(err)
	}
	if out.String() != "name: hello\n" {
		t.Errorf("entry content = %q", out.String())
	}
}

func TestUntarRejectsTraversal(t *testing.T) {
	var buf bytes.Buffer
	tw := tar.NewWriter(&buf)
	if err := WriteBytes(tw, "../escape.txt", []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := tw.Close(); err != nil {
		t.Fatal(err)
	}

	err := Untar(&buf, t.TempDir())
	if err == nil || !strings.Contains(err.Error(), "escapes") {
		t.Fatalf("err = %v, want traversal rejection", err)
	}
}

func mustWriteFile(t *testing.T, path, content string, mode os.FileMode) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), mode); err != nil {
		t.Fatal(err)
	}
}
