package tarstream

import (
	"archive/tar"
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
}

func TestArchiveExtractRoundTrip(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "a.txt"), "hello")
	writeFile(t, filepath.Join(src, "nested", "b.txt"), "world")

	var buf bytes.Buffer
	if err := Archive(src, &buf, Options{}); err != nil {
		t.Fatalf("Archive() error = %v", err)
	}

	dst := t.TempDir()
	if err := Extract(&buf, dst); err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	got, err := os.ReadFile(filepath.Join(dst, "a.txt"))
	if err != nil || string(got) != "hello" {
		t.Fatalf("a.txt = %q, %v", got, err)
	}
	got, err = os.ReadFile(filepath.Join(dst, "nested", "b.txt"))
	if err != nil || string(got) != "world" {
		t.Fatalf("nested/b.txt = %q, %v", got, err)
	}
}

func TestArchiveIncludeFilter(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "keep.txt"), "hello")
	writeFile(t, filepath.Join(src, "skip.tmp"), "world")
	writeFile(t, filepath.Join(src, "cache", "x.txt"), "nope")

	var buf bytes.Buffer
	opts := Options{Include: func(relPath string) bool {
		return relPath != "cache" && filepath.Ext(relPath) != ".tmp"
	}}
	if err := Archive(src, &buf, opts); err != nil {
		t.Fatalf("Archive() error = %v", err)
	}

	dst := t.TempDir()
	if err := Extract(&buf, dst); err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if _, err := os.ReadFile(filepath.Join(dst, "keep.txt")); err != nil {
		t.Fatalf("keep.txt missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dst, "skip.tmp")); !os.IsNotExist(err) {
		t.Fatalf("skip.tmp should have been excluded")
	}
	if _, err := os.Stat(filepath.Join(dst, "cache")); !os.IsNotExist(err) {
		t.Fatalf("cache/ should have been excluded")
	}
}

func TestArchiveNormalizeNames(t *testing.T) {
	src := t.TempDir()
	// NFD: "e" followed by a standalone combining acute accent
	// (U+0301), the decomposition HFS+ stores on disk.
	decomposed := "caf" + "e" + "\u0301" + ".txt"
	writeFile(t, filepath.Join(src, decomposed), "hi")

	var buf bytes.Buffer
	if err := Archive(src, &buf, Options{NormalizeNames: true}); err != nil {
		t.Fatalf("Archive() error = %v", err)
	}

	tr := tar.NewReader(&buf)
	header, err := tr.Next()
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	// NFC: a single precomposed "\u00e9".
	composed := "caf" + "\u00e9" + ".txt"
	if header.Name != composed {
		t.Fatalf("header.Name = %q, want NFC form %q", header.Name, composed)
	}
}

func TestExtractRejectsAbsolutePath(t *testing.T) {
	var buf bytes.Buffer
	tw := tar.NewWriter(&buf)
	if err := tw.WriteHeader(&tar.Header{Name: "/etc/passwd", Typeflag: tar.TypeReg, Size: 0, Mode: 0o644}); err != nil {
		t.Fatalf("WriteHeader() error = %v", err)
	}
	tw.Close()

	if err := Extract(&buf, t.TempDir()); err == nil {
		t.Fatalf("Extract() accepted an absolute path entry")
	}
}

func TestExtractRejectsTraversal(t *testing.T) {
	var buf bytes.Buffer
	tw := tar.NewWriter(&buf)
	if err := tw.WriteHeader(&tar.Header{Name: "../escape.txt", Typeflag: tar.TypeReg, Size: 0, Mode: 0o644}); err != nil {
		t.Fatalf("WriteHeader() error = %v", err)
	}
	tw.Close()

	if err := Extract(&buf, t.TempDir()); err == nil {
		t.Fatalf("Extract() accepted a traversal entry")
	}
}

func TestExtractRejectsSymlinkEscape(t *testing.T) {
	var buf bytes.Buffer
	tw := tar.NewWriter(&buf)
	if err := tw.WriteHeader(&tar.Header{
		Name:     "link",
		Typeflag: tar.TypeSymlink,
		Linkname: "../../etc/passwd",
		Mode:     0o777,
	}); err != nil {
		t.Fatalf("WriteHeader() error = %v", err)
	}
	tw.Close()

	if err := Extract(&buf, t.TempDir()); err == nil {
		t.Fatalf("Extract() accepted an escaping symlink")
	}
}

func TestToZip(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "a.txt"), "hello")

	var tarBuf bytes.Buffer
	if err := Archive(src, &tarBuf, Options{}); err != nil {
		t.Fatalf("Archive() error = %v", err)
	}

	var zipBuf bytes.Buffer
	if err := ToZip(&tarBuf, &zipBuf); err != nil {
		t.Fatalf("ToZip() error = %v", err)
	}
	if zipBuf.Len() == 0 {
		t.Fatalf("ToZip() produced an empty archive")
	}
}

func TestSize(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "a.txt"), "12345")
	writeFile(t, filepath.Join(src, "nested", "b.txt"), "1234567890")

	got, err := Size(src)
	if err != nil {
		t.Fatalf("Size() error = %v", err)
	}
	if got != 15 {
		t.Fatalf("Size() = %d, want 15", got)
	}
}
