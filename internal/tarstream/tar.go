// Package tarstream archives a directory into a tar stream for
// upload and extracts one back out on download, plus a streaming
// transcoder to zip for clients that would rather not deal with tar.
package tarstream

import (
	"archive/tar"
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Options configures Archive beyond a plain recursive walk.
type Options struct {
	// Include, if set, is called with each entry's slash-separated
	// path relative to the archive root. A false return skips the
	// entry (and, for a directory, everything under it).
	Include func(relPath string) bool

	// NormalizeNames rewrites every entry name to Unicode NFC before
	// writing it, so a filename typed with combining characters on one
	// platform (notably HFS+'s NFD-on-disk form) round-trips to the
	// same byte sequence as the same name typed elsewhere.
	NormalizeNames bool
}

// Archive walks dir and writes it to w as an uncompressed tar stream,
// with entry names relative to dir. The encryption layer above this
// one already turns the byte stream opaque, so there is no point
// compressing twice.
func Archive(dir string, w io.Writer, opts Options) error {
	dir = filepath.Clean(dir)
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("tarstream: stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("tarstream: %s is not a directory", dir)
	}

	tw := tar.NewWriter(w)
	defer tw.Close()

	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		relPath, err := filepath.Rel(dir, path)
		if err != nil {
			return fmt.Errorf("tarstream: relative path: %w", err)
		}
		if relPath == "." {
			return nil
		}
		slashPath := filepath.ToSlash(relPath)

		if opts.Include != nil && !opts.Include(slashPath) {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		header, err := tar.FileInfoHeader(info, "")
		if err != nil {
			return fmt.Errorf("tarstream: header for %s: %w", relPath, err)
		}
		header.Name = slashPath
		if opts.NormalizeNames {
			header.Name = norm.NFC.String(header.Name)
		}

		if info.Mode()&os.ModeSymlink != 0 {
			link, err := os.Readlink(path)
			if err != nil {
				return fmt.Errorf("tarstream: readlink %s: %w", path, err)
			}
			header.Linkname = link
		}

		if err := tw.WriteHeader(header); err != nil {
			return fmt.Errorf("tarstream: write header %s: %w", relPath, err)
		}

		if info.Mode().IsRegular() {
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("tarstream: open %s: %w", path, err)
			}
			defer f.Close()
			if _, err := io.Copy(tw, f); err != nil {
				return fmt.Errorf("tarstream: write %s: %w", relPath, err)
			}
		}
		return nil
	})
}

// Extract reads a tar stream from r and recreates it under destDir,
// rejecting any entry whose name would place it outside destDir
// (absolute paths, "..", or a symlink/hardlink pointing outside).
func Extract(r io.Reader, destDir string) error {
	destDir = filepath.Clean(destDir)
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return fmt.Errorf("tarstream: mkdir %s: %w", destDir, err)
	}

	tr := tar.NewReader(r)
	for {
		header, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("tarstream: read header: %w", err)
		}

		target, err := sanitizePath(destDir, header.Name)
		if err != nil {
			return err
		}

		switch header.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, os.FileMode(header.Mode)); err != nil {
				return fmt.Errorf("tarstream: mkdir %s: %w", target, err)
			}

		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return fmt.Errorf("tarstream: mkdir %s: %w", filepath.Dir(target), err)
			}
			f, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, os.FileMode(header.Mode))
			if err != nil {
				return fmt.Errorf("tarstream: create %s: %w", target, err)
			}
			if _, err := io.Copy(f, tr); err != nil {
				f.Close()
				return fmt.Errorf("tarstream: write %s: %w", target, err)
			}
			f.Close()

		case tar.TypeSymlink:
			if err := validateSymlinkTarget(destDir, target, header.Linkname); err != nil {
				return err
			}
			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return fmt.Errorf("tarstream: mkdir %s: %w", filepath.Dir(target), err)
			}
			os.Remove(target)
			if err := os.Symlink(header.Linkname, target); err != nil {
				return fmt.Errorf("tarstream: symlink %s: %w", target, err)
			}

		case tar.TypeLink:
			linkTarget, err := sanitizePath(destDir, header.Linkname)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return fmt.Errorf("tarstream: mkdir %s: %w", filepath.Dir(target), err)
			}
			os.Remove(target)
			if err := os.Link(linkTarget, target); err != nil {
				return fmt.Errorf("tarstream: link %s: %w", target, err)
			}

		default:
			continue
		}
	}
}

// sanitizePath resolves name against destDir, rejecting anything that
// would escape it.
func sanitizePath(destDir, name string) (string, error) {
	name = filepath.Clean(filepath.FromSlash(name))
	if filepath.IsAbs(name) {
		return "", fmt.Errorf("tarstream: absolute path in archive: %s", name)
	}
	if name == ".." || strings.HasPrefix(name, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("tarstream: path escapes destination: %s", name)
	}

	target := filepath.Join(destDir, name)
	absTarget, err := filepath.Abs(target)
	if err != nil {
		return "", fmt.Errorf("tarstream: resolve %s: %w", target, err)
	}
	absDest, err := filepath.Abs(destDir)
	if err != nil {
		return "", fmt.Errorf("tarstream: resolve %s: %w", destDir, err)
	}
	if absTarget != absDest && !strings.HasPrefix(absTarget, absDest+string(filepath.Separator)) {
		return "", fmt.Errorf("tarstream: path escapes destination: %s", name)
	}
	return target, nil
}

// validateSymlinkTarget rejects a symlink whose resolved target falls
// outside destDir.
func validateSymlinkTarget(destDir, symlinkPath, target string) error {
	if filepath.IsAbs(target) {
		return fmt.Errorf("tarstream: absolute symlink target: %s -> %s", symlinkPath, target)
	}
	resolved := filepath.Clean(filepath.Join(filepath.Dir(symlinkPath), target))
	absTarget, err := filepath.Abs(resolved)
	if err != nil {
		return fmt.Errorf("tarstream: resolve symlink target: %w", err)
	}
	absDest, err := filepath.Abs(destDir)
	if err != nil {
		return fmt.Errorf("tarstream: resolve %s: %w", destDir, err)
	}
	if absTarget != absDest && !strings.HasPrefix(absTarget, absDest+string(filepath.Separator)) {
		return fmt.Errorf("tarstream: symlink escapes destination: %s -> %s", symlinkPath, target)
	}
	return nil
}

// ToZip reads a tar stream from r and rewrites it as a zip archive to
// w, for clients that would rather unpack with a zip tool than tar.
// It streams entry-by-entry without buffering the whole archive.
func ToZip(r io.Reader, w io.Writer) error {
	tr := tar.NewReader(r)
	zw := zip.NewWriter(w)
	defer zw.Close()

	for {
		header, err := tr.Next()
		if err == io.EOF {
			return zw.Close()
		}
		if err != nil {
			return fmt.Errorf("tarstream: read header: %w", err)
		}
		if header.Typeflag != tar.TypeReg && header.Typeflag != tar.TypeDir {
			continue
		}

		name := filepath.ToSlash(header.Name)
		if header.Typeflag == tar.TypeDir && !strings.HasSuffix(name, "/") {
			name += "/"
		}

		fh := &zip.FileHeader{
			Name:     name,
			Modified: header.ModTime,
			Method:   zip.Deflate,
		}
		fh.SetMode(header.FileInfo().Mode())

		entry, err := zw.CreateHeader(fh)
		if err != nil {
			return fmt.Errorf("tarstream: zip entry %s: %w", name, err)
		}
		if header.Typeflag == tar.TypeReg {
			if _, err := io.Copy(entry, tr); err != nil {
				return fmt.Errorf("tarstream: zip write %s: %w", name, err)
			}
		}
	}
}

// Size returns the total size in bytes of all regular files under
// dir.
func Size(dir string) (int64, error) {
	var total int64
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.Mode().IsRegular() {
			total += info.Size()
		}
		return nil
	})
	return total, err
}
