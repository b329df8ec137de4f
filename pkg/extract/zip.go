// Package extract unpacks downloaded archives into a directory.
package extract

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrUnsafePath is returned for entries that would land outside the
	// destination or that are symlinks.
	ErrUnsafePath = errors.New("unsafe archive entry")
	// ErrEntryTooLarge is returned when an entry exceeds the size cap.
	ErrEntryTooLarge = errors.New("archive entry too large")
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Zip extracts every entry of the zip archive at archivePath into destDir,
// creating directories as needed and overwriting existing files. Entries
// larger than maxEntryBytes are rejected; maxEntryBytes <= 0 disables the
// cap. It returns the number of files written.
func Zip(archivePath, destDir string, maxEntryBytes int64) (int, error) {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return 0, fmt.Errorf("opening %s: %w", archivePath, err)
	}
	defer func() { _ = r.Close() }()

	if err := os.MkdirAll(destDir, dirPerm); err != nil {
		return 0, fmt.Errorf("creating %s: %w", destDir, err)
	}

	written := 0
	for _, f := range r.File {
		target, err := entryPath(destDir, f.Name)
		if err != nil {
			return written, err
		}

		mode := f.Mode()
		switch {
		case mode&os.ModeSymlink != 0:
			return written, fmt.Errorf("%w: %s is a symlink", ErrUnsafePath, f.Name)
		case mode.IsDir() || strings.HasSuffix(f.Name, "/"):
			if err := os.MkdirAll(target, dirPerm); err != nil {
				return written, fmt.Errorf("creating %s: %w", target, err)
			}
			continue
		}

		if err := extractFile(f, target, maxEntryBytes); err != nil {
			return written, err
		}
		written++
	}

	return written, nil
}

// entryPath maps an archive entry name to a path under destDir.
func entryPath(destDir, name string) (string, error) {
	rel := filepath.FromSlash(strings.TrimSuffix(name, "/"))
	if rel == "" || !filepath.IsLocal(rel) {
		return "", fmt.Errorf("%w: %q", ErrUnsafePath, name)
	}
	return filepath.Join(destDir, rel), nil
}

func extractFile(f *zip.File, target string, maxEntryBytes int64) (err error) {
	if maxEntryBytes > 0 && f.UncompressedSize64 > uint64(maxEntryBytes) {
		return fmt.Errorf("%w: %s is %d bytes (limit %d)", ErrEntryTooLarge, f.Name, f.UncompressedSize64, maxEntryBytes)
	}

	if err := os.MkdirAll(filepath.Dir(target), dirPerm); err != nil {
		return fmt.Errorf("creating directory for %s: %w", target, err)
	}

	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("opening entry %s: %w", f.Name, err)
	}
	defer func() { _ = rc.Close() }()

	perm := f.Mode().Perm()
	if perm == 0 {
		perm = filePerm
	}

	out, err := os.OpenFile(target, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, perm)
	if err != nil {
		return fmt.Errorf("creating %s: %w", target, err)
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", target, closeErr)
		}
	}()

	// The header size can lie; bound the copy as well.
	src := io.Reader(rc)
	if maxEntryBytes > 0 {
		src = io.LimitReader(rc, maxEntryBytes+1)
	}
	n, err := io.Copy(out, src)
	if err != nil {
		return fmt.Errorf("extracting %s: %w", f.Name, err)
	}
	if maxEntryBytes > 0 && n > maxEntryBytes {
		return fmt.Errorf("%w: %s exceeds %d bytes", ErrEntryTooLarge, f.Name, maxEntryBytes)
	}

	return nil
}
