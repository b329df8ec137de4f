package extract

import (
	"archive/zip"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeZip builds a zip at path from name -> content. Names ending in "/"
// become directory entries.
func writeZip(t *testing.T, path string, entries map[string]string) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating %s: %v", path, err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for name, content := range entries {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("adding %s: %v", name, err)
		}
		if !strings.HasSuffix(name, "/") {
			if _, err := w.Write([]byte(content)); err != nil {
				t.Fatalf("writing %s: %v", name, err)
			}
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("closing zip: %v", err)
	}
}

func TestZip(t *testing.T) {
	tests := map[string]struct {
		entries   map[string]string
		max       int64
		wantFiles map[string]string
		wantCount int
		wantErr   error
	}{
		"nested files": {
			entries: map[string]string{
				"Lib/":                    "",
				"Lib/shaderc_sharedd.lib": "debug lib",
				"Bin/glslangValidator":    "tool",
			},
			wantFiles: map[string]string{
				"Lib/shaderc_sharedd.lib": "debug lib",
				"Bin/glslangValidator":    "tool",
			},
			wantCount: 2,
		},
		"file without directory entry": {
			entries: map[string]string{
				"Lib/deep/x.lib": "x",
			},
			wantFiles: map[string]string{"Lib/deep/x.lib": "x"},
			wantCount: 1,
		},
		"parent traversal is rejected": {
			entries: map[string]string{"../evil.txt": "x"},
			wantErr: ErrUnsafePath,
		},
		"absolute entry is rejected": {
			entries: map[string]string{"/etc/evil": "x"},
			wantErr: ErrUnsafePath,
		},
		"entry over limit is rejected": {
			entries: map[string]string{"Lib/big.lib": strings.Repeat("a", 64)},
			max:     16,
			wantErr: ErrEntryTooLarge,
		},
		"entry at limit is fine": {
			entries:   map[string]string{"Lib/ok.lib": strings.Repeat("a", 16)},
			max:       16,
			wantFiles: map[string]string{"Lib/ok.lib": strings.Repeat("a", 16)},
			wantCount: 1,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			tmp := t.TempDir()
			archive := filepath.Join(tmp, "VulkanDebugLibs.zip")
			writeZip(t, archive, tc.entries)
			dest := filepath.Join(tmp, "Dependencies", "VulkanSDK")

			n, err := Zip(archive, dest, tc.max)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("Zip() error = %v, want %v", err, tc.wantErr)
				}
				if _, statErr := os.Stat(filepath.Join(tmp, "Dependencies", "evil.txt")); statErr == nil {
					t.Error("entry escaped the destination directory")
				}
				return
			}
			if err != nil {
				t.Fatalf("Zip() error = %v", err)
			}
			if n != tc.wantCount {
				t.Errorf("Zip() wrote %d files, want %d", n, tc.wantCount)
			}

			for rel, want := range tc.wantFiles {
				got, err := os.ReadFile(filepath.Join(dest, filepath.FromSlash(rel)))
				if err != nil {
					t.Errorf("reading %s: %v", rel, err)
					continue
				}
				if string(got) != want {
					t.Errorf("%s = %q, want %q", rel, got, want)
				}
			}
		})
	}
}

func TestZipOverwritesExistingFiles(t *testing.T) {
	tmp := t.TempDir()
	archive := filepath.Join(tmp, "libs.zip")
	writeZip(t, archive, map[string]string{"Lib/a.lib": "new"})

	dest := filepath.Join(tmp, "out")
	if err := os.MkdirAll(filepath.Join(dest, "Lib"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dest, "Lib", "a.lib"), []byte("old and longer"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Zip(archive, dest, 0); err != nil {
		t.Fatalf("Zip() error = %v", err)
	}

	got, err := os.ReadFile(filepath.Join(dest, "Lib", "a.lib"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "new" {
		t.Errorf("a.lib = %q, want %q", got, "new")
	}
}

func TestZipMissingArchive(t *testing.T) {
	tmp := t.TempDir()
	if _, err := Zip(filepath.Join(tmp, "missing.zip"), tmp, 0); err == nil {
		t.Fatal("Zip() error = nil, want error for missing archive")
	}
}

func TestZipCorruptArchive(t *testing.T) {
	tmp := t.TempDir()
	archive := filepath.Join(tmp, "corrupt.zip")
	if err := os.WriteFile(archive, []byte("not a zip"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Zip(archive, filepath.Join(tmp, "out"), 0); err == nil {
		t.Fatal("Zip() error = nil, want error for corrupt archive")
	}
}
