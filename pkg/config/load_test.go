package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	tests := map[string]struct {
		global    string
		local     string
		env       map[string]string
		overrides map[string]any
		want      func(t *testing.T, cfg *Config)
	}{
		"no config files returns defaults": {
			want: func(t *testing.T, cfg *Config) {
				d := Default()
				if cfg.RequiredVersion != d.RequiredVersion {
					t.Errorf("RequiredVersion = %q, want %q", cfg.RequiredVersion, d.RequiredVersion)
				}
				if cfg.EnvVar != d.EnvVar {
					t.Errorf("EnvVar = %q, want %q", cfg.EnvVar, d.EnvVar)
				}
				if cfg.MaxEntryBytes != d.MaxEntryBytes {
					t.Errorf("MaxEntryBytes = %d, want %d", cfg.MaxEntryBytes, d.MaxEntryBytes)
				}
			},
		},
		"local merges over global": {
			global: "required_version = \"1.3.0.0\"\nenv_var = \"GLOBAL_SDK\"\n",
			local:  "required_version = \"1.4.0.0\"\n",
			want: func(t *testing.T, cfg *Config) {
				if cfg.RequiredVersion != "1.4.0.0" {
					t.Errorf("RequiredVersion = %q, want %q", cfg.RequiredVersion, "1.4.0.0")
				}
				if cfg.EnvVar != "GLOBAL_SDK" {
					t.Errorf("EnvVar = %q, want %q", cfg.EnvVar, "GLOBAL_SDK")
				}
			},
		},
		"environment overrides files": {
			local: "required_version = \"1.4.0.0\"\n",
			env:   map[string]string{"SDKPROV_REQUIRED_VERSION": "1.5.0.0"},
			want: func(t *testing.T, cfg *Config) {
				if cfg.RequiredVersion != "1.5.0.0" {
					t.Errorf("RequiredVersion = %q, want %q", cfg.RequiredVersion, "1.5.0.0")
				}
			},
		},
		"overrides win over everything": {
			local:     "required_version = \"1.4.0.0\"\n",
			env:       map[string]string{"SDKPROV_REQUIRED_VERSION": "1.5.0.0"},
			overrides: map[string]any{"required_version": "1.6.0.0"},
			want: func(t *testing.T, cfg *Config) {
				if cfg.RequiredVersion != "1.6.0.0" {
					t.Errorf("RequiredVersion = %q, want %q", cfg.RequiredVersion, "1.6.0.0")
				}
			},
		},
		"download timeout parses from string": {
			local: "download_timeout = \"45s\"\n",
			want: func(t *testing.T, cfg *Config) {
				if cfg.DownloadTimeout != 45*time.Second {
					t.Errorf("DownloadTimeout = %v, want 45s", cfg.DownloadTimeout)
				}
			},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			globalPath := filepath.Join(dir, "global-config.toml")
			localPath := filepath.Join(dir, FileName)

			if tc.global != "" {
				writeFile(t, globalPath, tc.global)
			}
			if tc.local != "" {
				writeFile(t, localPath, tc.local)
			}
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			cfg, err := load(globalPath, localPath, tc.overrides)
			if err != nil {
				t.Fatalf("load() error = %v", err)
			}
			tc.want(t, cfg)
		})
	}
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	localPath := filepath.Join(dir, FileName)
	writeFile(t, localPath, "dependency_dir = \"../outside\"\n")

	_, err := load(filepath.Join(dir, "missing.toml"), localPath, nil)
	if err == nil {
		t.Fatal("load() error = nil, want error for escaping dependency_dir")
	}
	if !strings.Contains(err.Error(), "dependency_dir") {
		t.Errorf("error = %q, want mention of dependency_dir", err)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	localPath := filepath.Join(dir, FileName)
	writeFile(t, localPath, "required_version = \n")

	if _, err := load(filepath.Join(dir, "missing.toml"), localPath, nil); err == nil {
		t.Fatal("load() error = nil, want parse error")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}
