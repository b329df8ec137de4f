package project

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/agentpkg/sdkprov/pkg/config"
)

// ErrExists is returned by Init when the project already has a config file.
var ErrExists = errors.New("config already exists")

// Init writes cfg to sdkprov.toml in dir. A nil cfg writes the defaults.
// Returns ErrExists if the file is already there.
func Init(dir string, cfg *config.Config) (string, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return "", fmt.Errorf("invalid config: %w", err)
	}

	target := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(target); err == nil {
		return "", fmt.Errorf("%s: %w", config.FileName, ErrExists)
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("checking %s: %w", target, err)
	}

	if err := config.SaveFile(target, cfg); err != nil {
		return "", err
	}
	return target, nil
}

// GitignoreEntries returns the paths sdkprov writes into a project, in
// .gitignore form.
func GitignoreEntries(cfg *config.Config) []string {
	dep := path.Clean(filepath.ToSlash(cfg.DependencyDir))
	return []string{dep + "/"}
}

// EnsureGitignore appends each entry that dir/.gitignore does not already
// list. Entries match with or without a trailing slash. Returns the entries
// that were added.
func EnsureGitignore(dir string, entries []string) ([]string, error) {
	target := filepath.Join(dir, ".gitignore")

	existing, err := os.ReadFile(target)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading %s: %w", target, err)
	}

	present := make(map[string]bool)
	for _, line := range strings.Split(string(existing), "\n") {
		present[normalize(line)] = true
	}

	var missing []string
	for _, entry := range entries {
		key := normalize(entry)
		if key == "" || present[key] {
			continue
		}
		present[key] = true
		missing = append(missing, entry)
	}
	if len(missing) == 0 {
		return nil, nil
	}

	var b strings.Builder
	if len(existing) > 0 && existing[len(existing)-1] != '\n' {
		b.WriteByte('\n')
	}
	for _, entry := range missing {
		b.WriteString(entry)
		b.WriteByte('\n')
	}

	f, err := os.OpenFile(target, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", target, err)
	}
	if _, err := f.WriteString(b.String()); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("writing %s: %w", target, err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("closing %s: %w", target, err)
	}

	return missing, nil
}

func normalize(line string) string {
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, "/")
	return strings.TrimSuffix(line, "/")
}
