package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// FileName is the project-local config filename, read from the project root.
const FileName = "sdkprov.toml"

// VersionPlaceholder is replaced with RequiredVersion when expanding the
// download URL templates.
const VersionPlaceholder = "{version}"

// Config describes which SDK to look for and where its artifacts come from
// and go. Relative paths are resolved against the project root, and the
// installer, archive and marker paths against DependencyDir.
type Config struct {
	// Name is the human-readable SDK name used in diagnostics.
	Name string `toml:"name" mapstructure:"name"`
	// RequiredVersion must appear as a substring of the installed SDK path.
	RequiredVersion string `toml:"required_version" mapstructure:"required_version"`
	// EnvVar holds the installed SDK root path.
	EnvVar string `toml:"env_var" mapstructure:"env_var"`

	InstallerURL string `toml:"installer_url" mapstructure:"installer_url"`
	DebugLibsURL string `toml:"debug_libs_url" mapstructure:"debug_libs_url"`

	DependencyDir string `toml:"dependency_dir" mapstructure:"dependency_dir"`
	InstallerFile string `toml:"installer_file" mapstructure:"installer_file"`
	ArchiveFile   string `toml:"archive_file" mapstructure:"archive_file"`
	// MarkerFile is a file inside the extracted debug libs whose presence
	// means the archive has already been unpacked.
	MarkerFile string `toml:"marker_file" mapstructure:"marker_file"`

	// MaxEntryBytes caps the size of a single extracted archive entry.
	// Zero or negative disables the cap.
	MaxEntryBytes int64 `toml:"max_entry_bytes" mapstructure:"max_entry_bytes"`
	// DownloadTimeout bounds each HTTP download. Zero means no timeout.
	DownloadTimeout time.Duration `toml:"download_timeout,omitempty" mapstructure:"download_timeout"`
}

// Paths are the absolute filesystem locations derived from a Config and a
// project root.
type Paths struct {
	Root          string
	DependencyDir string
	InstallerPath string
	ArchivePath   string
	MarkerPath    string
}

// Default returns the built-in configuration for the Vulkan SDK.
func Default() *Config {
	return &Config{
		Name:            "Vulkan",
		RequiredVersion: "1.2.170.0",
		EnvVar:          "VULKAN_SDK",
		InstallerURL:    "https://sdk.lunarg.com/sdk/download/{version}/windows/VulkanSDK-{version}-Installer.exe",
		DebugLibsURL:    "https://sdk.lunarg.com/sdk/download/{version}/windows/VulkanSDK-{version}-DebugLibs.zip",
		DependencyDir:   "Dependencies/VulkanSDK",
		InstallerFile:   "VulkanSDK.exe",
		ArchiveFile:     "VulkanDebugLibs.zip",
		MarkerFile:      "Lib/shaderc_sharedd.lib",
		MaxEntryBytes:   1 << 30,
	}
}

// InstallerDownloadURL returns InstallerURL with the version placeholder
// expanded.
func (c *Config) InstallerDownloadURL() string {
	return strings.ReplaceAll(c.InstallerURL, VersionPlaceholder, c.RequiredVersion)
}

// DebugLibsDownloadURL returns DebugLibsURL with the version placeholder
// expanded.
func (c *Config) DebugLibsDownloadURL() string {
	return strings.ReplaceAll(c.DebugLibsURL, VersionPlaceholder, c.RequiredVersion)
}

// Paths resolves the configured locations against root.
func (c *Config) Paths(root string) Paths {
	dep := filepath.Join(root, filepath.FromSlash(c.DependencyDir))
	return Paths{
		Root:          root,
		DependencyDir: dep,
		InstallerPath: filepath.Join(dep, filepath.FromSlash(c.InstallerFile)),
		ArchivePath:   filepath.Join(dep, filepath.FromSlash(c.ArchiveFile)),
		MarkerPath:    filepath.Join(dep, filepath.FromSlash(c.MarkerFile)),
	}
}

// Validate reports every missing or unsafe field at once.
func (c *Config) Validate() error {
	var errs []error

	required := []struct {
		key, value string
	}{
		{"name", c.Name},
		{"required_version", c.RequiredVersion},
		{"env_var", c.EnvVar},
		{"installer_url", c.InstallerURL},
		{"debug_libs_url", c.DebugLibsURL},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			errs = append(errs, fmt.Errorf("%s is required", f.key))
		}
	}

	relative := []struct {
		key, value string
	}{
		{"dependency_dir", c.DependencyDir},
		{"installer_file", c.InstallerFile},
		{"archive_file", c.ArchiveFile},
		{"marker_file", c.MarkerFile},
	}
	for _, f := range relative {
		switch {
		case strings.TrimSpace(f.value) == "":
			errs = append(errs, fmt.Errorf("%s is required", f.key))
		case !filepath.IsLocal(filepath.FromSlash(f.value)):
			errs = append(errs, fmt.Errorf("%s %q must be a relative path that stays inside its parent", f.key, f.value))
		}
	}

	if c.InstallerFile != "" && c.InstallerFile == c.ArchiveFile {
		errs = append(errs, fmt.Errorf("installer_file and archive_file must differ"))
	}

	return errors.Join(errs...)
}

func UnmarshalConfig(data []byte) (*Config, error) {
	cfg := &Config{}
	err := toml.Unmarshal(data, cfg)

	return cfg, err
}

func (c *Config) Marshal() ([]byte, error) {
	return toml.Marshal(c)
}

// SaveFile writes cfg as TOML to path.
func SaveFile(path string, cfg *Config) error {
	data, err := cfg.Marshal()
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
