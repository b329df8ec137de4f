package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix namespaces environment overrides, e.g. SDKPROV_REQUIRED_VERSION.
	EnvPrefix = "SDKPROV"

	globalDirName    = ".sdkprov"
	globalConfigFile = "config.toml"
)

// Load resolves configuration using Viper's merge semantics, lowest to
// highest priority: built-in defaults, ~/.sdkprov/config.toml,
// <root>/sdkprov.toml, SDKPROV_* environment variables, then overrides
// (typically CLI flags keyed by config key).
func Load(root string, overrides map[string]any) (*Config, error) {
	home, err := homedir.Dir()
	if err != nil {
		return nil, fmt.Errorf("determining home directory: %w", err)
	}
	globalPath := filepath.Join(home, globalDirName, globalConfigFile)
	return load(globalPath, filepath.Join(root, FileName), overrides)
}

// load is the internal implementation that accepts explicit paths,
// making it testable without touching the real home directory.
func load(globalPath, localPath string, overrides map[string]any) (*Config, error) {
	v := viper.New()
	v.SetConfigType("toml")
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	for _, path := range []string{globalPath, localPath} {
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("checking %s: %w", path, err)
		}
		v.SetConfigFile(path)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
	}

	for key, value := range overrides {
		v.Set(key, value)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// setDefaults registers every key so AutomaticEnv can see it during
// Unmarshal.
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("name", d.Name)
	v.SetDefault("required_version", d.RequiredVersion)
	v.SetDefault("env_var", d.EnvVar)
	v.SetDefault("installer_url", d.InstallerURL)
	v.SetDefault("debug_libs_url", d.DebugLibsURL)
	v.SetDefault("dependency_dir", d.DependencyDir)
	v.SetDefault("installer_file", d.InstallerFile)
	v.SetDefault("archive_file", d.ArchiveFile)
	v.SetDefault("marker_file", d.MarkerFile)
	v.SetDefault("max_entry_bytes", d.MaxEntryBytes)
	v.SetDefault("download_timeout", d.DownloadTimeout)
}
