package sdk

import "os"

// Info is a snapshot of what the environment says about the installed SDK.
// The installed path embeds the SDK version, so it doubles as the version
// token.
type Info struct {
	// Path is the SDK root read from the environment. Empty when !Present.
	Path string
	// Present is false when the environment variable is unset or empty.
	Present bool
}

// LookupEnvFunc matches os.LookupEnv.
type LookupEnvFunc func(key string) (string, bool)

// Probe reads the installed SDK location from a single environment
// variable.
type Probe struct {
	EnvVar    string
	LookupEnv LookupEnvFunc
}

// NewProbe returns a Probe reading envVar through lookup. A nil lookup
// reads the process environment.
func NewProbe(envVar string, lookup LookupEnvFunc) *Probe {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return &Probe{EnvVar: envVar, LookupEnv: lookup}
}

// Probe returns a fresh Info on every call; results are never cached.
func (p *Probe) Probe() Info {
	lookup := p.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}

	value, ok := lookup(p.EnvVar)
	if !ok || value == "" {
		return Info{}
	}
	return Info{Path: value, Present: true}
}

// MapEnv returns a LookupEnvFunc backed by a fixed map.
func MapEnv(env map[string]string) LookupEnvFunc {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}
