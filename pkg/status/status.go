// Package status reports the provisioning state of a project without
// changing anything on disk.
package status

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"sigs.k8s.io/yaml"

	"github.com/agentpkg/sdkprov/pkg/config"
	"github.com/agentpkg/sdkprov/pkg/sdk"
	"github.com/agentpkg/sdkprov/pkg/store"
)

type Report struct {
	SDK       SDKReport       `json:"sdk"`
	DebugLibs DebugLibsReport `json:"debugLibs"`
}

type SDKReport struct {
	Name     string    `json:"name"`
	EnvVar   string    `json:"envVar"`
	Path     string    `json:"path,omitempty"`
	Present  bool      `json:"present"`
	Required string    `json:"requiredVersion"`
	State    sdk.State `json:"state"`
}

type DebugLibsReport struct {
	Dir            string `json:"dir"`
	Marker         string `json:"marker"`
	Archive        string `json:"archive"`
	Extracted      bool   `json:"extracted"`
	ArchivePresent bool   `json:"archivePresent"`
}

// OK reports whether nothing is left to provision.
func (r Report) OK() bool {
	return r.SDK.State == sdk.StateValid && r.DebugLibs.Extracted
}

// Collect probes the SDK and inspects the dependency directory. st must be
// rooted at the dependency directory.
func Collect(cfg *config.Config, probe *sdk.Probe, st store.Store) (Report, error) {
	info := probe.Probe()
	r := Report{
		SDK: SDKReport{
			Name:     cfg.Name,
			EnvVar:   probe.EnvVar,
			Path:     info.Path,
			Present:  info.Present,
			Required: cfg.RequiredVersion,
			State:    sdk.Classify(info, cfg.RequiredVersion),
		},
		DebugLibs: DebugLibsReport{
			Dir:     st.Root(),
			Marker:  st.Path(cfg.MarkerFile),
			Archive: st.Path(cfg.ArchiveFile),
		},
	}

	var err error
	if r.DebugLibs.Extracted, err = st.Exists(cfg.MarkerFile); err != nil {
		return Report{}, fmt.Errorf("checking %s: %w", r.DebugLibs.Marker, err)
	}
	if r.DebugLibs.ArchivePresent, err = st.Exists(cfg.ArchiveFile); err != nil {
		return Report{}, fmt.Errorf("checking %s: %w", r.DebugLibs.Archive, err)
	}
	return r, nil
}

type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatYAML, FormatJSON:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, yaml or json)", s)
	}
}

// Write renders r to w in the given format.
func Write(w io.Writer, r Report, format Format) error {
	switch format {
	case FormatYAML:
		data, err := yaml.Marshal(r)
		if err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
		_, err = w.Write(data)
		return err
	case FormatJSON:
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	case FormatText, "":
		writeText(w, r)
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func writeText(w io.Writer, r Report) {
	sdkLine := fmt.Sprintf("%s SDK (%s)", r.SDK.Name, r.SDK.EnvVar)
	switch r.SDK.State {
	case sdk.StateValid:
		line(w, color.GreenString("[OK]  "), sdkLine, fmt.Sprintf("%s at %s", r.SDK.Required, r.SDK.Path))
	case sdk.StateWrongVersion:
		line(w, color.YellowString("[WARN]"), sdkLine, fmt.Sprintf("%s does not match %s", r.SDK.Path, r.SDK.Required))
	default:
		line(w, color.RedString("[FAIL]"), sdkLine, "not installed")
	}

	libsLine := fmt.Sprintf("%s SDK debug libs", r.SDK.Name)
	switch {
	case r.DebugLibs.Extracted:
		line(w, color.GreenString("[OK]  "), libsLine, r.DebugLibs.Dir)
	case r.DebugLibs.ArchivePresent:
		line(w, color.YellowString("[WARN]"), libsLine, "downloaded but not extracted: "+r.DebugLibs.Archive)
	default:
		line(w, color.RedString("[FAIL]"), libsLine, "missing "+r.DebugLibs.Marker)
	}
}

func line(w io.Writer, label, name, detail string) {
	_, _ = fmt.Fprintf(w, "%s %-28s %s\n", label, name, detail)
}
