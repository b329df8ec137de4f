package sdk

import "strings"

// State is a step of the SDK provisioning state machine.
type State int

const (
	StateUnchecked State = iota
	StateAbsent
	StateWrongVersion
	StateValid
	// StateInstallTriggered means the installer was downloaded and launched;
	// the caller should stop and have the user re-run after installing.
	StateInstallTriggered
)

func (s State) String() string {
	switch s {
	case StateUnchecked:
		return "unchecked"
	case StateAbsent:
		return "absent"
	case StateWrongVersion:
		return "wrong-version"
	case StateValid:
		return "valid"
	case StateInstallTriggered:
		return "install-triggered"
	}
	return "unknown"
}

// MarshalText renders the state by name in reports.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// IsValid reports whether info describes an installed SDK whose path
// contains required. This is plain substring containment: any path that
// embeds the token is accepted, whatever surrounds it.
func IsValid(info Info, required string) bool {
	if !info.Present {
		return false
	}
	return strings.Contains(info.Path, required)
}

// Classify maps a probe result to Absent, WrongVersion or Valid.
func Classify(info Info, required string) State {
	switch {
	case !info.Present:
		return StateAbsent
	case !IsValid(info, required):
		return StateWrongVersion
	default:
		return StateValid
	}
}
