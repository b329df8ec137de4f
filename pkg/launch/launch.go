// Package launch hands a downloaded installer to the desktop so the user
// can run it.
package launch

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Launcher starts an external program without waiting for it.
type Launcher interface {
	Launch(path string) error
}

// Opener launches files with the platform's default "open" action.
type Opener struct {
	// GOOS selects the open verb; runtime.GOOS when empty.
	GOOS string
	// Command builds the process; exec.Command when nil.
	Command func(name string, args ...string) *exec.Cmd
}

var _ Launcher = Opener{}

// Launch starts path detached. It returns once the process has been
// spawned; the installer's exit status is never inspected.
func (o Opener) Launch(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving absolute path for %q: %w", path, err)
	}

	name, args := OpenCommand(o.goos(), abs)
	command := o.Command
	if command == nil {
		command = exec.Command
	}

	cmd := command(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launching %s: %w", abs, err)
	}
	// Let the child outlive us.
	if err := cmd.Process.Release(); err != nil {
		return fmt.Errorf("releasing %s: %w", abs, err)
	}
	return nil
}

func (o Opener) goos() string {
	if o.GOOS != "" {
		return o.GOOS
	}
	return runtime.GOOS
}

// OpenCommand returns the program and arguments that open path on goos.
func OpenCommand(goos, path string) (string, []string) {
	switch goos {
	case "windows":
		// The empty argument is the window title consumed by start.
		return "cmd", []string{"/c", "start", "", path}
	case "darwin":
		return "open", []string{path}
	default:
		return "xdg-open", []string{path}
	}
}
