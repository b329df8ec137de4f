package launch

import (
	"os/exec"
	"path/filepath"
	"reflect"
	"testing"
)

func TestOpenCommand(t *testing.T) {
	const path = "/work/Dependencies/VulkanSDK/VulkanSDK.exe"

	tests := map[string]struct {
		goos     string
		wantName string
		wantArgs []string
	}{
		"windows": {
			goos:     "windows",
			wantName: "cmd",
			wantArgs: []string{"/c", "start", "", path},
		},
		"darwin": {
			goos:     "darwin",
			wantName: "open",
			wantArgs: []string{path},
		},
		"linux": {
			goos:     "linux",
			wantName: "xdg-open",
			wantArgs: []string{path},
		},
		"other unix": {
			goos:     "freebsd",
			wantName: "xdg-open",
			wantArgs: []string{path},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			gotName, gotArgs := OpenCommand(tc.goos, path)
			if gotName != tc.wantName {
				t.Errorf("name = %q, want %q", gotName, tc.wantName)
			}
			if !reflect.DeepEqual(gotArgs, tc.wantArgs) {
				t.Errorf("args = %q, want %q", gotArgs, tc.wantArgs)
			}
		})
	}
}

func TestOpenerLaunchUsesAbsolutePath(t *testing.T) {
	var gotName string
	var gotArgs []string

	o := Opener{
		GOOS: "darwin",
		Command: func(name string, args ...string) *exec.Cmd {
			gotName, gotArgs = name, args
			// A harmless process that exists on every unix test host.
			return exec.Command("true")
		},
	}

	if err := o.Launch("VulkanSDK.exe"); err != nil {
		t.Fatalf("Launch() error = %v", err)
	}

	if gotName != "open" {
		t.Errorf("name = %q, want %q", gotName, "open")
	}
	if len(gotArgs) != 1 || !filepath.IsAbs(gotArgs[0]) {
		t.Errorf("args = %q, want a single absolute path", gotArgs)
	}
}

func TestOpenerLaunchStartFailure(t *testing.T) {
	o := Opener{
		GOOS: "linux",
		Command: func(name string, args ...string) *exec.Cmd {
			return exec.Command(filepath.Join(t.TempDir(), "no-such-binary"))
		},
	}

	if err := o.Launch("VulkanSDK.exe"); err == nil {
		t.Fatal("Launch() error = nil, want error when the process cannot start")
	}
}
