package sdk

import "testing"

const required = "1.2.170.0"

func TestIsValid(t *testing.T) {
	tests := map[string]struct {
		info Info
		want bool
	}{
		"absent": {
			info: Info{},
			want: false,
		},
		"exact version directory": {
			info: Info{Path: "C:/VulkanSDK/1.2.170.0", Present: true},
			want: true,
		},
		"token with suffix": {
			info: Info{Path: "C:/VulkanSDK/1.2.170.0-beta", Present: true},
			want: true,
		},
		"token with prefix": {
			info: Info{Path: "/opt/vulkan-x1.2.170.0", Present: true},
			want: true,
		},
		"token embedded in a longer version": {
			info: Info{Path: "C:/VulkanSDK/11.2.170.01", Present: true},
			want: true,
		},
		"different version": {
			info: Info{Path: "C:/SDK/9.9.9.9", Present: true},
			want: false,
		},
		"newer version is still rejected": {
			info: Info{Path: "C:/VulkanSDK/1.3.204.1", Present: true},
			want: false,
		},
		"partial token": {
			info: Info{Path: "C:/VulkanSDK/1.2.170", Present: true},
			want: false,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := IsValid(tc.info, required); got != tc.want {
				t.Errorf("IsValid(%+v, %q) = %v, want %v", tc.info, required, got, tc.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := map[string]struct {
		info Info
		want State
	}{
		"absent":        {info: Info{}, want: StateAbsent},
		"wrong version": {info: Info{Path: "C:/SDK/9.9.9.9", Present: true}, want: StateWrongVersion},
		"valid":         {info: Info{Path: "C:/VulkanSDK/1.2.170.0", Present: true}, want: StateValid},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := Classify(tc.info, required); got != tc.want {
				t.Errorf("Classify() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestStateString(t *testing.T) {
	tests := map[State]string{
		StateUnchecked:        "unchecked",
		StateAbsent:           "absent",
		StateWrongVersion:     "wrong-version",
		StateValid:            "valid",
		StateInstallTriggered: "install-triggered",
		State(99):             "unknown",
	}

	for state, want := range tests {
		if got := state.String(); got != want {
			t.Errorf("State(%d).String() = %q, want %q", int(state), got, want)
		}
	}
}
