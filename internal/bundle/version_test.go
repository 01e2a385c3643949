package bundle

import "testing"

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		name      string
		installed string
		current   string
		expected  int
		wantErr   bool
	}{
		{"older patch", "1.0.0", "1.0.1", -1, false},
		{"older minor", "1.0.0", "1.1.0", -1, false},
		{"equal", "1.2.3", "1.2.3", 0, false},
		{"newer", "1.1.0", "1.0.0", 1, false},
		{"v prefix installed", "v1.0.0", "1.0.1", -1, false},
		{"v prefix current", "1.0.0", "v1.0.1", -1, false},
		{"prerelease less than release", "1.0.0-beta", "1.0.0", -1, false},
		{"invalid installed", "notaversion", "1.0.0", 0, true},
		{"dev build", "1.0.0", "dev", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := CompareVersions(tt.installed, tt.current)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result != tt.expected {
				t.Errorf("CompareVersions(%q, %q) = %d, want %d", tt.installed, tt.current, result, tt.expected)
			}
		})
	}
}

func TestIsUpdateAvailable(t *testing.T) {
	tests := []struct {
		name      string
		installed string
		current   string
		expected  bool
	}{
		{"update available", "1.0.0", "1.1.0", true},
		{"up to date", "1.1.0", "1.1.0", false},
		{"installed ahead", "1.2.0", "1.1.0", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := IsUpdateAvailable(tt.installed, tt.current)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result != tt.expected {
				t.Errorf("IsUpdateAvailable(%q, %q) = %v, want %v", tt.installed, tt.current, result, tt.expected)
			}
		})
	}
}
