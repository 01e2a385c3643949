package branding

import "testing"

func TestEmbeddedValues(t *testing.T) {
	if got := CLIName(); got != "aamad" {
		t.Errorf("CLIName() = %q, want %q", got, "aamad")
	}
	if got := HomeDir(); got != ".aamad" {
		t.Errorf("HomeDir() = %q, want %q", got, ".aamad")
	}
}

func TestEnvVar(t *testing.T) {
	if got := EnvVar("ide"); got != "AAMAD_IDE" {
		t.Errorf("EnvVar(\"ide\") = %q, want %q", got, "AAMAD_IDE")
	}
}
