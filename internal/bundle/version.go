package bundle

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// CompareVersions compares two version strings using semver and returns -1,
// 0 or 1 as installed is older than, equal to, or newer than current. A
// leading "v" is accepted on either side.
func CompareVersions(installed, current string) (int, error) {
	iv, err := parseSemver(installed)
	if err != nil {
		return 0, fmt.Errorf("parsing installed version %q: %w", installed, err)
	}
	cv, err := parseSemver(current)
	if err != nil {
		return 0, fmt.Errorf("parsing current version %q: %w", current, err)
	}
	return iv.Compare(cv), nil
}

// IsUpdateAvailable reports whether current is newer than installed.
func IsUpdateAvailable(installed, current string) (bool, error) {
	cmp, err := CompareVersions(installed, current)
	if err != nil {
		return false, err
	}
	return cmp == -1, nil
}

func parseSemver(version string) (*semver.Version, error) {
	return semver.NewVersion(strings.TrimPrefix(version, "v"))
}
