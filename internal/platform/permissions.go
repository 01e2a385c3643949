package platform

import (
	"io/fs"
	"os"
	"runtime"
)

// ExecMode is applied to archive members that carry an executable bit.
const ExecMode fs.FileMode = 0755

// Chmod sets file permissions. On Windows this is a no-op.
func Chmod(path string, mode fs.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}

// IsExecutable reports whether any execute bit is set in mode.
func IsExecutable(mode fs.FileMode) bool {
	return mode&0111 != 0
}

// MakeExecutable marks path as executable when mode says it should be.
func MakeExecutable(path string, mode fs.FileMode) error {
	if !IsExecutable(mode) {
		return nil
	}
	return Chmod(path, ExecMode)
}
