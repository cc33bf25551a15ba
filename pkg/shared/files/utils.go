package files

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// ExpandPath resolves paths that include a tilde (~) to the user's home
// directory.
func ExpandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(homeDir, path[2:]), nil
	}
	return path, nil
}

// ValidateDir checks that the given path is an existing directory.
func ValidateDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("path stat error: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path %q is not a directory", path)
	}
	return nil
}

// ResolveSourceFolder expands and absolutizes a source folder path, falling
// back to the input on resolution errors.
func ResolveSourceFolder(path string, logger hclog.Logger) string {
	expanded, err := ExpandPath(path)
	if err != nil {
		logger.Warn("failed to expand source folder", "path", path, "error", err)
		expanded = path
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		logger.Warn("failed to resolve source folder", "path", expanded, "error", err)
		return expanded
	}
	return abs
}
