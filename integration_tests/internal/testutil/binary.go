package testutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// GetFateBinaryPath returns the absolute path to the fate binary for
// integration tests. It checks, in order:
// 1. Current directory (./fate)
// 2. Parent directory (../fate), where 'go build -o fate .' puts it
// 3. bin directory (../bin/fate)
func GetFateBinaryPath() (string, error) {
	candidates := []string{
		"fate",
		filepath.Join("..", "fate"),
		filepath.Join("..", "bin", "fate"),
	}

	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return filepath.Abs(candidate)
		}
	}
	return "", fmt.Errorf("fate binary not found in %v", candidates)
}
