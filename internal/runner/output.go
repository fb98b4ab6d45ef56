package runner

import (
	"fmt"
	"os"
)

// suppressOutput points os.Stdout and os.Stderr at the null device and returns
// the function that puts the original streams back. Callers defer the
// returned function so the streams are restored on every exit path.
func suppressOutput() (func(), error) {
	devNull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", os.DevNull, err)
	}

	stdout, stderr := os.Stdout, os.Stderr
	os.Stdout, os.Stderr = devNull, devNull

	return func() {
		os.Stdout, os.Stderr = stdout, stderr
		devNull.Close()
	}, nil
}
