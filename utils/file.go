package utils

import (
	"fmt"
	"io"
	"os"
)

// SaveToTempFile writes r to a fresh file under dir and returns the file
// path together with a cleanup function that removes it. Callers must run
// cleanup on every exit path; downloaded payloads are never retained.
func SaveToTempFile(r io.Reader, dir, pattern string) (string, func(), error) {
	// Create the directory if it doesn't exist
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", nil, fmt.Errorf("failed to create temp directory: %v", err)
	}

	tmp, err := os.CreateTemp(dir, pattern)
	if err != nil {
		return "", nil, fmt.Errorf("failed to create temp file: %v", err)
	}

	cleanup := func() {
		os.Remove(tmp.Name())
	}

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		cleanup()
		return "", nil, fmt.Errorf("failed to write temp file: %v", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("failed to close temp file: %v", err)
	}

	return tmp.Name(), cleanup, nil
}
