//go:build !unix

package main

import "os"

// redirectStdIO on non-Unix platforms swaps the package-level file handles.
// This misses runtime-level stderr output (panic traces bypass os.Stderr),
// but the binary only targets Linux framebuffers anyway; this variant exists
// to keep cross-platform builds working.
func redirectStdIO(path string) error {
	if path == "" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	os.Stdout = f
	os.Stderr = f
	return nil
}
