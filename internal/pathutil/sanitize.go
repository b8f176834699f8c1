// Copyright 2024 Erraggy
// SPDX-License-Identifier: MIT

package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// SanitizeOutputPath returns the cleaned absolute form of an IR output path.
// The path must name a regular file or not exist yet, and its parent must be
// an existing directory. Symlinks are refused so a conversion cannot be
// redirected onto another file.
func SanitizeOutputPath(path string) (string, error) {
	abs, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("pathutil: cannot resolve absolute path: %w", err)
	}

	info, err := os.Lstat(abs)
	switch {
	case err == nil:
		if info.Mode()&os.ModeSymlink != 0 {
			return "", fmt.Errorf("pathutil: refusing to write to symlink: %s", abs)
		}
		if info.IsDir() {
			return "", fmt.Errorf("pathutil: output path is a directory: %s", abs)
		}
		return abs, nil
	case !os.IsNotExist(err):
		return "", fmt.Errorf("pathutil: cannot stat path: %w", err)
	}

	dir, err := os.Stat(filepath.Dir(abs))
	if err != nil {
		return "", fmt.Errorf("pathutil: output directory: %w", err)
	}
	if !dir.IsDir() {
		return "", fmt.Errorf("pathutil: output parent is not a directory: %s", filepath.Dir(abs))
	}
	return abs, nil
}
