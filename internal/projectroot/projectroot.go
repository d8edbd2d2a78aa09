// SPDX-License-Identifier: AGPL-3.0-or-later

// Package projectroot locates the enclosing git repository root.
package projectroot

import (
	"fmt"
	"os"
	"path/filepath"
)

// Find walks up from start until it reaches a directory containing a .git
// entry. The entry may be a directory or, in linked worktrees, a file.
func Find(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", start, err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no git repository found at or above %s", start)
		}
		dir = parent
	}
}
