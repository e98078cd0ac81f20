// Package workflow orchestrates batch processing.
package workflow

import (
	"fmt"
	"os"
	"path/filepath"
)

// Private variables (alphabetical)

// projectSubdirs is the fixed folder skeleton every project root carries.
// Downstream tooling assumes these exact paths exist when moving rendered
// files, so the list must not drift.
var projectSubdirs = []string{
	"_AME",
	"_Audio/Music",
	"_Audio/SFX",
	"_Audio/Source",
	"_Audio/VO",
	"_Copy",
	"_Footage/Images",
	"_Footage/PSD",
	"_Footage/Vector",
	"_Footage/Video/Client",
	"_Footage/Video/Quality Score",
	"_Footage/Video/Rendered",
	"_Footage/Video/Stock",
	"_Thumbnails",
}

// Public functions (alphabetical)

// CreateProjectStructure creates the standard project folder skeleton under
// root, which is itself created if missing. Existing directories are left
// untouched.
func CreateProjectStructure(root string) error {
	for _, subdir := range projectSubdirs {
		path := filepath.Join(root, filepath.FromSlash(subdir))
		if err := os.MkdirAll(path, 0o755); err != nil {
			return fmt.Errorf("workflow: creating %s: %w", path, err)
		}
	}
	return nil
}

// RenderedDir returns the folder rendered outputs are written into.
func RenderedDir(root string) string {
	return filepath.Join(root, "_Footage", "Video", "Rendered")
}
