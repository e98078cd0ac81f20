// Package naming implements the naming conventions used across the ad
// production pipeline: version-letter extraction from client filenames,
// project-information parsing from Drive folder names, project-name cleaning,
// and standardized output-name generation.
package naming

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Private variables (alphabetical)

// versionPatterns are the version-letter extraction patterns in priority
// order. Only A-D are valid version letters: the test-number portion of a
// name can itself end in another letter, so the accepted set is deliberately
// restricted rather than matching any trailing letter.
var versionPatterns = []*regexp.Regexp{
	// Six-digit date followed by a version letter (_250416D)
	regexp.MustCompile(`_(\d{6})([A-D])(?:\.mp4|\.mov|_|$)`),
	// Eight-digit date followed by a version letter (_20240408A)
	regexp.MustCompile(`_(\d{8})([A-D])(?:\.mp4|\.mov|_|$)`),
	// Ad type and test number followed by a version letter (STOR-3133D)
	regexp.MustCompile(`(?:VTD|STOR|ACT)-(\d+)([A-D])(?:\.mp4|\.mov|_|$)`),
	// Any number followed by a version letter
	regexp.MustCompile(`(\d+)([A-D])(?:\.mp4|\.mov|_|$)`),
}

// Public functions (alphabetical)

// ExtractVersionLetter recovers the version letter (A-D) from a client video
// filename. Patterns are tried in priority order against the basename with
// the extension and the "Copy of OO_" prefix stripped; the first match wins.
// It returns the empty string when no pattern matches, which callers treat
// as "no version, omit from the generated name".
func ExtractVersionLetter(filename string) string {
	base := filepath.Base(filename)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.ReplaceAll(base, "Copy of OO_", "")

	for _, pattern := range versionPatterns {
		if m := pattern.FindStringSubmatch(base); m != nil {
			return m[2]
		}
	}

	return ""
}

// IsValidVersionLetter reports whether letter is one of the accepted version
// letters A-D.
func IsValidVersionLetter(letter string) bool {
	switch letter {
	case "A", "B", "C", "D":
		return true
	}
	return false
}
