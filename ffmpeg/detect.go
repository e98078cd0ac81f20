// Package ffmpeg provides functionality for detecting and working with FFmpeg.
package ffmpeg

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
)

// Private variables (alphabetical)

// ffmpegVersionRegex is used to detect FFmpeg version from version string.
// It extracts the numeric version (e.g., 4.4.1) from FFmpeg's version output.
var ffmpegVersionRegex = regexp.MustCompile(`(?i)(?:version|ffmpeg)\s+(?:n|\w)?(\d+\.\d+(?:\.\d+(?:\.\d+)?)?)`)

// Private functions (alphabetical)

// checkFFmpegExistence confirms if FFmpeg is installed on the system by searching for the executable.
// It first looks for the ffmpeg executable in the user's PATH environment variable.
// If not found there, it checks common installation directories based on the operating system.
// This is the foundational check before attempting any FFmpeg operations.
func checkFFmpegExistence() (string, bool) {
	// Try to find FFmpeg in PATH
	pathCmd, err := exec.LookPath("ffmpeg")
	if err == nil {
		return pathCmd, true
	}

	// Get common paths and check each one
	searchPaths := getCommonInstallPaths()
	for _, path := range searchPaths {
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}

	return "", false
}

// getCommonInstallPaths returns a list of common FFmpeg installation paths for the current OS.
// It provides possible locations where FFmpeg might be installed based on the operating system.
func getCommonInstallPaths() []string {
	var execName string
	if runtime.GOOS == "windows" {
		execName = "ffmpeg.exe"
	} else {
		execName = "ffmpeg"
	}

	var searchPaths []string
	switch runtime.GOOS {
	case "windows":
		// Windows common paths
		searchPaths = []string{
			filepath.Join("C:", "Program Files", "FFmpeg", "bin", execName),
			filepath.Join("C:", "Program Files (x86)", "FFmpeg", "bin", execName),
			filepath.Join("C:", "FFmpeg", "bin", execName),
		}

		// Add ProgramFiles path if environment variable is set
		programFiles := os.Getenv("ProgramFiles")
		if programFiles != "" {
			searchPaths = append(searchPaths, filepath.Join(programFiles, "FFmpeg", "bin", execName))
		}

	case "darwin":
		// macOS common paths
		searchPaths = []string{
			filepath.Join("/usr", "local", "bin", execName),
			filepath.Join("/opt", "local", "bin", execName),
			filepath.Join("/opt", "homebrew", "bin", execName),
		}
	default:
		// Linux/Unix common paths
		searchPaths = []string{
			filepath.Join("/usr", "bin", execName),
			filepath.Join("/usr", "local", "bin", execName),
			filepath.Join("/opt", "ffmpeg", "bin", execName),
		}
	}
	return searchPaths
}

// getFFmpegVersion retrieves and parses the version information from the FFmpeg executable.
// It executes the ffmpeg -version command and extracts the version number from
// the output.
func getFFmpegVersion(ctx context.Context, ffmpegPath string) (string, error) {
	cmd := exec.CommandContext(ctx, ffmpegPath, "-version")
	output, err := cmd.Output()
	if err != nil {
		return "", FormatError("error getting FFmpeg version: %w", err)
	}

	fullOutput := string(output)

	// Try to extract using regex first
	matches := ffmpegVersionRegex.FindStringSubmatch(fullOutput)
	if len(matches) >= 2 {
		return matches[1], nil
	}

	// Fall back to parsing the first line
	lines := strings.Split(fullOutput, "\n")
	if len(lines) > 0 {
		if version := parseVersionFromFirstLine(lines[0]); version != "" {
			return version, nil
		}
	}

	return "unknown", nil
}

// parseVersionFromFirstLine parses the version string from the first line of FFmpeg output.
func parseVersionFromFirstLine(firstLine string) string {
	versionParts := strings.Split(firstLine, " version ")
	if len(versionParts) > 1 {
		remainingParts := strings.Split(versionParts[1], " ")
		if len(remainingParts) > 0 {
			// Extract only the version part (handle 'n' prefix and '-dev' suffix)
			versionStr := remainingParts[0]

			// Remove 'n' prefix if present (git versioning)
			versionStr = strings.TrimPrefix(versionStr, "n")

			// Remove development suffix if present (e.g., -dev-1234)
			if idx := strings.Index(versionStr, "-dev"); idx > 0 {
				versionStr = versionStr[:idx]
			}

			return versionStr
		}
	}

	return ""
}

// Public functions (alphabetical)

// DetectFFmpeg locates and identifies the FFmpeg installation on the system.
// It returns an FFmpegInfo struct with the paths to both executables and the
// version string. A missing installation yields Installed=false without an
// error; callers decide whether that is fatal.
func DetectFFmpeg(ctx context.Context) (*FFmpegInfo, error) {
	// Find the FFmpeg executable
	ffmpegPath, found := checkFFmpegExistence()
	if !found {
		return &FFmpegInfo{
			Installed: false,
		}, nil
	}

	// Get FFmpeg version information
	version, err := getFFmpegVersion(ctx, ffmpegPath)
	if err != nil {
		return &FFmpegInfo{
			Installed: false,
		}, err
	}

	return &FFmpegInfo{
		Installed: true,
		Path:      ffmpegPath,
		ProbePath: GetExecutablePaths(ffmpegPath).FFprobe,
		Version:   version,
	}, nil
}

// GetExecutablePaths gets the paths to both FFmpeg and FFprobe.
// It assumes FFprobe is located in the same directory as FFmpeg, falling
// back to a PATH lookup when it is not.
func GetExecutablePaths(ffmpegPath string) *ExecutablePaths {
	probeName := "ffprobe"
	if runtime.GOOS == "windows" {
		probeName += ".exe"
	}

	ffprobePath := filepath.Join(filepath.Dir(ffmpegPath), probeName)
	if _, err := os.Stat(ffprobePath); err != nil {
		if pathProbe, lookErr := exec.LookPath("ffprobe"); lookErr == nil {
			ffprobePath = pathProbe
		}
	}

	return &ExecutablePaths{
		FFmpeg:  ffmpegPath,
		FFprobe: ffprobePath,
	}
}

// GetFFmpegPath attempts to detect the path to the FFmpeg executable.
// It returns the path if found, or an empty string if not found.
func GetFFmpegPath() string {
	ffmpegPath, found := checkFFmpegExistence()
	if found {
		return ffmpegPath
	}
	return ""
}

// VerifyFFmpeg checks if FFmpeg is installed and available.
// It returns a populated FFmpegInfo struct with installation details, or an
// error when the executable exists but cannot be run.
func VerifyFFmpeg(ctx context.Context) (*FFmpegInfo, error) {
	return DetectFFmpeg(ctx)
}
