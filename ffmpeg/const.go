// Package ffmpeg provides functionality for detecting and working with FFmpeg.
// It includes tools for locating the FFmpeg and FFprobe executables, probing
// video files for stream metadata, and determining the common target
// specification a batch of inputs should be normalized to.
package ffmpeg

import (
	"fmt"
	"time"
)

// Private constants (alphabetical)
const (
	// defaultTimeout is the standard timeout for FFprobe operations.
	// Operations that exceed this timeout will be terminated.
	defaultTimeout = 30 * time.Second

	// errorPrefix is used as a prefix for all error messages from this package.
	// This ensures consistent error formatting across the package.
	errorPrefix = "ffmpeg: "
)

// Public constants (alphabetical)
const (
	// DefaultFrameRate is the frame rate assumed when a stream reports no
	// rate or a malformed rational.
	DefaultFrameRate = 30.0

	// DefaultHeight is the fallback target height when no input could be
	// probed.
	DefaultHeight = 1080

	// DefaultSampleRate is the audio sample rate every output is normalized
	// to. Inputs are always resampled, so their own rates never propagate.
	DefaultSampleRate = 44100

	// DefaultWidth is the fallback target width when no input could be
	// probed.
	DefaultWidth = 1920

	// LongBatchSeconds is the total duration above which a batch is
	// considered long for preset selection.
	LongBatchSeconds = 1200.0

	// VeryLongBatchSeconds is the total duration above which a batch is
	// considered very long for preset selection.
	VeryLongBatchSeconds = 2400.0
)

// Public functions (alphabetical)

// FormatError creates a standardized error message with the package prefix.
// It ensures all errors from this package have a consistent format and can be
// easily identified as originating from the ffmpeg package.
func FormatError(format string, args ...interface{}) error {
	return fmt.Errorf(errorPrefix+format, args...)
}

// GetDefaultTimeout returns the standard timeout duration for FFprobe
// operations. Applications can use this when creating contexts or setting
// command timeouts.
func GetDefaultTimeout() time.Duration {
	return defaultTimeout
}
