// Package ffmpeg provides functionality for detecting and working with FFmpeg.
package ffmpeg

import "sync"

// Private types (alphabetical)

// probeFormat represents the "format" section of FFprobe's JSON output.
type probeFormat struct {
	Filename string `json:"filename"`
	Duration string `json:"duration"`
	Size     string `json:"size"`
	BitRate  string `json:"bit_rate"`
}

// probeOutput represents the JSON document returned by FFprobe.
type probeOutput struct {
	Format  probeFormat   `json:"format"`
	Streams []probeStream `json:"streams"`
}

// probeStream represents one entry of the "streams" section of FFprobe's
// JSON output.
type probeStream struct {
	CodecType  string `json:"codec_type"`
	CodecName  string `json:"codec_name"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	RFrameRate string `json:"r_frame_rate"`
	SampleRate string `json:"sample_rate"`
	Duration   string `json:"duration"`
}

// Public types (alphabetical)

// ExecutablePaths holds paths to FFmpeg executables.
// It contains the paths to both the FFmpeg and FFprobe executables.
type ExecutablePaths struct {
	// FFmpeg is the path to the FFmpeg executable
	FFmpeg string

	// FFprobe is the path to the FFprobe executable
	FFprobe string
}

// FFmpegInfo contains information about the FFmpeg installation
type FFmpegInfo struct {
	// Installed is true if FFmpeg is found in the system
	Installed bool
	// Path is the full path to the FFmpeg executable
	Path string
	// ProbePath is the full path to the FFprobe executable
	ProbePath string
	// Version is the version of FFmpeg
	Version string
}

// Prober provides methods to probe video files for information.
// It keeps an in-memory duration cache so repeated lookups of the same file
// within one session cost a single probe run. The cache is safe for
// concurrent use.
type Prober struct {
	// FFprobePath is the path to the FFprobe executable
	FFprobePath string

	// durations caches probed durations keyed by absolute file path
	durations map[string]float64

	// mutex protects the duration cache
	mutex sync.Mutex
}

// VideoInfo represents high-level information about a video file.
// A zero Duration means the probe failed and callers should fall back to
// default target specs.
type VideoInfo struct {
	// AudioCodec is the audio codec name, empty when the file has no audio
	AudioCodec string

	// Duration is the container duration in seconds
	Duration float64

	// FileName is the probed file's path
	FileName string

	// FileSizeMB is the file size in megabytes
	FileSizeMB float64

	// FrameRate is the video frame rate in frames per second
	FrameRate float64

	// Height is the video height in pixels
	Height int

	// SampleRate is the audio sample rate in Hz
	SampleRate int

	// VideoCodec is the video codec name
	VideoCodec string

	// Width is the video width in pixels
	Width int
}

// VideoSpec is the common target specification a batch of inputs is
// normalized to before stitching. It is recomputed for every batch; nothing
// is cached across runs.
type VideoSpec struct {
	// FrameRate is the target frame rate in frames per second
	FrameRate float64

	// Height is the target height in pixels
	Height int

	// Preset is the libx264 speed/quality preset name
	Preset string

	// SampleRate is the target audio sample rate in Hz
	SampleRate int

	// TotalDuration is the summed duration of all inputs in seconds
	TotalDuration float64

	// Width is the target width in pixels
	Width int
}
