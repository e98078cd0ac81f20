// Package ffmpeg provides functionality for detecting and working with FFmpeg.
package ffmpeg

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// Private functions (alphabetical)

// parseFrameRate converts FFprobe's rational frame rate ("30000/1001") to a
// float. A malformed or missing rational yields DefaultFrameRate rather than
// an error, because a bad rate in one stream should not fail the whole
// batch.
func parseFrameRate(rational string) float64 {
	parts := strings.Split(rational, "/")
	if len(parts) != 2 {
		return DefaultFrameRate
	}

	num, err1 := strconv.ParseFloat(parts[0], 64)
	den, err2 := strconv.ParseFloat(parts[1], 64)
	if err1 != nil || err2 != nil || den <= 0 || num <= 0 {
		return DefaultFrameRate
	}

	return num / den
}

// Public functions (alphabetical)

// NewProber creates a new Prober instance from a detected FFmpeg
// installation.
func NewProber(ffmpegInfo *FFmpegInfo) (*Prober, error) {
	if ffmpegInfo == nil || !ffmpegInfo.Installed {
		return nil, FormatError("FFmpeg is not installed")
	}

	ffprobePath := ffmpegInfo.ProbePath
	if ffprobePath == "" {
		ffprobePath = GetExecutablePaths(ffmpegInfo.Path).FFprobe
	}

	return &Prober{
		FFprobePath: ffprobePath,
		durations:   make(map[string]float64),
	}, nil
}

// Public methods (alphabetical)

// GetDuration returns the duration of the file in seconds, consulting the
// per-session cache first. The cache is keyed by absolute path so the same
// file reached through different relative paths probes only once.
func (p *Prober) GetDuration(ctx context.Context, filePath string) (float64, error) {
	key, err := filepath.Abs(filePath)
	if err != nil {
		key = filePath
	}

	p.mutex.Lock()
	if duration, ok := p.durations[key]; ok {
		p.mutex.Unlock()
		return duration, nil
	}
	p.mutex.Unlock()

	info, err := p.GetVideoInfo(ctx, filePath)
	if err != nil {
		return 0, err
	}

	return info.Duration, nil
}

// GetVideoInfo probes a video file and returns its stream metadata. It runs
// FFprobe with JSON output and reads the container duration from the format
// section, dimensions and frame rate from the first video stream, and the
// sample rate from the first audio stream. Files without an audio stream
// report DefaultSampleRate since every output is resampled anyway.
func (p *Prober) GetVideoInfo(ctx context.Context, filePath string) (*VideoInfo, error) {
	cmd := exec.CommandContext(ctx, p.FFprobePath,
		"-v", "quiet",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		filePath)

	output, err := cmd.Output()
	if err != nil {
		return nil, FormatError("error running ffprobe on %s: %w", filePath, err)
	}

	var probed probeOutput
	if err := json.Unmarshal(output, &probed); err != nil {
		return nil, FormatError("error parsing ffprobe output for %s: %w", filePath, err)
	}

	info := &VideoInfo{
		FileName:   filePath,
		FrameRate:  DefaultFrameRate,
		SampleRate: DefaultSampleRate,
	}

	if duration, err := strconv.ParseFloat(probed.Format.Duration, 64); err == nil {
		info.Duration = duration
	}
	if size, err := strconv.ParseFloat(probed.Format.Size, 64); err == nil {
		info.FileSizeMB = size / (1024 * 1024)
	}

	for _, stream := range probed.Streams {
		switch stream.CodecType {
		case "video":
			if info.VideoCodec != "" {
				continue
			}
			info.VideoCodec = stream.CodecName
			info.Width = stream.Width
			info.Height = stream.Height
			info.FrameRate = parseFrameRate(stream.RFrameRate)
		case "audio":
			if info.AudioCodec != "" {
				continue
			}
			info.AudioCodec = stream.CodecName
			if rate, err := strconv.Atoi(stream.SampleRate); err == nil && rate > 0 {
				info.SampleRate = rate
			}
		}
	}

	p.cacheDuration(filePath, info.Duration)

	return info, nil
}

// Private methods (alphabetical)

// cacheDuration stores a probed duration under the file's absolute path.
func (p *Prober) cacheDuration(filePath string, duration float64) {
	key, err := filepath.Abs(filePath)
	if err != nil {
		key = filePath
	}

	p.mutex.Lock()
	p.durations[key] = duration
	p.mutex.Unlock()
}

// Type methods (alphabetical)

// String returns a string representation of VideoInfo
func (v *VideoInfo) String() string {
	var parts []string

	if v.VideoCodec != "" {
		parts = append(parts, fmt.Sprintf("Codec: %s", v.VideoCodec))
	}

	if v.Width > 0 && v.Height > 0 {
		parts = append(parts, fmt.Sprintf("Resolution: %dx%d", v.Width, v.Height))
	}

	if v.FrameRate > 0 {
		parts = append(parts, fmt.Sprintf("FPS: %.3f", v.FrameRate))
	}

	if v.Duration > 0 {
		parts = append(parts, fmt.Sprintf("Duration: %fs", v.Duration))
	}

	return strings.Join(parts, ", ")
}
