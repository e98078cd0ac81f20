package ffmpeg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// ProberTestSuite defines a test suite for the Prober.
type ProberTestSuite struct {
	suite.Suite
}

// TestNewProber verifies construction requires a detected installation.
func (s *ProberTestSuite) TestNewProber() {
	prober, err := NewProber(&FFmpegInfo{
		Installed: true,
		Path:      "/usr/bin/ffmpeg",
		ProbePath: "/usr/bin/ffprobe",
	})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "/usr/bin/ffprobe", prober.FFprobePath)
}

// TestNewProberNotInstalled verifies a missing installation is rejected.
func (s *ProberTestSuite) TestNewProberNotInstalled() {
	_, err := NewProber(&FFmpegInfo{Installed: false})
	assert.Error(s.T(), err, "a prober cannot be created without FFmpeg")

	_, err = NewProber(nil)
	assert.Error(s.T(), err, "a nil FFmpegInfo should be rejected")
}

// TestNewProberDerivesProbePath verifies the probe path is derived from the
// FFmpeg path when absent.
func (s *ProberTestSuite) TestNewProberDerivesProbePath() {
	prober, err := NewProber(&FFmpegInfo{
		Installed: true,
		Path:      "/opt/ffmpeg/bin/ffmpeg",
	})
	require.NoError(s.T(), err)
	assert.NotEmpty(s.T(), prober.FFprobePath)
}

// TestParseFrameRate tests rational frame-rate parsing including the
// malformed-input default.
func (s *ProberTestSuite) TestParseFrameRate() {
	testCases := []struct {
		name     string
		input    string
		expected float64
	}{
		{name: "integer rational", input: "30/1", expected: 30.0},
		{name: "NTSC rational", input: "30000/1001", expected: 30000.0 / 1001.0},
		{name: "missing denominator", input: "30", expected: DefaultFrameRate},
		{name: "zero denominator", input: "30/0", expected: DefaultFrameRate},
		{name: "empty", input: "", expected: DefaultFrameRate},
		{name: "garbage", input: "abc/def", expected: DefaultFrameRate},
		{name: "negative", input: "-30/1", expected: DefaultFrameRate},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			assert.InDelta(s.T(), tc.expected, parseFrameRate(tc.input), 1e-9,
				"unexpected frame rate for %q", tc.input)
		})
	}
}

// TestVideoInfoString tests the human-readable rendering.
func (s *ProberTestSuite) TestVideoInfoString() {
	info := &VideoInfo{
		VideoCodec: "h264",
		Width:      1920,
		Height:     1080,
		FrameRate:  30,
		Duration:   12.5,
	}

	rendered := info.String()
	assert.Contains(s.T(), rendered, "h264")
	assert.Contains(s.T(), rendered, "1920x1080")
	assert.Contains(s.T(), rendered, "30.000")
}

// TestProberTestSuite runs the prober test suite.
func TestProberTestSuite(t *testing.T) {
	suite.Run(t, new(ProberTestSuite))
}
