package report

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// BreakdownTestSuite defines a test suite for the processing breakdown.
type BreakdownTestSuite struct {
	suite.Suite
	report *Report
}

// SetupTest builds a representative two-segment report.
func (s *BreakdownTestSuite) SetupTest() {
	s.report = &Report{
		GeneratedAt: time.Date(2025, 4, 16, 10, 30, 0, 0, time.UTC),
		Entries: []Entry{
			{
				OutputName:         "GH-dinnermashupSTOR3133DZZquiz_X-v01-m01-f00-c00",
				Composition:        "Client + quiz_outro",
				SourceFile:         "/assets/AGMD_Dinner_Mashup_STOR-3133_250416D.mp4",
				TransitionDuration: 0.25,
				TotalDuration:      117.75,
				SizeMB:             42.3,
				Segments: []Segment{
					{Label: "AGMD_Dinner_Mashup_STOR-3133_250416D.mp4", Duration: 60},
					{Label: "quiz_outro.mp4", Duration: 58},
				},
			},
		},
	}
}

// TestWrite checks the fixed header, the per-segment timecodes with the
// transition overlap, and the footer.
func (s *BreakdownTestSuite) TestWrite() {
	var sb strings.Builder
	require.NoError(s.T(), s.report.Write(&sb))
	output := sb.String()

	assert.Contains(s.T(), output, "AI AUTOMATION SUITE - PROCESSING BREAKDOWN REPORT")
	assert.Contains(s.T(), output, strings.Repeat("=", 80))
	assert.Contains(s.T(), output, strings.Repeat("─", 80))
	assert.Contains(s.T(), output, "Generated: 2025-04-16 10:30:00")

	assert.Contains(s.T(), output, "VIDEO 1: GH-dinnermashupSTOR3133DZZquiz_X-v01-m01-f00-c00")
	assert.Contains(s.T(), output, "Composition: Client + quiz_outro")
	assert.Contains(s.T(), output, "Source:      AGMD_Dinner_Mashup_STOR-3133_250416D.mp4")

	// First segment runs 0:00-1:00; the second starts inside the 0.25s
	// transition overlap at 59.75s and ends at 117.75s.
	assert.Contains(s.T(), output, "00:00 - 01:00")
	assert.Contains(s.T(), output, "00:59 - 01:57")

	assert.Contains(s.T(), output, "Total Duration: 01:57")
	assert.Contains(s.T(), output, "File Size:      42.3 MB")
	assert.Contains(s.T(), output, "END OF REPORT - 1 video(s) processed")
}

// TestWriteFile verifies the report lands in its standard file.
func (s *BreakdownTestSuite) TestWriteFile() {
	dir := s.T().TempDir()

	path, err := s.report.WriteFile(dir)
	require.NoError(s.T(), err)
	assert.True(s.T(), strings.HasSuffix(path, "processing_breakdown.txt"))

	content, err := os.ReadFile(path)
	require.NoError(s.T(), err)
	assert.Contains(s.T(), string(content), "PROCESSING BREAKDOWN REPORT")
}

// TestFormatTimecode tests MM:SS rendering.
func (s *BreakdownTestSuite) TestFormatTimecode() {
	testCases := []struct {
		seconds  float64
		expected string
	}{
		{seconds: 0, expected: "00:00"},
		{seconds: 59.75, expected: "00:59"},
		{seconds: 60, expected: "01:00"},
		{seconds: 117.75, expected: "01:57"},
		{seconds: 3600, expected: "60:00"},
		{seconds: -5, expected: "00:00"},
	}

	for _, tc := range testCases {
		assert.Equal(s.T(), tc.expected, formatTimecode(tc.seconds),
			"unexpected timecode for %v seconds", tc.seconds)
	}
}

// TestBreakdownTestSuite runs the breakdown test suite.
func TestBreakdownTestSuite(t *testing.T) {
	suite.Run(t, new(BreakdownTestSuite))
}
