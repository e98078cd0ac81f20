package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// VersionTestSuite defines a test suite for version-letter extraction.
type VersionTestSuite struct {
	suite.Suite
}

// TestExtractVersionLetter tests the pattern cascade over representative
// client filenames.
func (s *VersionTestSuite) TestExtractVersionLetter() {
	testCases := []struct {
		name     string
		filename string
		expected string
	}{
		{
			name:     "six-digit date with letter",
			filename: "AGMD_BC3_Dinner_Mashup_OPT_STOR-3133_250416D.mp4",
			expected: "D",
		},
		{
			name:     "six-digit date with invalid letter",
			filename: "AGMD_BC3_Dinner_Mashup_OPT_STOR-3133_250416E.mp4",
			expected: "",
		},
		{
			name:     "six-digit date without letter",
			filename: "AGMD_BC3_Dinner_Mashup_OPT_STOR-3133_250416.mp4",
			expected: "",
		},
		{
			name:     "eight-digit date with letter",
			filename: "OO_Morning_Ritual_VTD-12345_20240408A.mp4",
			expected: "A",
		},
		{
			name:     "ad type tag with letter",
			filename: "Dinner_Mashup_STOR-3133B.mp4",
			expected: "B",
		},
		{
			name:     "bare digits with letter",
			filename: "project_0042C.mov",
			expected: "C",
		},
		{
			name:     "copy prefix stripped before matching",
			filename: "Copy of OO_project_250416D.mp4",
			expected: "D",
		},
		{
			name:     "letter followed by underscore still matches",
			filename: "Dinner_Mashup_STOR-3133D_draft_notes.txt",
			expected: "D",
		},
		{
			name:     "no digits at all",
			filename: "plain_name.mp4",
			expected: "",
		},
		{
			name:     "trailing Z rejected",
			filename: "project_250416Z.mp4",
			expected: "",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			letter := ExtractVersionLetter(tc.filename)
			assert.Equal(s.T(), tc.expected, letter,
				"unexpected version letter for %q", tc.filename)
		})
	}
}

// TestExtractVersionLetterUsesBasename verifies that directories in the path
// never contribute a match.
func (s *VersionTestSuite) TestExtractVersionLetterUsesBasename() {
	letter := ExtractVersionLetter("/renders/batch_250416A/plain_name.mp4")
	assert.Equal(s.T(), "", letter, "directory names should not match")
}

// TestIsValidVersionLetter tests the accepted letter set.
func (s *VersionTestSuite) TestIsValidVersionLetter() {
	for _, letter := range []string{"A", "B", "C", "D"} {
		assert.True(s.T(), IsValidVersionLetter(letter), "%s should be valid", letter)
	}
	for _, letter := range []string{"E", "Z", "a", "", "AB"} {
		assert.False(s.T(), IsValidVersionLetter(letter), "%q should be invalid", letter)
	}
}

// TestVersionTestSuite runs the version test suite.
func TestVersionTestSuite(t *testing.T) {
	suite.Run(t, new(VersionTestSuite))
}
