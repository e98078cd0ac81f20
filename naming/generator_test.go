package naming

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/TalQualityScore/AI-Automation-sub001/config"
)

// GeneratorTestSuite defines a test suite for output-name generation.
type GeneratorTestSuite struct {
	suite.Suite
	generator *Generator
}

// SetupSuite creates a generator with the default configuration.
func (s *GeneratorTestSuite) SetupSuite() {
	s.generator = NewGenerator(&config.Default().Naming)
}

// TestGenerateOutputName checks the fixed template against the reference
// client filename, including the version letter recovered from the file.
func (s *GeneratorTestSuite) TestGenerateOutputName() {
	name := s.generator.GenerateOutputName(
		"AGMD Dinner Mashup",
		"AGMD_BC3_Dinner_Mashup_OPT_STOR-3133_250416D.mp4",
		ModeQuiz, 1, "")

	assert.Equal(s.T(), "GH-dinnermashupSTOR3133DZZquiz_X-v01-m01-f00-c00", name)
	assert.Contains(s.T(), name, "3133D", "the file's version letter must follow the test number")
	assert.NotContains(s.T(), name, "3133S", "no other letter may be substituted")
}

// TestGenerateOutputNameProperties checks the invariants every generated
// name carries regardless of input.
func (s *GeneratorTestSuite) TestGenerateOutputNameProperties() {
	testCases := []struct {
		name        string
		projectName string
		clientVideo string
		mode        Mode
		versionNum  int
	}{
		{
			name:        "quiz with messy project name",
			projectName: "Dinner & Mashup! ",
			clientVideo: "Dinner_Mashup_VTD-0042_250416A.mp4",
			mode:        ModeQuiz,
			versionNum:  1,
		},
		{
			name:        "vsl high version number",
			projectName: "Morning Ritual",
			clientVideo: "Morning_Ritual_STOR-3133.mp4",
			mode:        ModeVSL,
			versionNum:  42,
		},
		{
			name:        "svsl without test number",
			projectName: "Kitchen Secrets",
			clientVideo: "kitchen.mp4",
			mode:        ModeSVSL,
			versionNum:  7,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			name := s.generator.GenerateOutputName(tc.projectName, tc.clientVideo, tc.mode, tc.versionNum, "")

			assert.Contains(s.T(), name, "ZZ", "the ZZ protocol constant must be present")
			assert.Regexp(s.T(), `-v\d{2}-`, name, "the version token must be zero-padded")
			assert.NotContains(s.T(), name, " ", "generated names never contain whitespace")
			assert.True(s.T(), strings.HasPrefix(name, "GH-"), "names start with the GH- prefix")
			assert.True(s.T(), strings.HasSuffix(name, "-m01-f00-c00"), "names end with the fixed protocol tail")
		})
	}
}

// TestGenerateOutputNameMissingLetter verifies a source file with no version
// letter leaves the letter out entirely.
func (s *GeneratorTestSuite) TestGenerateOutputNameMissingLetter() {
	name := s.generator.GenerateOutputName(
		"Dinner Mashup", "Dinner_Mashup_STOR-3133.mp4", ModeQuiz, 1, "")

	assert.Equal(s.T(), "GH-dinnermashupSTOR3133ZZquiz_X-v01-m01-f00-c00", name)
}

// TestGenerateOutputNameExplicitLetter verifies a caller-supplied letter
// wins over extraction.
func (s *GeneratorTestSuite) TestGenerateOutputNameExplicitLetter() {
	name := s.generator.GenerateOutputName(
		"Dinner Mashup", "Dinner_Mashup_STOR-3133_250416D.mp4", ModeQuiz, 1, "B")

	assert.Contains(s.T(), name, "3133B")
}

// TestGenerateProjectFolderName tests the human-readable folder variant and
// its mode capitalization.
func (s *GeneratorTestSuite) TestGenerateProjectFolderName() {
	testCases := []struct {
		name     string
		mode     Mode
		expected string
	}{
		{name: "quiz", mode: ModeQuiz, expected: "GH Dinner Mashup STOR 3133 Quiz"},
		{name: "svsl", mode: ModeSVSL, expected: "GH Dinner Mashup STOR 3133 SVSL"},
		{name: "vsl", mode: ModeVSL, expected: "GH Dinner Mashup STOR 3133 VSL"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			folder := s.generator.GenerateProjectFolderName(
				"AGMD Dinner Mashup", "AGMD_Dinner_Mashup_STOR-3133_250416.mp4", tc.mode)
			assert.Equal(s.T(), tc.expected, folder)
		})
	}
}

// TestParseMode tests mode parsing and rejection.
func (s *GeneratorTestSuite) TestParseMode() {
	mode, err := ParseMode("Quiz")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), ModeQuiz, mode)

	_, err = ParseMode("karaoke")
	assert.Error(s.T(), err, "unknown modes should be rejected")
}

// TestGeneratorTestSuite runs the generator test suite.
func TestGeneratorTestSuite(t *testing.T) {
	suite.Run(t, new(GeneratorTestSuite))
}
