package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/TalQualityScore/AI-Automation-sub001/config"
)

// CleanerTestSuite defines a test suite for project-name cleaning.
type CleanerTestSuite struct {
	suite.Suite
	cleaner *Cleaner
}

// SetupSuite creates a cleaner with the default configuration.
func (s *CleanerTestSuite) SetupSuite() {
	s.cleaner = NewCleaner(&config.Default().Naming)
}

// TestCleanProjectName tests the full normalization pipeline over names that
// actually occur in client folders.
func (s *CleanerTestSuite) TestCleanProjectName() {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "underscores become spaces",
			input:    "dinner_mashup",
			expected: "Dinner Mashup",
		},
		{
			name:     "copy prefix stripped",
			input:    "Copy of dinner_mashup",
			expected: "Dinner Mashup",
		},
		{
			name:     "stacked prefixes stripped",
			input:    "Copy of OO_dinner_mashup",
			expected: "Dinner Mashup",
		},
		{
			name:     "camel case split",
			input:    "DinnerMashup",
			expected: "Dinner Mashup",
		},
		{
			name:     "acronyms preserved",
			input:    "morning UGC ritual",
			expected: "Morning UGC Ritual",
		},
		{
			name:     "account code kept uppercase",
			input:    "AGMD Dinner Mashup",
			expected: "AGMD Dinner Mashup",
		},
		{
			name:     "connector words lowercase",
			input:    "secrets OF THE kitchen",
			expected: "Secrets of the Kitchen",
		},
		{
			name:     "connector word leading stays capitalized",
			input:    "the morning ritual",
			expected: "The Morning Ritual",
		},
		{
			name:     "suffix stripped",
			input:    "Dinner Mashup Ad",
			expected: "Dinner Mashup",
		},
		{
			name:     "stacked suffixes stripped",
			input:    "Dinner Mashup Test Final",
			expected: "Dinner Mashup",
		},
		{
			name:     "plus separators",
			input:    "dinner+mashup+remix",
			expected: "Dinner Mashup Remix",
		},
		{
			name:     "whitespace collapsed",
			input:    "dinner    mashup",
			expected: "Dinner Mashup",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "Untitled Project",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			cleaned := s.cleaner.CleanProjectName(tc.input)
			assert.Equal(s.T(), tc.expected, cleaned,
				"unexpected cleaned name for %q", tc.input)
		})
	}
}

// TestCleanProjectNameIdempotent verifies that cleaning an already-clean
// name changes nothing, which lets callers clean defensively.
func (s *CleanerTestSuite) TestCleanProjectNameIdempotent() {
	inputs := []string{
		"Copy of OO_dinner_mashup",
		"AGMD_BC3_Dinner_Mashup",
		"DinnerMashup Test Final",
		"morning UGC ritual Ad",
		"the secrets of the kitchen",
		"",
	}

	for _, input := range inputs {
		once := s.cleaner.CleanProjectName(input)
		twice := s.cleaner.CleanProjectName(once)
		assert.Equal(s.T(), once, twice,
			"cleaning %q twice should equal cleaning once", input)
	}
}

// TestCleanerTestSuite runs the cleaner test suite.
func TestCleanerTestSuite(t *testing.T) {
	suite.Run(t, new(CleanerTestSuite))
}
