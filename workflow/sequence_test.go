package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// SequenceTestSuite defines a test suite for the stitching plan.
type SequenceTestSuite struct {
	suite.Suite
}

// newPlan builds a three-item plan used by the ordering tests.
func (s *SequenceTestSuite) newPlan() *Sequence {
	sequence := &Sequence{}
	sequence.Add(Item{ClientVideo: "first.mp4"})
	sequence.Add(Item{ClientVideo: "second.mp4"})
	sequence.Add(Item{ClientVideo: "third.mp4"})
	return sequence
}

// TestAddAndInputs verifies items keep their template order in the encoder
// input list.
func (s *SequenceTestSuite) TestAddAndInputs() {
	sequence := &Sequence{}
	sequence.Add(Item{
		ClientVideo: "client.mp4",
		Templates: []Template{
			{Path: "connector.mp4", DisplayColor: "blue"},
			{Path: "quiz_outro.mp4", DisplayColor: "green"},
		},
	})

	inputs, err := sequence.Inputs(0)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), []string{"client.mp4", "connector.mp4", "quiz_outro.mp4"}, inputs)

	_, err = sequence.Inputs(1)
	assert.Error(s.T(), err, "out-of-range index should be rejected")
}

// TestMove verifies reordering shifts the items in between.
func (s *SequenceTestSuite) TestMove() {
	sequence := s.newPlan()

	require.NoError(s.T(), sequence.Move(0, 2))
	items := sequence.Items()
	assert.Equal(s.T(), "second.mp4", items[0].ClientVideo)
	assert.Equal(s.T(), "third.mp4", items[1].ClientVideo)
	assert.Equal(s.T(), "first.mp4", items[2].ClientVideo)

	require.NoError(s.T(), sequence.Move(2, 0))
	assert.Equal(s.T(), "first.mp4", sequence.Items()[0].ClientVideo)

	assert.Error(s.T(), sequence.Move(0, 9), "out-of-range move should be rejected")
}

// TestRemove verifies removal keeps the remaining order.
func (s *SequenceTestSuite) TestRemove() {
	sequence := s.newPlan()

	require.NoError(s.T(), sequence.Remove(1))
	require.Equal(s.T(), 2, sequence.Len())
	assert.Equal(s.T(), "first.mp4", sequence.Items()[0].ClientVideo)
	assert.Equal(s.T(), "third.mp4", sequence.Items()[1].ClientVideo)

	assert.Error(s.T(), sequence.Remove(5))
}

// TestValidate tests the pre-processing checks.
func (s *SequenceTestSuite) TestValidate() {
	testCases := []struct {
		name    string
		build   func() *Sequence
		wantErr bool
	}{
		{
			name:    "valid plan",
			build:   s.newPlan,
			wantErr: false,
		},
		{
			name:    "empty plan",
			build:   func() *Sequence { return &Sequence{} },
			wantErr: true,
		},
		{
			name: "missing client video",
			build: func() *Sequence {
				sequence := &Sequence{}
				sequence.Add(Item{ClientVideo: "  "})
				return sequence
			},
			wantErr: true,
		},
		{
			name: "non-video input",
			build: func() *Sequence {
				sequence := &Sequence{}
				sequence.Add(Item{ClientVideo: "notes.txt"})
				return sequence
			},
			wantErr: true,
		},
		{
			name: "non-video template",
			build: func() *Sequence {
				sequence := &Sequence{}
				sequence.Add(Item{
					ClientVideo: "client.mp4",
					Templates:   []Template{{Path: "outro.wav"}},
				})
				return sequence
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.build().Validate()
			if tc.wantErr {
				assert.Error(s.T(), err)
			} else {
				assert.NoError(s.T(), err)
			}
		})
	}
}

// TestSequenceTestSuite runs the sequence test suite.
func TestSequenceTestSuite(t *testing.T) {
	suite.Run(t, new(SequenceTestSuite))
}
