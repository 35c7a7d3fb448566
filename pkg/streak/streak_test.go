package streak

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWalk(t *testing.T) {
	tests := []struct {
		name         string
		participated []bool

		expectedCurrent int
		expectedMax     int
	}{
		{
			name:            "emptyTimeline",
			participated:    nil,
			expectedCurrent: 0,
			expectedMax:     0,
		},
		{
			name:            "unbrokenRun",
			participated:    []bool{true, true, true},
			expectedCurrent: 3,
			expectedMax:     3,
		},
		{
			name:            "missResetsAndRunResumes",
			participated:    []bool{true, true, false, true, true},
			expectedCurrent: 2,
			expectedMax:     2,
		},
		{
			name:            "missingTheLatestEventZeroesTheCurrent",
			participated:    []bool{true, true, true, false},
			expectedCurrent: 0,
			expectedMax:     3,
		},
		{
			name:            "longestRunInTheMiddle",
			participated:    []bool{true, false, true, true, true, false, true},
			expectedCurrent: 1,
			expectedMax:     3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current, max := Walk(tt.participated)

			assert.Equal(t, tt.expectedCurrent, current)
			assert.Equal(t, tt.expectedMax, max)
		})
	}
}
