package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectorResize(t *testing.T) {
	s := newSelector(64, 8, 512, true)

	tests := []struct {
		name     string
		rate     float64
		expected int
	}{
		{"Neutral", 0.5, 64},
		{"HighViolation", 0.9, 64 + 25}, // floor(0.4*64)
		{"AllViolated", 1.0, 64 + 32},
		{"NoViolation", 0.0, 32},
		{"Quarter", 0.25, 48},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, s.resize(tt.rate))
			assert.Equal(t, tt.expected, s.width)
		})
	}
}

func TestSelectorResizeClamps(t *testing.T) {
	s := newSelector(10, 8, 12, true)

	assert.Equal(t, 8, s.resize(0.0))  // 10-5 clamped up
	assert.Equal(t, 12, s.resize(1.0)) // 10+10 clamped down
}

func TestSelectorResizeFixed(t *testing.T) {
	s := newSelector(16, 8, 512, false)

	assert.Equal(t, 16, s.resize(0.0))
	assert.Equal(t, 16, s.resize(1.0))
}

func TestSelectTop(t *testing.T) {
	s := newSelector(2, 2, 2, false)

	frontier := []*Candidate{
		{Score: 0.3, seq: 0},
		{Score: 0.9, seq: 1},
		{Score: 0.7, seq: 2},
		{Score: 0.9, seq: 3},
	}

	kept := s.selectTop(frontier)
	require.Len(t, kept, 2)

	// Best first; the 0.9 tie goes to the earlier sequence.
	assert.Same(t, frontier[1], kept[0])
	assert.Same(t, frontier[3], kept[1])
}

func TestSelectTopSmallFrontier(t *testing.T) {
	s := newSelector(8, 8, 8, false)

	frontier := []*Candidate{
		{Score: 0.1, seq: 0},
		{Score: 0.2, seq: 1},
	}

	kept := s.selectTop(frontier)
	require.Len(t, kept, 2)
	assert.Same(t, frontier[1], kept[0])
	assert.Same(t, frontier[0], kept[1])
	// Input order untouched.
	assert.Equal(t, uint64(0), frontier[0].seq)
}

func TestSelectTopTieOrderIndependentOfInput(t *testing.T) {
	s := newSelector(3, 3, 3, false)

	a := &Candidate{Score: 0.5, seq: 10}
	b := &Candidate{Score: 0.5, seq: 4}
	c := &Candidate{Score: 0.5, seq: 7}
	d := &Candidate{Score: 0.4, seq: 1}

	kept := s.selectTop([]*Candidate{a, b, c, d})
	require.Len(t, kept, 3)
	assert.Same(t, b, kept[0])
	assert.Same(t, c, kept[1])
	assert.Same(t, a, kept[2])
}
