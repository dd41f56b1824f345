package mood

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubScorer returns queued scores in order, then the last one forever.
type stubScorer struct {
	scores []float64
	next   int
	err    error
}

func (s *stubScorer) Score(string) (float64, error) {
	if s.err != nil {
		return 0, s.err
	}
	score := s.scores[s.next]
	if s.next < len(s.scores)-1 {
		s.next++
	}
	return score, nil
}

func TestTracker_EmptyWindow(t *testing.T) {
	tr := NewTracker(&stubScorer{scores: []float64{0}}, 5)
	assert.Equal(t, 0.0, tr.Current())
}

func TestTracker_WindowEviction(t *testing.T) {
	scorer := &stubScorer{scores: []float64{1.0, 1.0, 1.0, 1.0, 1.0, -1.0}}
	tr := NewTracker(scorer, 5)

	var got float64
	for i := 0; i < 6; i++ {
		got = tr.Update("x")
	}

	// After the 6th update the oldest 1.0 is evicted: (1+1+1+1-1)/5.
	assert.InDelta(t, 0.6, got, 1e-9)
	assert.InDelta(t, 0.6, tr.Current(), 1e-9)
}

func TestTracker_ScorerFailureIsNeutral(t *testing.T) {
	tr := NewTracker(&stubScorer{err: errors.New("scorer down")}, 5)
	assert.Equal(t, 0.0, tr.Update("anything"))
}

func TestTracker_CurrentDoesNotMutate(t *testing.T) {
	tr := NewTracker(&stubScorer{scores: []float64{0.5}}, 5)
	tr.Update("x")
	require.Equal(t, 0.5, tr.Current())
	require.Equal(t, 0.5, tr.Current())
}

func TestLexiconScorer(t *testing.T) {
	s := NewLexiconScorer()

	tests := []struct {
		name string
		text string
		want float64
	}{
		{"empty", "", 0.0},
		{"positive malay", "hari ni best", 1.0 / 3.0},
		{"negative malay", "penat sangat", -0.5},
		{"mixed cancels out", "best tapi penat", 0.0},
		{"no hits", "jom pergi kedai", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Score(tt.text)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}
