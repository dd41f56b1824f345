package mood

// Scorer rates a single text in [-1, 1]. Implementations may fail; the
// tracker absorbs failures as a neutral 0.0 so mood smoothing never errors.
type Scorer interface {
	Score(text string) (float64, error)
}

const DefaultWindowSize = 5

// Tracker keeps a fixed-size window of per-message sentiment scores and
// reports the smoothed mood as their arithmetic mean. It owns smoothing
// only; scoring is delegated to the injected Scorer.
type Tracker struct {
	scorer Scorer
	scores []float64
	size   int
}

func NewTracker(scorer Scorer, windowSize int) *Tracker {
	if windowSize <= 0 {
		windowSize = DefaultWindowSize
	}
	return &Tracker{
		scorer: scorer,
		scores: make([]float64, 0, windowSize),
		size:   windowSize,
	}
}

// Update scores the text, appends it to the window (evicting the oldest
// score when full) and returns the new mean.
func (t *Tracker) Update(text string) float64 {
	score, err := t.scorer.Score(text)
	if err != nil {
		score = 0.0
	}

	if len(t.scores) == t.size {
		copy(t.scores, t.scores[1:])
		t.scores[len(t.scores)-1] = score
	} else {
		t.scores = append(t.scores, score)
	}

	return t.Current()
}

// Current returns the mean of the window without mutating it, 0.0 when empty.
func (t *Tracker) Current() float64 {
	if len(t.scores) == 0 {
		return 0.0
	}
	var sum float64
	for _, s := range t.scores {
		sum += s
	}
	return sum / float64(len(t.scores))
}
