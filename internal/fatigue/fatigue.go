package fatigue

import "time"

const (
	DefaultThreshold = 120 * time.Second
	DefaultCooldown  = 300 * time.Second

	// burstSize messages inside the threshold window trip the gate.
	burstSize  = 5
	maxLogSize = 10
)

// Gate is a two-state rate limiter: Active and Fatigued. Five messages
// inside the threshold window flip it to Fatigued until a cooldown deadline;
// the flip back is lazy and happens on the next Check whose time has passed
// the deadline, before that same message is evaluated. State is
// process-local and not persisted.
type Gate struct {
	threshold time.Duration
	cooldown  time.Duration

	fatigued bool
	until    time.Time
	activity []time.Time
}

func NewGate(threshold, cooldown time.Duration) *Gate {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	if cooldown <= 0 {
		cooldown = DefaultCooldown
	}
	return &Gate{
		threshold: threshold,
		cooldown:  cooldown,
		activity:  make([]time.Time, 0, maxLogSize),
	}
}

// Check records a message arriving at now and reports whether the gate
// throttles it. An expired cooldown is cleared first, so the message that
// arrives after the deadline is evaluated as a normal one.
func (g *Gate) Check(now time.Time) bool {
	g.record(now)

	if g.fatigued {
		if now.After(g.until) {
			g.fatigued = false
		} else {
			return true
		}
	}

	if len(g.activity) >= burstSize {
		span := g.activity[len(g.activity)-1].Sub(g.activity[len(g.activity)-burstSize])
		if span < g.threshold {
			g.fatigued = true
			g.until = now.Add(g.cooldown)
			return true
		}
	}

	return false
}

// Fatigued reports the current state without mutating it.
func (g *Gate) Fatigued() bool {
	return g.fatigued
}

// Until returns the cooldown deadline; zero when the gate is Active.
func (g *Gate) Until() time.Time {
	if !g.fatigued {
		return time.Time{}
	}
	return g.until
}

func (g *Gate) record(now time.Time) {
	g.activity = append(g.activity, now)
	if len(g.activity) > maxLogSize {
		g.activity = g.activity[len(g.activity)-maxLogSize:]
	}
}
