package gamify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromMessages(t *testing.T) {
	tests := []struct {
		count int64
		level int
		name  string
	}{
		{0, 1, "Kenalan Biasa"},
		{9, 1, "Kenalan Biasa"},
		{10, 2, "Kawan Baru"},
		{49, 2, "Kawan Baru"},
		{50, 3, "Kawan Karib"},
		{199, 3, "Kawan Karib"},
		{200, 4, "Partner in Crime"},
		{499, 4, "Partner in Crime"},
		{500, 5, "Soulmate"},
		{10000, 5, "Soulmate"},
	}

	for _, tt := range tests {
		level, name := LevelFromMessages(tt.count)
		assert.Equal(t, tt.level, level, "count %d", tt.count)
		assert.Equal(t, tt.name, name, "count %d", tt.count)
	}
}

func TestBadges(t *testing.T) {
	assert.Empty(t, Badges(0))
	assert.Len(t, Badges(1), 1)
	assert.Len(t, Badges(60), 3)
	assert.Len(t, Badges(500), 5)
}

func TestBadgesReply_NoneEarned(t *testing.T) {
	assert.Contains(t, BadgesReply(0), "Belum ada badge")
}

func TestGreeting(t *testing.T) {
	day := func(hour int) time.Time {
		return time.Date(2025, 7, 15, hour, 0, 0, 0, time.UTC)
	}

	assert.Contains(t, Greeting(day(8)), "Selamat pagi")
	assert.Contains(t, Greeting(day(12)), "Jom lunch")
	assert.Contains(t, Greeting(day(15)), "Selamat petang")
	assert.Contains(t, Greeting(day(18)), "maghrib")
	assert.Contains(t, Greeting(day(20)), "Selamat malam")
	assert.Contains(t, Greeting(day(2)), "still bangun")
}

func TestGreeting_Ramadan(t *testing.T) {
	ramadan := time.Date(2025, 3, 20, 19, 0, 0, 0, time.UTC)
	assert.Contains(t, Greeting(ramadan), "berbuka")

	sahur := time.Date(2025, 4, 5, 4, 0, 0, 0, time.UTC)
	assert.Contains(t, Greeting(sahur), "sahur")
}
