package gamify

import (
	"fmt"
	"strings"
)

// Friendship levels by total message count.
var levels = []struct {
	threshold int64
	level     int
	name      string
}{
	{10, 1, "Kenalan Biasa"},
	{50, 2, "Kawan Baru"},
	{200, 3, "Kawan Karib"},
	{500, 4, "Partner in Crime"},
}

// LevelFromMessages maps a total message count to a friendship level and
// its display name.
func LevelFromMessages(count int64) (int, string) {
	for _, l := range levels {
		if count < l.threshold {
			return l.level, l.name
		}
	}
	return 5, "Soulmate"
}

// Badge milestones, earned once the message count reaches the threshold.
var badges = []struct {
	threshold int64
	name      string
}{
	{1, "🏅 First Hello"},
	{10, "🏅 Sembang Santai"},
	{50, "🏅 Borak Raja"},
	{200, "🏅 Geng Mamak"},
	{500, "🏅 Soulmate Sejati"},
}

// Badges returns the earned badge names for a message count, oldest first.
func Badges(count int64) []string {
	var earned []string
	for _, b := range badges {
		if count >= b.threshold {
			earned = append(earned, b.name)
		}
	}
	return earned
}

// LevelReply renders the /level response from the live message count.
func LevelReply(count int64) string {
	level, name := LevelFromMessages(count)
	return fmt.Sprintf("🏆 Friendship Level %d · %s (%d messages)", level, name, count)
}

// BadgesReply renders the /badges response from the live message count.
func BadgesReply(count int64) string {
	earned := Badges(count)
	if len(earned) == 0 {
		return "🏅 Belum ada badge lagi. Jom sembang dengan AYRA dulu!"
	}
	return "Badges awak:\n" + strings.Join(earned, "\n")
}
