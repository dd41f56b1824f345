package crisis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		crisis  bool
		keyword string
	}{
		{"malay suicide phrase", "Saya rasa nak mati je", true, "nak mati"},
		{"lost phrase", "aku tak tau nak buat apa dah", true, "tak tau nak buat apa"},
		{"help alert", "tolong saya", true, "tolong saya"},
		{"english phrase", "i want to kill myself", true, "kill myself"},
		{"uppercase matched", "I WANT TO KILL MYSELF", true, "kill myself"},
		{"normal message", "apa khabar hari ni", false, ""},
		{"polite ask", "boleh minta tolong", false, ""},
		{"empty", "", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			crisis, keyword := Detect(tt.text)
			assert.Equal(t, tt.crisis, crisis)
			assert.Equal(t, tt.keyword, keyword)
		})
	}
}

func TestDetect_FirstMatchWins(t *testing.T) {
	// "nak mati" is declared before "suicide", so it must be the one reported
	// when both appear.
	crisis, keyword := Detect("nak mati, suicide")
	assert.True(t, crisis)
	assert.Equal(t, "nak mati", keyword)
}

func TestResponse(t *testing.T) {
	resp := Response("Aina")
	assert.True(t, strings.HasPrefix(resp, "Aina, AYRA really concerned"))
	assert.Contains(t, resp, "Befrienders KL")
	assert.Contains(t, resp, "15999")
	assert.Contains(t, resp, "999")
	assert.Contains(t, resp, "Please, Aina...")

	// Same name, same bytes: the reply is a deterministic template.
	assert.Equal(t, resp, Response("Aina"))
}

func TestResponse_DefaultName(t *testing.T) {
	assert.Contains(t, Response(""), DefaultName)
}
