package crisis

import "strings"

// Trigger phrases, checked in declaration order: the first match is the one
// reported, so ordering here is load-bearing for the audit log.
var keywords = []string{
	// Malay / Manglish
	"bunuh diri", "nak mati", "nak bunuh diri", "tak nak hidup",
	"putus asa", "tak guna hidup", "malas nak hidup", "give up",
	"nak mati je", "habiskan nyawa", "tak tau nak buat apa",
	"stress sangat", "down sangat", "sedih sangat",

	// English
	"suicide", "kill myself", "end my life", "want to die",
	"hopeless", "worthless", "can't go on", "no reason to live",

	// Alerts
	"tolong saya", "i need help", "emergency", "kecemasan",
}

// Detect reports whether text contains a crisis trigger and, if so, the
// first matching keyword. Matching is case-insensitive substring search.
// Empty input is never a crisis.
func Detect(text string) (bool, string) {
	if text == "" {
		return false, ""
	}

	lower := strings.ToLower(strings.TrimSpace(text))
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true, kw
		}
	}
	return false, ""
}

// Contains is a boolean-only convenience over Detect.
func Contains(text string) bool {
	crisis, _ := Detect(text)
	return crisis
}
