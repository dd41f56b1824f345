package gamify

import "time"

// Greeting returns a time-of-day greeting, with approximate Ramadan
// awareness (March 10 through April 9).
func Greeting(now time.Time) string {
	hour := now.Hour()
	month := now.Month()
	day := now.Day()

	isRamadan := (month == time.March && day >= 10) || (month == time.April && day <= 9)

	if isRamadan {
		switch {
		case hour < 5:
			return "Dah sahur ke? Jangan lupa makan, nanti tak larat puasa."
		case hour < 6:
			return "Sahur last call! Kejap lagi imsak."
		case hour >= 18 && hour < 20:
			return "Dah nak berbuka! Jangan lupa kurma and air kosong."
		default:
			return "Selamat berpuasa! Ada apa AYRA boleh tolong?"
		}
	}

	switch {
	case hour >= 5 && hour < 11:
		return "Selamat pagi, Abang/Sayang! Dah sarapan?"
	case hour >= 11 && hour < 14:
		return "Jom lunch! Lapar tak?"
	case hour >= 14 && hour < 17:
		return "Selamat petang! Camne hari ni?"
	case hour >= 17 && hour < 19:
		return "Dah nak maghrib, jangan lupa solat."
	case hour >= 19 && hour < 23:
		return "Selamat malam! Ada apa-apa?"
	default:
		return "Wah, still bangun? Jaga kesihatan tau."
	}
}
