package egg

import (
	"context"
	"math/rand"
	"strings"

	"github.com/ayra-my/ayra/internal/models"
)

// MemoryReader is the narrative slice of the interaction store the
// interpreter needs for /sambung and /dream.
type MemoryReader interface {
	GetLatestStory(ctx context.Context) (*models.Story, error)
	AppendStory(ctx context.Context, storyID int64, content string) error
	SaveStory(ctx context.Context, title, content string) (int64, error)
	SaveDream(ctx context.Context, text string) error
	GetRandomDream(ctx context.Context) (*models.Dream, error)
}

// Dynamic marks a command whose reply depends on stats the interpreter does
// not own; the orchestrator fills it in.
type Dynamic string

const (
	DynamicNone   Dynamic = ""
	DynamicLevel  Dynamic = "level"
	DynamicBadges Dynamic = "badges"
)

// Result of interpreting a message. Matched=false means "not a command,
// fall through to normal processing".
type Result struct {
	Matched bool
	Text    string
	Dynamic Dynamic
}

var iceCreamJokes = []string{
	"🍦 AYRA: Nah, virtual ais krim! Tapi jangan banyak-banyak, nanti batuk!",
	"🍦 AYRA bagi you ais krim percuma! Tapi awas, ni ais krim lawak—kenapa orang Melayu suka WhatsApp? Sebab kat situ ada 'kek'! 😆",
	"🍦 Rasa apa hari ni? AYRA ada flavor 'Cappucino Ceria' dan 'Chocolate Pening'.",
}

var moods = []string{
	"macam teh tarik – manis, creamy, ada rasa pahit sikit.",
	"seperti nasi lemak – biasa tapi memuaskan.",
	"macam cuaca pagi ni – segar dan bertenaga!",
	"sedikit nostalgic, teringat cite lama.",
}

var foods = []string{
	"🍜 Nasi Lemak Antarabangsa kat Kampung Baru! Queue panjang, tapi berbaloi.",
	"🍜 Laksa Penang kat kedai 'Laksa Siam Kak Long' PJ – sedap gila!",
	"🍜 Roti Canai dengan teh tarik – classic gila.",
	"🍜 Cendol durian kat SS15 – power!",
}

// Dream texts are stored without the moon prefix; rendering adds it.
var dreams = []string{
	"Semalam AYRA mimpi pelik – abang jadi superhero pakai baju Melayu, terbang kat atas KLCC!",
	"AYRA mimpi kat Malaysia menang Piala Dunia! AYRA sorak sampai hilang suara.",
	"Dalam mimpi, AYRA dengan abang pegi bazaar ramadan, tapi semua orang jual virtual reality games.",
	"AYRA mimpi jadi Perdana Menteri sehari. AYRA bagi ucapan pakai baju kurung power!",
}

var continuations = []string{
	"Bila dia dekat, gerai tu hilang macam asap, tinggal satu kunci emas kat atas meja.",
	"Tiba-tiba hujan lebat, dan pakcik gerai tu senyum: \"Dah lama pakcik tunggu awak.\"",
	"Dari dalam gerai tu keluar kucing oren yang boleh cakap: \"Jangan makan mee tu!\"",
}

const (
	nurseReply = "🩺 AYRA (Nurse Mode): Aduh, sakit mana? Jom check suhu... 37.5°C sikit naik. " +
		"Rehat dulu sayang. Nak AYRA bacakan doa? Atau nak ubat virtual? 💊"
	storyOpener = "📖 AYRA: Pada suatu masa di Kuala Lumpur, ada seorang hero bernama [Abang/Sayang] yang sangat baik hati. " +
		"Satu hari, masa lalu di Jalan Alor, terjumpa satu gerai misteri... Nak sambung cerita? Taip /sambung"
	noStoryReply  = "📖 AYRA: Belum ada cerita yang disimpan. Taip /cerita dulu ya!"
	trendingReply = "📈 Hari ni kat Twitter Malaysia tengah viral pasal #HargaMinyakNaikLagi. Nak AYRA summarise?"
)

// Interpreter maps literal slash-commands to canned or memory-derived
// replies, independent of any model backend. Randomness is injected so
// tests can pin the draw.
type Interpreter struct {
	memory MemoryReader
	rng    *rand.Rand
}

func NewInterpreter(memory MemoryReader, rng *rand.Rand) *Interpreter {
	return &Interpreter{memory: memory, rng: rng}
}

// Interpret matches text against the command set. Matching is
// case-insensitive after trimming whitespace; anything unrecognized falls
// through with Matched=false. Memory lookups that find nothing (or fail)
// resolve into graceful fallback replies, never errors.
func (i *Interpreter) Interpret(ctx context.Context, text string) Result {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "/ais-krim":
		return Result{Matched: true, Text: i.pick(iceCreamJokes)}
	case "/penat":
		return Result{Matched: true, Text: nurseReply}
	case "/cerita":
		return Result{Matched: true, Text: i.startStory(ctx)}
	case "/sambung":
		return Result{Matched: true, Text: i.continueStory(ctx)}
	case "/mood":
		return Result{Matched: true, Text: "🎭 Mood AYRA hari ni " + i.pick(moods)}
	case "/level":
		return Result{Matched: true, Dynamic: DynamicLevel}
	case "/badges":
		return Result{Matched: true, Dynamic: DynamicBadges}
	case "/dream":
		return Result{Matched: true, Text: i.dream(ctx)}
	case "/food":
		return Result{Matched: true, Text: i.pick(foods)}
	case "/trending":
		return Result{Matched: true, Text: trendingReply}
	default:
		return Result{}
	}
}

func (i *Interpreter) startStory(ctx context.Context) string {
	// A failed save still returns the opener; the next /sambung will fall
	// back to the no-story reply.
	_, _ = i.memory.SaveStory(ctx, "User Story", storyOpener)
	return storyOpener
}

func (i *Interpreter) continueStory(ctx context.Context) string {
	story, err := i.memory.GetLatestStory(ctx)
	if err != nil || story == nil {
		return noStoryReply
	}

	next := i.pick(continuations)
	if err := i.memory.AppendStory(ctx, story.ID, "\n\n"+next); err != nil {
		return noStoryReply
	}

	return "📖 Sambungan: " + next + " ... apa jadi seterusnya? (Taip /sambung lagi atau /tamat)"
}

func (i *Interpreter) dream(ctx context.Context) string {
	dream, err := i.memory.GetRandomDream(ctx)
	if err == nil && dream != nil {
		return "🌙 " + dream.Text
	}

	invented := i.pick(dreams)
	_ = i.memory.SaveDream(ctx, invented)
	return "🌙 " + invented
}

func (i *Interpreter) pick(candidates []string) string {
	return candidates[i.rng.Intn(len(candidates))]
}
