package bot

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/ayra-my/ayra/internal/gamify"
	"github.com/ayra-my/ayra/internal/pipeline"
	"github.com/ayra-my/ayra/internal/storage"
)

// Bot is the Telegram delivery surface. It owns one pipeline session per
// chat and renders whatever the orchestrator produces as plain text.
type Bot struct {
	api          *tgbotapi.BotAPI
	orchestrator *pipeline.Orchestrator
	store        storage.Storage
	vault        storage.Vault
	logger       *zap.Logger

	mu         sync.Mutex
	sessions   map[int64]*pipeline.Session
	newSession func() *pipeline.Session
}

func New(token string, orchestrator *pipeline.Orchestrator, store storage.Storage, vault storage.Vault, newSession func() *pipeline.Session, logger *zap.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	return &Bot{
		api:          api,
		orchestrator: orchestrator,
		store:        store,
		vault:        vault,
		logger:       logger,
		sessions:     make(map[int64]*pipeline.Session),
		newSession:   newSession,
	}, nil
}

func (b *Bot) Start() error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	// Messages are handled in arrival order: sessions are stateful and the
	// fatigue gate depends on seeing messages sequentially.
	for update := range updates {
		if update.Message == nil {
			continue
		}

		b.handleMessage(update.Message)
	}

	return nil
}

func (b *Bot) handleMessage(message *tgbotapi.Message) {
	ctx := context.Background()

	if message.IsCommand() {
		switch message.Command() {
		case "start":
			b.handleStart(ctx, message)
			return
		case "help":
			b.handleHelp(message)
			return
		case "stats":
			b.handleStats(ctx, message)
			return
		case "nama":
			b.handleSetProfile(ctx, message, "name")
			return
		case "birthday":
			b.handleSetProfile(ctx, message, "birthday")
			return
		}
		// Anything else (incl. the easter-egg commands) goes through the
		// pipeline, which matches on the full text.
	}

	text := message.Text
	if message.Caption != "" {
		text = message.Caption
	}
	if text == "" {
		return
	}

	sess := b.sessionFor(message.Chat.ID)

	reply, err := b.orchestrator.Process(ctx, sess, text)
	if err != nil {
		// A reply is always produced; the error reports persistence trouble
		// that must not withhold it (crisis resources especially).
		b.logger.Error("Pipeline error",
			zap.Error(err),
			zap.Int64("chat_id", message.Chat.ID),
			zap.String("backend", reply.Backend))
	}

	b.sendReply(message.Chat.ID, reply.Text, reply.Backend)
}

func (b *Bot) sessionFor(chatID int64) *pipeline.Session {
	b.mu.Lock()
	defer b.mu.Unlock()

	sess, ok := b.sessions[chatID]
	if !ok {
		sess = b.newSession()
		b.sessions[chatID] = sess
	}
	return sess
}

func (b *Bot) handleStart(ctx context.Context, message *tgbotapi.Message) {
	name, err := b.store.GetProfile(ctx, "name")
	if err != nil {
		b.logger.Error("Failed to read profile name", zap.Error(err))
	}
	if name == "" {
		name = "awak"
	}

	welcome := fmt.Sprintf(`%s

AYRA di sini untuk %s. 💜 Borak je apa-apa, atau cuba:
/cerita - mula cerita bersama
/dream - AYRA cerita mimpi
/ais-krim - treat untuk awak
/level - friendship level kita
/help - senarai penuh`, gamify.Greeting(time.Now()), name)

	b.sendMessage(message.Chat.ID, welcome)
}

func (b *Bot) handleHelp(message *tgbotapi.Message) {
	help := `Available commands:
/start - Sapa AYRA
/help - Senarai ni
/stats - Statistik sembang
/nama <nama> - Bagitau AYRA nama awak
/birthday <tarikh> - Bagitau AYRA birthday awak

Easter eggs:
/ais-krim /penat /cerita /sambung /mood /level /badges /dream /food /trending

Selain tu, taip je apa-apa - AYRA layan. 😊`

	b.sendMessage(message.Chat.ID, help)
}

func (b *Bot) handleStats(ctx context.Context, message *tgbotapi.Message) {
	count, err := b.store.GetStat(ctx, "total_messages")
	if err != nil {
		b.logger.Error("Failed to read stats",
			zap.Error(err),
			zap.Int64("chat_id", message.Chat.ID))
		b.sendErrorMessage(message.Chat.ID, "Maaf, tak dapat baca statistik sekarang.")
		return
	}

	level, levelName := gamify.LevelFromMessages(count)
	vaultStats := b.vault.Stats()

	var sb strings.Builder
	fmt.Fprintf(&sb, "📊 Statistik sembang kita:\n\n")
	fmt.Fprintf(&sb, "Mesej: %d\n", count)
	fmt.Fprintf(&sb, "Level %d · %s\n", level, levelName)
	fmt.Fprintf(&sb, "Memori disimpan: %d (%d penting)", vaultStats.TotalMemories, vaultStats.ImportantCount)

	b.sendMessage(message.Chat.ID, sb.String())
}

func (b *Bot) handleSetProfile(ctx context.Context, message *tgbotapi.Message, key string) {
	value := strings.TrimSpace(message.CommandArguments())
	if value == "" {
		b.sendMessage(message.Chat.ID, fmt.Sprintf("Taip sekali dengan command ya, contoh: /%s Aina", message.Command()))
		return
	}

	if err := b.store.SetProfile(ctx, key, value); err != nil {
		b.logger.Error("Failed to save profile",
			zap.Error(err),
			zap.String("key", key),
			zap.Int64("chat_id", message.Chat.ID))
		b.sendErrorMessage(message.Chat.ID, "Maaf, tak dapat simpan sekarang. Cuba lagi ya.")
		return
	}

	if key == "name" {
		b.sendMessage(message.Chat.ID, fmt.Sprintf("Noted, %s! AYRA ingat dah. 😊", value))
		return
	}
	b.sendMessage(message.Chat.ID, "Noted! AYRA ingat dah. 😊")
}

// sendReply renders a pipeline reply. Model-generated turns carry a via-line
// naming the backend; canned paths (crisis, easter eggs, fatigue) do not.
func (b *Bot) sendReply(chatID int64, text, backend string) {
	switch backend {
	case pipeline.BackendCrisis, pipeline.BackendEgg, pipeline.BackendFatigue:
	default:
		text = text + "\n\n— via " + backend
	}
	b.sendMessage(chatID, text)
}

func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("Failed to send message",
			zap.Error(err),
			zap.Int64("chat_id", chatID))
	}
}

func (b *Bot) sendErrorMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, "⚠️ "+text)
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("Failed to send error message",
			zap.Error(err),
			zap.Int64("chat_id", chatID))
	}
}
