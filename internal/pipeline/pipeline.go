package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ayra-my/ayra/internal/crisis"
	"github.com/ayra-my/ayra/internal/egg"
	"github.com/ayra-my/ayra/internal/gamify"
	"github.com/ayra-my/ayra/internal/models"
	"github.com/ayra-my/ayra/internal/router"
	"github.com/ayra-my/ayra/internal/storage"
)

// Fixed backend labels for the canned terminal paths.
const (
	BackendCrisis  = "Crisis Alert"
	BackendEgg     = "Easter Egg"
	BackendFatigue = "Fatigue"
)

const (
	fatigueReply = "AYRA: Kejap eh awak, Ayra nak 'recharge' jap. awak pun pergilah rehat, asyik tengok skrin jer!"

	// comfortThreshold flips the comfort-mode flag when the smoothed mood
	// drops below it.
	comfortThreshold = -0.1

	// contextTurns is how many stored turns feed the model context.
	contextTurns = 5

	statTotalMessages = "total_messages"
)

// Orchestrator sequences the per-message pipeline: crisis check, command
// interception, fatigue gate, generation, persistence. One message is
// fully processed before the next; there is no mid-flight cancellation.
type Orchestrator struct {
	store  storage.Storage
	vault  storage.Vault
	router *router.Router
	eggs   *egg.Interpreter
	logger *zap.Logger
	now    func() time.Time
}

func NewOrchestrator(store storage.Storage, vault storage.Vault, r *router.Router, eggs *egg.Interpreter, logger *zap.Logger) *Orchestrator {
	return &Orchestrator{
		store:  store,
		vault:  vault,
		router: r,
		eggs:   eggs,
		logger: logger,
		now:    time.Now,
	}
}

// Process runs one message through the pipeline. The returned Reply is
// always usable as a chat response; a non-nil error reports persistence
// trouble the caller should surface without withholding the reply (the
// crisis path in particular must still show its resources).
func (o *Orchestrator) Process(ctx context.Context, sess *Session, text string) (models.Reply, error) {
	sess.append(models.RoleUser, text)

	// Safety first: a crisis match short-circuits everything else.
	if isCrisis, keyword := crisis.Detect(text); isCrisis {
		return o.crisisTurn(ctx, sess, text, keyword)
	}

	if result := o.eggs.Interpret(ctx, text); result.Matched {
		return o.eggTurn(ctx, sess, text, result)
	}

	if sess.Fatigue.Check(o.now()) {
		reply := models.Reply{Text: fatigueReply, Backend: BackendFatigue}
		err := o.finishTurn(ctx, sess, text, reply, sess.MoodScore)
		return reply, err
	}

	return o.generateTurn(ctx, sess, text)
}

func (o *Orchestrator) crisisTurn(ctx context.Context, sess *Session, text, keyword string) (models.Reply, error) {
	o.logger.Warn("Crisis keyword detected", zap.String("keyword", keyword))

	// The audit record is a safety requirement: its failure fails the
	// turn, but the resources reply is still produced for display.
	auditErr := o.store.LogCrisisEvent(ctx, text, keyword)
	if auditErr != nil {
		o.logger.Error("Failed to write crisis audit record", zap.Error(auditErr))
		auditErr = fmt.Errorf("crisis audit write failed: %w", auditErr)
	}

	name, err := o.store.GetProfile(ctx, "name")
	if err != nil {
		o.logger.Error("Failed to read profile name", zap.Error(err))
		name = ""
	}

	reply := models.Reply{Text: crisis.Response(name), Backend: BackendCrisis}
	if err := o.finishTurn(ctx, sess, text, reply, sess.MoodScore); err != nil {
		if auditErr == nil {
			auditErr = err
		}
	}
	return reply, auditErr
}

func (o *Orchestrator) eggTurn(ctx context.Context, sess *Session, text string, result egg.Result) (models.Reply, error) {
	replyText := result.Text

	// Level and badge replies depend on live stats the interpreter does
	// not own, so it defers them to us.
	if result.Dynamic != egg.DynamicNone {
		count, err := o.store.GetStat(ctx, statTotalMessages)
		if err != nil {
			o.logger.Error("Failed to read message stat", zap.Error(err))
		}
		switch result.Dynamic {
		case egg.DynamicLevel:
			replyText = gamify.LevelReply(count)
		case egg.DynamicBadges:
			replyText = gamify.BadgesReply(count)
		}
	}

	reply := models.Reply{Text: replyText, Backend: BackendEgg}
	err := o.finishTurn(ctx, sess, text, reply, sess.MoodScore)
	return reply, err
}

func (o *Orchestrator) generateTurn(ctx context.Context, sess *Session, text string) (models.Reply, error) {
	history, err := o.contextWindow(ctx)
	if err != nil {
		o.logger.Error("Failed to load conversation context", zap.Error(err))
		// Generation still proceeds; a missing window degrades quality,
		// not correctness.
	}

	profile := o.profile(ctx)

	replyText, backend := o.router.Route(ctx, text, history, profile)

	newMood := sess.Mood.Update(text)
	sess.MoodScore = newMood
	sess.ComfortMode = newMood < comfortThreshold

	reply := models.Reply{Text: replyText, Backend: backend}
	persistErr := o.finishTurn(ctx, sess, text, reply, newMood)

	if err := o.vault.SaveConversation(ctx, text, replyText, newMood, backend, storage.IsImportant(text)); err != nil {
		o.logger.Error("Failed to save to vault", zap.Error(err))
	}
	if err := o.store.IncrementStat(ctx, statTotalMessages, 1); err != nil {
		o.logger.Error("Failed to increment message stat", zap.Error(err))
	}

	return reply, persistErr
}

// finishTurn appends the assistant reply to the live history and durably
// records the turn. Turn persistence is retried once before surfacing.
func (o *Orchestrator) finishTurn(ctx context.Context, sess *Session, text string, reply models.Reply, moodScore float64) error {
	sess.append(models.RoleAssistant, reply.Text)

	turn := &models.Turn{
		ID:        uuid.New().String(),
		UserText:  text,
		ReplyText: reply.Text,
		MoodScore: moodScore,
		Backend:   reply.Backend,
		CreatedAt: o.now(),
	}

	err := o.store.SaveTurn(ctx, turn)
	if err != nil {
		o.logger.Warn("Turn persistence failed, retrying once",
			zap.Error(err),
			zap.String("turn_id", turn.ID))
		err = o.store.SaveTurn(ctx, turn)
	}
	if err != nil {
		o.logger.Error("Failed to persist turn",
			zap.Error(err),
			zap.String("turn_id", turn.ID),
			zap.String("backend", reply.Backend))
		return fmt.Errorf("failed to persist turn: %w", err)
	}

	return nil
}

// contextWindow rebuilds the role-tagged window from the stored turns,
// oldest first.
func (o *Orchestrator) contextWindow(ctx context.Context) ([]models.ChatMessage, error) {
	turns, err := o.store.GetRecentTurns(ctx, contextTurns)
	if err != nil {
		return nil, err
	}

	window := make([]models.ChatMessage, 0, len(turns)*2)
	for _, turn := range turns {
		window = append(window,
			models.ChatMessage{Role: models.RoleUser, Content: turn.UserText},
			models.ChatMessage{Role: models.RoleAssistant, Content: turn.ReplyText},
		)
	}
	return window, nil
}

func (o *Orchestrator) profile(ctx context.Context) map[string]string {
	profile := make(map[string]string, 2)
	for _, key := range []string{"name", "birthday"} {
		value, err := o.store.GetProfile(ctx, key)
		if err != nil {
			o.logger.Error("Failed to read profile", zap.Error(err), zap.String("key", key))
			continue
		}
		if value != "" {
			profile[key] = value
		}
	}
	return profile
}
