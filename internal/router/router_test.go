package router

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ayra-my/ayra/internal/models"
)

type fakeBackend struct {
	reply   string
	err     error
	lastReq Request
}

func (f *fakeBackend) Generate(ctx context.Context, req Request) (string, error) {
	f.lastReq = req
	return f.reply, f.err
}

func TestClassify(t *testing.T) {
	tests := []struct {
		prompt string
		want   Kind
	}{
		{"debug this function", KindCoding},
		{"macam mana nak calculate compound interest", KindCoding},
		{"is it ethical to ghost a client", KindEthics},
		{"tolong draft formal letter untuk boss", KindEthics},
		{"apa khabar hari ni", KindChat},
		{"", KindChat},
	}

	for _, tt := range tests {
		t.Run(tt.prompt, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.prompt))
		})
	}
}

func TestKindLabels(t *testing.T) {
	assert.Equal(t, LabelGemini, KindChat.Label())
	assert.Equal(t, LabelDeepSeek, KindCoding.Label())
	assert.Equal(t, LabelClaude, KindEthics.Label())
}

func TestRoute_SelectsBackendByKeyword(t *testing.T) {
	r := New(zap.NewNop(), time.Second)
	chat := &fakeBackend{reply: "hai!"}
	coding := &fakeBackend{reply: "try a breakpoint"}
	r.Register(KindChat, chat)
	r.Register(KindCoding, coding)

	reply, label := r.Route(context.Background(), "debug this function", nil, nil)
	assert.Equal(t, "try a breakpoint", reply)
	assert.Equal(t, LabelDeepSeek, label)

	reply, label = r.Route(context.Background(), "apa khabar", nil, nil)
	assert.Equal(t, "hai!", reply)
	assert.Equal(t, LabelGemini, label)
}

func TestRoute_NotConfiguredDegrades(t *testing.T) {
	r := New(zap.NewNop(), time.Second)
	r.Register(KindChat, &fakeBackend{reply: "hai"})

	reply, label := r.Route(context.Background(), "is it ethical to lie", nil, nil)
	assert.Equal(t, notConfiguredReply, reply)
	assert.Equal(t, LabelClaude, label)
}

func TestRoute_FailureBecomesApology(t *testing.T) {
	r := New(zap.NewNop(), time.Second)
	r.Register(KindChat, &fakeBackend{err: errors.New("status 500: upstream down")})

	reply, label := r.Route(context.Background(), "hello", nil, nil)
	assert.Contains(t, reply, "Maaf, AYRA ada masalah teknikal")
	assert.Contains(t, reply, "upstream down")
	assert.Equal(t, LabelGemini, label)
}

func TestRoute_PassesContextAndProfile(t *testing.T) {
	r := New(zap.NewNop(), time.Second)
	chat := &fakeBackend{reply: "ok"}
	r.Register(KindChat, chat)

	history := []models.ChatMessage{
		{Role: models.RoleUser, Content: "hi"},
		{Role: models.RoleAssistant, Content: "hai!"},
	}
	profile := map[string]string{"name": "Aina"}

	_, _ = r.Route(context.Background(), "tell me more", history, profile)
	require.Equal(t, history, chat.lastReq.History)
	assert.Equal(t, profile, chat.lastReq.Profile)
	assert.Equal(t, "tell me more", chat.lastReq.Prompt)
}

func TestTrimHistory(t *testing.T) {
	var history []models.ChatMessage
	for i := 0; i < 10; i++ {
		history = append(history, models.ChatMessage{Role: models.RoleUser, Content: string(rune('a' + i))})
	}

	trimmed := trimHistory(history)
	require.Len(t, trimmed, historyWindow)
	assert.Equal(t, "e", trimmed[0].Content)
	assert.Equal(t, "j", trimmed[len(trimmed)-1].Content)
}

func TestProfileBlock(t *testing.T) {
	assert.Empty(t, profileBlock(nil))
	assert.Empty(t, profileBlock(map[string]string{"name": ""}))

	block := profileBlock(map[string]string{"name": "Aina", "birthday": "12 March"})
	assert.Contains(t, block, "- birthday: 12 March")
	assert.Contains(t, block, "- name: Aina")
}
