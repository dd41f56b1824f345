package router

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ayra-my/ayra/internal/models"
)

const (
	// DefaultTimeout bounds a single generation call; expiry is folded
	// into the apology path like any other provider failure.
	DefaultTimeout = 60 * time.Second

	notConfiguredReply = "Maaf, model tu belum dikonfigurasi lagi. Minta admin set API key dia dulu ya! Sementara tu, AYRA tetap ada. 😊"
)

// Router selects exactly one backend per prompt by keyword classification
// and shields callers from provider failures: every call yields some reply
// plus the label of the backend that answered (or would have).
type Router struct {
	backends map[Kind]Backend
	timeout  time.Duration
	logger   *zap.Logger
}

func New(logger *zap.Logger, timeout time.Duration) *Router {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Router{
		backends: make(map[Kind]Backend),
		timeout:  timeout,
		logger:   logger,
	}
}

// Register installs a backend for a kind. Unregistered non-default kinds
// degrade to a fixed not-configured reply at routing time.
func (r *Router) Register(kind Kind, backend Backend) {
	r.backends[kind] = backend
}

// Route classifies the prompt, invokes the selected backend and returns
// (reply, backend label). It never returns an error: provider failures
// become an apologetic reply carrying the raw error detail.
func (r *Router) Route(ctx context.Context, prompt string, history []models.ChatMessage, profile map[string]string) (string, string) {
	kind := Classify(prompt)
	label := kind.Label()

	backend, ok := r.backends[kind]
	if !ok {
		if kind == KindChat {
			// The default backend missing is a deployment error, not a
			// degradation the user should route around.
			r.logger.Error("Default backend not registered")
			return r.apology(fmt.Errorf("default backend not registered")), label
		}
		r.logger.Warn("Backend not configured, degrading",
			zap.String("backend", label))
		return notConfiguredReply, label
	}

	callCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	reply, err := backend.Generate(callCtx, Request{
		Prompt:  prompt,
		History: history,
		Profile: profile,
	})
	if err != nil {
		r.logger.Error("Backend generation failed",
			zap.Error(err),
			zap.String("backend", label))
		return r.apology(err), label
	}

	return reply, label
}

func (r *Router) apology(err error) string {
	return fmt.Sprintf("Maaf, AYRA ada masalah teknikal: %v", err)
}
