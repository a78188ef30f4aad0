// Package session drives one shopping conversation: it runs the extractors,
// calls the model for a reply, reconciles the preference record, and
// classifies each turn's action.
package session

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/shopsense/shopsense/internal/extract"
	"github.com/shopsense/shopsense/internal/lexicon"
	"github.com/shopsense/shopsense/internal/llm"
	"github.com/shopsense/shopsense/internal/prefs"
)

const (
	fallbackErrorReply = "I'm having trouble responding right now. Please try again."
	fallbackEmptyReply = "Sorry, I didn't understand that. Can you rephrase?"
)

// Config carries the session knobs that are not dependencies.
type Config struct {
	// FuzzyThreshold is the partial-ratio score a lexicon match must
	// exceed. Zero means the default.
	FuzzyThreshold int
}

// Session owns the per-conversation state. It is not safe for concurrent
// Turn calls; the driver serializes turns.
type Session struct {
	id        string
	logger    *slog.Logger
	llm       llm.Responder
	lexicons  *lexicon.Store
	freeform  *extract.FreeForm
	record    *prefs.Record
	history   []llm.Message
	threshold int
}

// TurnResult is what the driver needs to render one turn.
type TurnResult struct {
	Reply  string
	Action Action
}

func New(responder llm.Responder, lexicons *lexicon.Store, logger *slog.Logger, cfg Config) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	threshold := cfg.FuzzyThreshold
	if threshold <= 0 {
		threshold = extract.DefaultThreshold
	}
	id := uuid.NewString()
	return &Session{
		id:        id,
		logger:    logger.With("session_id", id),
		llm:       responder,
		lexicons:  lexicons,
		freeform:  extract.NewFreeForm(responder, logger),
		record:    prefs.NewRecord(),
		threshold: threshold,
	}
}

// ID returns the session's identifier.
func (s *Session) ID() string { return s.id }

// Record returns the current preference record. The caller must treat it as
// read-only; it is replaced wholesale at the end of each turn.
func (s *Session) Record() *prefs.Record { return s.record }

// Turn processes one user utterance end to end. The committed record only
// changes when the whole turn has run, so a failure mid-turn leaves the
// previous state intact apart from the fallback reply. Turn itself never
// returns an error: model failures degrade to fixed fallback replies.
func (s *Session) Turn(ctx context.Context, userText string) TurnResult {
	lex := s.lexicons.Current()
	working := s.record.Clone()

	deterministic := extract.Deterministic(userText, lex, s.threshold)
	working.Reconcile(deterministic, prefs.Update{})

	reply, err := s.llm.Reply(ctx, llm.MessageInput{
		Text:         userText,
		SystemPrompt: assistantPrompt(working, userText),
		History:      s.history,
	})
	switch {
	case err != nil:
		s.logger.Warn("reply call failed", "error", err)
		reply = fallbackErrorReply
	case reply == "":
		s.logger.Warn("model returned an empty reply")
		reply = fallbackEmptyReply
	default:
		// Free-form extraction reads the exchange, so it only runs when
		// the model actually produced one.
		working.Reconcile(nil, s.freeform.Extract(ctx, userText, reply, lex))
	}

	s.history = append(s.history,
		llm.Message{Role: llm.RoleUser, Content: userText},
		llm.Message{Role: llm.RoleAssistant, Content: reply},
	)
	s.record = working

	action := SelectAction(reply)
	s.logger.Info("turn complete",
		"action", string(action),
		"complete", working.Complete(),
		"history_len", len(s.history))
	return TurnResult{Reply: reply, Action: action}
}
