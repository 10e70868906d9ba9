package dialogue

import (
	"context"
	"time"

	"hoteldesk_nlu/src/entity"
	"hoteldesk_nlu/src/intent"
	"hoteldesk_nlu/src/language"
	"hoteldesk_nlu/src/logger"
	"hoteldesk_nlu/src/model"
	"hoteldesk_nlu/src/response"
)

// SentimentScorer produces a per-turn sentiment score for an external
// analytics sink. It is an optional integration point; scoring failures are
// logged and never affect the turn.
type SentimentScorer interface {
	Score(ctx context.Context, text string) (float64, error)
}

// Options carries the manager's optional collaborators and tuning.
type Options struct {
	Scorer SentimentScorer
	// MaxHistoryTurns bounds per-session history when positive; zero keeps
	// the unbounded baseline behavior.
	MaxHistoryTurns int
}

// Manager orchestrates one turn of the dialogue pipeline: detect language,
// classify intent, extract entities, update session state and pick a reply.
type Manager struct {
	detector  *language.Detector
	strategy  intent.Strategy
	extractor *entity.Extractor
	generator *response.Generator
	registry  Registry
	opts      Options
}

// NewManager wires the pipeline components together.
func NewManager(detector *language.Detector, strategy intent.Strategy, extractor *entity.Extractor, generator *response.Generator, registry Registry, opts Options) *Manager {
	return &Manager{
		detector:  detector,
		strategy:  strategy,
		extractor: extractor,
		generator: generator,
		registry:  registry,
		opts:      opts,
	}
}

// ProcessMessage runs one synchronous turn and returns the structured reply.
// Every input yields a response; only registry failures surface as errors.
func (m *Manager) ProcessMessage(ctx context.Context, text, sessionID string) (*model.TurnResponse, error) {
	lang := m.detector.Detect(text)
	result := m.strategy.Classify(ctx, text, lang)
	entities := m.extractor.Extract(text, lang)
	reply := m.generator.Generate(result.Intent, lang)

	var score float64
	haveScore := false
	if m.opts.Scorer != nil {
		s, err := m.opts.Scorer.Score(ctx, text)
		if err != nil {
			logger.Warn().Err(err).Msg("sentiment scoring failed, skipping")
		} else {
			score, haveScore = s, true
		}
	}

	state, err := m.registry.Update(ctx, sessionID, func(s *model.DialogueState) {
		s.Language = lang
		s.PrimaryIntent = result.Intent

		for slot, value := range entities {
			if entity.Validate(slot, value) {
				s.CollectedEntities[slot] = value
			}
		}
		s.MissingSlots = model.MissingSlots(result.Intent, s.CollectedEntities)

		s.ConversationHistory = append(s.ConversationHistory, model.TurnRecord{
			Turn:      s.TurnCount,
			User:      text,
			Agent:     reply,
			Intent:    result.Intent,
			Timestamp: time.Now().UTC(),
		})
		s.TurnCount++
		if m.opts.MaxHistoryTurns > 0 && len(s.ConversationHistory) > m.opts.MaxHistoryTurns {
			s.ConversationHistory = s.ConversationHistory[len(s.ConversationHistory)-m.opts.MaxHistoryTurns:]
		}

		if haveScore {
			s.SentimentScores = append(s.SentimentScores, score)
		}
	})
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("session_id", sessionID).
		Str("intent", result.Intent).
		Str("language", lang).
		Int("turn", state.TurnCount).
		Msg("turn processed")

	return &model.TurnResponse{
		Message:      reply,
		Intent:       result.Intent,
		Confidence:   result.Confidence,
		Language:     lang,
		SessionID:    sessionID,
		TurnCount:    state.TurnCount,
		State:        model.StateActive,
		MissingSlots: state.MissingSlots,
	}, nil
}

// ClearSession removes all state for the session. Clearing an unknown
// session is a no-op.
func (m *Manager) ClearSession(ctx context.Context, sessionID string) error {
	return m.registry.Delete(ctx, sessionID)
}

// SessionState returns a snapshot of the session's dialogue state.
func (m *Manager) SessionState(ctx context.Context, sessionID string) (*model.DialogueState, bool, error) {
	return m.registry.Get(ctx, sessionID)
}
