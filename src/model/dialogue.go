package model

import "time"

// StateActive is the dialogue state reported for every processed turn. The
// richer state flags on DialogueState are extension points and are not driven
// by the turn-processing path.
const StateActive = "active"

// TurnRecord is a single user/agent exchange in a conversation history.
// Turn is the zero-based index of the exchange.
type TurnRecord struct {
	Turn      int       `json:"turn"`
	User      string    `json:"user"`
	Agent     string    `json:"agent"`
	Intent    string    `json:"intent"`
	Timestamp time.Time `json:"timestamp"`
}

// DialogueState maintains the state of an ongoing conversation. It is owned
// exclusively by the session registry; callers only ever see copies.
type DialogueState struct {
	SessionID      string `json:"session_id"`
	ConversationID string `json:"conversation_id"`

	Language      string   `json:"language"`
	PrimaryIntent string   `json:"primary_intent"`
	SubIntents    []string `json:"sub_intents"`

	// Slot filling
	CollectedEntities map[string]any `json:"collected_entities"`
	MissingSlots      []string       `json:"missing_slots"`

	// Context
	ConversationHistory []TurnRecord `json:"conversation_history"`
	TurnCount           int          `json:"turn_count"`

	// State flags
	ConfirmationPending bool `json:"confirmation_pending"`
	BookingConfirmed    bool `json:"booking_confirmed"`
	EscalationRequired  bool `json:"escalation_required"`

	// Sentiment tracking
	SentimentScores []float64 `json:"sentiment_scores"`

	CreatedAt int64 `json:"created_at"`
	UpdatedAt int64 `json:"updated_at"`
}

// Clone returns a deep copy of the state so registry internals never leak to
// callers.
func (s *DialogueState) Clone() *DialogueState {
	if s == nil {
		return nil
	}
	out := *s
	// The three-index slice keeps empty slices empty instead of nil.
	out.SubIntents = append(s.SubIntents[:0:0], s.SubIntents...)
	out.MissingSlots = append(s.MissingSlots[:0:0], s.MissingSlots...)
	out.ConversationHistory = append(s.ConversationHistory[:0:0], s.ConversationHistory...)
	out.SentimentScores = append(s.SentimentScores[:0:0], s.SentimentScores...)
	out.CollectedEntities = make(map[string]any, len(s.CollectedEntities))
	for k, v := range s.CollectedEntities {
		out.CollectedEntities[k] = v
	}
	return &out
}

// TurnResponse is the structured reply returned for every processed message.
type TurnResponse struct {
	Message      string   `json:"message"`
	Intent       string   `json:"intent"`
	Confidence   float64  `json:"confidence"`
	Language     string   `json:"language"`
	SessionID    string   `json:"session_id"`
	TurnCount    int      `json:"turn_count"`
	State        string   `json:"state"`
	MissingSlots []string `json:"missing_slots"`
}
