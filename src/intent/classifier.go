package intent

import (
	"context"

	"hoteldesk_nlu/src/logger"
	"hoteldesk_nlu/src/model"
)

// Strategy classifies one message into an intent. Implementations absorb
// their own failures: Classify always produces a result, degrading confidence
// instead of erroring the turn.
type Strategy interface {
	Classify(ctx context.Context, text, language string) model.IntentResult
}

// Backend is an external classification service consulted when no rule
// matches. It receives the message and the closed list of allowed intent
// labels.
type Backend interface {
	Classify(ctx context.Context, text string, allowed []string) (model.IntentResult, error)
}

// RuleClassifier is the two-tier classifier: an ordered regex rule table
// first, then an optional statistical backend.
type RuleClassifier struct {
	rules   []intentRule
	backend Backend
}

// NewRuleClassifier builds the rule classifier. backend may be nil, in which
// case unmatched messages get the fixed fallback result.
func NewRuleClassifier(backend Backend) *RuleClassifier {
	return &RuleClassifier{rules: ruleTable, backend: backend}
}

// Classify runs the rule tier and, only when nothing matched, the backend.
func (c *RuleClassifier) Classify(ctx context.Context, text, language string) model.IntentResult {
	for _, rule := range c.rules {
		for _, pattern := range rule.patterns {
			if pattern.MatchString(text) {
				logger.Debug().Str("intent", rule.intent).Msg("rule-based match")
				return model.IntentResult{
					Intent:     rule.intent,
					Confidence: 0.95,
					Method:     model.MethodRuleBased,
				}
			}
		}
	}

	if c.backend == nil {
		return model.IntentResult{
			Intent:     model.IntentInformationRequest,
			Confidence: 0.5,
			Method:     model.MethodFallback,
		}
	}

	result, err := c.backend.Classify(ctx, text, RuleIntents())
	if err != nil {
		logger.Warn().Err(err).Msg("classification backend failed, using fallback intent")
		return model.IntentResult{
			Intent:     model.IntentInformationRequest,
			Confidence: 0.5,
			Method:     model.MethodErrorFallback,
		}
	}
	return result
}
