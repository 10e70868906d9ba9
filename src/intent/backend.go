package intent

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cloudwego/eino-ext/components/model/ollama"
	"github.com/cloudwego/eino-ext/components/model/openai"
	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"hoteldesk_nlu/src/model"
)

const classifierSystemPrompt = `You are an intent classifier for a hotel receptionist AI.`

const classifierUserPrompt = `Classify the intent of this hotel guest message.

Message: "{input_text}"

Possible intents:
{allowed_intents}

Respond ONLY with a JSON object in this format:
{{"intent": "intent_name", "confidence": 0.95}}`

// ModelBackend classifies messages through a chat model behind an eino
// template→model chain. Any failure is returned to the caller, which maps it
// to the fixed fallback result; nothing here ever blocks past the timeout.
type ModelBackend struct {
	chain   compose.Runnable[map[string]any, *schema.Message]
	timeout time.Duration
}

// NewModelBackend wires the configured provider into a classification chain.
func NewModelBackend(ctx context.Context, config model.ClassifierConfig, apiKey string) (*ModelBackend, error) {
	chatModel, err := buildChatModel(ctx, config, apiKey)
	if err != nil {
		return nil, err
	}

	template := prompt.FromMessages(schema.FString,
		schema.SystemMessage(classifierSystemPrompt),
		schema.UserMessage(classifierUserPrompt),
	)

	chain, err := compose.NewChain[map[string]any, *schema.Message]().
		AppendChatTemplate(template).
		AppendChatModel(chatModel).
		Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("error creating classification chain: %w", err)
	}

	return &ModelBackend{
		chain:   chain,
		timeout: time.Duration(config.TimeoutSeconds) * time.Second,
	}, nil
}

func buildChatModel(ctx context.Context, config model.ClassifierConfig, apiKey string) (einomodel.BaseChatModel, error) {
	switch config.Provider {
	case "openai":
		maxTokens := config.MaxTokens
		temperature := float32(config.Temperature)
		chatModel, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
			APIKey:      apiKey,
			BaseURL:     config.BaseURL,
			Model:       config.Model,
			MaxTokens:   &maxTokens,
			Temperature: &temperature,
		})
		if err != nil {
			return nil, fmt.Errorf("error creating openai chat model: %w", err)
		}
		return chatModel, nil
	case "ollama":
		chatModel, err := ollama.NewChatModel(ctx, &ollama.ChatModelConfig{
			BaseURL: config.BaseURL,
			Model:   config.Model,
		})
		if err != nil {
			return nil, fmt.Errorf("error creating ollama chat model: %w", err)
		}
		return chatModel, nil
	default:
		return nil, fmt.Errorf("unknown classifier provider: %s", config.Provider)
	}
}

// backendReply is the JSON shape the model is instructed to return.
type backendReply struct {
	Intent     string  `json:"intent"`
	Confidence float64 `json:"confidence"`
}

// Classify sends the message and the allowed intent labels to the model and
// parses the structured reply.
func (b *ModelBackend) Classify(ctx context.Context, text string, allowed []string) (model.IntentResult, error) {
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	out, err := b.chain.Invoke(ctx, map[string]any{
		"input_text":      text,
		"allowed_intents": "- " + strings.Join(allowed, "\n- "),
	})
	if err != nil {
		return model.IntentResult{}, fmt.Errorf("backend invocation failed: %w", err)
	}

	reply, err := parseReply(out.Content)
	if err != nil {
		return model.IntentResult{}, err
	}

	if !slices.Contains(allowed, reply.Intent) {
		return model.IntentResult{}, fmt.Errorf("backend returned unknown intent: %s", reply.Intent)
	}
	if reply.Confidence < 0 || reply.Confidence > 1 {
		return model.IntentResult{}, fmt.Errorf("backend returned out-of-range confidence: %f", reply.Confidence)
	}

	return model.IntentResult{
		Intent:     reply.Intent,
		Confidence: reply.Confidence,
		Method:     model.MethodAIBased,
	}, nil
}

// parseReply tolerates prose around the JSON object by slicing from the
// first '{' to the last '}'.
func parseReply(content string) (*backendReply, error) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object in backend reply")
	}

	var reply backendReply
	if err := sonic.Unmarshal([]byte(content[start:end+1]), &reply); err != nil {
		return nil, fmt.Errorf("failed to parse backend reply: %w", err)
	}
	if reply.Intent == "" {
		return nil, fmt.Errorf("backend reply missing intent")
	}
	return &reply, nil
}
