package baseline

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// DefaultModel is the chat model used unless configured otherwise.
const DefaultModel = openai.GPT3Dot5Turbo

const (
	secPrompt = "You are a helpful assistant that fixes spelling errors in text. " +
		"You only ever respond with the corrected text and no additional information. " +
		"If there are no errors, you respond with the original text."
	sedsPrompt = "You are a helpful assistant that detects whether a text contains " +
		"a spelling error. You respond with ERROR if there is a spelling error, " +
		"and with NO_ERROR if there is none. " +
		"You do not add any additional information to your response."
)

// OpenAI corrects or classifies lines through an OpenAI-compatible chat
// completions API with a per-task system prompt.
type OpenAI struct {
	client *openai.Client
	model  string
	task   string
	system string
}

// NewOpenAI builds the baseline. The API key is required; task must be
// sec or seds.
func NewOpenAI(cfg Config) (*OpenAI, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: openai baseline requires an API key", ErrConfig)
	}
	var system string
	switch cfg.Task {
	case "sec":
		system = secPrompt
	case "seds":
		system = sedsPrompt
	default:
		return nil, fmt.Errorf("%w: unsupported task %q for openai baseline", ErrConfig, cfg.Task)
	}

	ocfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		ocfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	return &OpenAI{
		client: openai.NewClientWithConfig(ocfg),
		model:  model,
		task:   cfg.Task,
		system: system,
	}, nil
}

func (o *OpenAI) Name() string { return "openai" }

func (o *OpenAI) Correct(ctx context.Context, line string) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: o.system},
			{Role: openai.ChatMessageRoleUser, Content: line},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai: response contained no choices")
	}
	out := strings.Join(strings.Fields(resp.Choices[0].Message.Content), " ")

	if o.task == "seds" {
		if strings.Contains(out, "NO_ERROR") {
			return "0", nil
		}
		return "1", nil
	}
	return out, nil
}
