package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/anthropic"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/isaacphi/tbprompt/internal/config"
)

// Client sends single-turn prompts to the configured model.
type Client struct {
	llm      llms.Model
	modelCfg config.Model
}

// Request is one completion call.
type Request struct {
	Prompt string
	// JSON asks the provider for a JSON object reply where supported.
	JSON bool
	// Stream, when set, receives text chunks as they arrive.
	Stream func(chunk string) error
}

// NewClient builds a client for the active model in cfg. A missing API key is
// reported before any provider client is created.
func NewClient(ctx context.Context, cfg *config.ConfigSchema) (*Client, error) {
	modelCfg, ok := cfg.Models[cfg.ActiveModel]
	if !ok {
		return nil, fmt.Errorf("model %q not found in configuration", cfg.ActiveModel)
	}

	apiKey, err := ResolveAPIKey(modelCfg.Provider, cfg.APIKey)
	if err != nil {
		return nil, err
	}

	var llm llms.Model
	switch modelCfg.Provider {
	case config.ProviderOpenAI:
		llm, err = openai.New(
			openai.WithModel(modelCfg.Name),
			openai.WithToken(apiKey),
		)
	case config.ProviderAnthropic:
		llm, err = anthropic.New(
			anthropic.WithModel(modelCfg.Name),
			anthropic.WithToken(apiKey),
		)
	case config.ProviderGoogleAI:
		llm, err = googleai.New(
			ctx,
			googleai.WithDefaultModel(modelCfg.Name),
			googleai.WithAPIKey(apiKey),
		)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", modelCfg.Provider)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create %s client", modelCfg.Provider)
	}

	return NewWithModel(llm, modelCfg), nil
}

// NewWithModel wraps an existing langchaingo model.
func NewWithModel(llm llms.Model, modelCfg config.Model) *Client {
	return &Client{
		llm:      llm,
		modelCfg: modelCfg,
	}
}

func (c *Client) GetConfig() config.Model {
	return c.modelCfg
}

// Complete sends req and returns the text of the first choice.
func (c *Client) Complete(ctx context.Context, req Request) (string, error) {
	opts := []llms.CallOption{
		llms.WithTemperature(c.modelCfg.Temperature),
	}
	if c.modelCfg.MaxTokens > 0 {
		opts = append(opts, llms.WithMaxTokens(c.modelCfg.MaxTokens))
	}
	if req.JSON {
		opts = append(opts, llms.WithJSONMode())
	}
	if req.Stream != nil {
		opts = append(opts, llms.WithStreamingFunc(func(ctx context.Context, chunk []byte) error {
			return req.Stream(string(chunk))
		}))
	}

	msgs := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeHuman, req.Prompt),
	}

	slog.Debug("sending prompt",
		"provider", c.modelCfg.Provider,
		"model", c.modelCfg.Name,
		"json", req.JSON,
		"length", len(req.Prompt))

	resp, err := c.llm.GenerateContent(ctx, msgs, opts...)
	if err != nil {
		return "", errors.Wrap(err, "generate content")
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("no response choices returned")
	}

	text := strings.TrimSpace(resp.Choices[0].Content)
	slog.Debug("received reply",
		"stopReason", resp.Choices[0].StopReason,
		"length", len(text))

	return text, nil
}
