// Package assistant connects templates to the language model: whole-document
// rewrites and quick Korean/English translation.
package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/isaacphi/tbprompt/internal/document"
	"github.com/isaacphi/tbprompt/internal/domain"
	"github.com/isaacphi/tbprompt/internal/llm"
	"github.com/isaacphi/tbprompt/internal/prompt"
)

// DefaultInstruction is used by Rewrite when no instruction is given.
const DefaultInstruction = "Optimize the values for image generation and translate them to English."

// Completer is the part of llm.Client the assistant needs.
type Completer interface {
	Complete(ctx context.Context, req llm.Request) (string, error)
}

type Assistant struct {
	completer          Completer
	prompts            *prompt.Manager
	defaultInstruction string
}

// New returns an assistant. A blank defaultInstruction falls back to
// DefaultInstruction.
func New(completer Completer, defaultInstruction string) (*Assistant, error) {
	prompts, err := prompt.NewManager()
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(defaultInstruction) == "" {
		defaultInstruction = DefaultInstruction
	}
	return &Assistant{
		completer:          completer,
		prompts:            prompts,
		defaultInstruction: defaultInstruction,
	}, nil
}

// Rewrite asks the model for an optimized version of t and merges the reply
// into a new document. t is never modified; on any failure the caller keeps
// its current document.
func (a *Assistant) Rewrite(ctx context.Context, t *domain.Template, instruction string) (*domain.Template, error) {
	instruction = strings.TrimSpace(instruction)
	if instruction == "" {
		instruction = a.defaultInstruction
	}

	current, err := json.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("failed to encode template: %w", err)
	}

	text, err := a.prompts.Render(prompt.Rewrite, map[string]string{
		"Template":    string(current),
		"Instruction": instruction,
	})
	if err != nil {
		return nil, err
	}

	reply, err := a.completer.Complete(ctx, llm.Request{Prompt: text, JSON: true})
	if err != nil {
		return nil, a.serviceError("rewrite", err)
	}
	if reply == "" {
		return nil, a.serviceError("rewrite", fmt.Errorf("empty reply"))
	}

	next, err := document.MergeRewrite(t, []byte(reply))
	if err != nil {
		return nil, a.serviceError("rewrite", err)
	}

	slog.Info("template rewritten",
		"instruction", instruction,
		"sections", len(next.Sections))
	return next, nil
}

// Translate converts text between Korean and English. Blank input returns ""
// without calling the model.
func (a *Assistant) Translate(ctx context.Context, text string, stream func(string) error) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}

	body, err := a.prompts.Render(prompt.Translate, map[string]string{"Text": text})
	if err != nil {
		return "", err
	}

	reply, err := a.completer.Complete(ctx, llm.Request{Prompt: body, Stream: stream})
	if err != nil {
		return "", a.serviceError("translate", err)
	}
	if reply == "" {
		return "", a.serviceError("translate", fmt.Errorf("empty reply"))
	}
	return reply, nil
}

func (a *Assistant) serviceError(op string, err error) error {
	slog.Error("assistant request failed", "op", op, "error", err)
	return &domain.ServiceError{Op: op, Err: err}
}
