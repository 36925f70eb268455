package shared

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/isaacphi/tbprompt/internal/appState"
	"github.com/isaacphi/tbprompt/internal/assistant"
	"github.com/isaacphi/tbprompt/internal/config"
	"github.com/isaacphi/tbprompt/internal/document"
	"github.com/isaacphi/tbprompt/internal/domain"
	"github.com/isaacphi/tbprompt/internal/llm"
)

// InitializeAssistant builds the language model client for the active model
// and wraps it in an assistant.
func InitializeAssistant(ctx context.Context, cfg *config.ConfigSchema) (*assistant.Assistant, error) {
	if cfg == nil {
		app, ok := appState.TryGet()
		if !ok {
			return nil, fmt.Errorf("configuration not loaded")
		}
		cfg = app.Config
	}

	client, err := llm.NewClient(ctx, cfg)
	if err != nil {
		return nil, err
	}

	a, err := assistant.New(client, cfg.Editor.RewriteInstruction)
	if err != nil {
		return nil, fmt.Errorf("failed to create assistant: %w", err)
	}
	return a, nil
}

// ReadTemplateFile returns the raw content at path, or stdin when path is "-".
func ReadTemplateFile(path string) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read template: %w", err)
	}
	return data, nil
}

// LoadTemplate reads a template from path, or from stdin when path is "-".
func LoadTemplate(path string) (*domain.Template, error) {
	data, err := ReadTemplateFile(path)
	if err != nil {
		return nil, err
	}

	t, err := document.ParseFile(path, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// SaveTemplate writes t to path in the format its extension names. The file
// is replaced atomically so a watcher never sees a partial write.
func SaveTemplate(path string, t *domain.Template) error {
	data, err := Encode(path, t)
	if err != nil {
		return err
	}
	if path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".tbprompt-*")
	if err != nil {
		return fmt.Errorf("failed to write template: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write template: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write template: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to write template: %w", err)
	}
	return nil
}

// Encode returns t as indented JSON, or as YAML for .yaml and .yml paths.
func Encode(path string, t *domain.Template) ([]byte, error) {
	data, err := document.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("failed to encode template: %w", err)
	}
	if !IsYAML(path) {
		return append(data, '\n'), nil
	}

	// Decoding into a node keeps the field order of the JSON encoding.
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("failed to encode template: %w", err)
	}
	blockStyle(&node)
	out, err := yaml.Marshal(&node)
	if err != nil {
		return nil, fmt.Errorf("failed to encode template: %w", err)
	}
	return out, nil
}

func IsYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}
