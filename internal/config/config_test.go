package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"TBPROMPT_API_KEY", "TBPROMPT_APIKEY", "TBPROMPT_MODEL", "TBPROMPT_ACTIVEMODEL",
		"TBPROMPT_PLATFORM", "TBPROMPT_EDITOR_PLATFORM", "TBPROMPT_LOG_LEVEL", "TBPROMPT_LOG_FILE",
	} {
		t.Setenv(name, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(Paths{}, nil)
	require.NoError(t, err)

	assert.Equal(t, "gemini", cfg.ActiveModel)
	assert.Equal(t, Model{Provider: ProviderGoogleAI, Name: "gemini-2.5-flash", MaxTokens: 8192, Temperature: 0.7}, cfg.Model())
	assert.Equal(t, []string{"claude", "gemini", "gpt"}, cfg.ModelNames())
	assert.Equal(t, "WARN", cfg.Log.LogLevel)
	assert.Equal(t, "midjourney", cfg.Editor.Platform)
	assert.NotEmpty(t, cfg.Editor.RewriteInstruction)
	assert.Equal(t, []string{"q", "ctrl+c"}, cfg.KeyMap.Quit)
	assert.Empty(t, cfg.Warnings)
}

func TestLoad_FilePrecedence(t *testing.T) {
	clearEnv(t)
	root := t.TempDir()
	paths := Paths{Global: filepath.Join(root, "global"), Local: filepath.Join(root, "local")}

	writeFile(t, paths.Global, "models.tbprompt.yaml", `
models:
  local:
    provider: openai
    name: llama3
activeModel: local
log:
  level: INFO
keyMap:
  quit: ["Q"]
`)
	writeFile(t, paths.Local, "a.tbprompt.json", `{"log": {"level": "DEBUG"}, "editor": {"platform": "niji"}}`)
	writeFile(t, paths.Local, "ignored.yaml", `activeModel: gpt`)

	cfg, err := Load(paths, nil)
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.ActiveModel)
	assert.Equal(t, "llama3", cfg.Model().Name)
	assert.Len(t, cfg.Models, 4, "file models merge with the defaults")
	assert.Equal(t, "DEBUG", cfg.Log.LogLevel, "local files override global ones")
	assert.Equal(t, "niji", cfg.Editor.Platform)
	assert.Equal(t, []string{"q", "ctrl+c", "Q"}, cfg.KeyMap.Quit, "lists combine")
}

func TestLoad_EnvironmentOverridesFiles(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, "x.tbprompt.yaml", "activeModel: gpt\nlog:\n  level: INFO\n")

	t.Setenv("TBPROMPT_MODEL", "claude")
	t.Setenv("TBPROMPT_LOG_LEVEL", "ERROR")
	t.Setenv("TBPROMPT_API_KEY", "sk-test")

	cfg, err := Load(Paths{Local: dir}, nil)
	require.NoError(t, err)
	assert.Equal(t, "claude", cfg.ActiveModel)
	assert.Equal(t, "ERROR", cfg.Log.LogLevel)
	assert.Equal(t, "sk-test", cfg.APIKey)
}

func TestLoad_RuntimeOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("TBPROMPT_LOG_LEVEL", "ERROR")

	model := "gpt"
	level := "debug"
	key := "flag-key"
	temp := 0.2
	platform := "niji"

	cfg, err := Load(Paths{}, &RuntimeOverrides{
		ActiveModel: &model,
		LogLevel:    &level,
		APIKey:      &key,
		Temperature: &temp,
		Platform:    &platform,
	})
	require.NoError(t, err)
	assert.Equal(t, "gpt", cfg.ActiveModel)
	assert.Equal(t, "DEBUG", cfg.Log.LogLevel)
	assert.Equal(t, "flag-key", cfg.APIKey)
	assert.Equal(t, 0.2, cfg.Model().Temperature)
	assert.Equal(t, "niji", cfg.Editor.Platform)

	unknown := "nope"
	_, err = Load(Paths{}, &RuntimeOverrides{ActiveModel: &unknown})
	assert.ErrorContains(t, err, `model "nope" not found`)
}

func TestLoad_ValidationErrors(t *testing.T) {
	clearEnv(t)

	cases := map[string]string{
		"unknown active model": "activeModel: missing\n",
		"bad provider":         "models:\n  gemini:\n    provider: cohere\n",
		"bad log level":        "log:\n  level: LOUD\n",
		"bad temperature":      "models:\n  gpt:\n    temperature: 5\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, "bad.tbprompt.yaml", content)
			_, err := Load(Paths{Local: dir}, nil)
			assert.Error(t, err)
		})
	}
}

func TestLoad_UnknownKeysWarn(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, "x.tbprompt.yaml", "colour: blue\nmodels:\n  gpt:\n    flavour: x\n")

	cfg, err := Load(Paths{Local: dir}, nil)
	require.NoError(t, err)
	require.Len(t, cfg.Warnings, 2)
	assert.Contains(t, cfg.Warnings[0], `"colour"`)
	assert.Contains(t, cfg.Warnings[1], `"models.gpt.flavour"`)
}

func TestLoad_TypeMismatch(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, "x.tbprompt.yaml", "models: 3\n")

	_, err := Load(Paths{Local: dir}, nil)
	assert.ErrorContains(t, err, "type mismatch")
}

func TestKnownKeys(t *testing.T) {
	known := GetKnownKeys()

	for _, key := range []string{"activemodel", "apikey", "log.level", "editor.rewriteinstruction", "keymap.quit", "models.anything.provider"} {
		assert.True(t, IsKnownKey(known, key), key)
	}
	for _, key := range []string{"warnings", "models.x.colour", "log.colour", "theme"} {
		assert.False(t, IsKnownKey(known, key), key)
	}
}

func TestPrintConfig(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, "x.tbprompt.yaml", "apiKey: sk-secret\nlog:\n  level: INFO\n")

	cfg, err := Load(Paths{Local: dir}, nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	cfg.PrintConfig(&buf, "", true)
	out := buf.String()

	assert.Contains(t, out, "apiKey: [REDACTED]")
	assert.NotContains(t, out, "sk-secret")
	assert.Contains(t, out, "  level: \"INFO\" # ("+filepath.Join(dir, "x.tbprompt.yaml")+")")
	assert.Contains(t, out, "activeModel: \"gemini\" # (default)")
	assert.Contains(t, out, "quit: [\"q\", \"ctrl+c\"]")

	buf.Reset()
	cfg.PrintConfig(&buf, "log", false)
	assert.Equal(t, "log:\n  level: \"INFO\"\n  file: \"\"\n", buf.String())
}

func TestGenerateJSONSchema(t *testing.T) {
	schema, err := GenerateJSONSchema()
	require.NoError(t, err)

	data, err := json.Marshal(schema)
	require.NoError(t, err)
	assert.Contains(t, string(data), "activeModel")
	assert.Contains(t, string(data), "rewriteInstruction")
	assert.NotContains(t, string(data), "Warnings")
}

func TestKeyMap_Action(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(Paths{}, nil)
	require.NoError(t, err)

	assert.Equal(t, KeyActionQuit, cfg.KeyMap.Action("q"))
	assert.Equal(t, KeyActionToggle, cfg.KeyMap.Action(" "))
	assert.Equal(t, KeyActionDown, cfg.KeyMap.Action("down"))
	assert.Equal(t, "", cfg.KeyMap.Action("F12"))
}
