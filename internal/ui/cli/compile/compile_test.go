package compile

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isaacphi/tbprompt/internal/domain"
)

const minimal = `{
  "prompt_sections": [
    {"section_id": "s", "section_label": "S", "components": [
      {"component_id": "c", "component_label": "C", "attributes": [
        {"attr_id": "a", "label": "A", "type": "text", "value": "%s"}
      ]}
    ]}
  ]
}`

func writeTemplate(t *testing.T, dir, name, value string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(fmt.Sprintf(minimal, value)), 0o644))
	return path
}

func TestCompileFiles_KeepsOrder(t *testing.T) {
	dir := t.TempDir()
	files := []string{
		writeTemplate(t, dir, "one.json", "first"),
		writeTemplate(t, dir, "two.json", "second"),
		writeTemplate(t, dir, "three.json", "third"),
	}

	prompts, err := compileFiles(context.Background(), files, "midjourney")
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second", "third"}, prompts)
}

func TestCompileFiles_FailsOnBadTemplate(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`"not an object"`), 0o644))

	_, err := compileFiles(context.Background(), []string{writeTemplate(t, dir, "ok.json", "x"), bad}, "midjourney")
	require.Error(t, err)
	assert.True(t, domain.IsParseError(err))
}

func TestPrintPrompts(t *testing.T) {
	var single bytes.Buffer
	printPrompts(&single, []string{"a.json"}, []string{"a prompt"})
	assert.Equal(t, "a prompt\n", single.String())

	var multi bytes.Buffer
	printPrompts(&multi, []string{"a.json", "b.json"}, []string{"first", "second"})
	assert.Equal(t, "==> a.json <==\nfirst\n\n==> b.json <==\nsecond\n", multi.String())
}
