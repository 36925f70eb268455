package shared

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isaacphi/tbprompt/internal/compiler"
	"github.com/isaacphi/tbprompt/internal/document"
	"github.com/isaacphi/tbprompt/internal/domain"
)

func TestSaveAndLoadTemplate(t *testing.T) {
	dir := t.TempDir()
	sample := document.Sample()

	for _, name := range []string{"tpl.json", "tpl.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, SaveTemplate(path, sample))

			loaded, err := LoadTemplate(path)
			require.NoError(t, err)
			assert.Equal(t, compiler.Compile(sample, "midjourney"), compiler.Compile(loaded, "midjourney"))
			assert.Empty(t, cmp.Diff(sample.MetaData, loaded.MetaData, cmpopts.IgnoreUnexported(domain.MetaData{})))
		})
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "temp files are cleaned up")
}

func TestEncode_YAMLKeepsFieldOrder(t *testing.T) {
	out, err := Encode("tpl.yml", document.Sample())
	require.NoError(t, err)

	text := string(out)
	assert.NotContains(t, text, "{")
	meta := strings.Index(text, "meta_data:")
	sections := strings.Index(text, "prompt_sections:")
	require.GreaterOrEqual(t, meta, 0)
	require.GreaterOrEqual(t, sections, 0)
	assert.Less(t, meta, sections)
}

func TestLoadTemplate_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadTemplate(filepath.Join(dir, "missing.json"))
	assert.ErrorContains(t, err, "failed to read template")

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`[1, 2]`), 0o644))
	_, err = LoadTemplate(bad)
	assert.True(t, domain.IsParseError(err))
	assert.Contains(t, err.Error(), bad)
}

func TestIsYAML(t *testing.T) {
	assert.True(t, IsYAML("a.yaml"))
	assert.True(t, IsYAML("a.YML"))
	assert.False(t, IsYAML("a.json"))
	assert.False(t, IsYAML("-"))
}
