package edit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isaacphi/tbprompt/internal/document"
	"github.com/isaacphi/tbprompt/internal/domain"
	"github.com/isaacphi/tbprompt/internal/shared"
)

func TestLoadOrNew(t *testing.T) {
	dir := t.TempDir()

	fresh, err := loadOrNew(filepath.Join(dir, "forest walk.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "forest walk", fresh.MetaData.Name)
	assert.Empty(t, fresh.Sections)

	existing := filepath.Join(dir, "sample.json")
	require.NoError(t, shared.SaveTemplate(existing, document.Sample()))
	loaded, err := loadOrNew(existing)
	require.NoError(t, err)
	assert.Equal(t, document.Sample().MetaData.Name, loaded.MetaData.Name)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("nope"), 0o644))
	_, err = loadOrNew(bad)
	assert.True(t, domain.IsParseError(err))
}
