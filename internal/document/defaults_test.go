package document

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isaacphi/tbprompt/internal/compiler"
	"github.com/isaacphi/tbprompt/internal/domain"
)

const samplePrompt = "cute anthropomorphic skeleton character, big expressive round eye sockets, friendly smile, " +
	"smooth white bone texture, chibi proportions, adorable face, colorful small hiking backpack, " +
	"sturdy brown hiking boots, red bandana around neck, casual outdoor vest, wooden walking stick, " +
	"sunny mountain trail, lush green pine trees, rocky path, bright blue sky with fluffy white clouds, " +
	"nature scenery, bright natural sunlight, soft shadows, warm cinematic lighting, volumetric sun rays, " +
	"high key lighting, medium full shot, slightly low angle to show adventure, depth of field background blur, " +
	"Pixar animation style, Disney aesthetic, 3D rendering, Unreal Engine 5, Octane Render, high fidelity, " +
	"vibrant colors, cute aesthetic --ar 3:4 --v 7"

func TestSample_Compiles(t *testing.T) {
	tpl := Sample()
	assert.Equal(t, samplePrompt, compiler.Compile(tpl, "midjourney"))
}

func TestSample_ReturnsFreshCopies(t *testing.T) {
	a := Sample()
	a.Sections[0].Components[0].Attributes[0].Value = domain.Text("a robot")
	a.Sections = a.Sections[:1]

	b := Sample()
	assert.Len(t, b.Sections, 5)
	assert.Equal(t, samplePrompt, compiler.Compile(b, "midjourney"))
}

func TestDefault(t *testing.T) {
	tpl := Default()
	require.NotNil(t, tpl.MetaData)
	require.NotNil(t, tpl.GlobalSettings)

	assert.Equal(t, "New Template", tpl.MetaData.Name)
	assert.Equal(t, "midjourney", tpl.GlobalSettings.DefaultPlatform)
	assert.True(t, tpl.GlobalSettings.RemoveDuplicates)
	assert.Empty(t, tpl.Sections)
	assert.Equal(t, "", compiler.Compile(tpl, "midjourney"))
}

func TestNew(t *testing.T) {
	a := New("Forest Spirits")
	b := New("")

	assert.Equal(t, "Forest Spirits", a.MetaData.Name)
	assert.Equal(t, "New Template", b.MetaData.Name)

	assert.True(t, strings.HasPrefix(a.MetaData.ID, "tpl_"))
	assert.Len(t, a.MetaData.ID, len("tpl_")+12)
	assert.NotEqual(t, a.MetaData.ID, b.MetaData.ID)
}
