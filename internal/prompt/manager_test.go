package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_Builtins(t *testing.T) {
	m, err := NewManager()
	require.NoError(t, err)
	assert.Equal(t, []string{Rewrite, Translate}, m.Names())

	out, err := m.Render(Rewrite, map[string]string{
		"Template":    `{"prompt_sections":[]}`,
		"Instruction": "make it rainy",
	})
	require.NoError(t, err)
	assert.Contains(t, out, "CURRENT TEMPLATE:\n{\"prompt_sections\":[]}")
	assert.Contains(t, out, "USER REQUEST:\nmake it rainy")

	out, err = m.Render(Translate, map[string]string{"Text": "안녕하세요"})
	require.NoError(t, err)
	assert.Contains(t, out, "Text: 안녕하세요")
}

func TestManager_RenderDoesNotEscape(t *testing.T) {
	m, err := NewManager()
	require.NoError(t, err)

	out, err := m.Render(Translate, map[string]string{"Text": `<a href="x">&</a>`})
	require.NoError(t, err)
	assert.Contains(t, out, `<a href="x">&</a>`)
}

func TestManager_Errors(t *testing.T) {
	m, err := NewManager()
	require.NoError(t, err)

	_, err = m.Render("missing", nil)
	assert.ErrorContains(t, err, `unknown template "missing"`)

	_, err = m.Render(Rewrite, map[string]string{"Template": "{}"})
	assert.ErrorContains(t, err, `missing variable "Instruction"`)

	m.Register(&Template{Name: "broken", Template: "{{.Text"})
	_, err = m.Render("broken", map[string]string{"Text": "x"})
	assert.ErrorContains(t, err, "parsing template broken")
}
