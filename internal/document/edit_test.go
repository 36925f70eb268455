package document

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isaacphi/tbprompt/internal/compiler"
	"github.com/isaacphi/tbprompt/internal/domain"
)

var charPath = domain.Path{Section: "sec_subject", Component: "comp_character", Attribute: "char_desc"}

func TestSetValue(t *testing.T) {
	orig := Sample()

	next, err := SetValue(orig, charPath, domain.Text("tiny robot"))
	require.NoError(t, err)

	attr, err := Lookup(next, charPath)
	require.NoError(t, err)
	assert.Equal(t, "tiny robot", attr.Value.String())
	assert.Empty(t, attr.ValueKo)
	assert.Contains(t, compiler.Compile(next, ""), "tiny robot, colorful small hiking backpack")

	// The input document is unchanged.
	assert.Equal(t, samplePrompt, compiler.Compile(orig, ""))
	before, err := Lookup(orig, charPath)
	require.NoError(t, err)
	assert.NotEmpty(t, before.ValueKo)
}

func TestClearValue(t *testing.T) {
	next, err := ClearValue(Sample(), charPath)
	require.NoError(t, err)
	assert.NotContains(t, compiler.Compile(next, ""), "skeleton character")
	assert.True(t, len(compiler.Compile(next, "")) > 0)
}

func TestSetWeight(t *testing.T) {
	next, err := SetWeight(Sample(), charPath, domain.Ptr(1.5))
	require.NoError(t, err)
	assert.Contains(t, compiler.Compile(next, ""), "adorable face::1.5, colorful")

	off, err := SetWeight(next, charPath, nil)
	require.NoError(t, err)
	assert.Equal(t, samplePrompt, compiler.Compile(off, ""))

	// Disabling a weight that was never set is a no-op.
	same, err := SetWeight(Sample(), charPath, nil)
	require.NoError(t, err)
	assert.Equal(t, samplePrompt, compiler.Compile(same, ""))
}

func TestSetActive(t *testing.T) {
	orig := Sample()

	noParams, err := SetActive(orig, domain.Path{Section: "sec_params"}, false)
	require.NoError(t, err)
	assert.NotContains(t, compiler.Compile(noParams, ""), "--ar")

	stylize := domain.Path{Section: "sec_params", Component: "comp_params", Attribute: "param_stylize"}
	withStylize, err := SetActive(orig, stylize, true)
	require.NoError(t, err)
	assert.Contains(t, compiler.Compile(withStylize, ""), "--ar 3:4 --v 7 --s 250")

	noProps, err := SetActive(orig, domain.Path{Section: "sec_subject", Component: "comp_props"}, false)
	require.NoError(t, err)
	assert.NotContains(t, compiler.Compile(noProps, ""), "wooden walking stick")

	assert.Equal(t, samplePrompt, compiler.Compile(orig, ""))
}

func TestToggle(t *testing.T) {
	path := domain.Path{Section: "sec_style"}

	off, err := Toggle(Sample(), path)
	require.NoError(t, err)
	active, err := IsActive(off, path)
	require.NoError(t, err)
	assert.False(t, active)
	assert.NotContains(t, compiler.Compile(off, ""), "Pixar")

	on, err := Toggle(off, path)
	require.NoError(t, err)
	assert.Equal(t, samplePrompt, compiler.Compile(on, ""))
}

func TestEdit_NotFound(t *testing.T) {
	tpl := Sample()

	_, err := SetValue(tpl, domain.Path{Section: "sec_subjct", Component: "comp_character", Attribute: "char_desc"}, domain.Text("x"))
	require.Error(t, err)
	assert.True(t, domain.IsNotFoundError(err))
	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "section", nf.Kind)
	assert.Contains(t, nf.Suggestions, "sec_subject")
	assert.Contains(t, err.Error(), "did you mean")

	_, err = SetActive(tpl, domain.Path{Section: "sec_subject", Component: "comp_nope"}, false)
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "component", nf.Kind)

	_, err = ClearValue(tpl, domain.Path{Section: "sec_subject", Component: "comp_character", Attribute: "missing"})
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "attribute", nf.Kind)

	_, err = SetValue(nil, charPath, domain.Text("x"))
	assert.True(t, domain.IsNotFoundError(err))
	_, err = SetActive(nil, charPath, true)
	assert.True(t, domain.IsNotFoundError(err))
	_, err = Toggle(nil, charPath)
	assert.True(t, domain.IsNotFoundError(err))
}

func TestSuggest(t *testing.T) {
	candidates := []string{"sec_subject", "sec_style", "sec_camera", "sec_environment", "sec_params"}

	assert.Equal(t, "sec_style", Suggest("style", candidates)[0])
	assert.LessOrEqual(t, len(Suggest("sec", candidates)), 3)
	assert.Empty(t, Suggest("zzz", candidates))
	assert.Nil(t, Suggest("", candidates))
	assert.Nil(t, Suggest("x", nil))
}

func TestValueFromInput(t *testing.T) {
	stylize, err := Lookup(Sample(), domain.Path{Section: "sec_params", Component: "comp_params", Attribute: "param_stylize"})
	require.NoError(t, err)
	var object domain.Attribute
	require.NoError(t, json.Unmarshal([]byte(`{"attr_id": "o", "value": {"a": 1}}`), &object))
	var wantObject domain.Value
	require.NoError(t, json.Unmarshal([]byte(`{"b": [2]}`), &wantObject))

	tests := []struct {
		name    string
		attr    *domain.Attribute
		input   string
		want    domain.Value
		wantErr string
	}{
		{name: "text", attr: &domain.Attribute{Value: domain.Text("old")}, input: " new value ", want: domain.Text("new value")},
		{name: "nil attribute", input: "x", want: domain.Text("x")},
		{name: "blank clears", attr: stylize, input: "  ", want: domain.Text("")},
		{name: "number", attr: stylize, input: "500", want: domain.Number(500)},
		{name: "bad number", attr: stylize, input: "lots", wantErr: `"lots" is not a number`},
		{name: "null number type", attr: &domain.Attribute{Type: "number"}, input: "1.5", want: domain.Number(1.5)},
		{name: "list", attr: &domain.Attribute{Value: domain.List("a")}, input: "red, , blue ,green", want: domain.List("red", "blue", "green")},
		{name: "bool", attr: &domain.Attribute{Value: domain.Bool(false)}, input: "true", want: domain.Bool(true)},
		{name: "bad bool", attr: &domain.Attribute{Value: domain.Bool(false)}, input: "maybe", wantErr: "not true or false"},
		{name: "object", attr: &object, input: `{"b": [2]}`, want: wantObject},
		{name: "bad object", attr: &object, input: `[1]`, wantErr: "not a JSON object"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValueFromInput(tt.attr, tt.input)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want.Kind(), got.Kind())
			assert.Equal(t, tt.want.String(), got.String())
			assert.Equal(t, tt.want.Items(), got.Items())
		})
	}
}
