package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttribute_RoundTripKeepsBytes(t *testing.T) {
	input := `{"value":1.50,"attr_id":"a","x_custom":{"deep":[1,2]},"is_active":"no","weight":{"enabled":true,"value":"2","unit":"x"}}`

	var a Attribute
	require.NoError(t, json.Unmarshal([]byte(input), &a))
	assert.Equal(t, "a", a.ID)
	assert.Equal(t, 1.5, a.Value.num)
	assert.Nil(t, a.Active)
	require.NotNil(t, a.Weight)
	assert.Equal(t, 2.0, *a.Weight.Value)

	data, err := json.Marshal(a)
	require.NoError(t, err)
	assert.Equal(t, input, string(data))
}

func TestAttribute_EditedFieldsAreRewritten(t *testing.T) {
	input := `{"attr_id":"a","value":"fox","value_ko":"여우","is_active":"no","weight":{"enabled":false,"unit":"x"}}`

	var a Attribute
	require.NoError(t, json.Unmarshal([]byte(input), &a))
	next := a.Clone()
	next.Value = Text("wolf")
	next.ValueKo = ""
	next.Active = Ptr(false)
	next.Weight.Enabled = true
	next.Weight.Value = Ptr(1.5)
	next.Label = "Animal"

	data, err := json.Marshal(next)
	require.NoError(t, err)
	assert.Equal(t, `{"attr_id":"a","value":"wolf","is_active":false,"weight":{"enabled":true,"unit":"x","value":1.5},"label":"Animal"}`, string(data))

	// The original is untouched.
	data, err = json.Marshal(a)
	require.NoError(t, err)
	assert.Equal(t, input, string(data))
}

func TestSection_NewStructEncodesAllRequiredKeys(t *testing.T) {
	data, err := json.Marshal(Section{ID: "s", Order: 0})
	require.NoError(t, err)
	assert.Equal(t, `{"section_id":"s","section_label":"","components":[]}`, string(data))
}

func TestTemplate_LenientDecoding(t *testing.T) {
	input := `{"meta_data":"nope","global_settings":{"remove_duplicates":"yes"},"prompt_sections":["x",{"section_id":"s","order":"-3","components":{"a":1}}]}`

	var tpl Template
	require.NoError(t, json.Unmarshal([]byte(input), &tpl))
	assert.Nil(t, tpl.MetaData)
	require.NotNil(t, tpl.GlobalSettings)
	assert.False(t, tpl.GlobalSettings.RemoveDuplicates)
	require.Len(t, tpl.Sections, 1)
	assert.Equal(t, -3.0, tpl.Sections[0].Order)
	assert.Empty(t, tpl.Sections[0].Components)

	data, err := json.Marshal(tpl)
	require.NoError(t, err)
	assert.Equal(t, input, string(data))
}

func TestTemplate_NonArraySectionsBecomeEmpty(t *testing.T) {
	var tpl Template
	require.NoError(t, json.Unmarshal([]byte(`{"prompt_sections":"x","other":1}`), &tpl))
	assert.NotNil(t, tpl.Sections)
	assert.Empty(t, tpl.Sections)

	data, err := json.Marshal(tpl)
	require.NoError(t, err)
	assert.Equal(t, `{"prompt_sections":[],"other":1}`, string(data))
}

func TestWeight_IgnoresNonNumericValue(t *testing.T) {
	for _, input := range []string{`{"enabled":true,"value":"heavy"}`, `{"enabled":true,"value":"NaN"}`, `{"enabled":true,"value":[2]}`} {
		var w Weight
		require.NoError(t, json.Unmarshal([]byte(input), &w), input)
		assert.True(t, w.Enabled)
		assert.Nil(t, w.Value, input)
	}
}
