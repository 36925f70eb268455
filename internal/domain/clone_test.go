package domain

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cloneFixture() *Template {
	return &Template{
		MetaData:       &MetaData{Name: "fixture", Tags: []string{"a", "b"}},
		GlobalSettings: &GlobalSettings{PromptSeparator: ", ", RemoveDuplicates: true},
		Variables:      json.RawMessage(`{"x":1}`),
		Sections: []*Section{
			nil,
			{
				ID:     "s",
				Active: Ptr(true),
				Components: []*Component{{
					ID: "c",
					Attributes: []*Attribute{
						nil,
						{
							ID:      "a",
							Value:   List("red", "blue"),
							Options: Options{PlainOption("red"), {Value: "blue", Label: "Blue"}},
							Prefix:  Ptr("--c "),
							Weight:  &Weight{Enabled: true, Value: Ptr(2.0)},
						},
					},
				}},
			},
		},
	}
}

func TestTemplate_CloneIsDeep(t *testing.T) {
	orig := cloneFixture()
	clone := orig.Clone()

	origJSON, err := json.Marshal(orig)
	require.NoError(t, err)
	cloneJSON, err := json.Marshal(clone)
	require.NoError(t, err)
	assert.JSONEq(t, string(origJSON), string(cloneJSON))

	clone.MetaData.Tags[0] = "changed"
	clone.GlobalSettings.RemoveDuplicates = false
	clone.Variables[2] = 'y'
	clone.Sections[1].ID = "changed"
	*clone.Sections[1].Active = false
	attr := clone.Sections[1].Components[0].Attributes[1]
	*attr.Prefix = "changed"
	*attr.Weight.Value = 9
	attr.Options[0] = PlainOption("changed")

	after, err := json.Marshal(orig)
	require.NoError(t, err)
	if diff := cmp.Diff(string(origJSON), string(after)); diff != "" {
		t.Errorf("clone shares state with original (-before +after):\n%s", diff)
	}

	assert.Nil(t, clone.Sections[0])
	assert.Nil(t, clone.Sections[1].Components[0].Attributes[0])
}

func TestTemplate_CloneNil(t *testing.T) {
	var tpl *Template
	assert.Nil(t, tpl.Clone())

	empty := (&Template{}).Clone()
	assert.Nil(t, empty.Sections)
	assert.Nil(t, empty.MetaData)
}
