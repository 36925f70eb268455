package document

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/isaacphi/tbprompt/internal/domain"
)

func TestResolveDisplay(t *testing.T) {
	options := domain.Options{
		{Value: "16:9", Label: "Widescreen", LabelKo: "와이드"},
		{Value: "1:1", Label: "Square"},
		{Value: "4:5"},
		domain.PlainOption("3:2"),
	}

	cases := []struct {
		name    string
		attr    *domain.Attribute
		current domain.Value
		want    string
	}{
		{
			name:    "localized value wins",
			attr:    &domain.Attribute{ValueKo: "여우", Options: options},
			current: domain.Text("16:9"),
			want:    "여우",
		},
		{
			name:    "option localized label",
			attr:    &domain.Attribute{Options: options},
			current: domain.Text("16:9"),
			want:    "와이드",
		},
		{
			name:    "option label without localization",
			attr:    &domain.Attribute{Options: options},
			current: domain.Text("1:1"),
			want:    "Square",
		},
		{
			name:    "option without labels",
			attr:    &domain.Attribute{Options: options},
			current: domain.Text("4:5"),
			want:    "4:5",
		},
		{
			name:    "plain option",
			attr:    &domain.Attribute{Options: options},
			current: domain.Text("3:2"),
			want:    "3:2",
		},
		{
			name:    "no matching option",
			attr:    &domain.Attribute{Options: options},
			current: domain.Text("21:9"),
			want:    "21:9",
		},
		{
			name:    "no options",
			attr:    &domain.Attribute{},
			current: domain.Text("misty"),
			want:    "misty",
		},
		{
			name:    "number matched against option",
			attr:    &domain.Attribute{Options: domain.Options{{Value: "7", Label: "Version 7"}}},
			current: domain.Number(7),
			want:    "Version 7",
		},
		{
			name:    "list is comma joined",
			attr:    &domain.Attribute{},
			current: domain.List("red", "blue"),
			want:    "red, blue",
		},
		{
			name:    "null value",
			attr:    &domain.Attribute{},
			current: domain.Null(),
			want:    "",
		},
		{
			name:    "nil attribute",
			current: domain.Text("x"),
			want:    "x",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ResolveDisplay(tc.attr, tc.current))
		})
	}
}
