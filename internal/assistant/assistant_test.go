package assistant

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isaacphi/tbprompt/internal/compiler"
	"github.com/isaacphi/tbprompt/internal/document"
	"github.com/isaacphi/tbprompt/internal/domain"
	"github.com/isaacphi/tbprompt/internal/llm"
)

type fakeCompleter struct {
	reply string
	err   error
	calls []llm.Request
}

func (f *fakeCompleter) Complete(ctx context.Context, req llm.Request) (string, error) {
	f.calls = append(f.calls, req)
	if req.Stream != nil && f.reply != "" {
		if err := req.Stream(f.reply); err != nil {
			return "", err
		}
	}
	return f.reply, f.err
}

func newAssistant(t *testing.T, f *fakeCompleter) *Assistant {
	t.Helper()
	a, err := New(f, "")
	require.NoError(t, err)
	return a
}

const rewriteReply = "```json\n" + `{
  "prompt_sections": [
    {
      "section_id": "sec_subject",
      "section_label": "Subject",
      "section_label_ko": "주제",
      "is_active": true,
      "components": [
        {
          "component_id": "comp_main",
          "component_label": "Main",
          "is_active": true,
          "attributes": [
            {"attr_id": "desc", "label": "Description", "type": "text", "value": "rainy neon alley", "value_ko": "비 오는 네온 골목", "is_active": true}
          ]
        }
      ]
    }
  ]
}` + "\n```"

func TestRewrite(t *testing.T) {
	fake := &fakeCompleter{reply: rewriteReply}
	a := newAssistant(t, fake)
	orig := document.Sample()

	next, err := a.Rewrite(context.Background(), orig, "  make it rainy ")
	require.NoError(t, err)

	assert.Equal(t, "rainy neon alley", compiler.Compile(next, "midjourney"))
	assert.Equal(t, orig.MetaData.Name, next.MetaData.Name)
	assert.True(t, next.GlobalSettings.RemoveDuplicates)

	require.Len(t, fake.calls, 1)
	req := fake.calls[0]
	assert.True(t, req.JSON)
	assert.Contains(t, req.Prompt, "USER REQUEST:\nmake it rainy")
	assert.Contains(t, req.Prompt, `"template_name":"Cute Pixar Skeleton Hiker"`)

	// The original document is untouched.
	assert.Len(t, orig.Sections, 5)
}

func TestRewrite_DefaultInstruction(t *testing.T) {
	fake := &fakeCompleter{reply: `{"prompt_sections": []}`}
	a := newAssistant(t, fake)

	_, err := a.Rewrite(context.Background(), document.Default(), "   ")
	require.NoError(t, err)
	assert.Contains(t, fake.calls[0].Prompt, DefaultInstruction)

	custom, err := New(fake, "Make everything pastel.")
	require.NoError(t, err)
	_, err = custom.Rewrite(context.Background(), document.Default(), "")
	require.NoError(t, err)
	assert.Contains(t, fake.calls[1].Prompt, "Make everything pastel.")
}

func TestRewrite_Failures(t *testing.T) {
	cause := errors.New("network down")

	cases := map[string]*fakeCompleter{
		"service error": {err: cause},
		"empty reply":   {reply: ""},
		"not json":      {reply: "I cannot help with that."},
		"array reply":   {reply: `[{"section_id": "a"}]`},
	}

	for name, fake := range cases {
		t.Run(name, func(t *testing.T) {
			orig := document.Sample()
			next, err := newAssistant(t, fake).Rewrite(context.Background(), orig, "x")
			assert.Nil(t, next)
			require.Error(t, err)
			assert.True(t, domain.IsServiceError(err))
			assert.Len(t, orig.Sections, 5)
		})
	}

	_, err := newAssistant(t, &fakeCompleter{err: cause}).Rewrite(context.Background(), document.Default(), "x")
	assert.ErrorIs(t, err, cause)

	_, err = newAssistant(t, &fakeCompleter{reply: "nope"}).Rewrite(context.Background(), document.Default(), "x")
	assert.True(t, domain.IsParseError(err))
}

func TestTranslate(t *testing.T) {
	fake := &fakeCompleter{reply: "a cute skeleton"}
	a := newAssistant(t, fake)

	var streamed string
	out, err := a.Translate(context.Background(), "귀여운 해골", func(s string) error {
		streamed += s
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "a cute skeleton", out)
	assert.Equal(t, "a cute skeleton", streamed)
	require.Len(t, fake.calls, 1)
	assert.Contains(t, fake.calls[0].Prompt, "Text: 귀여운 해골")
	assert.False(t, fake.calls[0].JSON)
}

func TestTranslate_BlankInputSkipsCall(t *testing.T) {
	fake := &fakeCompleter{reply: "unused"}
	out, err := newAssistant(t, fake).Translate(context.Background(), " \n\t", nil)
	require.NoError(t, err)
	assert.Equal(t, "", out)
	assert.Empty(t, fake.calls)
}

func TestTranslate_Failures(t *testing.T) {
	_, err := newAssistant(t, &fakeCompleter{}).Translate(context.Background(), "hello", nil)
	assert.True(t, domain.IsServiceError(err))

	_, err = newAssistant(t, &fakeCompleter{err: errors.New("boom")}).Translate(context.Background(), "hello", nil)
	assert.True(t, domain.IsServiceError(err))
}
