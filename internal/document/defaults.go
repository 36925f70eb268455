package document

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/isaacphi/tbprompt/internal/domain"
)

var (
	//go:embed templates/default.json
	defaultTemplateJSON []byte

	//go:embed templates/sample.json
	sampleTemplateJSON []byte
)

// Default returns the empty starter template.
func Default() *domain.Template {
	return mustParse("default", defaultTemplateJSON)
}

// Sample returns the built-in example template.
func Sample() *domain.Template {
	return mustParse("sample", sampleTemplateJSON)
}

// New returns an empty template with the given name and a fresh id.
func New(name string) *domain.Template {
	t := Default()
	if name != "" {
		t.MetaData.Name = name
	}
	t.MetaData.ID = "tpl_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return t
}

func mustParse(name string, data []byte) *domain.Template {
	t, err := Parse(data)
	if err != nil {
		panic(fmt.Sprintf("built-in %s template is invalid: %v", name, err))
	}
	return t
}
