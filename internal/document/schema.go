package document

import (
	"encoding/json"
	"reflect"

	"github.com/invopop/jsonschema"

	"github.com/isaacphi/tbprompt/internal/domain"
)

var (
	valueType  = reflect.TypeOf(domain.Value{})
	optionType = reflect.TypeOf(domain.Option{})
	rawType    = reflect.TypeOf(json.RawMessage{})
)

// GenerateJSONSchema describes the template document format.
func GenerateJSONSchema() (*jsonschema.Schema, error) {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties: true,
		DoNotReference:            false,
		Mapper:                    mapTemplateType,
	}

	schema := r.Reflect(&domain.Template{})

	schema.Title = "Prompt Template Schema"
	schema.Description = "Structured image prompt template: metadata, settings and ordered sections"

	return schema, nil
}

func mapTemplateType(t reflect.Type) *jsonschema.Schema {
	switch t {
	case valueType:
		return &jsonschema.Schema{
			Description: "Attribute value: text, number, boolean, a list of strings or an object",
			OneOf: []*jsonschema.Schema{
				{Type: "string"},
				{Type: "number"},
				{Type: "boolean"},
				{Type: "array", Items: &jsonschema.Schema{Type: "string"}},
				{Type: "object"},
				{Type: "null"},
			},
		}
	case optionType:
		return &jsonschema.Schema{
			OneOf: []*jsonschema.Schema{
				{Type: "string"},
				{Type: "object", Required: []string{"value"}},
			},
		}
	case rawType:
		return &jsonschema.Schema{}
	}
	return nil
}
