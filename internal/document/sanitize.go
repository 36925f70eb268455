package document

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/isaacphi/tbprompt/internal/domain"
)

// optionsKey is dropped from exported documents along with localized fields.
const optionsKey = "options"

// ToCleanDocument returns a copy of a decoded JSON value without localized
// fields (keys ending in "_ko") or "options" keys, at any depth. Maps and
// slices are rebuilt; the input is never modified.
func ToCleanDocument(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, child := range val {
			if strings.HasSuffix(k, domain.LocalizedSuffix) || k == optionsKey {
				continue
			}
			out[k] = ToCleanDocument(child)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, child := range val {
			out[i] = ToCleanDocument(child)
		}
		return out
	default:
		return v
	}
}

// Export renders t as shareable English-only JSON.
func Export(t *domain.Template) ([]byte, error) {
	data, err := json.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("failed to encode template: %w", err)
	}
	return ExportJSON(data)
}

// ExportJSON cleans an arbitrary JSON document, keeping fields the template
// model does not know about. Numbers are copied as written.
func ExportJSON(data []byte) ([]byte, error) {
	dec := json.NewDecoder(strings.NewReader(StripFences(string(data))))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, &domain.ParseError{Reason: "malformed JSON", Err: err}
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, &domain.ParseError{Reason: "malformed JSON", Err: fmt.Errorf("unexpected data after the document")}
	}
	return json.MarshalIndent(ToCleanDocument(doc), "", "  ")
}

// ExportFile checks that a template file's content parses, then cleans the
// content itself rather than the parsed template.
func ExportFile(name string, data []byte) ([]byte, error) {
	if _, err := ParseFile(name, data); err != nil {
		return nil, err
	}
	doc, err := FileJSON(name, data)
	if err != nil {
		return nil, err
	}
	return ExportJSON(doc)
}
