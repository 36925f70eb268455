package mcp

import (
	"fmt"
	"io"

	"github.com/invopop/jsonschema"
)

// PrintTools writes the server's tools and their parameters in YAML form.
func (s *Server) PrintTools(w io.Writer) {
	r := &jsonschema.Reflector{
		DoNotReference: true,
		ExpandedStruct: true,
	}

	for _, tool := range s.Tools() {
		fmt.Fprintf(w, "%s:\n", tool.Name)
		fmt.Fprintf(w, "  description: %s\n", tool.Description)

		schema := r.Reflect(tool.Args)
		if len(schema.Required) > 0 {
			fmt.Fprintf(w, "  required:\n")
			for _, req := range schema.Required {
				fmt.Fprintf(w, "    - %s\n", req)
			}
		}

		if schema.Properties != nil && schema.Properties.Len() > 0 {
			fmt.Fprintf(w, "  properties:\n")
			for pair := schema.Properties.Oldest(); pair != nil; pair = pair.Next() {
				prop := pair.Value
				fmt.Fprintf(w, "    %s:\n", pair.Key)
				if prop.Type != "" {
					fmt.Fprintf(w, "      type: %s\n", prop.Type)
				}
				if prop.Description != "" {
					fmt.Fprintf(w, "      description: %s\n", prop.Description)
				}
			}
		}
		fmt.Fprintln(w)
	}
}
