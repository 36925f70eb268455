package schema

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/isaacphi/tbprompt/internal/config"
	"github.com/isaacphi/tbprompt/internal/document"
)

var (
	outFile    string
	configFlag bool

	SchemaCmd = &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of prompt templates",
		Long:  "Print the JSON schema of prompt template documents, or of the configuration file with --config.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			generate := document.GenerateJSONSchema
			if configFlag {
				generate = config.GenerateJSONSchema
			}

			schema, err := generate()
			if err != nil {
				return fmt.Errorf("failed to generate schema: %w", err)
			}
			data, err := json.MarshalIndent(schema, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal schema: %w", err)
			}
			data = append(data, '\n')

			if outFile == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(outFile, data, 0644); err != nil {
				return fmt.Errorf("failed to write schema to %s: %w", outFile, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Schema written to %s\n", outFile)
			return nil
		},
	}
)

func init() {
	SchemaCmd.Flags().StringVarP(&outFile, "out", "o", "", "Write the schema to a file instead of stdout")
	SchemaCmd.Flags().BoolVar(&configFlag, "config", false, "Print the configuration schema instead")
}
