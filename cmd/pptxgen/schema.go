package main

import (
	"github.com/spf13/cobra"

	"github.com/fredcamaral/pptxgen/internal/adapters/secondary/parser"
)

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the outline format",
		Long: `Print the JSON Schema describing JSON and YAML outlines. Point your editor
at it to get completion and validation while writing outlines.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := parser.SchemaJSON()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
