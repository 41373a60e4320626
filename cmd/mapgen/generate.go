package main

import (
	"github.com/spf13/cobra"

	"github.com/tablekit/imexport"
	"github.com/tablekit/imexport/internal/logging"
)

var (
	genTable  string
	genFields []string
	genOut    string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write a clean identity mapping file for a table",
	Long: `Builds a table manager from the given table name and field names and
writes the identity mapping (column name == field name) as a pretty-printed
JSON file. Edit the generated file to rename columns.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logging.WithFields("table", genTable, "path", genOut)

		manager, err := imexport.NewStaticManager(genTable, genFields...)
		if err != nil {
			return err
		}

		reg := imexport.NewRegistry(manager)
		mapper := imexport.NewMapper(reg)
		if err := mapper.GenerateClean(genOut, genTable); err != nil {
			return err
		}

		log.Info("mapping file generated", "fields", len(manager.Fields()))
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVar(&genTable, "table", "", "table name (required)")
	generateCmd.Flags().StringSliceVar(&genFields, "fields", nil, "comma-separated field names (required)")
	generateCmd.Flags().StringVar(&genOut, "out", "", "output file path (required)")

	generateCmd.MarkFlagRequired("table")
	generateCmd.MarkFlagRequired("fields")
	generateCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(generateCmd)
}
