package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tablekit/imexport"
)

var validateCmd = &cobra.Command{
	Use:   "validate <mapping-file>",
	Short: "Check that a mapping file parses as a flat column-to-field document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("mapping file %q: %w", path, err)
		}

		mapper := imexport.NewMapper(imexport.NewRegistry())
		mapping, err := mapper.Load(path)
		if err != nil {
			var fe *imexport.Error
			if errors.As(err, &fe) && fe.Kind == imexport.KindMalformedMapping {
				return fmt.Errorf("invalid mapping file: %s", fe.Message)
			}
			return err
		}

		fmt.Printf("%s: %d column/field pairs\n", path, mapping.Len())
		for _, column := range mapping.Columns() {
			field, _ := mapping.Field(column)
			fmt.Printf("  %-30s -> %s\n", column, field)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
