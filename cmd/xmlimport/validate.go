package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/chadm2c/xml-importer/internal/domain"
)

type validationReport struct {
	File           string           `json:"file"`
	Valid          bool             `json:"valid"`
	TotalProcessed int              `json:"totalProcessed"`
	ValidCount     int              `json:"validCount"`
	Errors         []string         `json:"errors"`
	Products       []domain.Product `json:"products,omitempty"`
}

func newValidateCmd() *cobra.Command {
	var showProducts bool

	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Parse a catalog and report problems without storing anything",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, size, err := readDocument(args[0])
			if err != nil {
				return err
			}

			result := newParser().Parse(content, size)

			report := validationReport{
				File:           filepath.Base(args[0]),
				Valid:          len(result.Errors) == 0,
				TotalProcessed: result.TotalProcessed,
				ValidCount:     len(result.Products),
				Errors:         result.Errors,
			}
			if report.Errors == nil {
				report.Errors = []string{}
			}
			if showProducts {
				report.Products = result.Products
			}

			if err := writeJSON(cmd.OutOrStdout(), report); err != nil {
				return err
			}
			if !report.Valid {
				return errFindings
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showProducts, "products", false, "Include the parsed products in the report")
	return cmd
}
