package main

import (
	"encoding/json"
	"errors"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/chadm2c/xml-importer/internal/config"
	"github.com/chadm2c/xml-importer/internal/logger"
	"github.com/chadm2c/xml-importer/internal/validator"
	"github.com/chadm2c/xml-importer/internal/xmlparser"
)

// errFindings signals a run that completed but found problems in the input.
// Its report has already been printed, so main only sets the exit code.
var errFindings = errors.New("input has errors")

type rootOptions struct {
	envFile  string
	logLevel string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "xmlimport",
		Short: "Validate and import XML product catalogs",
		Long: `xmlimport checks XML product catalogs and loads them into PostgreSQL
using the same rules as the HTTP import endpoint.

Example Usage:
  xmlimport validate catalog.xml   # Report problems without touching the database
  xmlimport import catalog.xml     # Store every valid product
  xmlimport migrate up             # Apply pending schema migrations`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Logs go to stderr so stdout carries only the JSON report.
			logger.Configure(cmd.ErrOrStderr(), opts.logLevel)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", config.DefaultEnvFile,
		"Path to an optional .env file with configuration")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn",
		"Log level (debug, info, warn, error)")

	cmd.AddCommand(
		newValidateCmd(),
		newImportCmd(opts),
		newMigrateCmd(opts),
	)
	return cmd
}

func newParser() *xmlparser.Parser {
	return xmlparser.NewParser(validator.NewProductValidator(time.Now))
}

// readDocument loads a file for parsing. Files over the parser ceiling are
// not read; their size alone gets them rejected.
func readDocument(path string) ([]byte, int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, 0, err
	}
	if info.IsDir() {
		return nil, 0, errors.New(path + " is a directory")
	}
	if info.Size() > xmlparser.MaxFileSize {
		return nil, info.Size(), nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, err
	}
	return content, int64(len(content)), nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
