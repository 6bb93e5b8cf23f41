package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chadm2c/xml-importer/internal/config"
	"github.com/chadm2c/xml-importer/internal/migration"
)

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}
	cmd.PersistentFlags().StringVar(&dir, "dir", "", "Migrations directory (overrides MIGRATIONS_DIR)")

	load := func() (*config.Config, string, error) {
		cfg, err := config.LoadFrom(opts.envFile)
		if err != nil {
			return nil, "", err
		}
		if dir != "" {
			return cfg, dir, nil
		}
		return cfg, cfg.MigrationsDir, nil
	}

	up := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, source, err := load()
			if err != nil {
				return err
			}
			if err := migration.Up(source, cfg.DatabaseURL()); err != nil {
				return err
			}
			return printVersion(cmd, cfg, source)
		},
	}

	var steps int
	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back applied migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, source, err := load()
			if err != nil {
				return err
			}
			if err := migration.Down(source, cfg.DatabaseURL(), steps); err != nil {
				return err
			}
			return printVersion(cmd, cfg, source)
		},
	}
	down.Flags().IntVar(&steps, "steps", 1, "Number of migrations to roll back")

	version := &cobra.Command{
		Use:   "version",
		Short: "Print the applied schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, source, err := load()
			if err != nil {
				return err
			}
			return printVersion(cmd, cfg, source)
		},
	}

	cmd.AddCommand(up, down, version)
	return cmd
}

func printVersion(cmd *cobra.Command, cfg *config.Config, source string) error {
	status, err := migration.Current(source, cfg.DatabaseURL())
	if err != nil {
		return err
	}
	if !status.Applied {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), "schema version: none")
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "schema version: %d (dirty: %t)\n", status.Version, status.Dirty)
	return err
}
