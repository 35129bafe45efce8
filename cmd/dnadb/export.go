package main

import (
	"context"

	"github.com/gnames/dnadb/internal/ioexport"
	"github.com/gnames/dnadb/internal/iotaxonomy"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

func getExportCmd() *cobra.Command {
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export a taxonomy store to another format",
	}

	exportCmd.AddCommand(getExportSqliteCmd())
	return exportCmd
}

func getExportSqliteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sqlite <store-dir> <file.sqlite>",
		Short: "Dump a taxonomy store into a SQLite file",
		Long: `Dump the labels and sequence memberships of a taxonomy store
into a relational SQLite file with two tables:

  labels(path_id, label, count)
  sequences(sequence_id, path_id)

Examples:
  dnadb export sqlite taxonomy.db taxonomy.sqlite`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := iotaxonomy.Open(args[0])
			if err != nil {
				gn.PrintErrorMessage(err)
				return err
			}
			defer src.Close()

			err = ioexport.ToSQLite(context.Background(), src, args[1])
			if err != nil {
				gn.PrintErrorMessage(err)
				return err
			}

			gn.Info(
				"Exported <em>%d</em> labels and <em>%d</em> sequences to <em>%s</em>",
				src.NumLabels(), src.Len(), args[1],
			)
			return nil
		},
	}
	return cmd
}
