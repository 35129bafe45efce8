package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/gnames/dnadb/internal/ioimport"
	"github.com/gnames/dnadb/internal/iotaxonomy"
	"github.com/gnames/dnadb/pkg/taxonomy"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

func getInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <store-dir>",
		Short: "Print summary statistics of a taxonomy store",
		Long: `Print record and label counts of a taxonomy store. When the
serialized hierarchy is present next to the store, per-rank taxon
counts and the number of terminal paths are shown as well.

Examples:
  dnadb inspect taxonomy.db`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := iotaxonomy.Open(args[0])
			if err != nil {
				gn.PrintErrorMessage(err)
				return err
			}
			defer db.Close()

			fmt.Printf("Store:     %s\n", args[0])
			fmt.Printf("Sequences: %s\n", humanize.Comma(int64(db.Len())))
			fmt.Printf("Labels:    %s\n", humanize.Comma(int64(db.NumLabels())))

			blobPath := filepath.Join(args[0], ioimport.HierarchyFile)
			blob, err := os.ReadFile(blobPath)
			if err != nil {
				// No serialized hierarchy next to the store.
				return nil
			}
			h, err := taxonomy.Deserialize(blob)
			if err != nil {
				gn.PrintErrorMessage(err)
				return err
			}

			fmt.Printf("Depth:     %d\n", h.Depth())
			fmt.Printf("Prefixes:  %s\n", h.Scheme())
			fmt.Printf("Paths:     %s\n", humanize.Comma(int64(h.NumPaths())))
			for rank := 0; rank < h.Depth(); rank++ {
				fmt.Printf("Rank %d:    %s taxa\n",
					rank, humanize.Comma(int64(h.NumTaxa(rank))))
			}
			return nil
		},
	}
	return cmd
}
