package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gnames/dnadb/internal/ioimport"
	"github.com/gnames/dnadb/pkg/taxonomy"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

func getReduceCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "reduce <store-dir> <label>...",
		Short: "Rewrite labels to their known taxonomic prefix",
		Long: `Rewrite labels against the hierarchy of a taxonomy store. Each
label is truncated at its first rank unknown to the hierarchy and
padded back to full depth with empty ranks.

With --strict a rank also counts as unknown when its parent chain
differs from the recorded one.

Examples:
  dnadb reduce taxonomy.db 'k__Bacteria;p__Tenericutes'
  dnadb reduce --strict taxonomy.db 'k__Bacteria;p__Firmicutes'`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			blobPath := filepath.Join(args[0], ioimport.HierarchyFile)
			blob, err := os.ReadFile(blobPath)
			if err != nil {
				gn.PrintErrorMessage(err)
				return err
			}
			h, err := taxonomy.Deserialize(blob)
			if err != nil {
				gn.PrintErrorMessage(err)
				return err
			}

			for _, label := range args[1:] {
				taxons := taxonomy.Split(label, h.Depth(), true)
				reduced := h.ReduceTaxons(taxons, strict)
				res, err := h.Scheme().Join(reduced, h.Depth())
				if err != nil {
					gn.PrintErrorMessage(err)
					return err
				}
				fmt.Println(res)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false,
		"require the recorded parent chain to match")
	return cmd
}
