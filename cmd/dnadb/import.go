package main

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/gnames/dnadb/internal/ioimport"
	"github.com/gnames/dnadb/pkg/config"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

func getImportCmd() *cobra.Command {
	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Build a store from a sequence or taxonomy file",
		Long: `Build an embedded store from a FASTA, FASTQ or taxonomy TSV file.

Input files may be gzip-compressed; a '.gz' suffix is handled
transparently. The store is written as a fresh directory; existing
data under the output directory is removed.

Examples:
  dnadb import fasta sequences.fasta.gz --out sequences.db
  dnadb import taxonomy taxonomy.tsv --out taxonomy.db --prefixes dpcofgs`,
	}

	importCmd.AddCommand(getImportFastaCmd())
	importCmd.AddCommand(getImportFastqCmd())
	importCmd.AddCommand(getImportTaxonomyCmd())
	return importCmd
}

// outputDir resolves the store directory from the --out flag, or
// derives it from the input path by trimming extensions and adding
// ".db".
func outputDir(out, src string) string {
	if out != "" {
		return out
	}
	res := strings.TrimSuffix(src, ".gz")
	if ext := filepath.Ext(res); ext != "" {
		res = strings.TrimSuffix(res, ext)
	}
	return res + ".db"
}

func getImportFastaCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "fasta <file>",
		Short: "Build a sequence store from a FASTA file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := getConfig()
			sum, err := ioimport.Fasta(
				context.Background(), cfg, args[0], outputDir(out, args[0]),
			)
			if err != nil {
				gn.PrintErrorMessage(err)
				return err
			}
			gn.Info("Imported <em>%d</em> sequences", sum.Records)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "store directory")
	return cmd
}

func getImportFastqCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "fastq <file>",
		Short: "Build a read store from a FASTQ file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := getConfig()
			sum, err := ioimport.Fastq(
				context.Background(), cfg, args[0], outputDir(out, args[0]),
			)
			if err != nil {
				gn.PrintErrorMessage(err)
				return err
			}
			gn.Info("Imported <em>%d</em> reads", sum.Records)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "store directory")
	return cmd
}

func getImportTaxonomyCmd() *cobra.Command {
	var out string
	var withHeader, noHeader bool

	cmd := &cobra.Command{
		Use:   "taxonomy <file>",
		Short: "Build a taxonomy store from a TSV file",
		Long: `Build a taxonomy store from a tab-separated file of sequence
identifiers and taxonomic labels. The label hierarchy is built
alongside and serialized next to the store.

By default the first row is inspected: it is skipped when its second
column does not look like a taxonomic label. Use --header or
--no-header to decide explicitly.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := getConfig()
			if withHeader {
				v := true
				cfg.Update([]config.Option{config.OptImportWithHeader(&v)})
			} else if noHeader {
				v := false
				cfg.Update([]config.Option{config.OptImportWithHeader(&v)})
			}

			sum, err := ioimport.Taxonomy(
				context.Background(), cfg, args[0], outputDir(out, args[0]),
			)
			if err != nil {
				gn.PrintErrorMessage(err)
				return err
			}
			gn.Info(
				"Imported <em>%d</em> entries with <em>%d</em> distinct labels",
				sum.Records, sum.Labels,
			)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "store directory")
	cmd.Flags().BoolVar(&withHeader, "header", false,
		"treat the first row as a header")
	cmd.Flags().BoolVar(&noHeader, "no-header", false,
		"treat every row as data")
	cmd.Flags().Int("depth", 0, "number of ranks in labels")
	cmd.Flags().String("prefixes", "",
		"rank prefix table (kpcofgs, dpcofgs)")
	return cmd
}
