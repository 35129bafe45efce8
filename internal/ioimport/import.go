// Package ioimport builds dnadb stores from FASTA, FASTQ and
// taxonomy TSV files. Each import runs a small pipeline: a reader
// goroutine parses records and a single writer goroutine feeds the
// store factory.
package ioimport

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gnames/dnadb/internal/iofasta"
	"github.com/gnames/dnadb/internal/iofastq"
	"github.com/gnames/dnadb/internal/iofs"
	"github.com/gnames/dnadb/internal/iotaxonomy"
	"github.com/gnames/dnadb/pkg/config"
	"github.com/gnames/dnadb/pkg/fasta"
	"github.com/gnames/dnadb/pkg/fastq"
	"github.com/gnames/dnadb/pkg/taxonomy"
	"golang.org/x/sync/errgroup"
)

// HierarchyFile is the name of the serialized hierarchy written next
// to a taxonomy store.
const HierarchyFile = "hierarchy.json"

// progressEvery is the number of records between progress reports.
const progressEvery = 10_000

// Summary describes a finished import.
type Summary struct {
	Records int
	Labels  int
}

// progressReport logs progress to stderr with humanized numbers.
// It clears the line before writing to avoid leftover characters.
func progressReport(recNum int, entity string) {
	str := fmt.Sprintf("Processed %s %s", humanize.Comma(int64(recNum)), entity)
	fmt.Fprintf(os.Stderr, "\r%s", strings.Repeat(" ", 80))
	fmt.Fprintf(os.Stderr, "\r%s", str)
}

func progressDone() {
	fmt.Fprintln(os.Stderr)
}

// Taxonomy imports a TSV file of (sequenceID, label) rows into a
// taxonomy store at outDir. It also builds the label hierarchy and
// writes its serialized form next to the store.
func Taxonomy(
	ctx context.Context,
	cfg *config.Config,
	src, outDir string,
) (*Summary, error) {
	r, err := iofs.Open(src)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	header := taxonomy.HeaderAuto
	if cfg.Import.WithHeader != nil {
		header = taxonomy.HeaderNone
		if *cfg.Import.WithHeader {
			header = taxonomy.HeaderPresent
		}
	}

	h := taxonomy.New(
		taxonomy.OptDepth(cfg.Taxonomy.Depth),
		taxonomy.OptScheme(taxonomy.Scheme(cfg.Taxonomy.Prefixes)),
	)
	fact, err := iotaxonomy.NewFactory(
		outDir, cfg.Store.BatchSize, iotaxonomy.OptHierarchy(h),
	)
	if err != nil {
		return nil, err
	}

	ch := make(chan taxonomy.Entry)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(ch)
		tr := taxonomy.NewReader(r, header)
		for {
			e, err := tr.Read()
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return err
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case ch <- e:
			}
		}
	})

	var count int
	g.Go(func() error {
		for e := range ch {
			if err := fact.Add(e); err != nil {
				return err
			}
			count++
			if count%progressEvery == 0 {
				progressReport(count, "taxonomy entries")
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	progressDone()

	res := &Summary{Records: fact.Len(), Labels: fact.NumLabels()}
	if err := fact.Close(); err != nil {
		return nil, err
	}

	blob, err := h.Serialize()
	if err != nil {
		return nil, err
	}
	blobPath := filepath.Join(outDir, HierarchyFile)
	if err := os.WriteFile(blobPath, blob, 0644); err != nil {
		return nil, err
	}

	slog.Info("Imported taxonomy",
		"records", humanize.Comma(int64(res.Records)),
		"labels", humanize.Comma(int64(res.Labels)),
		"store", outDir,
	)
	return res, nil
}

// Fasta imports a FASTA file into a sequence store at outDir.
func Fasta(
	ctx context.Context,
	cfg *config.Config,
	src, outDir string,
) (*Summary, error) {
	r, err := iofs.Open(src)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	fact, err := iofasta.NewFactory(outDir, cfg.Store.BatchSize)
	if err != nil {
		return nil, err
	}

	ch := make(chan fasta.Entry)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(ch)
		fr := fasta.NewReader(r)
		for {
			e, err := fr.Read()
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return err
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case ch <- e:
			}
		}
	})

	var count int
	g.Go(func() error {
		for e := range ch {
			if err := fact.Add(e); err != nil {
				return err
			}
			count++
			if count%progressEvery == 0 {
				progressReport(count, "sequences")
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	progressDone()

	res := &Summary{Records: fact.Len()}
	if err := fact.Close(); err != nil {
		return nil, err
	}

	slog.Info("Imported sequences",
		"records", humanize.Comma(int64(res.Records)),
		"store", outDir,
	)
	return res, nil
}

// Fastq imports a FASTQ file into a sequence store at outDir.
func Fastq(
	ctx context.Context,
	cfg *config.Config,
	src, outDir string,
) (*Summary, error) {
	r, err := iofs.Open(src)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	fact, err := iofastq.NewFactory(outDir, cfg.Store.BatchSize)
	if err != nil {
		return nil, err
	}

	ch := make(chan fastq.Entry)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(ch)
		fr := fastq.NewReader(r)
		for {
			e, err := fr.Read()
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return err
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case ch <- e:
			}
		}
	})

	var count int
	g.Go(func() error {
		for e := range ch {
			if err := fact.Add(e); err != nil {
				return err
			}
			count++
			if count%progressEvery == 0 {
				progressReport(count, "reads")
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	progressDone()

	res := &Summary{Records: fact.Len()}
	if err := fact.Close(); err != nil {
		return nil, err
	}

	slog.Info("Imported reads",
		"records", humanize.Comma(int64(res.Records)),
		"store", outDir,
	)
	return res, nil
}
