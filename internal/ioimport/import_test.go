package ioimport_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/dnadb/internal/iofasta"
	"github.com/gnames/dnadb/internal/iofastq"
	"github.com/gnames/dnadb/internal/iofs"
	"github.com/gnames/dnadb/internal/ioimport"
	"github.com/gnames/dnadb/internal/iotaxonomy"
	"github.com/gnames/dnadb/pkg/config"
	"github.com/gnames/dnadb/pkg/taxonomy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const taxonomyTSV = `AB001.1	k__Bacteria;p__Firmicutes;c__;o__;f__;g__;s__
AB002.1	k__Bacteria;p__Cyanobacteria;c__;o__;f__;g__;s__
AB003.1	k__Bacteria;p__Firmicutes;c__;o__;f__;g__;s__
`

const fastaText = `>AB001.1 first
ACGTACGT
>AB002.1
TTTTAAAA
`

const fastqText = `@M00967:43:000000000-A3JHG:1:1101:18327:1699 1:N:0:188
ACGT
+
AAAA
`

func writeFile(t *testing.T, name, content string, zipped bool) string {
	t.Helper()
	if zipped {
		name += ".gz"
	}
	path := filepath.Join(t.TempDir(), name)
	w, err := iofs.Create(path)
	require.NoError(t, err)
	_, err = io.WriteString(w, content)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return path
}

func TestImportTaxonomy(t *testing.T) {
	assert := assert.New(t)
	cfg := config.New()
	src := writeFile(t, "taxonomy.tsv", taxonomyTSV, false)
	outDir := filepath.Join(t.TempDir(), "taxonomy-db")

	sum, err := ioimport.Taxonomy(context.Background(), cfg, src, outDir)
	require.NoError(t, err)
	assert.Equal(3, sum.Records)
	assert.Equal(2, sum.Labels)

	db, err := iotaxonomy.Open(outDir)
	require.NoError(t, err)
	defer db.Close()
	assert.Equal(3, db.Len())

	counts, err := db.Counts()
	require.NoError(t, err)
	assert.Equal([]int{2, 1}, counts)

	// The serialized hierarchy sits next to the store and round
	// trips.
	blob, err := os.ReadFile(filepath.Join(outDir, ioimport.HierarchyFile))
	require.NoError(t, err)
	h, err := taxonomy.Deserialize(blob)
	require.NoError(t, err)
	assert.Equal(1, h.NumTaxa(0))
	assert.Equal(2, h.NumTaxa(1))
}

func TestImportFastaZipped(t *testing.T) {
	assert := assert.New(t)
	cfg := config.New()
	src := writeFile(t, "seqs.fasta", fastaText, true)
	outDir := filepath.Join(t.TempDir(), "fasta-db")

	sum, err := ioimport.Fasta(context.Background(), cfg, src, outDir)
	require.NoError(t, err)
	assert.Equal(2, sum.Records)

	db, err := iofasta.Open(outDir)
	require.NoError(t, err)
	defer db.Close()

	e, err := db.EntryByID("AB001.1")
	require.NoError(t, err)
	assert.Equal("ACGTACGT", e.Sequence)
	assert.Equal("first", e.Extra)
}

func TestImportFastq(t *testing.T) {
	cfg := config.New()
	src := writeFile(t, "reads.fastq", fastqText, false)
	outDir := filepath.Join(t.TempDir(), "fastq-db")

	sum, err := ioimport.Fastq(context.Background(), cfg, src, outDir)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Records)

	db, err := iofastq.Open(outDir)
	require.NoError(t, err)
	defer db.Close()

	e, err := db.Entry(0)
	require.NoError(t, err)
	assert.Equal(t, "ACGT", e.Sequence)
	assert.Equal(t, 1699, e.Header.PosY)
}

func TestImportMalformedTaxonomy(t *testing.T) {
	cfg := config.New()
	bad := "AB001.1\tk__Bacteria;p__;c__;o__;f__;g__;s__\nno tab here\n"
	src := writeFile(t, "bad.tsv", bad, false)
	outDir := filepath.Join(t.TempDir(), "bad-db")

	_, err := ioimport.Taxonomy(context.Background(), cfg, src, outDir)
	assert.Error(t, err)
}
