package iofs_test

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/gnames/dnadb/internal/iofs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsZipped(t *testing.T) {
	assert.True(t, iofs.IsZipped("seqs.fasta.gz"))
	assert.False(t, iofs.IsZipped("seqs.fasta"))
	assert.False(t, iofs.IsZipped("seqs.gz.fasta"))
}

func TestRoundTrip(t *testing.T) {
	content := ">AB001.1\nACGTACGT\n"
	for _, name := range []string{"seqs.fasta", "seqs.fasta.gz"} {
		path := filepath.Join(t.TempDir(), name)

		w, err := iofs.Create(path)
		require.NoError(t, err, name)
		_, err = io.WriteString(w, content)
		require.NoError(t, err, name)
		require.NoError(t, w.Close(), name)

		r, err := iofs.Open(path)
		require.NoError(t, err, name)
		got, err := io.ReadAll(r)
		require.NoError(t, err, name)
		require.NoError(t, r.Close(), name)
		assert.Equal(t, content, string(got), name)
	}
}

func TestOpenMissing(t *testing.T) {
	_, err := iofs.Open(filepath.Join(t.TempDir(), "missing.gz"))
	assert.Error(t, err)
}
