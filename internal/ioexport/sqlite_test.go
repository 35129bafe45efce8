package ioexport_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/gnames/dnadb/internal/ioexport"
	"github.com/gnames/dnadb/internal/iotaxonomy"
	"github.com/gnames/dnadb/pkg/taxonomy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func TestToSQLite(t *testing.T) {
	assert := assert.New(t)
	entries := []taxonomy.Entry{
		{SequenceID: "AB001.1", Label: "k__Bacteria;p__Firmicutes"},
		{SequenceID: "AB002.1", Label: "k__Bacteria;p__Cyanobacteria"},
		{SequenceID: "AB003.1", Label: "k__Bacteria;p__Firmicutes"},
	}

	dir := filepath.Join(t.TempDir(), "taxonomy-db")
	fact, err := iotaxonomy.NewFactory(dir, 10)
	require.NoError(t, err)
	require.NoError(t, fact.AddEntries(entries))
	require.NoError(t, fact.Close())

	src, err := iotaxonomy.Open(dir)
	require.NoError(t, err)
	defer src.Close()

	path := filepath.Join(t.TempDir(), "export.sqlite")
	require.NoError(t, ioexport.ToSQLite(context.Background(), src, path))

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	rows, err := db.Query(
		"SELECT path_id, label, count FROM labels ORDER BY path_id",
	)
	require.NoError(t, err)
	defer rows.Close()

	type labelRow struct {
		pathID int
		label  string
		count  int
	}
	var labels []labelRow
	for rows.Next() {
		var r labelRow
		require.NoError(t, rows.Scan(&r.pathID, &r.label, &r.count))
		labels = append(labels, r)
	}
	require.NoError(t, rows.Err())
	assert.Equal([]labelRow{
		{0, "k__Bacteria;p__Firmicutes", 2},
		{1, "k__Bacteria;p__Cyanobacteria", 1},
	}, labels)

	var pathID int
	err = db.QueryRow(
		"SELECT path_id FROM sequences WHERE sequence_id = ?", "AB003.1",
	).Scan(&pathID)
	require.NoError(t, err)
	assert.Equal(0, pathID)

	var n int
	err = db.QueryRow("SELECT count(*) FROM sequences").Scan(&n)
	require.NoError(t, err)
	assert.Equal(3, n)
}
