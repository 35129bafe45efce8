package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutputDir(t *testing.T) {
	tests := []struct {
		msg, out, src, expected string
	}{
		{"explicit out", "store.db", "seqs.fasta", "store.db"},
		{"derived", "", "seqs.fasta", "seqs.db"},
		{"derived gz", "", "seqs.fasta.gz", "seqs.db"},
		{"no extension", "", "sequences", "sequences.db"},
		{"dotted dir", "", "data/v1.2/seqs.tsv", "data/v1.2/seqs.db"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, outputDir(tt.out, tt.src), tt.msg)
	}
}
