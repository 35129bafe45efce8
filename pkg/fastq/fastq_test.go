package fastq_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gnames/dnadb/pkg/fastq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fastqSample = `@M00967:43:000000000-A3JHG:1:1101:18327:1699 1:N:0:188
TACGGAGGATGCGAGCGTTATCCGGATTTATTGGGTTTAAAGGGTGCGTAGGCGG
+
CCCCCGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGG
@M00967:43:000000000-A3JHG:1:1101:14069:1827 1:Y:0:188
GACGGAGGATGCGAGCGTTATCCGGATTTATTGGGTTTAAAGGGTGCGTAGGCGG
+
AACCCGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGG
`

func TestReadAll(t *testing.T) {
	entries, err := fastq.ReadAll(strings.NewReader(fastqSample))
	require.NoError(t, err)
	require.Len(t, entries, 2)

	h := entries[0].Header
	assert.Equal(t, "M00967", h.Instrument)
	assert.Equal(t, 43, h.RunNumber)
	assert.Equal(t, "000000000-A3JHG", h.FlowcellID)
	assert.Equal(t, 1, h.Lane)
	assert.Equal(t, 1101, h.Tile)
	assert.Equal(t, 18327, h.PosX)
	assert.Equal(t, 1699, h.PosY)
	assert.Equal(t, 1, h.ReadType)
	assert.False(t, h.IsFiltered)
	assert.Equal(t, 0, h.ControlNumber)
	assert.Equal(t, "188", h.Index)

	assert.True(t, entries[1].Header.IsFiltered)
	assert.Len(t, entries[0].Quality, len(entries[0].Sequence))
}

func TestHeaderRoundTrip(t *testing.T) {
	line := "@M00967:43:000000000-A3JHG:1:1101:18327:1699 1:N:0:188"
	h, err := fastq.ParseHeader(line)
	require.NoError(t, err)
	assert.Equal(t, line, h.String())
}

func TestHeaderMalformed(t *testing.T) {
	for _, line := range []string{
		"M00967:43:x:1:1101:18327:1699 1:N:0:188", // no @
		"@M00967:43:x:1:1101 1:N:0:188",           // short left side
		"@M00967:43:x:1:1101:18327:1699",          // no description
	} {
		_, err := fastq.ParseHeader(line)
		assert.Error(t, err, line)
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	entries, err := fastq.ReadAll(strings.NewReader(fastqSample))
	require.NoError(t, err)
	for _, e := range entries {
		back, err := fastq.Deserialize(e.Serialize())
		require.NoError(t, err)
		assert.Equal(t, e, back)
	}
}

func TestWrite(t *testing.T) {
	entries, err := fastq.ReadAll(strings.NewReader(fastqSample))
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = fastq.Write(&buf, entries)
	require.NoError(t, err)
	assert.Equal(t, fastqSample, buf.String())
}

func TestReadTruncated(t *testing.T) {
	lines := strings.SplitAfterN(fastqSample, "\n", 4)
	_, err := fastq.ReadAll(strings.NewReader(lines[0] + lines[1]))
	assert.Error(t, err)
}

func TestPhredRoundTrip(t *testing.T) {
	quality := "IIIIFFFF!!++CCCC"
	probs := fastq.PhredDecode(quality, fastq.PhredOffset)
	assert.Equal(t, quality, fastq.PhredEncode(probs, fastq.PhredOffset))

	// Exact powers of ten map onto whole phred scores.
	probs = []float64{1, 0.1, 0.01, 0.001}
	assert.Equal(t, "!+5?", fastq.PhredEncode(probs, fastq.PhredOffset))
}
