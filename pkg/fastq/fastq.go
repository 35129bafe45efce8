// Package fastq reads and writes FASTQ sequence records with
// Illumina-style headers and phred-encoded quality scores.
package fastq

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Entry is one FASTQ record: header, sequence and the phred quality
// string of the same length as the sequence.
type Entry struct {
	Header   Header
	Sequence string
	Quality  string
}

// Parse creates an Entry from the four-line text of a record.
func Parse(s string) (Entry, error) {
	lines := strings.Split(strings.TrimRight(s, "\r\n"), "\n")
	if len(lines) != 4 {
		return Entry{}, parseError(s)
	}
	header, err := ParseHeader(lines[0])
	if err != nil {
		return Entry{}, err
	}
	return Entry{
		Header:   header,
		Sequence: strings.TrimSpace(lines[1]),
		Quality:  strings.TrimSpace(lines[3]),
	}, nil
}

// Deserialize restores an Entry from its Serialize bytes.
func Deserialize(data []byte) (Entry, error) {
	return Parse(string(data))
}

// Serialize renders the entry as its canonical FASTQ bytes.
func (e Entry) Serialize() []byte {
	return []byte(e.String())
}

// String renders the record without a trailing newline.
func (e Entry) String() string {
	return fmt.Sprintf("%s\n%s\n+\n%s", e.Header, e.Sequence, e.Quality)
}

// Reader streams FASTQ records, four lines at a time.
type Reader struct {
	scanner *bufio.Scanner
}

// NewReader creates a Reader over r.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	return &Reader{scanner: sc}
}

// Read returns the next record, or io.EOF after the last one.
func (r *Reader) Read() (Entry, error) {
	lines := make([]string, 0, 4)
	for len(lines) < 4 && r.scanner.Scan() {
		line := r.scanner.Text()
		if len(lines) == 0 && strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := r.scanner.Err(); err != nil {
		return Entry{}, err
	}
	if len(lines) == 0 {
		return Entry{}, io.EOF
	}
	if len(lines) < 4 {
		return Entry{}, parseError(strings.Join(lines, "\n"))
	}
	return Parse(strings.Join(lines, "\n"))
}

// ReadAll collects every record from r.
func ReadAll(r io.Reader) ([]Entry, error) {
	var res []Entry
	fr := NewReader(r)
	for {
		e, err := fr.Read()
		if err == io.EOF {
			return res, nil
		}
		if err != nil {
			return nil, err
		}
		res = append(res, e)
	}
}

// Write serializes records to w.
func Write(w io.Writer, entries []Entry) (int, error) {
	bw := bufio.NewWriter(w)
	var n int
	for _, e := range entries {
		written, err := fmt.Fprintf(bw, "%s\n", e.String())
		if err != nil {
			return n, err
		}
		n += written
	}
	return n, bw.Flush()
}
