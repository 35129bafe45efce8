// Package fasta reads and writes FASTA sequence records.
package fasta

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/gnames/dnadb/pkg/errcode"
	"github.com/gnames/dnadb/pkg/taxonomy"
	"github.com/gnames/gn"
)

// maxLineSize bounds a single FASTA line; whole-genome records wrap
// their sequences, so lines stay far below this.
const maxLineSize = 16 * 1024 * 1024

// Entry is one FASTA record. Extra holds the free-form remainder of
// the header line after the identifier.
type Entry struct {
	ID       string
	Sequence string
	Extra    string
}

// Parse creates an Entry from the text of a single record.
func Parse(s string) (Entry, error) {
	lines := strings.Split(s, "\n")
	if len(lines) == 0 || !strings.HasPrefix(lines[0], ">") {
		return Entry{}, parseError(s)
	}
	header := strings.TrimRight(lines[0][1:], "\r\n ")
	id, extra, _ := strings.Cut(header, " ")
	var seq strings.Builder
	for _, line := range lines[1:] {
		seq.WriteString(strings.TrimRight(line, "\r\n"))
	}
	return Entry{ID: id, Sequence: seq.String(), Extra: extra}, nil
}

// Deserialize restores an Entry from its Serialize bytes.
func Deserialize(data []byte) (Entry, error) {
	return Parse(string(data))
}

// Serialize renders the entry as its canonical FASTA bytes.
func (e Entry) Serialize() []byte {
	return []byte(e.String())
}

// String renders the record without a trailing newline. The sequence
// is emitted unwrapped.
func (e Entry) String() string {
	header := strings.TrimRight(e.ID+" "+e.Extra, " ")
	return fmt.Sprintf(">%s\n%s", header, e.Sequence)
}

// Reader streams FASTA records.
type Reader struct {
	scanner *bufio.Scanner
	header  string
	done    bool
}

// NewReader creates a Reader over r.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &Reader{scanner: sc}
}

// Read returns the next record, or io.EOF after the last one.
func (r *Reader) Read() (Entry, error) {
	if r.done {
		return Entry{}, io.EOF
	}

	var lines []string
	if r.header != "" {
		lines = append(lines, r.header)
		r.header = ""
	}
	for r.scanner.Scan() {
		line := r.scanner.Text()
		if strings.HasPrefix(line, ">") {
			if len(lines) == 0 {
				lines = append(lines, line)
				continue
			}
			r.header = line
			return Parse(strings.Join(lines, "\n"))
		}
		if len(lines) == 0 {
			if strings.TrimSpace(line) == "" {
				continue
			}
			return Entry{}, parseError(line)
		}
		lines = append(lines, line)
	}
	if err := r.scanner.Err(); err != nil {
		return Entry{}, err
	}
	r.done = true
	if len(lines) == 0 {
		return Entry{}, io.EOF
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

// Write serializes records to w, one per block.
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

// Zipped pairs a sequence record with its taxonomy entry.
type Zipped struct {
	Fasta    Entry
	Taxonomy taxonomy.Entry
}

// ZipWithTaxonomy pairs sequence records with taxonomy entries by
// sequence identifier, preserving the order of the sequence input. A
// sequence without a taxonomy entry is an error.
func ZipWithTaxonomy(seqs []Entry, taxa []taxonomy.Entry) ([]Zipped, error) {
	labels := make(map[string]taxonomy.Entry, len(taxa))
	for _, te := range taxa {
		labels[te.SequenceID] = te
	}
	res := make([]Zipped, 0, len(seqs))
	for _, se := range seqs {
		te, ok := labels[se.ID]
		if !ok {
			return nil, &gn.Error{
				Code: errcode.DbSequenceIDError,
				Msg:  "No taxonomy entry for sequence <em>%s</em>",
				Vars: []any{se.ID},
				Err:  fmt.Errorf("no taxonomy for %q", se.ID),
			}
		}
		res = append(res, Zipped{Fasta: se, Taxonomy: te})
	}
	return res, nil
}

func parseError(got string) error {
	if len(got) > 60 {
		got = got[:60] + "..."
	}
	return &gn.Error{
		Code: errcode.FastaParseError,
		Msg:  "Malformed FASTA record near %q",
		Vars: []any{got},
		Err:  fmt.Errorf("malformed FASTA record"),
	}
}
