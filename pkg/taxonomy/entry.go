package taxonomy

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Entry associates a sequence identifier with its taxonomy label.
// It is an immutable value; two entries are equal iff both fields
// match.
type Entry struct {
	SequenceID string
	Label      string
}

// ParseEntry creates an Entry from one TSV line. The line must have
// exactly two tab-separated columns.
func ParseEntry(line string) (Entry, error) {
	cols := strings.Split(strings.TrimRight(line, "\r\n"), "\t")
	if len(cols) != 2 {
		return Entry{}, tsvParseError(0, line)
	}
	return Entry{SequenceID: cols[0], Label: cols[1]}, nil
}

// Taxons splits the entry's label into rank names, dropping trailing
// empty ranks.
func (e Entry) Taxons(depth int) []string {
	return Split(e.Label, depth, false)
}

// String renders the entry as a TSV line without the trailing newline.
func (e Entry) String() string {
	return fmt.Sprintf("%s\t%s", e.SequenceID, e.Label)
}

// HeaderMode controls how a TSV reader treats the first line of the
// input.
type HeaderMode int

const (
	// HeaderAuto skips the first line only when its second column
	// does not parse as a taxonomy label.
	HeaderAuto HeaderMode = iota
	// HeaderNone treats every line as data.
	HeaderNone
	// HeaderPresent always skips the first line.
	HeaderPresent
)

// Reader streams taxonomy entries from a tab-separated source.
type Reader struct {
	scanner *bufio.Scanner
	header  HeaderMode
	lineNum int
	started bool
}

// NewReader creates a Reader over r with the given header handling.
func NewReader(r io.Reader, header HeaderMode) *Reader {
	return &Reader{scanner: bufio.NewScanner(r), header: header}
}

// Read returns the next entry. It fails fast with an
// errcode.TSVParseError on a malformed line and returns io.EOF after
// the last entry.
func (r *Reader) Read() (Entry, error) {
	for r.scanner.Scan() {
		r.lineNum++
		line := r.scanner.Text()
		if line == "" {
			continue
		}

		if !r.started {
			r.started = true
			if r.skipAsHeader(line) {
				continue
			}
		}

		cols := strings.Split(line, "\t")
		if len(cols) != 2 {
			return Entry{}, tsvParseError(r.lineNum, line)
		}
		return Entry{SequenceID: cols[0], Label: cols[1]}, nil
	}
	if err := r.scanner.Err(); err != nil {
		return Entry{}, err
	}
	return Entry{}, io.EOF
}

// skipAsHeader decides whether the first line of the input is a
// column header. In auto mode a line is a header when its second
// column is not a taxonomy label.
func (r *Reader) skipAsHeader(line string) bool {
	switch r.header {
	case HeaderPresent:
		return true
	case HeaderNone:
		return false
	}
	cols := strings.Split(line, "\t")
	return len(cols) != 2 || !IsLabel(cols[1])
}

// ReadAll collects every entry from r.
func ReadAll(r io.Reader, header HeaderMode) ([]Entry, error) {
	var res []Entry
	tr := NewReader(r, header)
	for {
		e, err := tr.Read()
		if err == io.EOF {
			return res, nil
		}
		if err != nil {
			return nil, err
		}
		res = append(res, e)
	}
}

// Write serializes entries to w as TSV lines.
func Write(w io.Writer, entries []Entry) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		if _, err := fmt.Fprintf(bw, "%s\t%s\n", e.SequenceID, e.Label); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// UniqueLabels filters entries down to the first entry of every
// distinct label, preserving input order.
func UniqueLabels(entries []Entry) []Entry {
	seen := make(map[string]struct{}, len(entries))
	var res []Entry
	for _, e := range entries {
		if _, ok := seen[e.Label]; ok {
			continue
		}
		seen[e.Label] = struct{}{}
		res = append(res, e)
	}
	return res
}
