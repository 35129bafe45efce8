package fastq

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gnames/dnadb/pkg/errcode"
	"github.com/gnames/gn"
)

// Header is the structured form of an Illumina sequence identifier
// line, for example:
//
//	@M00967:43:000000000-A3JHG:1:1101:18327:1699 1:N:0:188
type Header struct {
	Instrument    string
	RunNumber     int
	FlowcellID    string
	Lane          int
	Tile          int
	PosX          int
	PosY          int
	ReadType      int
	IsFiltered    bool
	ControlNumber int
	Index         string
}

// ParseHeader parses an Illumina identifier line. The leading "@" is
// required.
func ParseHeader(line string) (Header, error) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "@") {
		return Header{}, headerError(line, fmt.Errorf("missing @ prefix"))
	}
	left, right, ok := strings.Cut(line[1:], " ")
	if !ok {
		return Header{}, headerError(line, fmt.Errorf("missing read description"))
	}
	lf := strings.Split(left, ":")
	rf := strings.Split(right, ":")
	if len(lf) != 7 || len(rf) != 4 {
		return Header{}, headerError(line, fmt.Errorf("unexpected field count"))
	}

	var h Header
	var err error
	h.Instrument = lf[0]
	h.FlowcellID = lf[2]
	h.Index = rf[3]
	ints := []struct {
		dst *int
		src string
	}{
		{&h.RunNumber, lf[1]},
		{&h.Lane, lf[3]},
		{&h.Tile, lf[4]},
		{&h.PosX, lf[5]},
		{&h.PosY, lf[6]},
		{&h.ReadType, rf[0]},
		{&h.ControlNumber, rf[2]},
	}
	for _, f := range ints {
		if *f.dst, err = strconv.Atoi(f.src); err != nil {
			return Header{}, headerError(line, err)
		}
	}
	h.IsFiltered = rf[1] == "Y"
	return h, nil
}

// String renders the header back into its identifier line form.
func (h Header) String() string {
	filtered := "N"
	if h.IsFiltered {
		filtered = "Y"
	}
	return fmt.Sprintf(
		"@%s:%d:%s:%d:%d:%d:%d %d:%s:%d:%s",
		h.Instrument, h.RunNumber, h.FlowcellID, h.Lane, h.Tile,
		h.PosX, h.PosY,
		h.ReadType, filtered, h.ControlNumber, h.Index,
	)
}

func headerError(line string, err error) error {
	return &gn.Error{
		Code: errcode.FastqHeaderError,
		Msg:  "Malformed FASTQ header %q",
		Vars: []any{line},
		Err:  fmt.Errorf("fastq header: %w", err),
	}
}

func parseError(got string) error {
	if len(got) > 60 {
		got = got[:60] + "..."
	}
	return &gn.Error{
		Code: errcode.FastqParseError,
		Msg:  "Malformed FASTQ record near %q",
		Vars: []any{got},
		Err:  fmt.Errorf("malformed FASTQ record"),
	}
}
