package dnadb

import (
	"encoding/binary"
	"fmt"

	"github.com/gnames/dnadb/pkg/errcode"
	"github.com/gnames/gn"
)

// EncodeIndex renders a record index or count as its 4-byte
// little-endian form, the fixed-width value format of the stores.
func EncodeIndex(n uint32) []byte {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], n)
	return buf[:]
}

// DecodeIndex restores an index from its EncodeIndex bytes.
func DecodeIndex(data []byte) (uint32, error) {
	if len(data) != 4 {
		return 0, &gn.Error{
			Code: errcode.DbLengthError,
			Msg:  "Index record has <em>%d</em> bytes, want 4",
			Vars: []any{len(data)},
			Err:  fmt.Errorf("index record has %d bytes, want 4", len(data)),
		}
	}
	return binary.LittleEndian.Uint32(data), nil
}
