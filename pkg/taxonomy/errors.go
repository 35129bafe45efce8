package taxonomy

import (
	"fmt"

	"github.com/gnames/dnadb/pkg/errcode"
	"github.com/gnames/gn"
)

// badDepthError is returned when a Join depth falls outside the
// scheme's rank table.
func badDepthError(depth, max int) error {
	return &gn.Error{
		Code: errcode.LabelBadDepthError,
		Msg:  "Label depth <em>%d</em> is out of range [1, %d]",
		Vars: []any{depth, max},
	}
}

// tsvParseError is returned when a TSV line does not have exactly two
// tab-separated columns.
func tsvParseError(lineNum int, line string) error {
	msg := `Malformed taxonomy TSV line <em>%d</em>

Expected two tab-separated columns: <em>sequence_id<TAB>label</em>
Got: %q`
	return &gn.Error{
		Code: errcode.TSVParseError,
		Msg:  msg,
		Vars: []any{lineNum, line},
		Err:  fmt.Errorf("bad column count on line %d", lineNum),
	}
}

// taxonNotFoundError is returned on lookups of a name or ID that is
// absent from a rank.
func taxonNotFoundError(rank int, what any) error {
	return &gn.Error{
		Code: errcode.TaxonNotFoundError,
		Msg:  "No taxon <em>%v</em> at rank <em>%d</em>",
		Vars: []any{what, rank},
		Err:  fmt.Errorf("taxon %v not found at rank %d", what, rank),
	}
}

// rankOutOfRangeError is returned when a rank index falls outside
// [0, depth).
func rankOutOfRangeError(rank, depth int) error {
	return &gn.Error{
		Code: errcode.LabelBadDepthError,
		Msg:  "Rank <em>%d</em> is out of range [0, %d)",
		Vars: []any{rank, depth},
	}
}

// pathNotFoundError is returned when a label or path ID does not
// resolve to a terminal taxon of the hierarchy.
func pathNotFoundError(what any) error {
	return &gn.Error{
		Code: errcode.TaxonomyPathNotFoundError,
		Msg:  "No taxonomy path <em>%v</em> in the hierarchy",
		Vars: []any{what},
		Err:  fmt.Errorf("taxonomy path %v not found", what),
	}
}

// blobError is returned when a serialized hierarchy cannot be decoded.
func blobError(err error) error {
	return &gn.Error{
		Code: errcode.HierarchyBlobError,
		Msg:  "Cannot decode serialized hierarchy",
		Err:  fmt.Errorf("hierarchy decode: %w", err),
	}
}

// inconsistentBlobError is returned when a serialized hierarchy
// references a parent name absent from the prior rank.
func inconsistentBlobError(rank int, name, parent string) error {
	msg := `Corrupt hierarchy blob

Taxon <em>%s</em> at rank <em>%d</em> references parent <em>%s</em>
which is not present at rank <em>%d</em>.`
	return &gn.Error{
		Code: errcode.HierarchyInconsistentError,
		Msg:  msg,
		Vars: []any{name, rank, parent, rank - 1},
		Err: fmt.Errorf(
			"rank %d taxon %q: unknown parent %q", rank, name, parent,
		),
	}
}
