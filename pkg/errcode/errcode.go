package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// Taxonomy label errors
	LabelBadDepthError
	TSVParseError

	// Taxonomy hierarchy errors
	TaxonNotFoundError
	TaxonomyPathNotFoundError
	HierarchyBlobError
	HierarchyInconsistentError

	// Sequence format errors
	FastaParseError
	FastqParseError
	FastqHeaderError

	// Key-value store errors
	StoreOpenError
	StoreClosedError
	StoreKeyNotFoundError
	StoreWriteError
	StoreIterateError

	// Sequence and taxonomy database errors
	DbLengthError
	DbIndexError
	DbSequenceIDError
	DbLabelError

	// Export errors
	ExportConnectError
	ExportSchemaError
	ExportInsertError
)
