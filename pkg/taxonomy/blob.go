package taxonomy

import (
	"sort"

	"github.com/gnames/gnfmt"
)

// hierarchyBlob is the compact structural encoding of a hierarchy:
// one name-to-parent-name map per rank. Rank-0 taxa map to an empty
// parent marker.
type hierarchyBlob struct {
	Depth    int                 `json:"depth"`
	Prefixes string              `json:"prefixes"`
	Ranks    []map[string]string `json:"ranks"`
}

// Serialize encodes the hierarchy's structure as a self-describing
// JSON blob. Taxon and path IDs are derived state and are not stored;
// Deserialize reconstructs them.
func (h *Hierarchy) Serialize() ([]byte, error) {
	blob := hierarchyBlob{
		Depth:    h.depth,
		Prefixes: string(h.scheme),
		Ranks:    make([]map[string]string, h.depth),
	}
	for rank := range h.depth {
		m := make(map[string]string, len(h.byID[rank]))
		for _, hd := range h.byID[rank] {
			n := h.nodes[hd]
			parent := ""
			if n.parent != noParent {
				parent = h.nodes[n.parent].name
			}
			m[n.name] = parent
		}
		blob.Ranks[rank] = m
	}
	enc := gnfmt.GNjson{}
	return enc.Encode(blob)
}

// Deserialize reconstructs a hierarchy from a Serialize blob. Taxa
// are re-inserted rank by rank in sorted name order, so the result is
// deterministic; a parent reference absent from the prior rank makes
// the blob corrupt and fails with
// errcode.HierarchyInconsistentError.
func Deserialize(data []byte) (*Hierarchy, error) {
	enc := gnfmt.GNjson{}
	var blob hierarchyBlob
	if err := enc.Decode(data, &blob); err != nil {
		return nil, blobError(err)
	}
	if blob.Depth < 1 || blob.Depth > len(blob.Prefixes) ||
		len(blob.Ranks) != blob.Depth {
		return nil, blobError(badDepthError(blob.Depth, len(blob.Prefixes)))
	}

	h := New(OptScheme(Scheme(blob.Prefixes)), OptDepth(blob.Depth))
	for rank := range blob.Depth {
		names := make([]string, 0, len(blob.Ranks[rank]))
		for name := range blob.Ranks[rank] {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			path, err := resolveBlobPath(&blob, rank, name)
			if err != nil {
				return nil, err
			}
			h.addTaxons(path)
		}
	}
	h.rebuild()
	return h, nil
}

// resolveBlobPath walks parent references up to rank 0 and returns
// the root-to-name path.
func resolveBlobPath(blob *hierarchyBlob, rank int, name string) ([]string, error) {
	path := make([]string, rank+1)
	path[rank] = name
	for r := rank; r > 0; r-- {
		parentName := blob.Ranks[r][path[r]]
		if _, ok := blob.Ranks[r-1][parentName]; !ok {
			return nil, inconsistentBlobError(r, path[r], parentName)
		}
		path[r-1] = parentName
	}
	return path, nil
}
