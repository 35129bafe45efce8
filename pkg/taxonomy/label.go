package taxonomy

import (
	"strings"
)

// Scheme is a rank-prefix table for taxonomy labels. Each byte is the
// one-letter code of one rank, so the length of the scheme is the
// maximum label depth. Position i serializes as "<letter>__<name>".
type Scheme string

const (
	// SchemeKingdom is the kingdom-based convention
	// (kingdom, phylum, class, order, family, genus, species).
	SchemeKingdom Scheme = "kpcofgs"

	// SchemeDomain is the domain-based convention used by SILVA
	// and GTDB-style references.
	SchemeDomain Scheme = "dpcofgs"
)

// DefaultDepth is the number of ranks in the standard seven-rank
// schemes.
const DefaultDepth = 7

// Depth returns the number of ranks the scheme can serialize.
func (s Scheme) Depth() int {
	return len(s)
}

// Join serializes rank names into a label. The input is right-padded
// with empty names or truncated to depth, and every position is
// prefixed with its rank letter. Segments are joined with ";", the
// canonical separator.
//
// Depth must be in [1, s.Depth()], otherwise an error with
// errcode.LabelBadDepthError is returned.
func (s Scheme) Join(taxons []string, depth int) (string, error) {
	if depth < 1 || depth > s.Depth() {
		return "", badDepthError(depth, s.Depth())
	}

	segments := make([]string, depth)
	for i := range depth {
		var name string
		if i < len(taxons) {
			name = taxons[i]
		}
		segments[i] = string(s[i]) + "__" + name
	}
	return strings.Join(segments, ";"), nil
}

// Split extracts rank names from a label. The one-letter prefix and
// "__" separator are stripped from every ";"-delimited segment; a
// single space after ";" is tolerated. The result is truncated to
// maxDepth names.
//
// When keepEmpty is false, trailing empty names are dropped so that a
// label terminating early (unresolved ranks) yields a short slice;
// interior empty names are always preserved.
func Split(label string, maxDepth int, keepEmpty bool) []string {
	var res []string
	for seg := range strings.SplitSeq(label, ";") {
		seg = strings.TrimPrefix(seg, " ")
		i := strings.Index(seg, "__")
		if i < 0 {
			continue
		}
		res = append(res, seg[i+2:])
	}
	if len(res) > maxDepth {
		res = res[:maxDepth]
	}
	if !keepEmpty {
		for len(res) > 0 && res[len(res)-1] == "" {
			res = res[:len(res)-1]
		}
	}
	return res
}

// IsLabel reports whether a string looks like a taxonomy label:
// every ";"-delimited segment starts with a rank letter followed by
// "__". A single trailing ";" is tolerated.
func IsLabel(s string) bool {
	s = strings.TrimSuffix(strings.TrimSpace(s), ";")
	if s == "" {
		return false
	}
	for seg := range strings.SplitSeq(s, ";") {
		seg = strings.TrimPrefix(seg, " ")
		if len(seg) < 3 || seg[1:3] != "__" || !isRankLetter(seg[0]) {
			return false
		}
	}
	return true
}

func isRankLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
