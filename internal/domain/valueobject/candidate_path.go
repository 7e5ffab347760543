package valueobject

import "strings"

// Candidate path generation and the name normalizers used when matching
// documentation tags against declaration positions.
//
// A declaration at tree position [seg0 ... segN] is looked up under
// several spellings because real-world tags vary: destructured parameter
// names keep their braces ("{ foo }"), property tags use dotted paths,
// and whitespace is inconsistent. Candidates are generated fresh for
// every node from its full path; they are never cached across siblings.

// NormalizeName strips braces, collapses internal whitespace runs to a
// single space and trims the result. This is the path-level cleaning
// applied to candidates before comparison.
func NormalizeName(s string) string {
	s = strings.ReplaceAll(s, "{", "")
	s = strings.ReplaceAll(s, "}", "")
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeTight removes all whitespace. It is only used when generating
// the "tight" candidate variant, not for tag-name comparison.
func NormalizeTight(s string) string {
	return strings.Join(strings.Fields(s), "")
}

// NormalizeTagName strips braces and all whitespace. Tag names declared
// in comments are cleaned with this before comparison against candidates.
func NormalizeTagName(s string) string {
	return NormalizeTight(NormalizeName(s))
}

// CandidatePaths returns the ordered, de-duplicated lookup variants for a
// declaration path:
//  1. dotted join of the raw segments,
//  2. dotted join with the head segment brace/whitespace-cleaned,
//  3. fully brace/whitespace-stripped ("tight") join,
//  4. for single-segment paths, the raw head segment alone.
//
// Empty variants are dropped.
func CandidatePaths(segments []string) []string {
	if len(segments) == 0 {
		return nil
	}

	raw := strings.Join(segments, ".")

	cleanedHead := make([]string, len(segments))
	copy(cleanedHead, segments)
	cleanedHead[0] = NormalizeName(segments[0])

	variants := []string{
		raw,
		strings.Join(cleanedHead, "."),
		NormalizeTight(NormalizeName(raw)),
	}
	if len(segments) == 1 {
		variants = append(variants, segments[0])
	}

	seen := make(map[string]bool, len(variants))
	candidates := make([]string, 0, len(variants))
	for _, v := range variants {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		candidates = append(candidates, v)
	}
	return candidates
}
