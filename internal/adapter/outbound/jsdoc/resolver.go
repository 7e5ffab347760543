// Package jsdoc matches JSDoc-style documentation against declaration
// paths. Structured tag extraction is authoritative when the upstream
// tooling segmented the comment correctly; the raw-text fallbacks trade
// a small false-positive risk for much higher recall on the variant
// conventions found in real comments (braced names, property-path tags,
// text the extractor failed to segment).
package jsdoc

import (
	"strings"

	"docaudit/internal/domain/valueobject"
	"docaudit/internal/port/outbound"
)

// paramTagMarker is the tag looked for during raw line scanning.
const paramTagMarker = "@param"

// matcher is one independent resolution strategy. Strategies are tried
// in order; the first hit wins.
type matcher func(src outbound.CommentSource, candidates []string) ([]valueobject.TextFragment, bool)

// matchers is the ordered fallback chain: exact structured match, suffix
// structured match, raw per-block scan, raw leading-comment scan.
var matchers = []matcher{
	matchExactTag,
	matchSuffixTag,
	matchRawBlocks,
	matchRawLeadingComment,
}

// Resolve returns the documentation text matching any of the candidate
// paths, or an empty list when nothing matches anywhere. Absence of a
// match is not an error; the caller leaves the description unset.
func Resolve(src outbound.CommentSource, candidates []string) []valueobject.TextFragment {
	if src == nil || len(candidates) == 0 {
		return nil
	}
	for _, match := range matchers {
		if fragments, ok := match(src, candidates); ok {
			return fragments
		}
	}
	return nil
}

// matchExactTag compares every parameter tag's normalized name for exact
// equality against the normalized candidates.
func matchExactTag(src outbound.CommentSource, candidates []string) ([]valueobject.TextFragment, bool) {
	return matchStructured(src, candidates, false)
}

// matchSuffixTag accepts a tag whose normalized name ends with
// "." + candidate, covering tags declared with a longer dotted path than
// the candidate.
func matchSuffixTag(src outbound.CommentSource, candidates []string) ([]valueobject.TextFragment, bool) {
	return matchStructured(src, candidates, true)
}

func matchStructured(src outbound.CommentSource, candidates []string, suffix bool) ([]valueobject.TextFragment, bool) {
	blocks, ok := src.(outbound.TagBlockList)
	if !ok {
		return nil, false
	}
	for _, block := range blocks.Blocks {
		for _, tag := range block.Tags {
			if tag.Kind != outbound.TagKindParam {
				continue
			}
			if !nameMatches(tag.Name, candidates, suffix) {
				continue
			}
			if text := strings.TrimSpace(tag.Text); text != "" {
				return []valueobject.TextFragment{valueobject.PlainText(text)}, true
			}
			return nil, true
		}
	}
	return nil, false
}

// matchRawBlocks scans the untouched text of each block line by line.
func matchRawBlocks(src outbound.CommentSource, candidates []string) ([]valueobject.TextFragment, bool) {
	blocks, ok := src.(outbound.TagBlockList)
	if !ok {
		return nil, false
	}
	for _, block := range blocks.Blocks {
		if fragments, matched := scanRawText(block.Text, candidates); matched {
			return fragments, true
		}
	}
	return nil, false
}

// matchRawLeadingComment scans the directly-attached leading comment of
// a node that never went through block extraction.
func matchRawLeadingComment(src outbound.CommentSource, candidates []string) ([]valueobject.TextFragment, bool) {
	node, ok := src.(outbound.RawCommentNode)
	if !ok {
		return nil, false
	}
	return scanRawText(node.LeadingText, candidates)
}

// scanRawText applies the line heuristic: strip comment markers, find
// the @param marker, optionally skip one braced type token, take the
// next token as the declared name and compare it exactly or by dotted
// suffix. Lines that do not fit the shape are skipped, never an error.
func scanRawText(text string, candidates []string) ([]valueobject.TextFragment, bool) {
	if text == "" {
		return nil, false
	}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimLeft(line, " \t/*")
		idx := strings.Index(line, paramTagMarker)
		if idx < 0 {
			continue
		}
		tokens := strings.Fields(line[idx+len(paramTagMarker):])
		tokens = skipTypeAnnotation(tokens)
		if len(tokens) == 0 {
			continue
		}
		if !nameMatches(tokens[0], candidates, false) && !nameMatches(tokens[0], candidates, true) {
			continue
		}
		if desc := strings.TrimSpace(strings.Join(tokens[1:], " ")); desc != "" {
			return []valueobject.TextFragment{valueobject.PlainText(desc)}, true
		}
		return nil, true
	}
	return nil, false
}

// skipTypeAnnotation drops one leading {...} type token, which may span
// several whitespace-delimited tokens when the type text itself contains
// spaces.
func skipTypeAnnotation(tokens []string) []string {
	if len(tokens) == 0 || !strings.HasPrefix(tokens[0], "{") {
		return tokens
	}
	for i, tok := range tokens {
		if strings.Contains(tok, "}") {
			return tokens[i+1:]
		}
	}
	// Unclosed annotation swallows the line.
	return nil
}

// nameMatches compares a declared tag name against the candidates. The
// tag name is cleaned with the brace+whitespace-stripping normalizer,
// candidates with the path-level normalizer.
func nameMatches(tagName string, candidates []string, suffix bool) bool {
	name := valueobject.NormalizeTagName(tagName)
	if name == "" {
		return false
	}
	for _, candidate := range candidates {
		c := valueobject.NormalizeName(candidate)
		if c == "" {
			continue
		}
		if suffix {
			if strings.HasSuffix(name, "."+c) {
				return true
			}
			continue
		}
		if name == c {
			return true
		}
	}
	return false
}
