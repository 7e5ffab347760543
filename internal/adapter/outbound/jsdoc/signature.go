package jsdoc

import (
	"strings"

	"docaudit/internal/domain/valueobject"
	"docaudit/internal/port/outbound"
)

// Signature-level comment facts consumed by the declaration builder and
// the stats collector.

// HasReturnTag reports whether the comment-source documents the return
// value, either through a structured returns tag or a raw @return(s)
// line.
func HasReturnTag(src outbound.CommentSource) bool {
	switch s := src.(type) {
	case outbound.TagBlockList:
		for _, block := range s.Blocks {
			for _, tag := range block.Tags {
				if tag.Kind == outbound.TagKindReturns && strings.TrimSpace(tag.Text) != "" {
					return true
				}
			}
			if rawHasReturnLine(block.Text) {
				return true
			}
		}
	case outbound.RawCommentNode:
		return rawHasReturnLine(s.LeadingText)
	}
	return false
}

func rawHasReturnLine(text string) bool {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimLeft(line, " \t/*")
		if !strings.HasPrefix(line, "@return") {
			continue
		}
		rest := strings.TrimPrefix(strings.TrimPrefix(line, "@returns"), "@return")
		if strings.TrimSpace(rest) != "" {
			return true
		}
	}
	return false
}

// ParamTagNames returns the declared names of every parameter tag in the
// comment-source, in encounter order. Names keep their raw spelling;
// callers normalize under their own rules.
func ParamTagNames(src outbound.CommentSource) []string {
	var names []string
	switch s := src.(type) {
	case outbound.TagBlockList:
		for _, block := range s.Blocks {
			for _, tag := range block.Tags {
				if tag.Kind == outbound.TagKindParam && tag.Name != "" {
					names = append(names, tag.Name)
				}
			}
		}
	case outbound.RawCommentNode:
		for _, line := range strings.Split(s.LeadingText, "\n") {
			line = strings.TrimLeft(line, " \t/*")
			idx := strings.Index(line, paramTagMarker)
			if idx < 0 {
				continue
			}
			tokens := skipTypeAnnotation(strings.Fields(line[idx+len(paramTagMarker):]))
			if len(tokens) > 0 {
				names = append(names, tokens[0])
			}
		}
	}
	return names
}

// DescriptionText extracts the leading free text of the first comment
// block: the lines before any tag, comment markers stripped. Empty when
// the comment opens with a tag or there is no comment at all.
func DescriptionText(src outbound.CommentSource) []valueobject.TextFragment {
	var raw string
	switch s := src.(type) {
	case outbound.TagBlockList:
		if len(s.Blocks) == 0 {
			return nil
		}
		raw = s.Blocks[0].Text
	case outbound.RawCommentNode:
		raw = s.LeadingText
	default:
		return nil
	}

	var parts []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(line, " \t/*"))
		if strings.HasPrefix(line, "@") {
			break
		}
		if line != "" {
			parts = append(parts, line)
		}
	}
	if len(parts) == 0 {
		return nil
	}
	return []valueobject.TextFragment{valueobject.PlainText(strings.Join(parts, " "))}
}
