package valueobject

import "strings"

// TextFragment is one piece of resolved documentation text. Fragments
// carrying a Ref render as cross-links to another declaration; plain
// fragments render as-is.
type TextFragment struct {
	Text string `json:"text"            yaml:"text"`
	Ref  string `json:"ref,omitempty"  yaml:"ref,omitempty"`
}

// PlainText creates a fragment without a cross-link target.
func PlainText(text string) TextFragment {
	return TextFragment{Text: text}
}

// JoinFragments concatenates fragment texts with single spaces, skipping
// empty fragments.
func JoinFragments(fragments []TextFragment) string {
	parts := make([]string, 0, len(fragments))
	for _, f := range fragments {
		if t := strings.TrimSpace(f.Text); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}
