package outbound

// Comment-source model supplied by the external parsing collaborator.
// The core only reads these shapes, it never parses source text into
// them.

// TagKind classifies a structured documentation tag.
type TagKind string

// Tag kind constants.
const (
	// TagKindParam marks parameter-documentation tags.
	TagKindParam TagKind = "param"
	// TagKindReturns marks return-documentation tags.
	TagKindReturns TagKind = "returns"
	// TagKindDeprecated marks deprecation notices.
	TagKindDeprecated TagKind = "deprecated"
	// TagKindOther covers every tag the core does not interpret.
	TagKindOther TagKind = "other"
)

// CommentTag is one structured tag extracted from a documentation block.
type CommentTag struct {
	Kind TagKind `json:"kind" yaml:"kind"`
	Name string  `json:"name" yaml:"name"`
	Text string  `json:"text" yaml:"text"`
}

// CommentBlock is one JSDoc-like block: its extracted tags plus the raw,
// untouched block text for fallback scanning.
type CommentBlock struct {
	Tags []CommentTag `json:"tags" yaml:"tags"`
	Text string       `json:"text" yaml:"text"`
}

// CommentSource is the documentation attached to a declaration's
// enclosing signature. It is a sealed two-variant union: either a
// pre-extracted list of blocks (overloads may contribute several), or a
// single node carrying only raw leading comment text. Consumers dispatch
// on the concrete type, never on field shape.
type CommentSource interface {
	commentSource()
}

// TagBlockList is the structured comment-source variant.
type TagBlockList struct {
	Blocks []CommentBlock
}

func (TagBlockList) commentSource() {}

// RawCommentNode is the unstructured variant: a node whose leading
// comment text was never segmented into blocks.
type RawCommentNode struct {
	LeadingText string
}

func (RawCommentNode) commentSource() {}
