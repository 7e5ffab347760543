package valueobject

import "fmt"

// IssueCategory identifies one of the fixed documentation-quality defect
// classes shared between the stats collector and the issue-block
// synchronizer. The set is closed: both sides iterate the same constants,
// never their own string literals.
type IssueCategory string

// Issue category constants. The values are the snapshot's JSON keys.
const (
	CategoryMissingComments        IssueCategory = "missingComments"
	CategoryMissingReturns         IssueCategory = "missingReturns"
	CategoryParamDocMismatches     IssueCategory = "paramDocMismatches"
	CategoryMissingComplexTypeInfo IssueCategory = "missingComplexTypeInfo"
	CategoryIsAnyType              IssueCategory = "isAnyType"
	CategoryNoReferences           IssueCategory = "noReferences"
)

// categoryTitles maps each category to the human-readable title used in
// rendered issue blocks.
var categoryTitles = map[IssueCategory]string{
	CategoryMissingComments:        "missing comments",
	CategoryMissingReturns:         "missing returns",
	CategoryParamDocMismatches:     "param doc mismatches",
	CategoryMissingComplexTypeInfo: "missing complex type info",
	CategoryIsAnyType:              "any types",
	CategoryNoReferences:           "no references",
}

// NewIssueCategory creates an IssueCategory with validation.
func NewIssueCategory(category string) (IssueCategory, error) {
	c := IssueCategory(category)
	if _, ok := categoryTitles[c]; !ok {
		return "", fmt.Errorf("invalid issue category: %s", category)
	}
	return c, nil
}

// String returns the snapshot key for the category.
func (c IssueCategory) String() string {
	return string(c)
}

// Title returns the display title for the category.
func (c IssueCategory) Title() string {
	return categoryTitles[c]
}

// IssueCategoriesInDisplayOrder returns all categories in the fixed order
// used when rendering issue blocks.
func IssueCategoriesInDisplayOrder() []IssueCategory {
	return []IssueCategory{
		CategoryMissingComments,
		CategoryMissingReturns,
		CategoryParamDocMismatches,
		CategoryMissingComplexTypeInfo,
		CategoryIsAnyType,
		CategoryNoReferences,
	}
}
