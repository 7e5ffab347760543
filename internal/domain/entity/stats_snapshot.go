package entity

import (
	"time"

	"docaudit/internal/domain/valueobject"
)

// IssueEntry records one classified documentation defect. Path is
// package-relative; the synchronizer resolves it against its base
// directory.
type IssueEntry struct {
	Path       string `json:"path"`
	LineNumber int    `json:"lineNumber"`
	Label      string `json:"label"`
}

// StatsSnapshot is the persisted, categorized record of one analysis
// run. The six category fields form a closed set; everything else is run
// metadata that the issue-block synchronizer ignores. Missing keys
// unmarshal to empty lists.
type StatsSnapshot struct {
	RunID       string    `json:"runId,omitempty"`
	PluginID    string    `json:"pluginId,omitempty"`
	GeneratedAt time.Time `json:"generatedAt,omitempty"`

	MissingComments        []IssueEntry `json:"missingComments"`
	MissingReturns         []IssueEntry `json:"missingReturns"`
	ParamDocMismatches     []IssueEntry `json:"paramDocMismatches"`
	MissingComplexTypeInfo []IssueEntry `json:"missingComplexTypeInfo"`
	IsAnyType              []IssueEntry `json:"isAnyType"`
	NoReferences           []IssueEntry `json:"noReferences"`

	// MissingExports and DeprecatedCount come from externally supplied
	// sets, never from the tree walk.
	MissingExports  int `json:"missingExports,omitempty"`
	DeprecatedCount int `json:"deprecatedCount,omitempty"`
}

// Entries returns the issue list for a category. Unknown categories
// return nil.
func (s *StatsSnapshot) Entries(category valueobject.IssueCategory) []IssueEntry {
	switch category {
	case valueobject.CategoryMissingComments:
		return s.MissingComments
	case valueobject.CategoryMissingReturns:
		return s.MissingReturns
	case valueobject.CategoryParamDocMismatches:
		return s.ParamDocMismatches
	case valueobject.CategoryMissingComplexTypeInfo:
		return s.MissingComplexTypeInfo
	case valueobject.CategoryIsAnyType:
		return s.IsAnyType
	case valueobject.CategoryNoReferences:
		return s.NoReferences
	}
	return nil
}

// Append records an entry under a category in insertion order.
func (s *StatsSnapshot) Append(category valueobject.IssueCategory, entry IssueEntry) {
	switch category {
	case valueobject.CategoryMissingComments:
		s.MissingComments = append(s.MissingComments, entry)
	case valueobject.CategoryMissingReturns:
		s.MissingReturns = append(s.MissingReturns, entry)
	case valueobject.CategoryParamDocMismatches:
		s.ParamDocMismatches = append(s.ParamDocMismatches, entry)
	case valueobject.CategoryMissingComplexTypeInfo:
		s.MissingComplexTypeInfo = append(s.MissingComplexTypeInfo, entry)
	case valueobject.CategoryIsAnyType:
		s.IsAnyType = append(s.IsAnyType, entry)
	case valueobject.CategoryNoReferences:
		s.NoReferences = append(s.NoReferences, entry)
	}
}

// TotalIssues returns the number of entries across all six categories.
func (s *StatsSnapshot) TotalIssues() int {
	n := 0
	for _, c := range valueobject.IssueCategoriesInDisplayOrder() {
		n += len(s.Entries(c))
	}
	return n
}
