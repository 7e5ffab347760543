package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"

	"docaudit/internal/application/common/slogger"
	"docaudit/internal/domain/entity"
	"docaudit/internal/domain/valueobject"
)

// ExpectedIssuesMarker delimits the machine-owned trailing region of a
// fixture file. Everything before its last occurrence is caller-owned
// and never altered; everything from the marker on is replaced wholesale
// on each run.
const ExpectedIssuesMarker = "// Expected issues:"

// IssueBlockSync rewrites the expected-issues block of every fixture
// file referenced by a stats snapshot. Files are read, transformed and
// conditionally written back one at a time; a file is only written when
// the result differs byte-for-byte from what is on disk, so a second run
// over unchanged inputs performs no writes at all.
type IssueBlockSync struct {
	baseDir     string
	stripPrefix string

	meter        metric.Meter
	filesUpdated metric.Int64Counter
	filesSkipped metric.Int64Counter
}

// NewIssueBlockSync creates a synchronizer. Snapshot paths are resolved
// by stripping stripPrefix when present and joining the remainder onto
// baseDir.
func NewIssueBlockSync(baseDir, stripPrefix string) *IssueBlockSync {
	s := &IssueBlockSync{
		baseDir:     baseDir,
		stripPrefix: stripPrefix,
		meter:       otel.Meter("docaudit/issue_block_sync"),
	}

	var err error
	s.filesUpdated, err = s.meter.Int64Counter(
		"docaudit_sync_files_updated_total",
		metric.WithDescription("Fixture files rewritten by the synchronizer"),
	)
	if err != nil {
		slogger.Warn(context.Background(), "Failed to create updated counter", slogger.Fields{"error": err.Error()})
	}
	s.filesSkipped, err = s.meter.Int64Counter(
		"docaudit_sync_files_skipped_total",
		metric.WithDescription("Snapshot-referenced files missing on disk"),
	)
	if err != nil {
		slogger.Warn(context.Background(), "Failed to create skipped counter", slogger.Fields{"error": err.Error()})
	}
	return s
}

// SyncResult reports what one run did, per file.
type SyncResult struct {
	Updated   []string
	Unchanged []string
	Missing   []string
}

// Run regroups the snapshot by target file and rewrites each file's
// trailing block. extraTargets names files that must carry a block even
// when the snapshot holds no entries for them (they receive the "none"
// form). Files referenced by a stale snapshot that no longer exist are
// skipped silently.
func (s *IssueBlockSync) Run(
	ctx context.Context,
	snapshot *entity.StatsSnapshot,
	extraTargets []string,
) (*SyncResult, error) {
	groups := s.groupByFile(snapshot)
	for _, target := range extraTargets {
		abs := s.resolvePath(target)
		if _, ok := groups[abs]; !ok {
			groups[abs] = map[valueobject.IssueCategory][]entity.IssueEntry{}
		}
	}

	paths := make([]string, 0, len(groups))
	for path := range groups {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	result := &SyncResult{}
	for _, path := range paths {
		updated, err := s.syncFile(ctx, path, groups[path])
		if err != nil {
			if os.IsNotExist(err) {
				// Stale snapshot entry for a deleted or renamed file.
				slogger.Debug(ctx, "Skipping missing fixture file", slogger.Fields{"path": path})
				result.Missing = append(result.Missing, path)
				if s.filesSkipped != nil {
					s.filesSkipped.Add(ctx, 1)
				}
				continue
			}
			return nil, fmt.Errorf("syncing %s: %w", path, err)
		}
		if updated {
			result.Updated = append(result.Updated, path)
			if s.filesUpdated != nil {
				s.filesUpdated.Add(ctx, 1)
			}
		} else {
			result.Unchanged = append(result.Unchanged, path)
		}
	}

	slogger.Info(ctx, "Issue block sync completed", slogger.Fields{
		"updated":   len(result.Updated),
		"unchanged": len(result.Unchanged),
		"missing":   len(result.Missing),
	})
	return result, nil
}

// groupByFile buckets snapshot entries by resolved absolute path, then
// by category.
func (s *IssueBlockSync) groupByFile(snapshot *entity.StatsSnapshot) map[string]map[valueobject.IssueCategory][]entity.IssueEntry {
	groups := make(map[string]map[valueobject.IssueCategory][]entity.IssueEntry)
	for _, category := range valueobject.IssueCategoriesInDisplayOrder() {
		for _, entry := range snapshot.Entries(category) {
			path := s.resolvePath(entry.Path)
			if groups[path] == nil {
				groups[path] = make(map[valueobject.IssueCategory][]entity.IssueEntry)
			}
			groups[path][category] = append(groups[path][category], entry)
		}
	}
	return groups
}

// resolvePath turns a package-relative snapshot path into the on-disk
// path, stripping the known prefix when present.
func (s *IssueBlockSync) resolvePath(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	if s.stripPrefix != "" {
		path = strings.TrimPrefix(path, s.stripPrefix)
	}
	return filepath.Join(s.baseDir, filepath.FromSlash(path))
}

// syncFile performs the read, transform, conditional-write cycle for one
// file. The caller-owned prefix is treated as an opaque byte span; only
// the marker's last occurrence is located in it.
func (s *IssueBlockSync) syncFile(
	ctx context.Context,
	path string,
	entries map[valueobject.IssueCategory][]entity.IssueEntry,
) (bool, error) {
	original, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}

	next := spliceIssueBlock(string(original), renderIssueBlock(entries))
	if next == string(original) {
		return false, nil
	}

	if err := os.WriteFile(path, []byte(next), 0o600); err != nil {
		return false, fmt.Errorf("writing issue block: %w", err)
	}
	slogger.Debug(ctx, "Rewrote expected issues block", slogger.Fields{"path": path})
	return true, nil
}

// renderIssueBlock renders the replacement block: the marker line, then
// one sub-header per non-empty category in display order with its
// entries sorted by line number (ties by label), or a single none line
// when no category has entries.
func renderIssueBlock(entries map[valueobject.IssueCategory][]entity.IssueEntry) string {
	var b strings.Builder
	b.WriteString(ExpectedIssuesMarker)
	b.WriteString("\n")

	wroteCategory := false
	for _, category := range valueobject.IssueCategoriesInDisplayOrder() {
		list := entries[category]
		if len(list) == 0 {
			continue
		}
		wroteCategory = true

		sorted := make([]entity.IssueEntry, len(list))
		copy(sorted, list)
		sort.SliceStable(sorted, func(i, j int) bool {
			if sorted[i].LineNumber != sorted[j].LineNumber {
				return sorted[i].LineNumber < sorted[j].LineNumber
			}
			return sorted[i].Label < sorted[j].Label
		})

		fmt.Fprintf(&b, "//   %s (%d):\n", category.Title(), len(sorted))
		for _, entry := range sorted {
			fmt.Fprintf(&b, "//     line %d - %s\n", entry.LineNumber, entry.Label)
		}
	}
	if !wroteCategory {
		b.WriteString("//   none\n")
	}
	return b.String()
}

// spliceIssueBlock replaces everything from the marker's last occurrence
// to end of file, or appends the block after normalizing the content to
// exactly one trailing line break.
func spliceIssueBlock(content, block string) string {
	if idx := strings.LastIndex(content, ExpectedIssuesMarker); idx >= 0 {
		return content[:idx] + block
	}
	if content == "" {
		return block
	}
	return strings.TrimRight(content, "\n") + "\n" + block
}
