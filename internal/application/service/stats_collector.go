package service

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"docaudit/internal/application/common/slogger"
	"docaudit/internal/domain/entity"
	"docaudit/internal/domain/valueobject"
)

// StatsCollector walks a declaration forest and classifies every node
// into zero or more issue categories, producing the run's snapshot.
//
// Traversal is depth-first in declared order and never stops at a
// documented parent: every descendant is evaluated independently. A
// destructured parameter whose own name is documented therefore still
// reports its undocumented properties; that matches the validator's
// current rules and is deliberate.
type StatsCollector struct {
	excludedDirs []string

	meter          metric.Meter
	issuesRecorded metric.Int64Counter
	nodesVisited   metric.Int64Counter
}

// NewStatsCollector creates a collector. excludedDirs names directory
// segments (vendor/dependency trees) whose declarations are skipped
// entirely, subtrees included.
func NewStatsCollector(excludedDirs []string) *StatsCollector {
	c := &StatsCollector{
		excludedDirs: excludedDirs,
		meter:        otel.Meter("docaudit/stats_collector"),
	}

	var err error
	c.issuesRecorded, err = c.meter.Int64Counter(
		"docaudit_issues_recorded_total",
		metric.WithDescription("Documentation issues recorded, by category"),
	)
	if err != nil {
		slogger.Warn(context.Background(), "Failed to create issues counter", slogger.Fields{"error": err.Error()})
	}
	c.nodesVisited, err = c.meter.Int64Counter(
		"docaudit_nodes_visited_total",
		metric.WithDescription("Declaration nodes visited during stats collection"),
	)
	if err != nil {
		slogger.Warn(context.Background(), "Failed to create nodes counter", slogger.Fields{"error": err.Error()})
	}
	return c
}

// Collect classifies every declaration reachable from the forest.
// Missing-export and deprecation counts come from the supplied sets;
// the walk never computes them. Reference-count issues are only
// evaluated when adoption tracking was requested for the unit.
func (c *StatsCollector) Collect(
	ctx context.Context,
	forest entity.ScopedForest,
	missingExports []string,
	deprecated []string,
	adoptionTracked bool,
) *entity.StatsSnapshot {
	snapshot := &entity.StatsSnapshot{
		MissingExports:  len(missingExports),
		DeprecatedCount: len(deprecated),
	}

	for _, scope := range valueobject.AllScopes() {
		for _, root := range forest[scope] {
			c.visit(ctx, snapshot, root, adoptionTracked)
		}
	}

	slogger.Info(ctx, "Stats collection completed", slogger.Fields{
		"total_issues":    snapshot.TotalIssues(),
		"missing_exports": snapshot.MissingExports,
		"deprecated":      snapshot.DeprecatedCount,
	})
	return snapshot
}

// visit evaluates one node against every predicate, then recurses.
func (c *StatsCollector) visit(
	ctx context.Context,
	snapshot *entity.StatsSnapshot,
	node *entity.Declaration,
	adoptionTracked bool,
) {
	if c.isExcluded(node.Location.Path) {
		return
	}
	if c.nodesVisited != nil {
		c.nodesVisited.Add(ctx, 1)
	}

	if !node.HasDescription() {
		c.record(ctx, snapshot, valueobject.CategoryMissingComments, node)
	}
	if node.Type.IsAny() {
		c.record(ctx, snapshot, valueobject.CategoryIsAnyType, node)
	}
	if missingReturnDoc(node) {
		c.record(ctx, snapshot, valueobject.CategoryMissingReturns, node)
	}
	if hasParamDocMismatch(node) {
		c.record(ctx, snapshot, valueobject.CategoryParamDocMismatches, node)
	}
	if missingComplexTypeInfo(node) {
		c.record(ctx, snapshot, valueobject.CategoryMissingComplexTypeInfo, node)
	}
	if adoptionTracked && node.References == 0 {
		c.record(ctx, snapshot, valueobject.CategoryNoReferences, node)
	}

	for _, child := range node.Children {
		c.visit(ctx, snapshot, child, adoptionTracked)
	}
}

func (c *StatsCollector) record(
	ctx context.Context,
	snapshot *entity.StatsSnapshot,
	category valueobject.IssueCategory,
	node *entity.Declaration,
) {
	snapshot.Append(category, entity.IssueEntry{
		Path:       node.Location.Path,
		LineNumber: node.Location.Line,
		Label:      node.Label,
	})
	if c.issuesRecorded != nil {
		c.issuesRecorded.Add(ctx, 1, metric.WithAttributes(
			attribute.String("category", category.String()),
		))
	}
}

// isExcluded reports whether the path sits under an excluded directory.
func (c *StatsCollector) isExcluded(path string) bool {
	for _, dir := range c.excludedDirs {
		if dir == "" {
			continue
		}
		if path == dir ||
			strings.HasPrefix(path, dir+"/") ||
			strings.Contains(path, "/"+dir+"/") {
			return true
		}
	}
	return false
}

// missingReturnDoc applies to function-like nodes with a non-void
// return type and no return documentation.
func missingReturnDoc(node *entity.Declaration) bool {
	if !node.IsFunctionLike() {
		return false
	}
	if node.ReturnType == "" || strings.EqualFold(node.ReturnType, "void") {
		return false
	}
	return !node.HasReturnDoc
}

// hasParamDocMismatch reports a function-like node whose comment
// declares a parameter name that matches none of the actual parameters.
// Dotted property tags are checked by their head segment.
func hasParamDocMismatch(node *entity.Declaration) bool {
	if !node.IsFunctionLike() || len(node.DocParamNames) == 0 {
		return false
	}

	actual := make(map[string]bool, len(node.Children))
	for _, child := range node.Children {
		if child.Kind == entity.DeclarationKindParameter {
			actual[valueobject.NormalizeTagName(child.Label)] = true
		}
	}

	for _, declared := range node.DocParamNames {
		head, _, _ := strings.Cut(valueobject.NormalizeTagName(declared), ".")
		if head != "" && !actual[head] {
			return true
		}
	}
	return false
}

// missingComplexTypeInfo reports a structural node whose extraction
// produced neither members nor printed type text.
func missingComplexTypeInfo(node *entity.Declaration) bool {
	return node.Type.IsStructural() && len(node.Children) == 0 && node.RenderedType == ""
}
