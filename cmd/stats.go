package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"docaudit/internal/adapter/outbound/crosslink"
	"docaudit/internal/adapter/outbound/declaration"
	"docaudit/internal/adapter/outbound/scanfile"
	"docaudit/internal/adapter/outbound/snapshotstore"
	"docaudit/internal/application/common/slogger"
	"docaudit/internal/application/service"
	"docaudit/internal/domain/entity"
	"docaudit/internal/domain/valueobject"
)

// statsCmd implements: docaudit stats <scan-file>... [--out path].
func newStatsCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "stats <scan-file>...",
		Short: "Classify documentation issues and write the stats snapshot",
		Long: `Build declaration trees from one or more parsed signature scan files,
attach documentation through the comment resolver, classify issues and
write the categorized snapshot as JSON.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runStats(args, outPath)
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "Snapshot output path (default: snapshot.path from config)")
	return cmd
}

// runStats performs: load scans -> build declarations -> collect -> persist.
func runStats(scanPaths []string, outPath string) error {
	ctx := context.Background()

	if outPath == "" {
		outPath = cfg.Snapshot.Path
	}
	if outPath == "" {
		return errors.New("no snapshot output path configured")
	}

	builder := declaration.NewBuilder(crosslink.NewMapResolver(cfg.Scan.CrossLinks))
	collector := service.NewStatsCollector(cfg.Scan.ExcludedDirs)

	combined := &entity.StatsSnapshot{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
	}
	for _, path := range scanPaths {
		unit, err := scanfile.Load(path)
		if err != nil {
			return err
		}
		slogger.Info(ctx, "Collecting stats for scanned unit", slogger.Fields{
			"plugin":     unit.Plugin,
			"scan_file":  path,
			"signatures": countSignatures(unit),
		})

		forest := buildForest(ctx, builder, unit)
		snapshot := collector.Collect(ctx, forest, unit.MissingExports, unit.Deprecated, unit.AdoptionTracked)
		mergeSnapshots(combined, snapshot)
		if combined.PluginID == "" {
			combined.PluginID = unit.Plugin
		}
	}

	if err := snapshotstore.Save(outPath, combined); err != nil {
		return err
	}

	printStatsSummary(combined, outPath)
	return nil
}

// buildForest builds each scope's signature declarations in order.
func buildForest(ctx context.Context, builder *declaration.Builder, unit *scanfile.Unit) entity.ScopedForest {
	forest := make(entity.ScopedForest, len(unit.Scopes))
	for scope, signatures := range unit.Scopes {
		opts := declaration.BuildOptions{Plugin: unit.Plugin, Scope: scope}
		for _, sig := range signatures {
			forest[scope] = append(forest[scope], builder.BuildSignature(ctx, sig, opts))
		}
	}
	return forest
}

// mergeSnapshots appends src's category entries and counts onto dst.
func mergeSnapshots(dst, src *entity.StatsSnapshot) {
	for _, category := range valueobject.IssueCategoriesInDisplayOrder() {
		for _, entry := range src.Entries(category) {
			dst.Append(category, entry)
		}
	}
	dst.MissingExports += src.MissingExports
	dst.DeprecatedCount += src.DeprecatedCount
}

func countSignatures(unit *scanfile.Unit) int {
	n := 0
	for _, signatures := range unit.Scopes {
		n += len(signatures)
	}
	return n
}

func printStatsSummary(snapshot *entity.StatsSnapshot, outPath string) {
	bold := color.New(color.Bold)
	_, _ = bold.Fprintf(os.Stdout, "Documentation issues (%d total):\n", snapshot.TotalIssues())
	for _, category := range valueobject.IssueCategoriesInDisplayOrder() {
		count := len(snapshot.Entries(category))
		line := fmt.Sprintf("  %-26s %d\n", category.Title(), count)
		if count > 0 {
			color.Yellow("%s", line)
			continue
		}
		fmt.Print(line)
	}
	if snapshot.MissingExports > 0 {
		color.Red("  missing exports            %d\n", snapshot.MissingExports)
	}
	fmt.Printf("Snapshot written to %s\n", outPath)
}
