package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"docaudit/internal/adapter/outbound/snapshotstore"
	"docaudit/internal/application/service"
)

// syncCmd implements: docaudit sync [--snapshot path].
func newSyncCmd() *cobra.Command {
	var snapshotPath string

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Rewrite expected-issue blocks from the stats snapshot",
		Long: `Read the persisted stats snapshot, regroup its entries by fixture file
and rewrite each file's trailing "Expected issues" block. Files are only
written when their content actually changes; a second run over unchanged
inputs is a no-op.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runSync(snapshotPath)
		},
	}

	cmd.Flags().StringVar(&snapshotPath, "snapshot", "", "Snapshot path (default: snapshot.path from config)")
	return cmd
}

func runSync(snapshotPath string) error {
	ctx := context.Background()

	if snapshotPath == "" {
		snapshotPath = cfg.Snapshot.Path
	}
	if snapshotPath == "" {
		return errors.New("no snapshot path configured")
	}

	// An absent or unparsable snapshot is fatal; nothing is mutated.
	snapshot, err := snapshotstore.Load(snapshotPath)
	if err != nil {
		return err
	}

	sync := service.NewIssueBlockSync(cfg.Sync.BaseDir, cfg.Sync.StripPrefix)
	result, err := sync.Run(ctx, snapshot, cfg.Sync.Targets)
	if err != nil {
		return err
	}

	printSyncSummary(result)
	return nil
}

func printSyncSummary(result *service.SyncResult) {
	for _, path := range result.Updated {
		color.Green("updated   %s\n", path)
	}
	for _, path := range result.Unchanged {
		fmt.Printf("unchanged %s\n", path)
	}
	for _, path := range result.Missing {
		color.Yellow("missing   %s\n", path)
	}
	fmt.Printf("%d updated, %d unchanged, %d missing\n",
		len(result.Updated), len(result.Unchanged), len(result.Missing))
}
