package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/rpggio/storyboard/internal/domain/activity"
	"github.com/rpggio/storyboard/internal/domain/storyboard"
	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate sample storyboards for random variants",
		Args:  cobra.NoArgs,
		RunE:  runSeed,
	}
	cmd.Flags().IntP("count", "n", 1, "number of samples")
	cmd.Flags().Uint64("rand-seed", 0, "seed for variant picks (random when unset)")
	cmd.Flags().Bool("json", false, "print JSON")
	return cmd
}

func runSeed(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	store, err := openCatalog(cfg)
	if err != nil {
		return err
	}
	count, _ := cmd.Flags().GetInt("count")
	if count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", count)
	}

	var opts []storyboard.FactoryOption
	if cmd.Flags().Changed("rand-seed") {
		seed, _ := cmd.Flags().GetUint64("rand-seed")
		opts = append(opts, storyboard.WithRand(rand.New(rand.NewPCG(seed, seed))))
	}

	ctx := cmd.Context()
	workspaceID := uuid.NewString()
	activitySvc := newCLIActivity()
	svc := storyboard.NewService(storyboard.NewFactory(store, opts...), storyboard.NewMemoryRepository(), activitySvc, nil)
	for range count {
		if _, err := svc.Seed(ctx, workspaceID); err != nil {
			return err
		}
	}

	cases, err := svc.List(ctx, workspaceID)
	if err != nil {
		return err
	}
	boards := make([]storyboard.Board, 0, len(cases))
	for _, c := range cases {
		boards = append(boards, svc.Storyboard(c))
	}

	out := cmd.OutOrStdout()
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return writeJSON(out, boards)
	}
	for i, b := range boards {
		if i > 0 {
			fmt.Fprintln(out)
		}
		printBoard(out, b)
	}

	entries, err := activitySvc.GetRecentActivity(ctx, workspaceID, activity.ListActivityOptions{})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\n%d storyboards seeded\n", len(entries))
	return nil
}

// newCLIActivity is the in-process activity log a CLI invocation writes to.
func newCLIActivity() *activity.Service {
	return activity.NewService(activity.NewMemoryRepository(), nil)
}
