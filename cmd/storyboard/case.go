package main

import (
	"github.com/google/uuid"
	"github.com/rpggio/storyboard/internal/domain/storyboard"
	"github.com/spf13/cobra"
)

// caseFlags maps command flags to raw form field names.
var caseFlags = []struct {
	flag  string
	field string
	usage string
}{
	{"auction", storyboard.FieldAuctionID, "variant id; unknown ids use the first variant"},
	{"nft", storyboard.FieldNFTID, "NFT label (default #4921)"},
	{"reserve", storyboard.FieldReserve, "reserve price in ETH"},
	{"collateral", storyboard.FieldCollateral, "collateral as a percentage of the bid"},
	{"commit", storyboard.FieldCommit, "commit window in minutes"},
	{"reveal", storyboard.FieldReveal, "reveal window in minutes"},
	{"finalize", storyboard.FieldFinalize, "finalization buffer in minutes"},
	{"bidders", storyboard.FieldBidders, "expected number of bidders"},
	{"notes", storyboard.FieldNotes, "free-form notes"},
}

func newCaseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "case",
		Short: "Build a storyboard from form values",
		Long:  "Builds one storyboard. Values are coerced like the form: unset or non-numeric numbers become 0.",
		Args:  cobra.NoArgs,
		RunE:  runCase,
	}
	// String flags keep raw input so coercion happens in one place.
	for _, f := range caseFlags {
		cmd.Flags().String(f.flag, "", f.usage)
	}
	cmd.Flags().Bool("json", false, "print JSON")
	return cmd
}

func runCase(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	store, err := openCatalog(cfg)
	if err != nil {
		return err
	}

	values := make(map[string]string, len(caseFlags))
	for _, f := range caseFlags {
		if cmd.Flags().Changed(f.flag) {
			values[f.field], _ = cmd.Flags().GetString(f.flag)
		}
	}

	svc := storyboard.NewService(storyboard.NewFactory(store), storyboard.NewMemoryRepository(), nil, nil)
	c, err := svc.Submit(cmd.Context(), uuid.NewString(), storyboard.RawFromStrings(values))
	if err != nil {
		return err
	}

	board := svc.Storyboard(c)
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return writeJSON(cmd.OutOrStdout(), board)
	}
	printBoard(cmd.OutOrStdout(), board)
	return nil
}
