package mcp

import (
	"time"

	"github.com/rpggio/storyboard/internal/domain/activity"
	"github.com/rpggio/storyboard/internal/domain/catalog"
	"github.com/rpggio/storyboard/internal/domain/storyboard"
)

type emptyInput struct{}

type variantIDInput struct {
	ID string `json:"id" jsonschema:"Catalog variant id, e.g. overcollateralized"`
}

// caseInput carries raw form fields. Values may be strings or numbers;
// anything missing or unparseable is coerced rather than rejected.
type caseInput struct {
	AuctionID  any `json:"auctionId,omitempty" jsonschema:"Variant id; defaults to the selected variant, unknown ids use the first variant"`
	NFTID      any `json:"nftId,omitempty" jsonschema:"NFT label; defaults to #4921"`
	Reserve    any `json:"reserve,omitempty" jsonschema:"Reserve price in ETH"`
	Collateral any `json:"collateral,omitempty" jsonschema:"Collateral as a percentage of the bid, may exceed 100"`
	Commit     any `json:"commit,omitempty" jsonschema:"Commit window in minutes"`
	Reveal     any `json:"reveal,omitempty" jsonschema:"Reveal window in minutes"`
	Finalize   any `json:"finalize,omitempty" jsonschema:"Finalization buffer in minutes"`
	Bidders    any `json:"bidders,omitempty" jsonschema:"Expected number of bidders"`
	Notes      any `json:"notes,omitempty" jsonschema:"Free-form notes; the variant sample note is shown when empty"`
}

func (in caseInput) raw(defaultAuctionID string) storyboard.RawInput {
	auctionID := in.AuctionID
	if auctionID == nil {
		auctionID = defaultAuctionID
	}
	return storyboard.RawFromAny(map[string]any{
		storyboard.FieldAuctionID:  auctionID,
		storyboard.FieldNFTID:      in.NFTID,
		storyboard.FieldReserve:    in.Reserve,
		storyboard.FieldCollateral: in.Collateral,
		storyboard.FieldCommit:     in.Commit,
		storyboard.FieldReveal:     in.Reveal,
		storyboard.FieldFinalize:   in.Finalize,
		storyboard.FieldBidders:    in.Bidders,
		storyboard.FieldNotes:      in.Notes,
	})
}

type caseIDInput struct {
	CaseID string `json:"case_id" jsonschema:"Storyboard id such as 01"`
}

type recentActivityInput struct {
	Limit int    `json:"limit,omitempty" jsonschema:"Maximum number of entries"`
	Type  string `json:"type,omitempty" jsonschema:"Only entries of this type: case_created, case_seeded or variant_selected"`
}

type listVariantsOutput struct {
	ActiveID  string             `json:"active_id"`
	Variants  []catalog.Variant  `json:"variants"`
	Snapshots []catalog.Snapshot `json:"snapshots"`
}

type variantOutput struct {
	Variant  catalog.Variant `json:"variant"`
	Active   bool            `json:"active"`
	FellBack bool            `json:"fell_back,omitempty"`
}

type selectVariantOutput struct {
	Variant  catalog.Variant `json:"variant"`
	FellBack bool            `json:"fell_back"`
}

type caseOutput struct {
	ID         string  `json:"id"`
	AuctionID  string  `json:"auction_id"`
	NFTID      string  `json:"nft_id"`
	Reserve    float64 `json:"reserve"`
	Collateral float64 `json:"collateral"`
	Commit     int     `json:"commit"`
	Reveal     int     `json:"reveal"`
	Finalize   int     `json:"finalize"`
	Bidders    int     `json:"bidders"`
	Notes      string  `json:"notes,omitempty"`
	CreatedAt  string  `json:"created_at,omitempty"`
}

type boardOutput struct {
	Case          caseOutput         `json:"case"`
	VariantName   string             `json:"variant_name"`
	Notes         string             `json:"notes"`
	MinCollateral string             `json:"min_collateral"`
	Stages        []storyboard.Stage `json:"stages"`
	Tags          []string           `json:"tags"`
	Stored        bool               `json:"stored"`
}

type listCasesOutput struct {
	Count int           `json:"count"`
	Cases []boardOutput `json:"cases"`
}

type activityEntryOutput struct {
	ID        int64  `json:"id"`
	CaseID    string `json:"case_id,omitempty"`
	VariantID string `json:"variant_id,omitempty"`
	Type      string `json:"type"`
	Summary   string `json:"summary"`
	CreatedAt string `json:"created_at"`
}

type recentActivityOutput struct {
	Entries []activityEntryOutput `json:"entries"`
}

func toCaseOutput(c storyboard.Case) caseOutput {
	out := caseOutput{
		ID:         c.ID,
		AuctionID:  c.AuctionID,
		NFTID:      c.NFTID,
		Reserve:    c.Reserve,
		Collateral: c.Collateral,
		Commit:     c.Commit,
		Reveal:     c.Reveal,
		Finalize:   c.Finalize,
		Bidders:    c.Bidders,
		Notes:      c.Notes,
	}
	if !c.CreatedAt.IsZero() {
		out.CreatedAt = c.CreatedAt.UTC().Format(time.RFC3339)
	}
	return out
}

func toBoardOutput(b storyboard.Board, stored bool) boardOutput {
	return boardOutput{
		Case:          toCaseOutput(b.Case),
		VariantName:   b.VariantName,
		Notes:         b.Notes,
		MinCollateral: b.MinCollateral,
		Stages:        b.Stages,
		Tags:          b.Tags,
		Stored:        stored,
	}
}

func toActivityOutput(e activity.ActivityEntry) activityEntryOutput {
	out := activityEntryOutput{
		ID:        e.ID,
		VariantID: e.VariantID,
		Type:      string(e.ActivityType),
		Summary:   e.Summary,
		CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339),
	}
	if e.CaseID != nil {
		out.CaseID = *e.CaseID
	}
	return out
}
