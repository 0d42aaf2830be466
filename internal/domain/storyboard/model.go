package storyboard

import "time"

// DefaultNFTID labels cases submitted without an NFT id.
const DefaultNFTID = "#4921"

// Case is one generated storyboard instantiating a variant with concrete parameters.
type Case struct {
	ID         string    `json:"id"`
	AuctionID  string    `json:"auction_id"`
	NFTID      string    `json:"nft_id"`
	Reserve    float64   `json:"reserve"`
	Collateral float64   `json:"collateral"`
	Commit     int       `json:"commit"`
	Reveal     int       `json:"reveal"`
	Finalize   int       `json:"finalize"`
	Bidders    int       `json:"bidders"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at,omitzero"`
}

// Stage is one entry of a derived timeline.
type Stage struct {
	Label  string `json:"label"`
	Detail string `json:"detail"`
}

// Stage labels, in timeline order.
const (
	StageCommit    = "Commit"
	StageReveal    = "Reveal"
	StageFinalize  = "Finalize"
	StageReference = "Reference"
)

// Board is a case rendered against its variant.
type Board struct {
	Case          Case     `json:"case"`
	VariantName   string   `json:"variant_name"`
	Notes         string   `json:"notes"`
	MinCollateral string   `json:"min_collateral"`
	Stages        []Stage  `json:"stages"`
	Tags          []string `json:"tags"`
}
