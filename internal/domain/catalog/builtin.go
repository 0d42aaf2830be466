package catalog

// Builtin returns the default catalog of sealed-bid auction variants.
func Builtin() []Variant {
	return []Variant{
		{
			ID:         "overcollateralized",
			Name:       "Overcollateralized Vickrey auction",
			Summary:    "Adds griefing resistance by requiring bidders to over-collateralize the value of their sealed bids before reveals.",
			Signature:  "Collateral-gated reveals with classic Vickrey payout.",
			Focus:      []string{"Commit-and-reveal", "Penalty-resistant", "Single-item"},
			CodePath:   "../src/sealed-bid/over-collateralized-auction/OverCollateralizedAuction.sol",
			TestPath:   "../test/OverCollateralizedAuction.t.sol",
			Blog:       "https://a16zcrypto.com/how-auction-theory-informs-implementations/",
			SampleNote: "Stress test griefing resistance with 1.5x collateral and a tight 30m reveal window.",
			Phases: []Phase{
				{
					Title:       "Commit",
					Duration:    "minutes",
					Description: "Bidder commits with a hash and deposits 1.5x the bid to discourage griefing.",
					Checklist: []string{
						"hash(bid, salt) stays private",
						"collateral transferred into contract",
						"emits Commit event for ordering",
					},
				},
				{
					Title:       "Reveal",
					Duration:    "minutes",
					Description: "Bidders reveal salt + bid; invalid reveals lose collateral if undercollateralized.",
					Checklist: []string{
						"verify commitment matches payload",
						"mark highest valid bid",
						"refund excess collateral",
					},
				},
				{
					Title:       "Finalize",
					Duration:    "minutes",
					Description: "Seller claims payment; losers reclaim collateral; winning price is second highest.",
					Checklist: []string{
						"second-price settlement",
						"transfer NFT to winner",
						"cleanup for next sale",
					},
				},
			},
		},
		{
			ID:         "sneaky",
			Name:       `"Sneaky" Vickrey auction`,
			Summary:    "Intentionally leaks bid ordering through storage writes to show how implementation details reveal signal.",
			Signature:  "A cautionary tale for storage-based side channels.",
			Focus:      []string{"Side-channel study", "Commit-and-reveal", "Storage patterns"},
			CodePath:   "../src/sealed-bid/sneaky-auction/SneakyAuction.sol",
			TestPath:   "../test/SneakyAuction.t.sol",
			Blog:       "https://a16zcrypto.com/hidden-in-plain-sight-a-sneaky-solidity-implementation-of-a-sealed-bid-auction/",
			SampleNote: "Show how ordered storage writes leak rank; track gas deltas between reveal orderings.",
			Phases: []Phase{
				{
					Title:       "Commit",
					Duration:    "minutes",
					Description: "Hash commitments are ordered into storage, leaking relative bid sizes over time.",
					Checklist:   []string{"ordered insertions", "commit salt retained", "storage touched per bid"},
				},
				{
					Title:       "Reveal",
					Duration:    "minutes",
					Description: "Reveals run in that ordering to surface timing attacks and gas griefing opportunities.",
					Checklist:   []string{"reconstruct bid", "update apparent leader", "log reveal ordering"},
				},
				{
					Title:       "Settle",
					Duration:    "minutes",
					Description: "Winner pays second price, but observers could infer ranking earlier via storage diffs.",
					Checklist:   []string{"second-price payout", "ordered refunds", "post-mortem analysis"},
				},
			},
		},
		{
			ID:         "aztec",
			Name:       "Aztec Connect Vickrey auction",
			Summary:    "Lets bidders submit commitments privately via Aztec, keeping the sealed-bid flow intact on settlement.",
			Signature:  "Privacy-preserving commitments with public settlement.",
			Focus:      []string{"Cross-chain inbox", "Private commitments", "Bridge settlement"},
			CodePath:   "../src/sealed-bid/aztec-connect-auction/AztecConnectAuction.sol",
			TestPath:   "../test/AztecConnectAuction.t.sol",
			Blog:       "https://a16zcrypto.com/through-the-looking-glass-a-cross-chain-sealed-bid-auction-using-aztec-connect/",
			SampleNote: "Demonstrate private commits from Aztec Connect and public settlement on L1.",
			Phases: []Phase{
				{
					Title:       "Private commit",
					Duration:    "bridge rollup",
					Description: "Commitments originate in Aztec, arrive via inbox bridge with proofs.",
					Checklist:   []string{"validate Aztec proof", "checkpoint inbox hash", "record bidder alias"},
				},
				{
					Title:       "Reveal",
					Duration:    "minutes",
					Description: "Reveal flows mirror the base Vickrey design; invalid proofs revert.",
					Checklist:   []string{"payload checks", "hash binding", "bridge accounting"},
				},
				{
					Title:       "Settle",
					Duration:    "minutes",
					Description: "Winners pay on L1; optional reconcile with Aztec notes for refunds and payments.",
					Checklist:   []string{"L1 settlement", "bridge refund notes", "winner payout"},
				},
			},
		},
	}
}
