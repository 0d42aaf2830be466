package storyboard

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"

	"github.com/rpggio/storyboard/internal/domain/catalog"
	"github.com/spf13/cast"
)

// maxCount caps integer fields so oversized input still converts cleanly.
const maxCount = math.MaxInt32

// Factory builds well-formed cases from raw input.
type Factory struct {
	store     *catalog.Store
	intn      func(n int) int
	overrides map[string]RawInput
}

// FactoryOption configures a Factory.
type FactoryOption func(*Factory)

// WithRand makes sample picks draw from r.
func WithRand(r *rand.Rand) FactoryOption {
	return func(f *Factory) {
		f.intn = r.IntN
	}
}

// WithSampleOverride registers sample values for one variant id,
// replacing any builtin entry for that id.
func WithSampleOverride(variantID string, values RawInput) FactoryOption {
	return func(f *Factory) {
		f.overrides[variantID] = values
	}
}

// NewFactory creates a case factory over the catalog.
func NewFactory(store *catalog.Store, opts ...FactoryOption) *Factory {
	f := &Factory{
		store:     store,
		intn:      rand.IntN,
		overrides: make(map[string]RawInput, len(sampleOverrides)),
	}
	for id, values := range sampleOverrides {
		f.overrides[id] = values
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Catalog returns the store the factory draws variants from.
func (f *Factory) Catalog() *catalog.Store {
	return f.store
}

// BuildCase coerces raw into a Case numbered after count existing cases.
// Missing or unparseable numbers become 0 and unknown auction ids fall back
// to the first catalog entry; nothing is rejected.
func (f *Factory) BuildCase(raw RawInput, count int) Case {
	auctionID, _ := raw.get(FieldAuctionID).Value()
	if !f.store.Contains(auctionID) {
		auctionID = f.store.First().ID
	}

	nftID, _ := raw.get(FieldNFTID).Value()
	if nftID == "" {
		nftID = DefaultNFTID
	}

	notes, _ := raw.get(FieldNotes).Value()

	return Case{
		ID:         caseID(count),
		AuctionID:  auctionID,
		NFTID:      nftID,
		Reserve:    coerceAmount(raw.get(FieldReserve)),
		Collateral: coerceAmount(raw.get(FieldCollateral)),
		Commit:     coerceCount(raw.get(FieldCommit)),
		Reveal:     coerceCount(raw.get(FieldReveal)),
		Finalize:   coerceCount(raw.get(FieldFinalize)),
		Bidders:    coerceCount(raw.get(FieldBidders)),
		Notes:      notes,
	}
}

// BuildSampleCase picks a variant uniformly at random and fills in the
// illustrative sample values for it.
func (f *Factory) BuildSampleCase(count int) Case {
	v := f.store.At(f.intn(f.store.Len()))

	raw := merge(sampleBase, f.overrides[v.ID])
	raw[FieldAuctionID] = Present(v.ID)
	raw[FieldNotes] = Present(v.SampleNote)
	return f.BuildCase(raw, count)
}

func caseID(count int) string {
	if count < 0 {
		count = 0
	}
	return fmt.Sprintf("%02d", count+1)
}

func coerceAmount(field Field) float64 {
	s, ok := field.Value()
	if !ok {
		return 0
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	n, err := cast.ToFloat64E(s)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) || n <= 0 {
		return 0
	}
	return n
}

func coerceCount(field Field) int {
	n := math.Trunc(coerceAmount(field))
	if n > maxCount {
		return maxCount
	}
	return int(n)
}
