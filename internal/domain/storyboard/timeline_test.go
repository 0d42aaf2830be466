package storyboard_test

import (
	"testing"

	"github.com/rpggio/storyboard/internal/domain/catalog"
	"github.com/rpggio/storyboard/internal/domain/storyboard"
	"github.com/stretchr/testify/require"
)

func sneakyVariant(t *testing.T) catalog.Variant {
	t.Helper()
	store, err := catalog.NewStore(catalog.Builtin())
	require.NoError(t, err)
	v, err := store.Find("sneaky")
	require.NoError(t, err)
	return v
}

func TestDeriveTimeline_FixedStages(t *testing.T) {
	v := sneakyVariant(t)
	c := storyboard.Case{ID: "01", AuctionID: v.ID, Reserve: 2.5, Collateral: 150, Commit: 30, Reveal: 25, Finalize: 15}

	stages := storyboard.DeriveTimeline(v, c)
	require.Equal(t, []storyboard.Stage{
		{Label: "Commit", Detail: "30m window · lock ≥ 3.75 ETH collateral per bid"},
		{Label: "Reveal", Detail: "25m window · validate salt + bid and rank for second price"},
		{Label: "Finalize", Detail: "15m buffer · settle with winner paying second price"},
		{Label: "Reference", Detail: "Check ./test/SneakyAuction.t.sol for the matching Foundry walkthrough"},
	}, stages)
}

func TestDeriveTimeline_Pure(t *testing.T) {
	v := sneakyVariant(t)
	c := storyboard.Case{Reserve: 1.2, Collateral: 110, Commit: 5}

	first := storyboard.DeriveTimeline(v, c)
	second := storyboard.DeriveTimeline(v, c)
	require.Equal(t, first, second)
	require.Len(t, first, 4)
}

func TestDeriveTimeline_IgnoresDeclaredPhases(t *testing.T) {
	v := sneakyVariant(t)
	v.Phases = append(v.Phases, catalog.Phase{Title: "Extra"})

	stages := storyboard.DeriveTimeline(v, storyboard.Case{})
	require.Len(t, stages, 4)
	require.Equal(t, "0m window · lock ≥ 0.00 ETH collateral per bid", stages[0].Detail)
}

func TestMinCollateral_Rounding(t *testing.T) {
	tests := []struct {
		reserve, collateral float64
		want                string
	}{
		{2.5, 150, "3.75"},
		{2, 0, "0.00"},
		{1, 100, "1.00"},
		{0.125, 100, "0.13"},
		{3, 33.333, "1.00"},
		{10, 250, "25.00"},
	}
	for _, tc := range tests {
		c := storyboard.Case{Reserve: tc.reserve, Collateral: tc.collateral}
		require.Equal(t, tc.want, storyboard.FormatAmount(storyboard.MinCollateral(c)), "reserve=%v collateral=%v", tc.reserve, tc.collateral)
	}
}

func TestReferencePath(t *testing.T) {
	require.Equal(t, "./test/A.t.sol", storyboard.ReferencePath("../test/A.t.sol"))
	require.Equal(t, "test/A.t.sol", storyboard.ReferencePath("test/A.t.sol"))
	require.Equal(t, "./../x.sol", storyboard.ReferencePath("../../x.sol"))
	require.Equal(t, "", storyboard.ReferencePath(""))
}

func TestDisplayNotes(t *testing.T) {
	v := sneakyVariant(t)
	require.Equal(t, v.SampleNote, storyboard.DisplayNotes(v, storyboard.Case{}))
	require.Equal(t, "mine", storyboard.DisplayNotes(v, storyboard.Case{Notes: "mine"}))
}
