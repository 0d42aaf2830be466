package storyboard_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rpggio/storyboard/internal/domain/activity"
	"github.com/rpggio/storyboard/internal/domain/storyboard"
	"github.com/rpggio/storyboard/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestService_SubmitInsertsAtFront(t *testing.T) {
	ctx := context.Background()
	svc := storyboard.NewService(newFactory(t), storyboard.NewMemoryRepository(), nil, nil)

	first, err := svc.Submit(ctx, "ws1", storyboard.RawFromStrings(map[string]string{"auctionId": "sneaky"}))
	require.NoError(t, err)
	require.Equal(t, "01", first.ID)
	require.False(t, first.CreatedAt.IsZero())

	second, err := svc.Submit(ctx, "ws1", storyboard.RawFromStrings(map[string]string{"auctionId": "aztec"}))
	require.NoError(t, err)
	require.Equal(t, "02", second.ID)

	third, err := svc.Seed(ctx, "ws1")
	require.NoError(t, err)
	require.Equal(t, "03", third.ID)

	cases, err := svc.List(ctx, "ws1")
	require.NoError(t, err)
	require.Len(t, cases, 3)
	require.Equal(t, []string{"03", "02", "01"}, []string{cases[0].ID, cases[1].ID, cases[2].ID})

	n, err := svc.Count(ctx, "ws1")
	require.NoError(t, err)
	require.Equal(t, 3, n)

	n, err = svc.Count(ctx, "ws2")
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestService_LogsActivity(t *testing.T) {
	ctx := context.Background()
	logger := &mocks.ActivityLogger{}
	logger.On("LogActivity", ctx, "ws1", mock.MatchedBy(func(e *activity.ActivityEntry) bool {
		return e.ActivityType == activity.TypeCaseCreated && e.CaseID != nil && *e.CaseID == "01" && e.VariantID == "sneaky"
	})).Return(nil).Once()
	logger.On("LogActivity", ctx, "ws1", mock.MatchedBy(func(e *activity.ActivityEntry) bool {
		return e.ActivityType == activity.TypeCaseSeeded && *e.CaseID == "02"
	})).Return(errors.New("log unavailable")).Once()

	svc := storyboard.NewService(newFactory(t), storyboard.NewMemoryRepository(), logger, nil)

	_, err := svc.Submit(ctx, "ws1", storyboard.RawFromStrings(map[string]string{"auctionId": "sneaky"}))
	require.NoError(t, err)

	// activity failures do not fail the case
	_, err = svc.Seed(ctx, "ws1")
	require.NoError(t, err)

	logger.AssertExpectations(t)
}

func TestService_RepositoryErrors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("disk on fire")

	repo := &mocks.CaseRepository{}
	repo.On("Count", ctx, "ws1").Return(0, boom).Once()
	svc := storyboard.NewService(newFactory(t), repo, nil, nil)

	_, err := svc.Submit(ctx, "ws1", nil)
	require.ErrorIs(t, err, boom)

	repo.On("Count", ctx, "ws1").Return(0, nil)
	repo.On("InsertFront", ctx, "ws1", mock.AnythingOfType("storyboard.Case")).Return(boom)
	_, err = svc.Seed(ctx, "ws1")
	require.ErrorIs(t, err, boom)

	repo.On("All", ctx, "ws1").Return(nil, boom)
	_, err = svc.List(ctx, "ws1")
	require.ErrorIs(t, err, boom)

	repo.On("DeleteWorkspace", ctx, "ws1").Return(boom)
	require.ErrorIs(t, svc.Discard(ctx, "ws1"), boom)
	repo.AssertExpectations(t)
}

func TestService_Storyboard(t *testing.T) {
	svc := storyboard.NewService(newFactory(t), storyboard.NewMemoryRepository(), nil, nil)

	board := svc.Storyboard(storyboard.Case{
		ID:         "07",
		AuctionID:  "overcollateralized",
		NFTID:      "#1",
		Reserve:    2.5,
		Collateral: 150,
		Commit:     30,
	})
	require.Equal(t, "Overcollateralized Vickrey auction", board.VariantName)
	require.Equal(t, "3.75", board.MinCollateral)
	require.Equal(t, "Stress test griefing resistance with 1.5x collateral and a tight 30m reveal window.", board.Notes)
	require.Equal(t, []string{"Commit-and-reveal", "Penalty-resistant", "Storyboard 07"}, board.Tags)
	require.Len(t, board.Stages, 4)
	require.Equal(t, "Check ./test/OverCollateralizedAuction.t.sol for the matching Foundry walkthrough", board.Stages[3].Detail)

	fallback := svc.Storyboard(storyboard.Case{ID: "08", AuctionID: "gone"})
	require.Equal(t, "Overcollateralized Vickrey auction", fallback.VariantName)
}

func TestService_PreviewAndFind(t *testing.T) {
	ctx := context.Background()
	svc := storyboard.NewService(newFactory(t), storyboard.NewMemoryRepository(), nil, nil)

	preview, err := svc.Preview(ctx, "ws1", storyboard.RawFromStrings(map[string]string{"auctionId": "aztec"}))
	require.NoError(t, err)
	require.Equal(t, "01", preview.ID)

	n, err := svc.Count(ctx, "ws1")
	require.NoError(t, err)
	require.Zero(t, n)

	stored, err := svc.Submit(ctx, "ws1", storyboard.RawFromStrings(map[string]string{"auctionId": "aztec"}))
	require.NoError(t, err)

	found, err := svc.Find(ctx, "ws1", stored.ID)
	require.NoError(t, err)
	require.Equal(t, "aztec", found.AuctionID)

	_, err = svc.Find(ctx, "ws1", "42")
	require.ErrorIs(t, err, storyboard.ErrCaseNotFound)
}
