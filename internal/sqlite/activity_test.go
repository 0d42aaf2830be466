package sqlite

import (
	"context"
	"testing"

	"github.com/rpggio/storyboard/internal/domain/activity"
	"github.com/rpggio/storyboard/internal/domain/catalog"
	"github.com/stretchr/testify/require"
)

func newTestCatalog(t *testing.T) *catalog.Store {
	t.Helper()
	store, err := catalog.NewStore(catalog.Builtin())
	require.NoError(t, err)
	return store
}

func activityOpts(limit int) activity.ListActivityOptions {
	return activity.ListActivityOptions{Limit: limit}
}

// newActivityService wraps the sqlite activity log in the domain service.
func newActivityService(db *DB) *activity.Service {
	return activity.NewService(NewActivityRepository(db), nil)
}

func TestActivityRepository_LogList(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	repo := NewActivityRepository(db)
	caseID := "01"
	entry1 := &activity.ActivityEntry{
		CaseID:       &caseID,
		VariantID:    "sneaky",
		ActivityType: activity.TypeCaseCreated,
		Summary:      "Created case",
	}
	entry2 := &activity.ActivityEntry{
		VariantID:    "aztec",
		ActivityType: activity.TypeVariantSelected,
		Summary:      "Selected aztec",
	}

	require.NoError(t, repo.Log(ctx, "ws1", entry1))
	require.NoError(t, repo.Log(ctx, "ws1", entry2))
	require.NotZero(t, entry1.ID)
	require.Equal(t, "ws1", entry1.WorkspaceID)

	entries, err := repo.List(ctx, "ws1", activity.ListActivityOptions{})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, entry2.ActivityType, entries[0].ActivityType)
	require.Nil(t, entries[0].CaseID)
	require.Equal(t, entry1.ActivityType, entries[1].ActivityType)
	require.Equal(t, "01", *entries[1].CaseID)
}

func TestActivityRepository_FiltersAndWorkspaceIsolation(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	repo := NewActivityRepository(db)
	caseID := "01"
	require.NoError(t, repo.Log(ctx, "ws1", &activity.ActivityEntry{CaseID: &caseID, ActivityType: activity.TypeCaseSeeded, Summary: "seeded"}))
	require.NoError(t, repo.Log(ctx, "ws1", &activity.ActivityEntry{ActivityType: activity.TypeVariantSelected, Summary: "selected"}))
	require.NoError(t, repo.Log(ctx, "ws1", &activity.ActivityEntry{ActivityType: activity.TypeVariantSelected, Summary: "selected again"}))

	seeded := activity.TypeCaseSeeded
	entries, err := repo.List(ctx, "ws1", activity.ListActivityOptions{CaseID: &caseID, ActivityType: &seeded})
	require.NoError(t, err)
	require.Len(t, entries, 1)

	entries, err = repo.List(ctx, "ws1", activity.ListActivityOptions{Limit: 1})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "selected again", entries[0].Summary)

	entries, err = repo.List(ctx, "ws2", activity.ListActivityOptions{})
	require.NoError(t, err)
	require.Len(t, entries, 0)
}

func TestActivityService_Discard(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	svc := newActivityService(db)

	require.NoError(t, svc.LogActivity(ctx, "ws1", &activity.ActivityEntry{ActivityType: activity.TypeVariantSelected, Summary: "selected"}))
	require.NoError(t, svc.LogActivity(ctx, "ws2", &activity.ActivityEntry{ActivityType: activity.TypeVariantSelected, Summary: "kept"}))

	require.NoError(t, svc.Discard(ctx, "ws1"))

	entries, err := svc.GetRecentActivity(ctx, "ws1", activityOpts(10))
	require.NoError(t, err)
	require.Empty(t, entries)

	entries, err = svc.GetRecentActivity(ctx, "ws2", activityOpts(10))
	require.NoError(t, err)
	require.Len(t, entries, 1)
}
