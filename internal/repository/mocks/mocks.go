package mocks

import (
	"context"

	"github.com/rpggio/storyboard/internal/domain/activity"
	"github.com/rpggio/storyboard/internal/domain/storyboard"
	"github.com/stretchr/testify/mock"
)

// CaseRepository is a mock for repository.CaseRepository.
type CaseRepository struct {
	mock.Mock
}

func (m *CaseRepository) InsertFront(ctx context.Context, workspaceID string, c storyboard.Case) error {
	args := m.Called(ctx, workspaceID, c)
	return args.Error(0)
}

func (m *CaseRepository) All(ctx context.Context, workspaceID string) ([]storyboard.Case, error) {
	args := m.Called(ctx, workspaceID)
	if list, ok := args.Get(0).([]storyboard.Case); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CaseRepository) Count(ctx context.Context, workspaceID string) (int, error) {
	args := m.Called(ctx, workspaceID)
	return args.Int(0), args.Error(1)
}

func (m *CaseRepository) DeleteWorkspace(ctx context.Context, workspaceID string) error {
	args := m.Called(ctx, workspaceID)
	return args.Error(0)
}

// ActivityRepository is a mock for repository.ActivityRepository.
type ActivityRepository struct {
	mock.Mock
}

func (m *ActivityRepository) Log(ctx context.Context, workspaceID string, entry *activity.ActivityEntry) error {
	args := m.Called(ctx, workspaceID, entry)
	return args.Error(0)
}

func (m *ActivityRepository) List(ctx context.Context, workspaceID string, opts activity.ListActivityOptions) ([]activity.ActivityEntry, error) {
	args := m.Called(ctx, workspaceID, opts)
	if list, ok := args.Get(0).([]activity.ActivityEntry); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ActivityRepository) DeleteWorkspace(ctx context.Context, workspaceID string) error {
	args := m.Called(ctx, workspaceID)
	return args.Error(0)
}

// ActivityLogger is a mock for storyboard.ActivityLogger.
type ActivityLogger struct {
	mock.Mock
}

func (m *ActivityLogger) LogActivity(ctx context.Context, workspaceID string, entry *activity.ActivityEntry) error {
	args := m.Called(ctx, workspaceID, entry)
	return args.Error(0)
}
