package storyboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rpggio/storyboard/internal/domain/activity"
	"github.com/rpggio/storyboard/internal/domain/catalog"
)

// Service creates, stores and renders cases.
type Service struct {
	factory  *Factory
	repo     Repository
	activity ActivityLogger
	logger   *slog.Logger
	now      func() time.Time
}

// NewService creates a new storyboard service. activityLog and logger may be nil.
func NewService(factory *Factory, repo Repository, activityLog ActivityLogger, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{
		factory:  factory,
		repo:     repo,
		activity: activityLog,
		logger:   logger,
		now:      time.Now,
	}
}

// Submit builds a case from raw form input and stores it at the front.
func (s *Service) Submit(ctx context.Context, workspaceID string, raw RawInput) (Case, error) {
	count, err := s.repo.Count(ctx, workspaceID)
	if err != nil {
		return Case{}, fmt.Errorf("counting cases: %w", err)
	}
	return s.insert(ctx, workspaceID, s.factory.BuildCase(raw, count), activity.TypeCaseCreated)
}

// Seed builds a sample case for a random variant and stores it at the front.
func (s *Service) Seed(ctx context.Context, workspaceID string) (Case, error) {
	count, err := s.repo.Count(ctx, workspaceID)
	if err != nil {
		return Case{}, fmt.Errorf("counting cases: %w", err)
	}
	return s.insert(ctx, workspaceID, s.factory.BuildSampleCase(count), activity.TypeCaseSeeded)
}

func (s *Service) insert(ctx context.Context, workspaceID string, c Case, kind activity.ActivityType) (Case, error) {
	c.CreatedAt = s.now()
	if err := s.repo.InsertFront(ctx, workspaceID, c); err != nil {
		return Case{}, fmt.Errorf("storing case: %w", err)
	}

	s.logger.Info("case stored", "workspace_id", workspaceID, "case_id", c.ID, "auction_id", c.AuctionID, "kind", kind)

	if s.activity != nil {
		caseID := c.ID
		entry := &activity.ActivityEntry{
			CaseID:       &caseID,
			VariantID:    c.AuctionID,
			ActivityType: kind,
			Summary:      fmt.Sprintf("Storyboard %s for %s (%s)", c.ID, c.AuctionID, c.NFTID),
			CreatedAt:    c.CreatedAt,
		}
		if err := s.activity.LogActivity(ctx, workspaceID, entry); err != nil {
			s.logger.Warn("failed to log activity", "workspace_id", workspaceID, "case_id", c.ID, "error", err)
		}
	}
	return c, nil
}

// List returns all cases in the workspace, most recent first.
func (s *Service) List(ctx context.Context, workspaceID string) ([]Case, error) {
	cases, err := s.repo.All(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("listing cases: %w", err)
	}
	return cases, nil
}

// Discard deletes every case of the workspace.
func (s *Service) Discard(ctx context.Context, workspaceID string) error {
	if err := s.repo.DeleteWorkspace(ctx, workspaceID); err != nil {
		return fmt.Errorf("discarding cases: %w", err)
	}
	return nil
}

// Count returns the number of cases in the workspace.
func (s *Service) Count(ctx context.Context, workspaceID string) (int, error) {
	n, err := s.repo.Count(ctx, workspaceID)
	if err != nil {
		return 0, fmt.Errorf("counting cases: %w", err)
	}
	return n, nil
}

// Catalog returns the variant store backing the service.
func (s *Service) Catalog() *catalog.Store {
	return s.factory.Catalog()
}

// Storyboard renders c against its variant.
func (s *Service) Storyboard(c Case) Board {
	v, _ := s.factory.Catalog().Resolve(c.AuctionID)
	return Render(v, c)
}

// Render builds the board for c using variant v.
func Render(v catalog.Variant, c Case) Board {
	tags := make([]string, 0, 3)
	for i := 0; i < len(v.Focus) && i < 2; i++ {
		tags = append(tags, v.Focus[i])
	}
	tags = append(tags, "Storyboard "+c.ID)

	return Board{
		Case:          c,
		VariantName:   v.Name,
		Notes:         DisplayNotes(v, c),
		MinCollateral: FormatAmount(MinCollateral(c)),
		Stages:        DeriveTimeline(v, c),
		Tags:          tags,
	}
}

// Preview builds the case the next Submit would store, without storing it.
func (s *Service) Preview(ctx context.Context, workspaceID string, raw RawInput) (Case, error) {
	count, err := s.repo.Count(ctx, workspaceID)
	if err != nil {
		return Case{}, fmt.Errorf("counting cases: %w", err)
	}
	return s.factory.BuildCase(raw, count), nil
}

// Find returns the stored case with the given id.
func (s *Service) Find(ctx context.Context, workspaceID, caseID string) (Case, error) {
	cases, err := s.List(ctx, workspaceID)
	if err != nil {
		return Case{}, err
	}
	for _, c := range cases {
		if c.ID == caseID {
			return c, nil
		}
	}
	return Case{}, fmt.Errorf("%w: %q", ErrCaseNotFound, caseID)
}
