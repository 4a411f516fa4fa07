package services

import (
	"context"
	"fmt"

	"github.com/dimitrije/mirror-api/internal/clerk"
)

const backfillPageSize = 100

// ProviderDirectory is the slice of the provider API the backfill needs.
type ProviderDirectory interface {
	ListUsers(ctx context.Context, limit, offset int) ([]clerk.UserData, error)
	ListOrganizations(ctx context.Context, limit, offset int) ([]clerk.OrganizationData, error)
}

// Backfill replays the provider's current users and organizations through the
// same reconciliation writes the webhook path uses. Because every write is an
// idempotent upsert, a backfill racing live deliveries is safe; it returns the
// number of entities applied.
func (s *SyncService) Backfill(ctx context.Context, provider ProviderDirectory) (int, error) {
	applied := 0

	for offset := 0; ; offset += backfillPageSize {
		users, err := provider.ListUsers(ctx, backfillPageSize, offset)
		if err != nil {
			return applied, fmt.Errorf("backfill: %w", err)
		}
		for _, user := range users {
			if err := user.Validate(); err != nil {
				return applied, fmt.Errorf("backfill user: %w", err)
			}
			if err := s.SyncUser(ctx, user); err != nil {
				return applied, err
			}
			applied++
		}
		if len(users) < backfillPageSize {
			break
		}
	}

	for offset := 0; ; offset += backfillPageSize {
		orgs, err := provider.ListOrganizations(ctx, backfillPageSize, offset)
		if err != nil {
			return applied, fmt.Errorf("backfill: %w", err)
		}
		for _, org := range orgs {
			if err := org.Validate(); err != nil {
				return applied, fmt.Errorf("backfill organization: %w", err)
			}
			// Organizations with a known creator go through the creation
			// handler so the owner's ADMIN membership is re-asserted.
			if org.CreatedBy != "" {
				err = s.SyncWorkspaceCreated(ctx, org)
			} else {
				err = s.SyncWorkspaceUpdated(ctx, org)
			}
			if err != nil {
				return applied, err
			}
			applied++
		}
		if len(orgs) < backfillPageSize {
			break
		}
	}

	return applied, nil
}
