package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dimitrije/mirror-api/internal/clerk"
	"github.com/dimitrije/mirror-api/internal/database"
	"github.com/dimitrije/mirror-api/internal/models"
	"github.com/google/uuid"
)

// SyncService applies identity-provider lifecycle events to the local mirror.
// Every write is an idempotent upsert or delete keyed by the provider id, so
// duplicate and out-of-order deliveries converge to the same rows. Failures
// propagate to the caller; the provider's redelivery is the only retry loop.
type SyncService struct {
	db *database.DB
}

func NewSyncService(db *database.DB) *SyncService {
	return &SyncService{db: db}
}

// SyncUser handles user.created and user.updated identically: an update
// arriving before its creation event simply creates the row.
func (s *SyncService) SyncUser(ctx context.Context, data clerk.UserData) error {
	_, err := s.db.Pool.Exec(ctx, `
		INSERT INTO users (id, email, name, image_url)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			email = EXCLUDED.email,
			name = EXCLUDED.name,
			image_url = EXCLUDED.image_url,
			updated_at = NOW()
	`, data.ID, data.PrimaryEmail(), data.DisplayName(), data.ImageURL)
	if err != nil {
		return fmt.Errorf("failed to upsert user %s: %w", data.ID, err)
	}
	return nil
}

// DeleteUser removes all user rows matching the identifier. Zero rows
// affected is success: the delete may be a redelivery or may have arrived
// before the creation event.
func (s *SyncService) DeleteUser(ctx context.Context, id string) error {
	if _, err := s.db.Pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete user %s: %w", id, err)
	}
	return nil
}

// SyncWorkspaceCreated upserts the workspace and guarantees the creator holds
// an ADMIN membership, in one transaction. The member upsert compensates for
// a membership event that may never arrive for the creator. On conflict the
// workspace update leaves owner_id alone, matching the update-event shape.
func (s *SyncService) SyncWorkspaceCreated(ctx context.Context, data clerk.OrganizationData) error {
	tx, err := s.db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO workspaces (id, name, slug, owner_id, image_url)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			slug = EXCLUDED.slug,
			image_url = EXCLUDED.image_url,
			updated_at = NOW()
	`, data.ID, data.Name, data.Slug, data.CreatedBy, data.ImageURL)
	if err != nil {
		return fmt.Errorf("failed to upsert workspace %s: %w", data.ID, err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO workspace_members (user_id, workspace_id, role)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, workspace_id) DO UPDATE SET role = EXCLUDED.role
	`, data.CreatedBy, data.ID, models.RoleAdmin)
	if err != nil {
		return fmt.Errorf("failed to upsert owner membership for workspace %s: %w", data.ID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// SyncWorkspaceUpdated upserts workspace fields, creating the row when the
// update beat the creation event. An existing owner survives payloads that
// omit created_by.
func (s *SyncService) SyncWorkspaceUpdated(ctx context.Context, data clerk.OrganizationData) error {
	_, err := s.db.Pool.Exec(ctx, `
		INSERT INTO workspaces (id, name, slug, owner_id, image_url)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			slug = EXCLUDED.slug,
			image_url = EXCLUDED.image_url,
			owner_id = COALESCE(EXCLUDED.owner_id, workspaces.owner_id),
			updated_at = NOW()
	`, data.ID, data.Name, data.Slug, data.Owner(), data.ImageURL)
	if err != nil {
		return fmt.Errorf("failed to upsert workspace %s: %w", data.ID, err)
	}
	return nil
}

// DeleteWorkspace removes the workspace row. Member rows are left in place;
// the read side never surfaces memberships of an absent workspace, and a
// re-created workspace with the same provider id legitimately resumes them.
// Zero rows affected is success.
func (s *SyncService) DeleteWorkspace(ctx context.Context, id string) error {
	if _, err := s.db.Pool.Exec(ctx, `DELETE FROM workspaces WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete workspace %s: %w", id, err)
	}
	return nil
}

// SyncMembership upserts the (user, workspace) membership with the role
// normalized to upper case. The composite key keeps at most one role per user
// per workspace; the last applied event wins.
func (s *SyncService) SyncMembership(ctx context.Context, data clerk.InvitationData) error {
	_, err := s.db.Pool.Exec(ctx, `
		INSERT INTO workspace_members (user_id, workspace_id, role)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, workspace_id) DO UPDATE SET role = EXCLUDED.role
	`, data.UserID, data.OrganizationID, strings.ToUpper(data.RoleName))
	if err != nil {
		return fmt.Errorf("failed to upsert membership (%s, %s): %w", data.UserID, data.OrganizationID, err)
	}
	return nil
}

// RecordEvent writes the audit row for an applied delivery.
func (s *SyncService) RecordEvent(ctx context.Context, eventType, externalID, deliveryID string) error {
	_, err := s.db.Pool.Exec(ctx, `
		INSERT INTO sync_events (id, event_type, external_id, delivery_id)
		VALUES ($1, $2, $3, $4)
	`, uuid.New(), eventType, externalID, deliveryID)
	if err != nil {
		return fmt.Errorf("failed to record sync event: %w", err)
	}
	return nil
}
