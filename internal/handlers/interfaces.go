package handlers

import (
	"context"

	"github.com/dimitrije/mirror-api/internal/clerk"
	"github.com/dimitrije/mirror-api/internal/models"
	"github.com/dimitrije/mirror-api/internal/services"
)

// RegistryInterface defines the methods the webhook handler uses from the
// event registry.
type RegistryInterface interface {
	Handles(eventType string) bool
	Dispatch(ctx context.Context, event clerk.Event) error
}

// EventRecorderInterface defines the audit methods used by the webhook handler.
type EventRecorderInterface interface {
	RecordEvent(ctx context.Context, eventType, externalID, deliveryID string) error
}

// MirrorServiceInterface defines the methods used by the query handlers.
type MirrorServiceInterface interface {
	GetUser(ctx context.Context, id string) (*models.User, error)
	GetWorkspace(ctx context.Context, id string) (*models.Workspace, error)
	GetMembers(ctx context.Context, workspaceID string) ([]models.WorkspaceMember, error)
}

// BackfillerInterface defines the methods the admin handler uses from the
// sync service.
type BackfillerInterface interface {
	Backfill(ctx context.Context, provider services.ProviderDirectory) (int, error)
}
