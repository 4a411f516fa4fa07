package testutil

import (
	"context"

	"github.com/dimitrije/mirror-api/internal/clerk"
	"github.com/dimitrije/mirror-api/internal/models"
	"github.com/dimitrije/mirror-api/internal/services"
	"github.com/stretchr/testify/mock"
)

// MockSyncService mocks the SyncService
type MockSyncService struct {
	mock.Mock
}

func (m *MockSyncService) SyncUser(ctx context.Context, data clerk.UserData) error {
	args := m.Called(ctx, data)
	return args.Error(0)
}

func (m *MockSyncService) DeleteUser(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSyncService) SyncWorkspaceCreated(ctx context.Context, data clerk.OrganizationData) error {
	args := m.Called(ctx, data)
	return args.Error(0)
}

func (m *MockSyncService) SyncWorkspaceUpdated(ctx context.Context, data clerk.OrganizationData) error {
	args := m.Called(ctx, data)
	return args.Error(0)
}

func (m *MockSyncService) DeleteWorkspace(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSyncService) SyncMembership(ctx context.Context, data clerk.InvitationData) error {
	args := m.Called(ctx, data)
	return args.Error(0)
}

func (m *MockSyncService) RecordEvent(ctx context.Context, eventType, externalID, deliveryID string) error {
	args := m.Called(ctx, eventType, externalID, deliveryID)
	return args.Error(0)
}

func (m *MockSyncService) Backfill(ctx context.Context, provider services.ProviderDirectory) (int, error) {
	args := m.Called(ctx, provider)
	return args.Int(0), args.Error(1)
}

// MockMirrorService mocks the MirrorService
type MockMirrorService struct {
	mock.Mock
}

func (m *MockMirrorService) GetUser(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockMirrorService) GetWorkspace(ctx context.Context, id string) (*models.Workspace, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Workspace), args.Error(1)
}

func (m *MockMirrorService) GetMembers(ctx context.Context, workspaceID string) ([]models.WorkspaceMember, error) {
	args := m.Called(ctx, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WorkspaceMember), args.Error(1)
}

// MockProviderDirectory mocks the Clerk backend API listing endpoints
type MockProviderDirectory struct {
	mock.Mock
}

func (m *MockProviderDirectory) ListUsers(ctx context.Context, limit, offset int) ([]clerk.UserData, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]clerk.UserData), args.Error(1)
}

func (m *MockProviderDirectory) ListOrganizations(ctx context.Context, limit, offset int) ([]clerk.OrganizationData, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]clerk.OrganizationData), args.Error(1)
}
