package events

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/dimitrije/mirror-api/internal/clerk"
	"github.com/dimitrije/mirror-api/tests/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupRegistry(t *testing.T) (*Registry, *testutil.MockSyncService) {
	t.Helper()

	sync := new(testutil.MockSyncService)
	registry, err := NewRegistry(sync)
	require.NoError(t, err)
	return registry, sync
}

func TestNewRegistry_BindsAllSubscribedTypes(t *testing.T) {
	registry, _ := setupRegistry(t)

	for _, eventType := range []string{
		clerk.EventUserCreated,
		clerk.EventUserUpdated,
		clerk.EventUserDeleted,
		clerk.EventOrgCreated,
		clerk.EventOrgUpdated,
		clerk.EventOrgDeleted,
		clerk.EventInvitationAccepted,
	} {
		assert.True(t, registry.Handles(eventType), eventType)
	}

	assert.False(t, registry.Handles("session.created"))
	assert.Len(t, registry.Types(), 7)
}

func TestRegistry_DispatchUserCreated(t *testing.T) {
	registry, sync := setupRegistry(t)

	sync.On("SyncUser", mock.Anything, mock.MatchedBy(func(data clerk.UserData) bool {
		return data.ID == "u1" && data.DisplayName() == "A B"
	})).Return(nil)

	err := registry.Dispatch(context.Background(), clerk.Event{
		Type: clerk.EventUserCreated,
		Data: json.RawMessage(`{"id":"u1","first_name":"A","last_name":"B"}`),
	})

	require.NoError(t, err)
	sync.AssertExpectations(t)
}

func TestRegistry_DispatchUserUpdated_SharesUserHandler(t *testing.T) {
	registry, sync := setupRegistry(t)

	sync.On("SyncUser", mock.Anything, mock.Anything).Return(nil)

	err := registry.Dispatch(context.Background(), clerk.Event{
		Type: clerk.EventUserUpdated,
		Data: json.RawMessage(`{"id":"u1"}`),
	})

	require.NoError(t, err)
	sync.AssertExpectations(t)
}

func TestRegistry_DispatchUserDeleted(t *testing.T) {
	registry, sync := setupRegistry(t)

	sync.On("DeleteUser", mock.Anything, "u1").Return(nil)

	err := registry.Dispatch(context.Background(), clerk.Event{
		Type: clerk.EventUserDeleted,
		Data: json.RawMessage(`{"id":"u1","deleted":true}`),
	})

	require.NoError(t, err)
	sync.AssertExpectations(t)
}

func TestRegistry_DispatchOrgCreated(t *testing.T) {
	registry, sync := setupRegistry(t)

	sync.On("SyncWorkspaceCreated", mock.Anything, mock.MatchedBy(func(data clerk.OrganizationData) bool {
		return data.ID == "org_1" && data.CreatedBy == "u1"
	})).Return(nil)

	err := registry.Dispatch(context.Background(), clerk.Event{
		Type: clerk.EventOrgCreated,
		Data: json.RawMessage(`{"id":"org_1","name":"Acme","slug":"acme","created_by":"u1"}`),
	})

	require.NoError(t, err)
	sync.AssertExpectations(t)
}

func TestRegistry_DispatchOrgCreated_MissingOwner(t *testing.T) {
	registry, sync := setupRegistry(t)

	err := registry.Dispatch(context.Background(), clerk.Event{
		Type: clerk.EventOrgCreated,
		Data: json.RawMessage(`{"id":"org_1","name":"Acme","slug":"acme"}`),
	})

	assert.ErrorIs(t, err, clerk.ErrMissingField)
	sync.AssertNotCalled(t, "SyncWorkspaceCreated", mock.Anything, mock.Anything)
}

func TestRegistry_DispatchOrgUpdated(t *testing.T) {
	registry, sync := setupRegistry(t)

	sync.On("SyncWorkspaceUpdated", mock.Anything, mock.MatchedBy(func(data clerk.OrganizationData) bool {
		return data.ID == "org_1" && data.CreatedBy == ""
	})).Return(nil)

	err := registry.Dispatch(context.Background(), clerk.Event{
		Type: clerk.EventOrgUpdated,
		Data: json.RawMessage(`{"id":"org_1","name":"Acme Renamed","slug":"acme"}`),
	})

	require.NoError(t, err)
	sync.AssertExpectations(t)
}

func TestRegistry_DispatchOrgDeleted(t *testing.T) {
	registry, sync := setupRegistry(t)

	sync.On("DeleteWorkspace", mock.Anything, "org_1").Return(nil)

	err := registry.Dispatch(context.Background(), clerk.Event{
		Type: clerk.EventOrgDeleted,
		Data: json.RawMessage(`{"id":"org_1","deleted":true}`),
	})

	require.NoError(t, err)
	sync.AssertExpectations(t)
}

func TestRegistry_DispatchInvitationAccepted(t *testing.T) {
	registry, sync := setupRegistry(t)

	sync.On("SyncMembership", mock.Anything, mock.MatchedBy(func(data clerk.InvitationData) bool {
		return data.UserID == "u1" && data.OrganizationID == "org_1" && data.RoleName == "member"
	})).Return(nil)

	err := registry.Dispatch(context.Background(), clerk.Event{
		Type: clerk.EventInvitationAccepted,
		Data: json.RawMessage(`{"user_id":"u1","organization_id":"org_1","role_name":"member"}`),
	})

	require.NoError(t, err)
	sync.AssertExpectations(t)
}

func TestRegistry_DispatchMalformedPayload(t *testing.T) {
	registry, sync := setupRegistry(t)

	err := registry.Dispatch(context.Background(), clerk.Event{
		Type: clerk.EventUserCreated,
		Data: json.RawMessage(`not-json`),
	})

	assert.Error(t, err)
	sync.AssertNotCalled(t, "SyncUser", mock.Anything, mock.Anything)
}

func TestRegistry_DispatchInvalidPayload(t *testing.T) {
	registry, sync := setupRegistry(t)

	err := registry.Dispatch(context.Background(), clerk.Event{
		Type: clerk.EventInvitationAccepted,
		Data: json.RawMessage(`{"user_id":"u1"}`),
	})

	assert.ErrorIs(t, err, clerk.ErrMissingField)
	sync.AssertNotCalled(t, "SyncMembership", mock.Anything, mock.Anything)
}

func TestRegistry_DispatchUnboundType(t *testing.T) {
	registry, _ := setupRegistry(t)

	err := registry.Dispatch(context.Background(), clerk.Event{
		Type: "session.created",
		Data: json.RawMessage(`{}`),
	})

	assert.Error(t, err)
}
