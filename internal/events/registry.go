// Package events holds the static bindings between provider lifecycle event
// types and their reconciliation handlers.
package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dimitrije/mirror-api/internal/clerk"
)

// SyncService is the contract the registry dispatches into.
type SyncService interface {
	SyncUser(ctx context.Context, data clerk.UserData) error
	DeleteUser(ctx context.Context, id string) error
	SyncWorkspaceCreated(ctx context.Context, data clerk.OrganizationData) error
	SyncWorkspaceUpdated(ctx context.Context, data clerk.OrganizationData) error
	DeleteWorkspace(ctx context.Context, id string) error
	SyncMembership(ctx context.Context, data clerk.InvitationData) error
}

// HandlerFunc decodes and validates an event payload and applies its store
// operation.
type HandlerFunc func(ctx context.Context, data json.RawMessage) error

// Registry maps event types to handlers. The set is fixed at construction; a
// missing or duplicate binding is a configuration error surfaced by
// NewRegistry, never at dispatch time.
type Registry struct {
	handlers map[string]HandlerFunc
}

var requiredEvents = []string{
	clerk.EventUserCreated,
	clerk.EventUserUpdated,
	clerk.EventUserDeleted,
	clerk.EventOrgCreated,
	clerk.EventOrgUpdated,
	clerk.EventOrgDeleted,
	clerk.EventInvitationAccepted,
}

func NewRegistry(sync SyncService) (*Registry, error) {
	r := &Registry{handlers: make(map[string]HandlerFunc)}

	bindings := map[string]HandlerFunc{
		clerk.EventUserCreated: userHandler(sync),
		clerk.EventUserUpdated: userHandler(sync),
		clerk.EventUserDeleted: func(ctx context.Context, data json.RawMessage) error {
			var payload clerk.DeletedData
			if err := decode(data, &payload); err != nil {
				return err
			}
			return sync.DeleteUser(ctx, payload.ID)
		},
		clerk.EventOrgCreated: func(ctx context.Context, data json.RawMessage) error {
			var payload clerk.OrganizationData
			if err := json.Unmarshal(data, &payload); err != nil {
				return fmt.Errorf("failed to decode payload: %w", err)
			}
			if err := payload.ValidateCreated(); err != nil {
				return err
			}
			return sync.SyncWorkspaceCreated(ctx, payload)
		},
		clerk.EventOrgUpdated: func(ctx context.Context, data json.RawMessage) error {
			var payload clerk.OrganizationData
			if err := decode(data, &payload); err != nil {
				return err
			}
			return sync.SyncWorkspaceUpdated(ctx, payload)
		},
		clerk.EventOrgDeleted: func(ctx context.Context, data json.RawMessage) error {
			var payload clerk.DeletedData
			if err := decode(data, &payload); err != nil {
				return err
			}
			return sync.DeleteWorkspace(ctx, payload.ID)
		},
		clerk.EventInvitationAccepted: func(ctx context.Context, data json.RawMessage) error {
			var payload clerk.InvitationData
			if err := decode(data, &payload); err != nil {
				return err
			}
			return sync.SyncMembership(ctx, payload)
		},
	}

	for eventType, handler := range bindings {
		if err := r.register(eventType, handler); err != nil {
			return nil, err
		}
	}

	for _, eventType := range requiredEvents {
		if _, ok := r.handlers[eventType]; !ok {
			return nil, fmt.Errorf("no handler bound for event type %q", eventType)
		}
	}

	return r, nil
}

func (r *Registry) register(eventType string, handler HandlerFunc) error {
	if _, exists := r.handlers[eventType]; exists {
		return fmt.Errorf("duplicate handler for event type %q", eventType)
	}
	r.handlers[eventType] = handler
	return nil
}

// Handles reports whether the event type is part of the subscription set.
func (r *Registry) Handles(eventType string) bool {
	_, ok := r.handlers[eventType]
	return ok
}

// Types returns the bound event types.
func (r *Registry) Types() []string {
	types := make([]string, 0, len(r.handlers))
	for t := range r.handlers {
		types = append(types, t)
	}
	return types
}

// Dispatch routes an event to its bound handler.
func (r *Registry) Dispatch(ctx context.Context, event clerk.Event) error {
	handler, ok := r.handlers[event.Type]
	if !ok {
		return fmt.Errorf("no handler bound for event type %q", event.Type)
	}
	return handler(ctx, event.Data)
}

func userHandler(sync SyncService) HandlerFunc {
	return func(ctx context.Context, data json.RawMessage) error {
		var payload clerk.UserData
		if err := decode(data, &payload); err != nil {
			return err
		}
		return sync.SyncUser(ctx, payload)
	}
}

type validator interface {
	Validate() error
}

func decode(data json.RawMessage, payload validator) error {
	if err := json.Unmarshal(data, payload); err != nil {
		return fmt.Errorf("failed to decode payload: %w", err)
	}
	return payload.Validate()
}
