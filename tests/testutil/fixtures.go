package testutil

import (
	"encoding/json"
	"testing"

	"github.com/dimitrije/mirror-api/internal/clerk"
)

// UserEvent builds a user payload the way the provider delivers it.
func UserEvent(id, email, firstName, lastName string) clerk.UserData {
	data := clerk.UserData{ID: id}
	if email != "" {
		data.EmailAddresses = []clerk.EmailAddress{{EmailAddress: email}}
	}
	if firstName != "" {
		data.FirstName = &firstName
	}
	if lastName != "" {
		data.LastName = &lastName
	}
	return data
}

// OrgEvent builds an organization payload; createdBy may be empty for
// update-shaped payloads.
func OrgEvent(id, name, slug, createdBy string) clerk.OrganizationData {
	return clerk.OrganizationData{
		ID:        id,
		Name:      name,
		Slug:      slug,
		CreatedBy: createdBy,
	}
}

// InvitationEvent builds an invitation-accepted payload.
func InvitationEvent(userID, orgID, roleName string) clerk.InvitationData {
	return clerk.InvitationData{
		UserID:         userID,
		OrganizationID: orgID,
		RoleName:       roleName,
	}
}

// Envelope wraps a payload in the webhook event envelope.
func Envelope(t *testing.T, eventType string, payload any) []byte {
	t.Helper()

	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to marshal payload: %v", err)
	}

	body, err := json.Marshal(clerk.Event{Type: eventType, Data: data})
	if err != nil {
		t.Fatalf("failed to marshal envelope: %v", err)
	}
	return body
}
