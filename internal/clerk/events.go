package clerk

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Lifecycle event types the mirror subscribes to. Clerk delivers many more;
// everything outside this set is acknowledged and skipped.
const (
	EventUserCreated        = "user.created"
	EventUserUpdated        = "user.updated"
	EventUserDeleted        = "user.deleted"
	EventOrgCreated         = "organization.created"
	EventOrgUpdated         = "organization.updated"
	EventOrgDeleted         = "organization.deleted"
	EventInvitationAccepted = "organizationInvitation.accepted"
)

// ErrMissingField marks payloads that lack a required key. Handlers must fail
// fast on these instead of writing partial rows.
var ErrMissingField = errors.New("missing required field")

// Event is the webhook envelope: a type tag plus the raw entity payload.
type Event struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type EmailAddress struct {
	EmailAddress string `json:"email_address"`
}

type UserData struct {
	ID             string         `json:"id"`
	EmailAddresses []EmailAddress `json:"email_addresses"`
	FirstName      *string        `json:"first_name"`
	LastName       *string        `json:"last_name"`
	ImageURL       *string        `json:"image_url"`
}

func (d *UserData) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("%w: id", ErrMissingField)
	}
	return nil
}

// PrimaryEmail returns the first listed address, or nil when the payload
// carries none.
func (d *UserData) PrimaryEmail() *string {
	if len(d.EmailAddresses) == 0 || d.EmailAddresses[0].EmailAddress == "" {
		return nil
	}
	return &d.EmailAddresses[0].EmailAddress
}

// DisplayName joins given and family name, treating missing parts as empty,
// and trims the result so a single-part name has no stray whitespace.
func (d *UserData) DisplayName() string {
	var first, last string
	if d.FirstName != nil {
		first = *d.FirstName
	}
	if d.LastName != nil {
		last = *d.LastName
	}
	return strings.TrimSpace(first + " " + last)
}

type OrganizationData struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Slug      string  `json:"slug"`
	CreatedBy string  `json:"created_by"`
	ImageURL  *string `json:"image_url"`
}

func (d *OrganizationData) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("%w: id", ErrMissingField)
	}
	if d.Name == "" {
		return fmt.Errorf("%w: name", ErrMissingField)
	}
	if d.Slug == "" {
		return fmt.Errorf("%w: slug", ErrMissingField)
	}
	return nil
}

// ValidateCreated additionally requires created_by, which only creation
// events are guaranteed to carry.
func (d *OrganizationData) ValidateCreated() error {
	if err := d.Validate(); err != nil {
		return err
	}
	if d.CreatedBy == "" {
		return fmt.Errorf("%w: created_by", ErrMissingField)
	}
	return nil
}

// Owner returns created_by as a nullable reference for update-only upserts.
func (d *OrganizationData) Owner() *string {
	if d.CreatedBy == "" {
		return nil
	}
	return &d.CreatedBy
}

type InvitationData struct {
	UserID         string `json:"user_id"`
	OrganizationID string `json:"organization_id"`
	RoleName       string `json:"role_name"`
}

func (d *InvitationData) Validate() error {
	if d.UserID == "" {
		return fmt.Errorf("%w: user_id", ErrMissingField)
	}
	if d.OrganizationID == "" {
		return fmt.Errorf("%w: organization_id", ErrMissingField)
	}
	if d.RoleName == "" {
		return fmt.Errorf("%w: role_name", ErrMissingField)
	}
	return nil
}

// DeletedData is the payload of user.deleted and organization.deleted events.
type DeletedData struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

func (d *DeletedData) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("%w: id", ErrMissingField)
	}
	return nil
}
