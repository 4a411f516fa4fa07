package clerk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func TestUserData_DisplayName(t *testing.T) {
	tests := []struct {
		name  string
		first *string
		last  *string
		want  string
	}{
		{"both parts", strptr("A"), strptr("B"), "A B"},
		{"first only", strptr("A"), nil, "A"},
		{"last only", nil, strptr("B"), "B"},
		{"both missing", nil, nil, ""},
		{"empty strings", strptr(""), strptr(""), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := UserData{ID: "u1", FirstName: tt.first, LastName: tt.last}
			assert.Equal(t, tt.want, data.DisplayName())
		})
	}
}

func TestUserData_PrimaryEmail(t *testing.T) {
	data := UserData{ID: "u1", EmailAddresses: []EmailAddress{{EmailAddress: "a@x.com"}, {EmailAddress: "b@x.com"}}}
	email := data.PrimaryEmail()
	require.NotNil(t, email)
	assert.Equal(t, "a@x.com", *email)

	empty := UserData{ID: "u1"}
	assert.Nil(t, empty.PrimaryEmail())
}

func TestUserData_Validate(t *testing.T) {
	assert.NoError(t, (&UserData{ID: "u1"}).Validate())
	assert.ErrorIs(t, (&UserData{}).Validate(), ErrMissingField)
}

func TestOrganizationData_Validate(t *testing.T) {
	valid := OrganizationData{ID: "org_1", Name: "Acme", Slug: "acme"}
	assert.NoError(t, valid.Validate())

	assert.ErrorIs(t, (&OrganizationData{Name: "Acme", Slug: "acme"}).Validate(), ErrMissingField)
	assert.ErrorIs(t, (&OrganizationData{ID: "org_1", Slug: "acme"}).Validate(), ErrMissingField)
	assert.ErrorIs(t, (&OrganizationData{ID: "org_1", Name: "Acme"}).Validate(), ErrMissingField)
}

func TestOrganizationData_ValidateCreated(t *testing.T) {
	withoutOwner := OrganizationData{ID: "org_1", Name: "Acme", Slug: "acme"}
	assert.ErrorIs(t, withoutOwner.ValidateCreated(), ErrMissingField)

	withOwner := OrganizationData{ID: "org_1", Name: "Acme", Slug: "acme", CreatedBy: "u1"}
	assert.NoError(t, withOwner.ValidateCreated())
}

func TestOrganizationData_Owner(t *testing.T) {
	assert.Nil(t, (&OrganizationData{}).Owner())

	data := OrganizationData{CreatedBy: "u1"}
	owner := data.Owner()
	require.NotNil(t, owner)
	assert.Equal(t, "u1", *owner)
}

func TestInvitationData_Validate(t *testing.T) {
	valid := InvitationData{UserID: "u1", OrganizationID: "org_1", RoleName: "member"}
	assert.NoError(t, valid.Validate())

	assert.ErrorIs(t, (&InvitationData{OrganizationID: "org_1", RoleName: "member"}).Validate(), ErrMissingField)
	assert.ErrorIs(t, (&InvitationData{UserID: "u1", RoleName: "member"}).Validate(), ErrMissingField)
	assert.ErrorIs(t, (&InvitationData{UserID: "u1", OrganizationID: "org_1"}).Validate(), ErrMissingField)
}

func TestDeletedData_Validate(t *testing.T) {
	assert.NoError(t, (&DeletedData{ID: "u1", Deleted: true}).Validate())
	assert.ErrorIs(t, (&DeletedData{}).Validate(), ErrMissingField)
}
