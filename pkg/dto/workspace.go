package dto

type WorkspaceResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Slug     string  `json:"slug"`
	OwnerID  *string `json:"owner_id"`
	ImageURL *string `json:"image_url"`
}

type WorkspaceMemberResponse struct {
	UserID      string        `json:"user_id"`
	WorkspaceID string        `json:"workspace_id"`
	Role        string        `json:"role"`
	User        *UserResponse `json:"user,omitempty"`
}

type BackfillResponse struct {
	Applied int `json:"applied"`
}
