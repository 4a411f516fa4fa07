package services

import (
	"context"
	"errors"
	"time"

	"github.com/dimitrije/mirror-api/internal/database"
	"github.com/dimitrije/mirror-api/internal/models"
	"github.com/jackc/pgx/v5"
)

var ErrNotFound = errors.New("not found")

// MirrorService is the read side of the mirror: lookups by the keys the sync
// handlers write under.
type MirrorService struct {
	db *database.DB
}

func NewMirrorService(db *database.DB) *MirrorService {
	return &MirrorService{db: db}
}

func (s *MirrorService) GetUser(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := s.db.Pool.QueryRow(ctx, `
		SELECT id, email, name, image_url, created_at, updated_at
		FROM users WHERE id = $1
	`, id).Scan(&user.ID, &user.Email, &user.Name, &user.ImageURL, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *MirrorService) GetWorkspace(ctx context.Context, id string) (*models.Workspace, error) {
	var workspace models.Workspace
	err := s.db.Pool.QueryRow(ctx, `
		SELECT id, name, slug, owner_id, image_url, created_at, updated_at
		FROM workspaces WHERE id = $1
	`, id).Scan(
		&workspace.ID, &workspace.Name, &workspace.Slug,
		&workspace.OwnerID, &workspace.ImageURL, &workspace.CreatedAt, &workspace.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &workspace, nil
}

// GetMembers lists memberships of a workspace. The join through workspaces
// keeps orphaned member rows of deleted workspaces out of the result, and the
// left join tolerates memberships whose user event has not arrived yet.
func (s *MirrorService) GetMembers(ctx context.Context, workspaceID string) ([]models.WorkspaceMember, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT wm.user_id, wm.workspace_id, wm.role, wm.created_at,
		       u.id, u.email, u.name, u.image_url, u.created_at, u.updated_at
		FROM workspace_members wm
		JOIN workspaces w ON wm.workspace_id = w.id
		LEFT JOIN users u ON wm.user_id = u.id
		WHERE wm.workspace_id = $1
		ORDER BY wm.created_at
	`, workspaceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []models.WorkspaceMember
	for rows.Next() {
		var member models.WorkspaceMember
		var userID *string
		var email, name, imageURL *string
		var userCreatedAt, userUpdatedAt *time.Time
		if err := rows.Scan(
			&member.UserID, &member.WorkspaceID, &member.Role, &member.CreatedAt,
			&userID, &email, &name, &imageURL, &userCreatedAt, &userUpdatedAt,
		); err != nil {
			return nil, err
		}
		if userID != nil {
			member.User = &models.User{
				ID:        *userID,
				Email:     email,
				ImageURL:  imageURL,
				CreatedAt: *userCreatedAt,
				UpdatedAt: *userUpdatedAt,
			}
			if name != nil {
				member.User.Name = *name
			}
		}
		members = append(members, member)
	}
	return members, rows.Err()
}
