package handlers

import (
	"context"
	"errors"

	"github.com/dimitrije/mirror-api/internal/services"
	"github.com/dimitrije/mirror-api/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

type MirrorHandler struct {
	mirrorService MirrorServiceInterface
}

func NewMirrorHandler(mirrorService MirrorServiceInterface) *MirrorHandler {
	return &MirrorHandler{mirrorService: mirrorService}
}

func (h *MirrorHandler) GetUser(c *drift.Context) {
	id := c.Param("id")
	if id == "" {
		c.BadRequest("user id is required")
		return
	}

	user, err := h.mirrorService.GetUser(context.Background(), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.NotFound("user not found")
			return
		}
		c.InternalServerError("failed to load user")
		return
	}

	c.JSON(200, dto.UserResponse{
		ID:       user.ID,
		Email:    user.Email,
		Name:     user.Name,
		ImageURL: user.ImageURL,
	})
}

func (h *MirrorHandler) GetWorkspace(c *drift.Context) {
	id := c.Param("id")
	if id == "" {
		c.BadRequest("workspace id is required")
		return
	}

	workspace, err := h.mirrorService.GetWorkspace(context.Background(), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.NotFound("workspace not found")
			return
		}
		c.InternalServerError("failed to load workspace")
		return
	}

	c.JSON(200, dto.WorkspaceResponse{
		ID:       workspace.ID,
		Name:     workspace.Name,
		Slug:     workspace.Slug,
		OwnerID:  workspace.OwnerID,
		ImageURL: workspace.ImageURL,
	})
}

func (h *MirrorHandler) GetMembers(c *drift.Context) {
	id := c.Param("id")
	if id == "" {
		c.BadRequest("workspace id is required")
		return
	}

	members, err := h.mirrorService.GetMembers(context.Background(), id)
	if err != nil {
		c.InternalServerError("failed to load members")
		return
	}

	resp := make([]dto.WorkspaceMemberResponse, 0, len(members))
	for _, member := range members {
		m := dto.WorkspaceMemberResponse{
			UserID:      member.UserID,
			WorkspaceID: member.WorkspaceID,
			Role:        member.Role,
		}
		if member.User != nil {
			m.User = &dto.UserResponse{
				ID:       member.User.ID,
				Email:    member.User.Email,
				Name:     member.User.Name,
				ImageURL: member.User.ImageURL,
			}
		}
		resp = append(resp, m)
	}

	c.JSON(200, resp)
}
