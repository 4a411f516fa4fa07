package handlers

import (
	"context"
	"log"

	"github.com/dimitrije/mirror-api/internal/services"
	"github.com/dimitrije/mirror-api/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

type AdminHandler struct {
	sync     BackfillerInterface
	provider services.ProviderDirectory
}

func NewAdminHandler(sync BackfillerInterface, provider services.ProviderDirectory) *AdminHandler {
	return &AdminHandler{sync: sync, provider: provider}
}

// Backfill replays the provider's current state through the reconciliation
// writes. Safe to run at any time; all writes are idempotent.
func (h *AdminHandler) Backfill(c *drift.Context) {
	if h.provider == nil {
		c.BadRequest("no provider api key configured")
		return
	}

	applied, err := h.sync.Backfill(context.Background(), h.provider)
	if err != nil {
		log.Printf("backfill aborted after %d entities: %v", applied, err)
		c.InternalServerError("backfill failed")
		return
	}

	c.JSON(200, dto.BackfillResponse{Applied: applied})
}
