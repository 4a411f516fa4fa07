package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"

	"github.com/dimitrije/mirror-api/internal/clerk"
	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
)

// WebhookHandler is the ingress for provider lifecycle deliveries. It
// verifies the delivery signature, decodes the envelope and dispatches to the
// registry. Any handler failure surfaces as a 5xx so the provider redelivers;
// the handler itself never retries.
type WebhookHandler struct {
	registry RegistryInterface
	recorder EventRecorderInterface
	verifier *clerk.WebhookVerifier
}

func NewWebhookHandler(registry RegistryInterface, recorder EventRecorderInterface, verifier *clerk.WebhookVerifier) *WebhookHandler {
	return &WebhookHandler{
		registry: registry,
		recorder: recorder,
		verifier: verifier,
	}
}

func (h *WebhookHandler) HandleClerkEvent(c *drift.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.BadRequest("failed to read body")
		return
	}

	deliveryID := c.GetHeader("svix-id")
	timestamp := c.GetHeader("svix-timestamp")
	signature := c.GetHeader("svix-signature")

	if err := h.verifier.Verify(deliveryID, timestamp, body, signature); err != nil {
		c.Unauthorized("invalid webhook signature")
		return
	}

	var event clerk.Event
	if err := json.Unmarshal(body, &event); err != nil {
		c.BadRequest("invalid event payload")
		return
	}
	if event.Type == "" {
		c.BadRequest("missing event type")
		return
	}

	// The provider fans out many event types; only the subscribed lifecycle
	// set is processed, the rest are acknowledged so they are not redelivered.
	if !h.registry.Handles(event.Type) {
		c.JSON(200, map[string]string{"status": "ignored"})
		return
	}

	ctx := context.Background()
	if err := h.registry.Dispatch(ctx, event); err != nil {
		if errors.Is(err, clerk.ErrMissingField) {
			log.Printf("rejected malformed %s delivery %s: %v", event.Type, deliveryID, err)
			c.BadRequest("malformed event payload")
			return
		}
		log.Printf("failed to apply %s delivery %s: %v", event.Type, deliveryID, err)
		c.InternalServerError("failed to apply event")
		return
	}

	if deliveryID == "" {
		deliveryID = uuid.New().String()
	}
	if err := h.recorder.RecordEvent(ctx, event.Type, externalID(event), deliveryID); err != nil {
		// Audit only; the event is already applied and must be acknowledged.
		log.Printf("failed to record %s delivery %s: %v", event.Type, deliveryID, err)
	}

	c.JSON(200, map[string]string{"status": "ok"})
}

// externalID pulls the entity identifier out of the raw payload for the audit
// row. Membership events carry a composite identity instead of an id.
func externalID(event clerk.Event) string {
	var payload struct {
		ID             string `json:"id"`
		UserID         string `json:"user_id"`
		OrganizationID string `json:"organization_id"`
	}
	if err := json.Unmarshal(event.Data, &payload); err != nil {
		return ""
	}
	if payload.ID != "" {
		return payload.ID
	}
	return payload.UserID + ":" + payload.OrganizationID
}
