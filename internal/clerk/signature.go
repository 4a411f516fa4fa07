package clerk

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	secretPrefix     = "whsec_"
	defaultTolerance = 5 * time.Minute
)

var (
	ErrInvalidSignature = errors.New("invalid webhook signature")
	ErrExpiredTimestamp = errors.New("webhook timestamp outside tolerance")
)

// WebhookVerifier checks Svix-style webhook signatures: base64 HMAC-SHA256
// over "<id>.<timestamp>.<body>" keyed by the decoded portion of the
// whsec_ secret.
type WebhookVerifier struct {
	key       []byte
	tolerance time.Duration
}

func NewWebhookVerifier(secret string) (*WebhookVerifier, error) {
	trimmed := strings.TrimPrefix(secret, secretPrefix)
	if trimmed == "" {
		return nil, errors.New("webhook secret is empty")
	}

	key, err := base64.StdEncoding.DecodeString(trimmed)
	if err != nil {
		return nil, fmt.Errorf("failed to decode webhook secret: %w", err)
	}

	return &WebhookVerifier{key: key, tolerance: defaultTolerance}, nil
}

// Verify validates the svix-id, svix-timestamp and svix-signature header
// values against the raw request body. The signature header may list several
// space-separated candidates ("v1,<base64>"); any match passes.
func (v *WebhookVerifier) Verify(id, timestamp string, payload []byte, signatureHeader string) error {
	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid webhook timestamp: %w", err)
	}

	if d := time.Since(time.Unix(ts, 0)); d > v.tolerance || d < -v.tolerance {
		return ErrExpiredTimestamp
	}

	mac := hmac.New(sha256.New, v.key)
	fmt.Fprintf(mac, "%s.%s.", id, timestamp)
	mac.Write(payload)
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	for _, candidate := range strings.Fields(signatureHeader) {
		version, sig, found := strings.Cut(candidate, ",")
		if !found || version != "v1" {
			continue
		}
		if hmac.Equal([]byte(sig), []byte(expected)) {
			return nil
		}
	}

	return ErrInvalidSignature
}
