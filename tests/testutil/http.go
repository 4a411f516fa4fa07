package testutil

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"testing"
	"time"

	"github.com/dimitrije/mirror-api/internal/services"
	"github.com/golang-jwt/jwt/v5"
)

// WebhookSecret is a valid whsec_ secret for webhook signature tests.
const WebhookSecret = "whsec_dGVzdC13ZWJob29rLXNlY3JldC1rZXk="

// TestJWTService generates an RSA keypair and returns a verifier configured
// with the public half plus the private key for signing test tokens.
func TestJWTService(t *testing.T) (*services.JWTService, *rsa.PrivateKey) {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("failed to generate rsa key: %v", err)
	}

	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		t.Fatalf("failed to marshal public key: %v", err)
	}
	publicPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})

	svc, err := services.NewJWTService(string(publicPEM))
	if err != nil {
		t.Fatalf("failed to build jwt service: %v", err)
	}
	return svc, key
}

// GenerateTestToken signs an RS256 session token for the given subject.
func GenerateTestToken(t *testing.T, key *rsa.PrivateKey, subject string) string {
	t.Helper()

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return token
}

// AuthHeader returns an Authorization header value with a Bearer token
func AuthHeader(token string) string {
	return "Bearer " + token
}

// SignWebhook computes the svix-signature header value for a delivery.
func SignWebhook(t *testing.T, secret, id, timestamp string, payload []byte) string {
	t.Helper()

	key, err := base64.StdEncoding.DecodeString(secret[len("whsec_"):])
	if err != nil {
		t.Fatalf("failed to decode webhook secret: %v", err)
	}

	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(id + "." + timestamp + "."))
	mac.Write(payload)
	return "v1," + base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
