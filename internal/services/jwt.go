package services

import (
	"crypto/rsa"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// JWTService verifies provider-issued session tokens. The provider signs with
// the instance RS256 key; the mirror holds only the public half and never
// issues tokens of its own.
type JWTService struct {
	publicKey *rsa.PublicKey
}

type SessionClaims struct {
	jwt.RegisteredClaims
}

func NewJWTService(publicKeyPEM string) (*JWTService, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(publicKeyPEM))
	if err != nil {
		return nil, fmt.Errorf("failed to parse session public key: %w", err)
	}
	return &JWTService{publicKey: key}, nil
}

func (s *JWTService) VerifySessionToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.publicKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse session token: %w", err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid session token")
	}

	return claims, nil
}
