package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims are the claims carried by a session token. The token id
// (jti) keys the server-side session row so logout can revoke it.
type SessionClaims struct {
	UserID   int64  `json:"uid"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// JWTService issues and parses HS256 session tokens.
type JWTService struct {
	secretKey []byte
	expiresIn time.Duration
}

// NewJWTService builds a token service with the given signing secret and
// session lifetime.
func NewJWTService(secretKey string, expiresIn time.Duration) *JWTService {
	return &JWTService{
		secretKey: []byte(secretKey),
		expiresIn: expiresIn,
	}
}

// GenerateToken signs a new session token. It returns the token string,
// its id, and its expiry.
func (s *JWTService) GenerateToken(userID int64, username string) (string, uuid.UUID, time.Time, error) {
	tokenID := uuid.New()
	expiresAt := time.Now().Add(s.expiresIn)

	claims := SessionClaims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID.String(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", uuid.Nil, time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, tokenID, expiresAt, nil
}

// ParseToken validates a session token and returns its claims.
func (s *JWTService) ParseToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}
