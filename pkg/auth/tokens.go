package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the identity extracted from a verified access token.
type Claims struct {
	UserID    int
	Username  string
	Role      string
	ExpiresAt time.Time
}

// TokenManager issues and verifies HMAC-signed JWT access tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager creates a token manager. A zero ttl falls back to 24h.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if ttl == 0 {
		ttl = 24 * time.Hour
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Generate mints an access token for the given user.
func (m *TokenManager) Generate(userID int, username, role string) (string, time.Time, error) {
	if len(m.secret) == 0 {
		return "", time.Time{}, errors.New("jwt secret not configured")
	}
	expiresAt := time.Now().Add(m.ttl)
	claims := jwt.MapClaims{
		"sub":      fmt.Sprintf("%d", userID),
		"username": username,
		"role":     role,
		"exp":      expiresAt.Unix(),
		"iss":      "deepsoc",
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Parse verifies the signature and expiry of a token and extracts its claims.
func (m *TokenManager) Parse(token string) (Claims, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return Claims{}, err
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return Claims{}, errors.New("invalid token claims")
	}
	sub, _ := claims["sub"].(string)
	var userID int
	if _, err := fmt.Sscanf(sub, "%d", &userID); err != nil {
		return Claims{}, fmt.Errorf("invalid subject: %q", sub)
	}
	username, _ := claims["username"].(string)
	role, _ := claims["role"].(string)
	expValue, _ := claims["exp"].(float64)
	return Claims{
		UserID:    userID,
		Username:  username,
		Role:      role,
		ExpiresAt: time.Unix(int64(expValue), 0),
	}, nil
}
