package jwt

import (
	"fmt"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

const (
	// AccessTTL is the lifetime of an access token.
	AccessTTL = 15 * time.Minute
	// RefreshTTL is the lifetime of a refresh token.
	RefreshTTL = 7 * 24 * time.Hour
)

var (
	accessSecret  = []byte("sctsinstitute-access-secret-change-me")
	refreshSecret = []byte("sctsinstitute-refresh-secret-change-me")
)

// SetSecrets configures the signing secrets for both token families
// (call on startup). Empty values keep the defaults.
func SetSecrets(access, refresh string) {
	if access != "" {
		accessSecret = []byte(access)
	}
	if refresh != "" {
		refreshSecret = []byte(refresh)
	}
}

// Claims is the JWT payload shared by access and refresh tokens.
type Claims struct {
	UserID string `json:"uid"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwtlib.RegisteredClaims
}

func sign(userID, email, role string, ttl time.Duration, secret []byte) (string, error) {
	claims := Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwtlib.NewNumericDate(time.Now()),
		},
	}
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// SignAccess creates a short-lived access token.
func SignAccess(userID, email, role string) (string, error) {
	return sign(userID, email, role, AccessTTL, accessSecret)
}

// SignRefresh creates a long-lived refresh token. It is signed with a
// separate secret so an access token can never be replayed as a refresh
// token or vice versa.
func SignRefresh(userID, email, role string) (string, error) {
	return sign(userID, email, role, RefreshTTL, refreshSecret)
}

func parse(tokenStr string, secret []byte) (*Claims, error) {
	token, err := jwtlib.ParseWithClaims(tokenStr, &Claims{}, func(t *jwtlib.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtlib.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// ParseAccess validates an access token and returns its claims.
func ParseAccess(tokenStr string) (*Claims, error) {
	return parse(tokenStr, accessSecret)
}

// ParseRefresh validates a refresh token and returns its claims.
func ParseRefresh(tokenStr string) (*Claims, error) {
	return parse(tokenStr, refreshSecret)
}
