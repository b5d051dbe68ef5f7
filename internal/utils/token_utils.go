package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims are the JWT claims issued at login. Role is carried so the
// refresh endpoint can gate on admin without a user lookup per request.
type AuthClaims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// GenerateJWT signs a token for the given user.
func GenerateJWT(userID, role, secret string, expiryDuration time.Duration, issuer string) (string, error) {
	now := time.Now()
	claims := AuthClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(expiryDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAndValidateJWT parses a token string and validates its signature and
// standard claims.
func ParseAndValidateJWT(tokenString, secretKey string) (*AuthClaims, error) {
	claims := &AuthClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}
	return claims, nil
}
