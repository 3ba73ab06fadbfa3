package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	jwtSecret []byte
	tokenTTL  time.Duration
)

// Claims carries the token payload. The subject is the username of the
// authenticated account.
type Claims struct {
	jwt.RegisteredClaims
}

// Init configures the signing secret and token lifetime. Must be called
// before tokens are issued or validated.
func Init(secret string, ttl time.Duration) error {
	if secret == "" {
		return fmt.Errorf("JWT secret is not set")
	}
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	jwtSecret = []byte(secret)
	tokenTTL = ttl
	return nil
}

// GenerateToken issues a signed bearer token for the given username.
func GenerateToken(username string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// ValidateToken verifies signature and expiry and returns the parsed
// claims. Any failure is reported as a single invalid-token error so
// callers cannot distinguish tampering from expiry.
func ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid or expired token")
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("invalid or expired token")
	}

	return claims, nil
}
