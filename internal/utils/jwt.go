// internal/utils/jwt.go
package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// SessionClaims wrap a session row: ID (jti) is the session token and Subject
// is the user id. The signature only proves the credential was issued by this
// service; the session row stays the source of truth for expiry and revocation.
type SessionClaims struct {
	jwt.RegisteredClaims
}

func GenerateSessionJWT(secret []byte, issuer, sessionToken string, userID uuid.UUID, issuedAt, expiresAt time.Time) (string, error) {
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionToken,
			Subject:   userID.String(),
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func ValidateSessionJWT(secret []byte, issuer, credential string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(credential, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid session credential")
	}
	if !claims.VerifyIssuer(issuer, true) {
		return nil, errors.New("unexpected credential issuer")
	}
	if claims.ID == "" {
		return nil, errors.New("session credential has no token")
	}

	return claims, nil
}
