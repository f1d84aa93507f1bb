// Package auth issues and validates session tokens bound to a user's
// security stamp. Rotating the stamp (password change, forced sign-out)
// invalidates every previously issued token for that user.
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/identitypg/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims extends the registered claim set with the user id and the
// security stamp current at issue time.
type Claims struct {
	jwt.RegisteredClaims
	UserID        string `json:"uid"`
	SecurityStamp string `json:"stamp"`
}

// StampSource reports the stored security stamp for a user id.
type StampSource interface {
	SecurityStampByID(ctx context.Context, userID string) (string, error)
}

// GenerateToken signs an HS256 token carrying the user id and security
// stamp.
func GenerateToken(userID, securityStamp string, secretKey []byte, validityDuration time.Duration) (string, error) {
	if userID == "" {
		return "", fmt.Errorf("%w: userID", common.ErrInvalidArgument)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		UserID:        userID,
		SecurityStamp: securityStamp,
	})

	return token.SignedString(secretKey)
}

// ValidateToken parses the token, checks the signature and expiry, and
// compares the embedded security stamp against the stored one. A token
// issued before a stamp rotation fails with common.ErrInvalidToken.
func ValidateToken(ctx context.Context, tokenString string, secretKey []byte, stamps StampSource) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}
	if !token.Valid {
		return "", common.ErrInvalidToken
	}

	current, err := stamps.SecurityStampByID(ctx, claims.UserID)
	if err != nil {
		return "", err
	}
	if claims.SecurityStamp != current {
		return "", fmt.Errorf("%w: security stamp rotated", common.ErrInvalidToken)
	}

	return claims.UserID, nil
}
