package auth

import (
	"time" // Time for token expiration

	"capshop/internal/domain" // User variants

	"github.com/golang-jwt/jwt/v5" // JWT library
)

// Claims carried by a session token
type Claims struct {
	UserID               int64           `json:"user_id"`   // Id of the logged in user
	UserType             domain.UserType `json:"user_type"` // Customer or administrator
	jwt.RegisteredClaims                 // Standard claims, ID holds the session id
}

// GenerateJWT signs a token bound to sessionID
func GenerateJWT(userID int64, userType domain.UserType, sessionID, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	// Set token claims
	claims := Claims{
		UserID:   userID,   // Custom claim for user ID
		UserType: userType, // Custom claim for the variant
		// Standard JWT claims
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,                        // Session the token belongs to
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)), // Expires with the session
			IssuedAt:  jwt.NewNumericDate(now),          // Issued at current time
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims) // Create token with claims
	return token.SignedString([]byte(secret))                  // Sign the token with the secret
}

// ParseJWT parses and validates a token string
func ParseJWT(tokenStr, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil // Return the secret key for validation
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	// Check for parsing errors
	if err != nil {
		return nil, err
	}
	// Validate token and extract claims
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrSignatureInvalid
}
