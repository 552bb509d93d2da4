// Package auth verifies credentials on behalf of the back office. The store
// only looks users up by login; hashing, comparison and sessions live here.
package auth

import (
	"context" // Context for lookups and Redis
	"errors"  // Sentinel errors
	"time"    // Session lifetime

	"capshop/internal/domain" // User variants

	"github.com/google/uuid"       // Session ids
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"golang.org/x/crypto/bcrypt"   // Password hashing
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionNotFound    = errors.New("session not found or expired")
	ErrUnknownUserType    = errors.New("unknown user type")
)

// UserLookup is the part of the store the authenticator needs
type UserLookup interface {
	GetCustomerByLogin(ctx context.Context, login string) (*domain.Customer, error)
	GetAdministratorByLogin(ctx context.Context, login string) (*domain.Administrator, error)
}

// Authenticator checks credentials and manages login sessions
type Authenticator struct {
	users  UserLookup
	rdb    *redis.Client
	secret string
	ttl    time.Duration
}

// NewAuthenticator builds an Authenticator. Sessions expire after ttl.
func NewAuthenticator(users UserLookup, rdb *redis.Client, secret string, ttl time.Duration) *Authenticator {
	return &Authenticator{users: users, rdb: rdb, secret: secret, ttl: ttl}
}

// HashPassword hashes a plaintext password for storage
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Login verifies login and password against the given user variant and
// opens a session. It returns the signed token and the session record.
func (a *Authenticator) Login(ctx context.Context, userType domain.UserType, login, password string) (string, *Session, error) {
	userID, hash, err := a.lookup(ctx, userType, login)
	if err != nil {
		return "", nil, err
	}
	// Compare provided password with stored hash
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		logrus.WithFields(logrus.Fields{
			"login":     login,    // Attempted login
			"user_type": userType, // Variant
		}).Warn("Login rejected")
		return "", nil, ErrInvalidCredentials
	}
	session := Session{
		ID:        uuid.NewString(), // Random session id
		UserID:    userID,           // Logged in user
		UserType:  userType,         // Variant
		Login:     login,            // Login used
		CreatedAt: time.Now().UTC(), // Login time
	}
	if err := saveSession(ctx, a.rdb, session, a.ttl); err != nil {
		return "", nil, err
	}
	token, err := GenerateJWT(userID, userType, session.ID, a.secret, a.ttl)
	if err != nil {
		_ = deleteSession(ctx, a.rdb, session.ID)
		return "", nil, err
	}
	logrus.WithFields(logrus.Fields{
		"user_id":   userID,   // User ID
		"user_type": userType, // Variant
	}).Info("Login succeeded")
	return token, &session, nil
}

// lookup returns the id and stored hash for login. Unknown logins and
// disabled customers are reported as invalid credentials.
func (a *Authenticator) lookup(ctx context.Context, userType domain.UserType, login string) (int64, string, error) {
	switch userType {
	case domain.UserTypeCustomer:
		c, err := a.users.GetCustomerByLogin(ctx, login)
		if err != nil {
			return 0, "", err
		}
		if c == nil || c.IsDisabled {
			return 0, "", ErrInvalidCredentials
		}
		return c.ID, c.PasswordHash, nil
	case domain.UserTypeAdministrator:
		adm, err := a.users.GetAdministratorByLogin(ctx, login)
		if err != nil {
			return 0, "", err
		}
		if adm == nil {
			return 0, "", ErrInvalidCredentials
		}
		return adm.ID, adm.PasswordHash, nil
	}
	return 0, "", ErrUnknownUserType
}

// Verify returns the live session behind token
func (a *Authenticator) Verify(ctx context.Context, token string) (*Session, error) {
	claims, err := ParseJWT(token, a.secret)
	if err != nil {
		return nil, ErrSessionNotFound
	}
	session, found, err := loadSession(ctx, a.rdb, claims.ID)
	if err != nil {
		return nil, err
	}
	if !found || session.UserID != claims.UserID || session.UserType != claims.UserType {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// Abandon ends the session behind token, if any. Tokens that do not parse
// have no session to end.
func (a *Authenticator) Abandon(ctx context.Context, token string) error {
	claims, err := ParseJWT(token, a.secret)
	if err != nil {
		return nil
	}
	return deleteSession(ctx, a.rdb, claims.ID)
}
