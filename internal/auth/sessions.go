package auth

import (
	"context"       // Context for Redis operations
	"encoding/json" // JSON encoding/decoding
	"time"          // Time durations

	"capshop/internal/domain" // User variants

	"github.com/redis/go-redis/v9" // Redis client
)

// Session is the server side record of one login
type Session struct {
	ID        string          `json:"id"`         // Random session id
	UserID    int64           `json:"user_id"`    // Logged in user
	UserType  domain.UserType `json:"user_type"`  // Customer or administrator
	Login     string          `json:"login"`      // Login used
	CreatedAt time.Time       `json:"created_at"` // Login time
}

func sessionKey(id string) string {
	return "session:" + id
}

// saveSession stores s in Redis with a TTL
func saveSession(ctx context.Context, rdb *redis.Client, s Session, ttl time.Duration) error {
	b, err := json.Marshal(s) // Marshal session to JSON
	if err != nil {
		return err
	}
	return rdb.Set(ctx, sessionKey(s.ID), b, ttl).Err() // Set value in Redis with TTL
}

// loadSession retrieves a session. A missing key reports found == false.
func loadSession(ctx context.Context, rdb *redis.Client, id string) (*Session, bool, error) {
	val, err := rdb.Get(ctx, sessionKey(id)).Result() // Get value from Redis
	if err == redis.Nil {
		return nil, false, nil // Key does not exist
	} else if err != nil {
		return nil, false, err // Other Redis error
	}
	var s Session
	if err := json.Unmarshal([]byte(val), &s); err != nil {
		return nil, false, err
	}
	return &s, true, nil
}

// deleteSession removes a session from Redis
func deleteSession(ctx context.Context, rdb *redis.Client, id string) error {
	return rdb.Del(ctx, sessionKey(id)).Err() // Delete key from Redis
}
