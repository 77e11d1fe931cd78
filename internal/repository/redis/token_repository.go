package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// TokenRepository reads the session lookup keys written by the auth service
// when a session starts. This service only validates tokens; minting and
// revoking sessions lives with auth.
type TokenRepository struct {
	client *redis.Client
}

func NewTokenRepository(client *redis.Client) *TokenRepository {
	return &TokenRepository{
		client: client,
	}
}

// ValidateToken resolves a token back to the user ID that owns it. An
// expired or revoked session is indistinguishable from an unknown token.
func (r *TokenRepository) ValidateToken(ctx context.Context, token string) (string, error) {
	tokenKey := fmt.Sprintf("session:lookup:%s", token)

	userID, err := r.client.Get(ctx, tokenKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", errors.New("token not found")
		}
		return "", fmt.Errorf("failed to validate token: %w", err)
	}

	return userID, nil
}
