package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spacelogix/spacelogix-api/internal/application/auth"
)

var _ auth.TokenRevoker = (*TokenStore)(nil)

// TokenStore set de tokens revocados en Redis. Cada token revocado vive con un
// TTL igual a su vida restante, así el set se limpia solo.
type TokenStore struct {
	client *redis.Client
}

// NewTokenStore construye el cliente y verifica conectividad con un ping.
func NewTokenStore(addr, password string, db int) (*TokenStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &TokenStore{client: client}, nil
}

// Revoke marca el token como revocado por ttl.
func (s *TokenStore) Revoke(token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil // ya expiró, nada que revocar
	}
	return s.client.Set(context.Background(), revokedKey(token), "1", ttl).Err()
}

// IsRevoked indica si el token está en el set de revocados.
func (s *TokenStore) IsRevoked(token string) (bool, error) {
	err := s.client.Get(context.Background(), revokedKey(token)).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Close cierra la conexión.
func (s *TokenStore) Close() error {
	return s.client.Close()
}

// revokedKey usa un hash del token como llave: acota el tamaño y evita guardar
// el JWT completo en Redis.
func revokedKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "revoked:" + hex.EncodeToString(sum[:])
}
