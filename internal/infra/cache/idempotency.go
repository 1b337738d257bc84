package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

// IdempotencyStore guarda a chave de idempotência de criação de
// agendamento -> ID criado. Retries do cliente recebem o agendamento
// original em vez de duplicar a reserva.
type IdempotencyStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewIdempotencyStore(client *redis.Client) *IdempotencyStore {
	return &IdempotencyStore{
		client: client,
		ttl:    24 * time.Hour,
	}
}

func idempotencyKey(userID uint, key string) string {
	return fmt.Sprintf("idem:booking:%d:%s", userID, key)
}

// Lookup devolve (appointmentID, true) quando a chave já foi usada.
func (s *IdempotencyStore) Lookup(ctx context.Context, userID uint, key string) (uint, bool, error) {
	v, err := s.client.Get(ctx, idempotencyKey(userID, key)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}

	id, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, false, err
	}
	return uint(id), true, nil
}

func (s *IdempotencyStore) Store(ctx context.Context, userID uint, key string, appointmentID uint) error {
	return s.client.Set(
		ctx,
		idempotencyKey(userID, key),
		strconv.FormatUint(uint64(appointmentID), 10),
		s.ttl,
	).Err()
}
