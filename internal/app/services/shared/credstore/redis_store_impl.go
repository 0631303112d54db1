package credstore

import (
	"carelink-agent/internal/app/models"
	"carelink-agent/internal/pkg/exceptions"
	"context"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

type redisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore keeps the session record in a redis key for deployments
// where the agent runs next to a local redis instance.
func NewRedisStore(client *redis.Client, key string) Store {
	return &redisStore{client: client, key: key}
}

func (s *redisStore) Save(ctx context.Context, record *models.Session) error {
	data, err := json.Marshal(record)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return exceptions.ErrCredentialPersist(err)
	}
	return nil
}

func (s *redisStore) Load(ctx context.Context) (*models.Session, bool, error) {
	data, err := s.client.Get(ctx, s.key).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, exceptions.ErrCredentialLoad(err)
	}

	record := new(models.Session)
	if err := json.Unmarshal([]byte(data), record); err != nil {
		return nil, false, exceptions.ErrCannotParseJSON(err)
	}
	return record, true, nil
}

func (s *redisStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return exceptions.ErrCredentialClear(err)
	}
	return nil
}
