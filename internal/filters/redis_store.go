package filters

import (
	"context"
	"fmt"

	"github.com/redis/rueidis"
)

type RedisStore struct {
	client rueidis.Client
	prefix string
}

func NewRedisStore(client rueidis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) key(projectID, userID string) string {
	return fmt.Sprintf("%s:%s:%s", s.prefix, projectID, userID)
}

func (s *RedisStore) Get(ctx context.Context, projectID, userID string) (map[string]string, error) {
	cmd := s.client.B().Hgetall().Key(s.key(projectID, userID)).Build()
	result, err := s.client.Do(ctx, cmd).AsStrMap()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return map[string]string{}, nil
		}
		return nil, err
	}
	return result, nil
}

func (s *RedisStore) Put(ctx context.Context, projectID, userID string, values map[string]string) error {
	key := s.key(projectID, userID)

	delCmd := s.client.B().Del().Key(key).Build()
	if err := s.client.Do(ctx, delCmd).Error(); err != nil {
		return err
	}

	if len(values) == 0 {
		return nil
	}

	hset := s.client.B().Hset().Key(key).FieldValue()
	for field, value := range values {
		hset = hset.FieldValue(field, value)
	}
	return s.client.Do(ctx, hset.Build()).Error()
}
