package session

import (
	"context"
	"dr-portal/internal/app/models"
	"dr-portal/internal/pkg/constvars"
	"dr-portal/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// RedisStore keeps one hash per visitor under "session:<id>".
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
	}
}

func (r *RedisStore) Load(ctx context.Context) (models.Session, error) {
	id := visitorID(ctx)
	if id == "" {
		return models.Session{}, nil
	}

	fields, err := r.client.HGetAll(ctx, redisKey(id)).Result()
	if err == redis.Nil {
		return models.Session{}, nil
	} else if err != nil {
		return models.Session{}, exceptions.ErrRedisGet(err)
	}

	session := models.Session{
		Token: fields[constvars.SessionKeyToken],
		Role:  models.Role(fields[constvars.SessionKeyRole]),
	}
	if profile := fields[constvars.SessionKeyProfile]; profile != "" {
		err = json.Unmarshal([]byte(profile), &session.Profile)
		if err != nil {
			return models.Session{}, exceptions.ErrCannotParseJSON(err)
		}
	}
	return session, nil
}

// Save writes all fields and the expiry in one MULTI/EXEC so token and role
// never land apart.
func (r *RedisStore) Save(ctx context.Context, session models.Session) error {
	id := visitorID(ctx)
	if id == "" {
		return ErrNoVisitor
	}

	profile, err := json.Marshal(session.Profile)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	key := redisKey(id)
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.HSet(ctx, key,
			constvars.SessionKeyToken, session.Token,
			constvars.SessionKeyRole, string(session.Role),
			constvars.SessionKeyProfile, string(profile),
		)
		if r.ttl > 0 {
			pipe.Expire(ctx, key, r.ttl)
		}
		return nil
	})
	if err != nil {
		return exceptions.ErrRedisSet(err)
	}
	return nil
}

func (r *RedisStore) Clear(ctx context.Context) error {
	id := visitorID(ctx)
	if id == "" {
		return nil
	}

	err := r.client.Del(ctx, redisKey(id)).Err()
	if err != nil {
		return exceptions.ErrRedisDelete(err)
	}
	return nil
}

func redisKey(id string) string {
	return constvars.SessionRedisKeyPrefix + id
}
