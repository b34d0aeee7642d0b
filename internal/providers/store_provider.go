package providers

import (
	"context"
	"sld/internal/structures"
	"time"

	"github.com/redis/go-redis/v9"
)

// ScoredMember is one member of a ranked collection.
type ScoredMember struct {
	Score  float64
	Member string
}

// StoreBatch collects mutations that must apply together. The redis
// implementation maps a batch onto a MULTI/EXEC transaction; partial
// application of a batch is not observable by readers.
type StoreBatch interface {
	Set(key string, value []byte, ttl time.Duration)
	ZAdd(key string, members ...ScoredMember)
	Del(keys ...string)
	Expire(key string, ttl time.Duration)
}

// StoreProviderInterface is the narrow contract the ranked store needs from
// its backing store: keyed values, ordered collections with descending
// range reads, cardinality, deletion, expiry, and an atomic batch seam for
// the two read-modify-write sequences (best-record upsert, archive+clear).
type StoreProviderInterface interface {
	// Get returns (nil, nil) for a missing key.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	ZAdd(ctx context.Context, key string, members ...ScoredMember) error
	// ZRevRangeWithScores reads [start, stop] in descending score order.
	ZRevRangeWithScores(ctx context.Context, key string, start, stop int64) ([]ScoredMember, error)
	ZCard(ctx context.Context, key string) (int64, error)
	Del(ctx context.Context, keys ...string) error
	Expire(ctx context.Context, key string, ttl time.Duration) error
	Atomic(ctx context.Context, fn func(batch StoreBatch) error) error
	Ping(ctx context.Context) error
	Close() error
}

type StoreProvider struct {
	client *redis.Client
}

func NewStoreProvider(conf *structures.Config, logger Logger) (StoreProviderInterface, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     conf.Redis.Addr,
		Password: conf.Redis.Password,
		DB:       conf.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	logger.Infof(TypeApp, "Connected to redis at %s (db %d)", conf.Redis.Addr, conf.Redis.DB)
	return &StoreProvider{client: client}, nil
}

func (sp *StoreProvider) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := sp.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

func (sp *StoreProvider) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return sp.client.Set(ctx, key, value, ttl).Err()
}

func (sp *StoreProvider) ZAdd(ctx context.Context, key string, members ...ScoredMember) error {
	return sp.client.ZAdd(ctx, key, toRedisZ(members)...).Err()
}

func (sp *StoreProvider) ZRevRangeWithScores(ctx context.Context, key string, start, stop int64) ([]ScoredMember, error) {
	zs, err := sp.client.ZRevRangeWithScores(ctx, key, start, stop).Result()
	if err != nil {
		return nil, err
	}
	members := make([]ScoredMember, 0, len(zs))
	for _, z := range zs {
		member, _ := z.Member.(string)
		members = append(members, ScoredMember{Score: z.Score, Member: member})
	}
	return members, nil
}

func (sp *StoreProvider) ZCard(ctx context.Context, key string) (int64, error) {
	return sp.client.ZCard(ctx, key).Result()
}

func (sp *StoreProvider) Del(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return sp.client.Del(ctx, keys...).Err()
}

func (sp *StoreProvider) Expire(ctx context.Context, key string, ttl time.Duration) error {
	return sp.client.Expire(ctx, key, ttl).Err()
}

func (sp *StoreProvider) Atomic(ctx context.Context, fn func(batch StoreBatch) error) error {
	pipe := sp.client.TxPipeline()
	if err := fn(&redisBatch{ctx: ctx, pipe: pipe}); err != nil {
		pipe.Discard()
		return err
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (sp *StoreProvider) Ping(ctx context.Context) error {
	return sp.client.Ping(ctx).Err()
}

func (sp *StoreProvider) Close() error {
	return sp.client.Close()
}

type redisBatch struct {
	ctx  context.Context
	pipe redis.Pipeliner
}

func (b *redisBatch) Set(key string, value []byte, ttl time.Duration) {
	b.pipe.Set(b.ctx, key, value, ttl)
}

func (b *redisBatch) ZAdd(key string, members ...ScoredMember) {
	b.pipe.ZAdd(b.ctx, key, toRedisZ(members)...)
}

func (b *redisBatch) Del(keys ...string) {
	b.pipe.Del(b.ctx, keys...)
}

func (b *redisBatch) Expire(key string, ttl time.Duration) {
	b.pipe.Expire(b.ctx, key, ttl)
}

func toRedisZ(members []ScoredMember) []redis.Z {
	zs := make([]redis.Z, len(members))
	for i, m := range members {
		zs[i] = redis.Z{Score: m.Score, Member: m.Member}
	}
	return zs
}
