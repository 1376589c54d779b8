package favorites

import (
	"errors"

	"dishcovery/rdx"

	"github.com/redis/go-redis/v9"
)

// RedisBackend persists favorites blobs under their storage key in redis.
type RedisBackend struct{}

func (RedisBackend) Load(key string) ([]byte, error) {
	val, err := rdx.RdxGet(key)
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return []byte(val), nil
}

func (RedisBackend) Save(key string, blob []byte) error {
	return rdx.RdxSet(key, string(blob))
}

// MemoryBackend is an in-process backend for tests and single-node dev runs.
type MemoryBackend struct {
	blobs map[string][]byte
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{blobs: make(map[string][]byte)}
}

func (m *MemoryBackend) Load(key string) ([]byte, error) {
	blob, ok := m.blobs[key]
	if !ok {
		return nil, nil
	}
	return blob, nil
}

func (m *MemoryBackend) Save(key string, blob []byte) error {
	m.blobs[key] = blob
	return nil
}
