package storage_test

import (
	"context"
	"os"
	"testing"

	"github.com/MichalMitros/syntara-client/internal/platform"
	"github.com/MichalMitros/syntara-client/internal/platform/storage"
	"github.com/go-faker/faker/v4"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegrationRedis(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("please provide redis address via REDIS_ADDR environment variable")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })

	rds := storage.NewRedis(client, "syntara-test:"+faker.Word()+":")
	key := faker.Word()

	_, err := rds.Get(context.TODO(), key)
	require.ErrorIs(t, err, platform.ErrKeyNotFound, "should return not found before set")

	require.NoError(t, rds.Set(context.TODO(), key, "value"), "should set value")

	got, err := rds.Get(context.TODO(), key)
	require.NoError(t, err, "should get value")
	assert.Equal(t, "value", got, "should return stored value")

	require.NoError(t, rds.Delete(context.TODO(), key), "should delete key")

	_, err = rds.Get(context.TODO(), key)
	assert.ErrorIs(t, err, platform.ErrKeyNotFound, "should return not found after delete")
}
