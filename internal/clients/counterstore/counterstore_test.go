//go:build integration

package counterstore_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HamMeyva/challenge-engine/internal/clients/counterstore"
	"github.com/HamMeyva/challenge-engine/internal/config"
	"github.com/HamMeyva/challenge-engine/testutil"
)

// should be in sync with redis version used in production
const redisVersion = "7.2"

var testStore *counterstore.RedisCounterStore

func TestMain(m *testing.M) {
	cfg, cleanup, err := setupRedisContainer()
	if err != nil {
		log.Fatalf("failed to setup redis container: %v", err)
	}

	testStore = counterstore.New(cfg)
	err = waitForRedis(testStore)
	if err != nil {
		cleanup()
		log.Fatalf("redis is not reachable: %v", err)
	}

	code := m.Run()
	_ = testStore.Close()
	cleanup()

	os.Exit(code)
}

func setupRedisContainer() (*config.RedisConfig, func(), error) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, nil, err
	}

	suffix, err := testutil.RandomAlphaNum(3)
	if err != nil {
		return nil, nil, err
	}
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Name:       "redis-integration-tests-" + suffix,
		Repository: "redis",
		Tag:        redisVersion,
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		if err := pool.Purge(resource); err != nil {
			log.Fatalf("failed to purge resource: %v", err)
		}
	}

	cfg := &config.RedisConfig{
		Address:       fmt.Sprintf("localhost:%s", resource.GetPort("6379/tcp")),
		Timeout:       2 * time.Second,
		MaxRetryTimes: 3,
		RetryInterval: 50 * time.Millisecond,
	}
	return cfg, cleanup, nil
}

func waitForRedis(store *counterstore.RedisCounterStore) error {
	var err error
	for range 30 {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		err = store.Ping(ctx)
		cancel()
		if err == nil {
			return nil
		}
		time.Sleep(500 * time.Millisecond)
	}
	return err
}

func randomID(t *testing.T) string {
	id, err := testutil.RandomAlphaNum(10)
	require.NoError(t, err)
	return id
}

func TestRoundCoins(t *testing.T) {
	ctx := t.Context()
	challengeID := randomID(t)

	t.Run("missing counter reads as empty", func(t *testing.T) {
		coins, err := testStore.GetRoundCoins(ctx, challengeID, 7)
		require.NoError(t, err)
		assert.Empty(t, coins)
	})
	t.Run("increments accumulate per recipient", func(t *testing.T) {
		_, err := testStore.IncrementRoundCoins(ctx, challengeID, 1, "alice", 30)
		require.NoError(t, err)
		value, err := testStore.IncrementRoundCoins(ctx, challengeID, 1, "alice", 20)
		require.NoError(t, err)
		assert.EqualValues(t, 50, value)
		_, err = testStore.IncrementRoundCoins(ctx, challengeID, 1, "bob", 30)
		require.NoError(t, err)

		coins, err := testStore.GetRoundCoins(ctx, challengeID, 1)
		require.NoError(t, err)
		assert.Equal(t, map[string]uint64{"alice": 50, "bob": 30}, coins)

		// other rounds are separate counters
		other, err := testStore.GetRoundCoins(ctx, challengeID, 2)
		require.NoError(t, err)
		assert.Empty(t, other)
	})
	t.Run("delete", func(t *testing.T) {
		_, err := testStore.IncrementRoundCoins(ctx, challengeID, 2, "alice", 5)
		require.NoError(t, err)

		err = testStore.DeleteRoundCoins(ctx, challengeID, 1, 2, 3)
		require.NoError(t, err)

		for _, n := range []uint32{1, 2} {
			coins, err := testStore.GetRoundCoins(ctx, challengeID, n)
			require.NoError(t, err)
			assert.Empty(t, coins)
		}
	})
}

func TestStreak(t *testing.T) {
	ctx := t.Context()
	key := counterstore.StreakKey{
		Channel:     randomID(t),
		SenderID:    "viewer",
		RecipientID: "broadcaster",
		GiftID:      "rose",
	}

	for want := int64(1); want <= 3; want++ {
		got, err := testStore.IncrementStreak(ctx, key, time.Minute)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	t.Run("window expiry restarts the streak", func(t *testing.T) {
		key := key
		key.GiftID = "lion"

		got, err := testStore.IncrementStreak(ctx, key, time.Second)
		require.NoError(t, err)
		assert.EqualValues(t, 1, got)

		require.Eventually(t, func() bool {
			got, err := testStore.IncrementStreak(ctx, key, time.Second)
			return err == nil && got == 1
		}, 5*time.Second, 1200*time.Millisecond)
	})
}
