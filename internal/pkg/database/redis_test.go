package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/viajemos/viajemos/internal/pkg/models"
)

func TestNewRedisClient_ConnectionError(t *testing.T) {
	config := models.RedisConfig{
		Host:     "invalid-host",
		Port:     9999,
		PoolSize: 1,
	}

	client, err := NewRedisClient(config)

	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to redis")
}

func TestRedisClient_Set(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectSet("search:trips:active", "[]", 30*time.Second).SetVal("OK")

	err := client.Set(context.Background(), "search:trips:active", "[]", 30*time.Second)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_Get(t *testing.T) {
	tests := []struct {
		name          string
		mockValue     string
		mockError     error
		expectedValue string
		expectedError error
	}{
		{
			name:          "key exists",
			mockValue:     "cached",
			expectedValue: "cached",
		},
		{
			name:          "key does not exist",
			mockError:     redis.Nil,
			expectedError: ErrCacheMiss,
		},
		{
			name:          "redis failure",
			mockError:     errors.New("connection reset"),
			expectedError: errors.New("connection reset"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := redismock.NewClientMock()
			client := &RedisClient{Client: db}

			if tt.mockError != nil {
				mock.ExpectGet("k").SetErr(tt.mockError)
			} else {
				mock.ExpectGet("k").SetVal(tt.mockValue)
			}

			value, err := client.Get(context.Background(), "k")

			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedValue, value)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRedisClient_IncrWithTTL(t *testing.T) {
	t.Run("first increment sets ttl", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		client := &RedisClient{Client: db}

		mock.ExpectIncr("pin:attempts:1").SetVal(1)
		mock.ExpectExpire("pin:attempts:1", 15*time.Minute).SetVal(true)

		count, err := client.IncrWithTTL(context.Background(), "pin:attempts:1", 15*time.Minute)

		assert.NoError(t, err)
		assert.EqualValues(t, 1, count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("later increments keep ttl", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		client := &RedisClient{Client: db}

		mock.ExpectIncr("pin:attempts:1").SetVal(3)

		count, err := client.IncrWithTTL(context.Background(), "pin:attempts:1", 15*time.Minute)

		assert.NoError(t, err)
		assert.EqualValues(t, 3, count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisClient_Delete(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectDel("a", "b").SetVal(2)

	assert.NoError(t, client.Delete(context.Background(), "a", "b"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
