package services

import (
	"context"
	"testing"

	"github.com/dishu-studio/studio-backend/logger"
	"github.com/dishu-studio/studio-backend/types"
	"github.com/go-redis/redismock/v9"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.IsTest = true
}

func TestHealthServiceCheckHealth(t *testing.T) {
	t.Run("all components up", func(t *testing.T) {
		mockDB, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mockDB.Close()
		mockDB.ExpectPing()

		redisClient, redisMock := redismock.NewClientMock()
		redisMock.ExpectPing().SetVal("PONG")

		svc := NewHealthService(mockDB, redisClient, "1.2.3")
		health := svc.CheckHealth(context.Background())

		assert.Equal(t, types.HealthStatusUp, health.Status)
		assert.Equal(t, types.HealthStatusUp, health.Components["database"].Status)
		assert.Equal(t, types.HealthStatusUp, health.Components["redis"].Status)
		assert.Equal(t, "1.2.3", health.Version)
		assert.NotEmpty(t, health.Timestamp)
	})

	t.Run("database down takes overall status down", func(t *testing.T) {
		mockDB, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mockDB.Close()
		mockDB.ExpectPing().WillReturnError(assert.AnError)

		redisClient, redisMock := redismock.NewClientMock()
		redisMock.ExpectPing().SetVal("PONG")

		svc := NewHealthService(mockDB, redisClient, "1.2.3")
		health := svc.CheckHealth(context.Background())

		assert.Equal(t, types.HealthStatusDown, health.Status)
		assert.Equal(t, types.HealthStatusDown, health.Components["database"].Status)
		assert.Equal(t, types.HealthStatusUp, health.Components["redis"].Status)
	})

	t.Run("redis down takes overall status down", func(t *testing.T) {
		mockDB, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mockDB.Close()
		mockDB.ExpectPing()

		redisClient, redisMock := redismock.NewClientMock()
		redisMock.ExpectPing().SetErr(assert.AnError)

		svc := NewHealthService(mockDB, redisClient, "1.2.3")
		health := svc.CheckHealth(context.Background())

		assert.Equal(t, types.HealthStatusDown, health.Status)
		assert.Equal(t, types.HealthStatusDown, health.Components["redis"].Status)
	})
}
