package redis_test

import (
	"context"
	"testing"
	"time"

	redisrepo "github.com/muhammadheryan/foodhive/repository/redis"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestRepository_NilClientIsNoop(t *testing.T) {
	ctx := context.Background()
	repo := redisrepo.NewRepository(nil)

	_, err := repo.Get(ctx, "k")
	assert.ErrorIs(t, err, goredis.Nil)

	var dest []string
	found, err := repo.GetJSON(ctx, "k", &dest)
	assert.NoError(t, err)
	assert.False(t, found)

	assert.NoError(t, repo.SetJSON(ctx, "k", []string{"Mexican"}, time.Minute))
	assert.NoError(t, repo.Delete(ctx, "k", "j"))
}
