package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNilClientFailsSafe(t *testing.T) {
	var c *Client
	ctx := context.Background()

	v, err := c.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Nil(t, v)
	assert.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	assert.NoError(t, c.Delete(ctx, "k"))
	assert.NoError(t, c.DeletePrefix(ctx, "k"))
	assert.NoError(t, c.Ping(ctx))
	assert.NoError(t, c.Close())
}
