package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/construction-pm-api/pkg/errors"
)

func TestCacheRepositoryWithoutClient(t *testing.T) {
	repo := NewCacheRepository(nil, nil)
	ctx := context.Background()

	var dest []string
	err := repo.Get(ctx, "snapshot:sites", &dest)
	assert.ErrorIs(t, err, appErrors.ErrCacheMiss)
	require.NoError(t, repo.Set(ctx, "snapshot:sites", []string{"s1"}, time.Minute))
	require.NoError(t, repo.DeleteByPattern(ctx, "snapshot:*"))
	require.NoError(t, repo.Ping(ctx))
	require.NoError(t, repo.Close())
}
