package repository

import (
	"testing"

	"github.com/stretchr/testify/require"

	bCtx "github.com/nftique/storefront/base/ctx"
	"github.com/nftique/storefront/domain"
)

func TestSqliteRepo(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	repo, err := NewSqliteRepo(":memory:")
	req.NoError(err)

	_, err = repo.GetBool(ctx, domain.PreferenceKeyDarkMode)
	req.ErrorIs(err, domain.ErrNotFound)

	req.NoError(repo.SetBool(ctx, domain.PreferenceKeyDarkMode, true))
	v, err := repo.GetBool(ctx, domain.PreferenceKeyDarkMode)
	req.NoError(err)
	req.True(v)

	// upsert overwrites
	req.NoError(repo.SetBool(ctx, domain.PreferenceKeyDarkMode, false))
	v, err = repo.GetBool(ctx, domain.PreferenceKeyDarkMode)
	req.NoError(err)
	req.False(v)
}
