package usecase

import (
	"testing"

	"github.com/stretchr/testify/require"

	bCtx "github.com/nftique/storefront/base/ctx"
	"github.com/nftique/storefront/stores/preference/repository"
)

func TestDarkMode(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	repo, err := repository.NewSqliteRepo(":memory:")
	req.NoError(err)
	u := NewPreferenceUseCase(repo)

	// unset reads as off
	v, err := u.DarkMode(ctx)
	req.NoError(err)
	req.False(v)

	req.NoError(u.SetDarkMode(ctx, true))
	v, err = u.DarkMode(ctx)
	req.NoError(err)
	req.True(v)
}
