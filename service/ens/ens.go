package ens

import (
	"github.com/nftique/storefront/base/ctx"
	"github.com/nftique/storefront/domain"
)

// ENS resolves display names for addresses. DisplayName never fails:
// when reverse resolution is unavailable it degrades to the shortened
// 0x1234...abcd form.
type ENS interface {
	ReverseResolve(ctx ctx.Ctx, address domain.Address) (string, error)
	DisplayName(ctx ctx.Ctx, address domain.Address) string
}
