package domain

import (
	"github.com/nftique/storefront/base/ctx"
)

type WebResourceReaderRepository interface {
	Get(ctx.Ctx, string) ([]byte, error)
}
