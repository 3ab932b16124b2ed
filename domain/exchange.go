package domain

import (
	"github.com/nftique/storefront/base/ctx"
)

// ExchangeUseCase submits value-bearing marketplace transactions through
// the connected wallet and waits for them to be mined.
type ExchangeUseCase interface {
	// Buy purchases a fixed-price listing. price is in display units.
	Buy(c ctx.Ctx, from Address, tokenId TokenId, price string) (TxHash, error)
	// Bid places a bid on a live auction. amount is in display units.
	Bid(c ctx.Ctx, from Address, tokenId TokenId, amount string) (TxHash, error)
}
