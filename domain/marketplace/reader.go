package marketplace

import (
	"github.com/nftique/storefront/base/ctx"
	"github.com/nftique/storefront/domain"
)

// Reader is the read-only facade over the marketplace contract. Every
// failure of the underlying RPC wraps domain.ErrChainUnavailable; there
// are no partial results at this layer.
type Reader interface {
	GetListedTokens(ctx.Ctx) ([]TokenListing, error)
	GetAuctionedTokens(ctx.Ctx) ([]AuctionListing, error)
	GetListing(ctx.Ctx, domain.TokenId) (*TokenListing, error)
	GetTokenURI(ctx.Ctx, domain.TokenId) (string, error)
	// GetHoldings enumerates the wallet's balance then indexes each held
	// token by position; it costs O(balance) round trips.
	GetHoldings(ctx.Ctx, domain.Address) ([]domain.TokenId, error)
	GetOwner(ctx.Ctx, domain.TokenId) (domain.Address, error)
	GetCreator(ctx.Ctx, domain.TokenId) (domain.Address, error)
	// GetTransferHistory returns the token's transfer events ordered
	// ascending by timestamp regardless of source order.
	GetTransferHistory(ctx.Ctx, domain.TokenId) ([]TransferEvent, error)
}

// UseCase is the screen-facing aggregation surface. Loads replace the
// screen's snapshot wholesale; nothing is patched in place.
type UseCase interface {
	RefreshMarketplace(ctx.Ctx) error
	MarketplaceItems(ctx.Ctx, string) []TokenView
	NewDrops(ctx.Ctx) []TokenView
	RefreshAuctions(ctx.Ctx) error
	AuctionItems(ctx.Ctx, string) []AuctionView
	Holdings(ctx.Ctx, domain.Address) ([]TokenView, error)
	TokenDetail(ctx.Ctx, domain.TokenId) (*TokenDetail, error)
	PriceHistory(ctx.Ctx, domain.TokenId) ([]PricePoint, error)
}
