package marketplace

import (
	"time"

	"github.com/nftique/storefront/domain"
)

// TokenListing is the raw fixed-price sale record read from the
// contract. It is an immutable snapshot; a reload produces a fresh one.
type TokenListing struct {
	TokenId domain.TokenId `json:"tokenId"`
	Seller  domain.Address `json:"seller"`
	Owner   domain.Address `json:"owner"`
	Creator domain.Address `json:"creator"`
	// Price is in the chain's smallest native unit, decimal-encoded to
	// keep 256-bit amounts exact
	Price               string    `json:"price"`
	SalesCount          int64     `json:"salesCount"`
	LastTransactionTime time.Time `json:"lastTransactionTime"`
}
