package marketplace

import (
	"time"

	"github.com/nftique/storefront/domain"
)

// AuctionListing is the raw auction record read from the contract.
// Whether the auction has ended is derived against wall-clock time, not
// stored; see Remaining.
type AuctionListing struct {
	TokenId       domain.TokenId `json:"tokenId"`
	Seller        domain.Address `json:"seller"`
	StartTime     time.Time      `json:"startTime"`
	EndTime       time.Time      `json:"endTime"`
	HighestBid    string         `json:"highestBid"`
	HighestBidder domain.Address `json:"highestBidder"`
}
