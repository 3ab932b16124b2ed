package marketplace

import (
	"strings"
	"time"

	"github.com/nftique/storefront/domain"
)

// View is what a screen store holds: an on-chain record joined with its
// display metadata. JSON marshaling goes through the concrete type.
type View interface {
	// Key returns the token id, used for numeric ordering
	Key() domain.TokenId
	// Matches reports whether the view matches a (lowercased) search term
	Matches(q string) bool
}

// TokenView is a TokenListing joined with metadata, the record the
// marketplace and holdings screens render.
type TokenView struct {
	TokenListing
	// DisplayPrice is the price converted out of native units
	DisplayPrice string `json:"displayPrice"`
	Image        string `json:"image"`
	Name         string `json:"name"`
	Description  string `json:"description"`
}

func (v TokenView) Key() domain.TokenId { return v.TokenId }

func (v TokenView) Matches(q string) bool {
	return strings.Contains(strings.ToLower(v.Name), q) ||
		strings.Contains(strings.ToLower(v.Description), q)
}

// AuctionView is an AuctionListing joined with metadata. TimeLeft is
// filled at read time by the caller since it depends on the clock.
type AuctionView struct {
	AuctionListing
	DisplayBid  string    `json:"displayBid"`
	Image       string    `json:"image"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	TimeLeft    Countdown `json:"timeLeft"`
}

func (v AuctionView) Key() domain.TokenId { return v.TokenId }

func (v AuctionView) Matches(q string) bool {
	return strings.Contains(strings.ToLower(v.Name), q) ||
		strings.Contains(strings.ToLower(v.Description), q)
}

// WithTimeLeft returns a copy with the countdown evaluated at now.
func (v AuctionView) WithTimeLeft(now time.Time) AuctionView {
	v.TimeLeft = Remaining(v.EndTime, now)
	return v
}

// TokenDetail is the single-token screen: the joined view plus transfer
// history and resolved display names.
type TokenDetail struct {
	TokenView
	OwnerName   string          `json:"ownerName,omitempty"`
	SellerName  string          `json:"sellerName,omitempty"`
	CreatorName string          `json:"creatorName,omitempty"`
	Transfers   []TransferEvent `json:"transfers"`
}

// PricePoint is one sample of the reconstructed price-over-time series.
type PricePoint struct {
	Timestamp time.Time `json:"timestamp"`
	// Price is in display units, decimal-encoded
	Price string `json:"price"`
}
