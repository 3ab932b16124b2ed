package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/nftique/storefront/base/ctx"
	"github.com/nftique/storefront/base/log"
	"github.com/nftique/storefront/domain"
	"github.com/nftique/storefront/domain/marketplace"
)

// earlierPriceFactor approximates historical sale prices from the
// current one. The contract does not record past sale amounts, only the
// transfer timestamps, so earlier points are estimated at 90% of the
// current price. The factor is applied exactly in decimal arithmetic.
var earlierPriceFactor = decimal.RequireFromString("0.9")

// PriceHistory reconstructs a price-over-time series for one token: one
// point per past transfer, the last one carrying the current listing
// price and the earlier ones the estimated price. A token with no
// transfers yields an empty series and the client renders no chart.
func (im *marketUseCase) PriceHistory(c ctx.Ctx, tokenId domain.TokenId) ([]marketplace.PricePoint, error) {
	listing, err := im.reader.GetListing(c, tokenId)
	if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"tokenId": tokenId,
		}).Error("reader.GetListing failed")
		return nil, err
	}
	current, err := decimal.NewFromString(listing.Price)
	if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"tokenId": tokenId,
			"price":   listing.Price,
		}).Error("unparsable listing price")
		return nil, domain.ErrInvalidNumberFormat
	}
	current = current.Shift(-18)
	earlier := current.Mul(earlierPriceFactor)

	transfers, err := im.reader.GetTransferHistory(c, tokenId)
	if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"tokenId": tokenId,
		}).Error("reader.GetTransferHistory failed")
		return nil, err
	}

	points := make([]marketplace.PricePoint, 0, len(transfers))
	for i, transfer := range transfers {
		price := earlier
		if i == len(transfers)-1 {
			price = current
		}
		points = append(points, marketplace.PricePoint{
			Timestamp: transfer.Timestamp,
			Price:     price.String(),
		})
	}
	return points, nil
}
