package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nftique/storefront/domain"
	"github.com/nftique/storefront/domain/marketplace"
	mpmocks "github.com/nftique/storefront/domain/marketplace/mocks"
	"github.com/nftique/storefront/domain/mocks"
)

func TestPriceHistory(t *testing.T) {
	req := require.New(t)
	reader := &mpmocks.Reader{}

	l := listing("7", "2000000000000000000")
	reader.On("GetListing", mock.Anything, domain.TokenId("7")).Return(&l, nil)
	reader.On("GetTransferHistory", mock.Anything, domain.TokenId("7")).Return([]marketplace.TransferEvent{
		{Timestamp: time.Unix(1000, 0).UTC()},
		{Timestamp: time.Unix(2000, 0).UTC()},
		{Timestamp: time.Unix(3000, 0).UTC()},
	}, nil)

	u := newTestUseCase(reader, &mocks.MetadataUseCase{})

	points, err := u.PriceHistory(mockCtx, "7")
	req.NoError(err)
	// one point per transfer, nothing synthesized
	req.Len(points, 3)
	// earlier points carry the estimated price, exactly 0.9x
	req.Equal("1.8", points[0].Price)
	req.Equal(time.Unix(1000, 0).UTC(), points[0].Timestamp)
	req.Equal("1.8", points[1].Price)
	// the last transfer carries the live listing price
	req.Equal("2", points[2].Price)
	req.Equal(time.Unix(3000, 0).UTC(), points[2].Timestamp)
}

func TestPriceHistory_noTransfers(t *testing.T) {
	req := require.New(t)
	reader := &mpmocks.Reader{}

	l := listing("9", "300000000000000000")
	reader.On("GetListing", mock.Anything, domain.TokenId("9")).Return(&l, nil)
	reader.On("GetTransferHistory", mock.Anything, domain.TokenId("9")).
		Return([]marketplace.TransferEvent{}, nil)

	u := newTestUseCase(reader, &mocks.MetadataUseCase{})

	points, err := u.PriceHistory(mockCtx, "9")
	req.NoError(err)
	// no transfers means no chart, not a placeholder point
	req.Empty(points)
}

func TestPriceHistory_singleTransfer(t *testing.T) {
	req := require.New(t)
	reader := &mpmocks.Reader{}

	l := listing("4", "1000000000000000000")
	reader.On("GetListing", mock.Anything, domain.TokenId("4")).Return(&l, nil)
	reader.On("GetTransferHistory", mock.Anything, domain.TokenId("4")).Return([]marketplace.TransferEvent{
		{Timestamp: time.Unix(5000, 0).UTC()},
	}, nil)

	u := newTestUseCase(reader, &mocks.MetadataUseCase{})

	points, err := u.PriceHistory(mockCtx, "4")
	req.NoError(err)
	req.Len(points, 1)
	req.Equal("1", points[0].Price)
}

func TestPriceHistory_listingErrorPropagates(t *testing.T) {
	req := require.New(t)
	reader := &mpmocks.Reader{}
	reader.On("GetListing", mock.Anything, domain.TokenId("7")).
		Return(nil, domain.ErrChainUnavailable)

	u := newTestUseCase(reader, &mocks.MetadataUseCase{})
	_, err := u.PriceHistory(mockCtx, "7")
	req.ErrorIs(err, domain.ErrChainUnavailable)
}
