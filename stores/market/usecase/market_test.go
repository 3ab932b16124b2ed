package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	bCtx "github.com/nftique/storefront/base/ctx"
	"github.com/nftique/storefront/domain"
	"github.com/nftique/storefront/domain/marketplace"
	mpmocks "github.com/nftique/storefront/domain/marketplace/mocks"
	"github.com/nftique/storefront/domain/mocks"
	ensmocks "github.com/nftique/storefront/service/ens/mocks"
)

var mockCtx = bCtx.Background()

func listing(tokenId string, priceNative string) marketplace.TokenListing {
	return marketplace.TokenListing{
		TokenId: domain.TokenId(tokenId),
		Seller:  "0xseller",
		Owner:   "0xowner",
		Creator: "0xcreator",
		Price:   priceNative,
	}
}

func newTestUseCase(reader *mpmocks.Reader, metadata *mocks.MetadataUseCase) *marketUseCase {
	return NewMarketUseCase(&MarketUseCaseCfg{
		Reader:   reader,
		Metadata: metadata,
		Workers:  4,
	}).(*marketUseCase)
}

func TestRefreshMarketplace_metadataFallbackKeepsToken(t *testing.T) {
	req := require.New(t)
	reader := &mpmocks.Reader{}
	metadata := &mocks.MetadataUseCase{}

	reader.On("GetListedTokens", mock.Anything).Return([]marketplace.TokenListing{
		listing("1", "1000000000000000000"),
		listing("2", "2000000000000000000"),
		listing("3", "500000000000000000"),
	}, nil)
	reader.On("GetTokenURI", mock.Anything, domain.TokenId("1")).Return("https://meta/1", nil)
	reader.On("GetTokenURI", mock.Anything, domain.TokenId("2")).Return("https://meta/2", nil)
	reader.On("GetTokenURI", mock.Anything, domain.TokenId("3")).Return("https://meta/3", nil)
	metadata.On("GetFromURL", mock.Anything, "https://meta/1").
		Return(&domain.TokenMetadata{Name: "One", Image: "https://img/1"}, nil)
	// token 2's document is unreachable, it must still appear with fallback values
	metadata.On("GetFromURL", mock.Anything, "https://meta/2").
		Return(nil, domain.ErrMetadataUnavailable)
	metadata.On("GetFromURL", mock.Anything, "https://meta/3").
		Return(&domain.TokenMetadata{Name: "Three", Image: "https://img/3"}, nil)

	u := newTestUseCase(reader, metadata)
	req.NoError(u.RefreshMarketplace(mockCtx))

	items := u.MarketplaceItems(mockCtx, "")
	req.Len(items, 3)
	// input order preserved despite concurrent joins
	req.Equal(domain.TokenId("1"), items[0].TokenId)
	req.Equal(domain.TokenId("2"), items[1].TokenId)
	req.Equal(domain.TokenId("3"), items[2].TokenId)

	req.Equal("One", items[0].Name)
	req.Equal("1", items[0].DisplayPrice)

	req.Equal("NFT #2", items[1].Name)
	req.Equal(domain.PlaceholderImage, items[1].Image)
	req.Equal("", items[1].Description)
	req.Equal("2", items[1].DisplayPrice)
}

func TestRefreshMarketplace_ipfsTokenURIKeepsScheme(t *testing.T) {
	req := require.New(t)
	reader := &mpmocks.Reader{}
	metadata := &mocks.MetadataUseCase{}

	reader.On("GetListedTokens", mock.Anything).Return([]marketplace.TokenListing{
		listing("1", "1000000000000000000"),
	}, nil)
	reader.On("GetTokenURI", mock.Anything, domain.TokenId("1")).
		Return("ipfs://QmeSjSinHpPnmXmspMjwiXyN6zS4E9zccariGR3jxcaWtq/1", nil)
	// the fetcher dispatches on the scheme, so the uri must arrive unrewritten
	metadata.On("GetFromURL", mock.Anything, "ipfs://QmeSjSinHpPnmXmspMjwiXyN6zS4E9zccariGR3jxcaWtq/1").
		Return(&domain.TokenMetadata{Name: "One"}, nil)

	u := newTestUseCase(reader, metadata)
	req.NoError(u.RefreshMarketplace(mockCtx))

	items := u.MarketplaceItems(mockCtx, "")
	req.Len(items, 1)
	req.Equal("One", items[0].Name)
	metadata.AssertExpectations(t)
}

func TestRefreshMarketplace_tokenURIFailureDropsOnlyThatToken(t *testing.T) {
	req := require.New(t)
	reader := &mpmocks.Reader{}
	metadata := &mocks.MetadataUseCase{}

	reader.On("GetListedTokens", mock.Anything).Return([]marketplace.TokenListing{
		listing("1", "1000000000000000000"),
		listing("2", "1000000000000000000"),
	}, nil)
	reader.On("GetTokenURI", mock.Anything, domain.TokenId("1")).Return("", errors.New("revert"))
	reader.On("GetTokenURI", mock.Anything, domain.TokenId("2")).Return("https://meta/2", nil)
	metadata.On("GetFromURL", mock.Anything, "https://meta/2").
		Return(&domain.TokenMetadata{Name: "Two"}, nil)

	u := newTestUseCase(reader, metadata)
	req.NoError(u.RefreshMarketplace(mockCtx))

	items := u.MarketplaceItems(mockCtx, "")
	req.Len(items, 1)
	req.Equal(domain.TokenId("2"), items[0].TokenId)
}

func TestRefreshMarketplace_chainErrorKeepsPreviousSnapshot(t *testing.T) {
	req := require.New(t)
	reader := &mpmocks.Reader{}
	metadata := &mocks.MetadataUseCase{}

	reader.On("GetListedTokens", mock.Anything).Return([]marketplace.TokenListing{
		listing("1", "1000000000000000000"),
	}, nil).Once()
	reader.On("GetTokenURI", mock.Anything, domain.TokenId("1")).Return("https://meta/1", nil)
	metadata.On("GetFromURL", mock.Anything, "https://meta/1").
		Return(&domain.TokenMetadata{Name: "One"}, nil)

	u := newTestUseCase(reader, metadata)
	req.NoError(u.RefreshMarketplace(mockCtx))
	req.Len(u.MarketplaceItems(mockCtx, ""), 1)

	reader.On("GetListedTokens", mock.Anything).Return(nil, domain.ErrChainUnavailable)
	err := u.RefreshMarketplace(mockCtx)
	req.ErrorIs(err, domain.ErrChainUnavailable)
	// previous snapshot still renders
	req.Len(u.MarketplaceItems(mockCtx, ""), 1)
}

func TestNewDrops_topThreeByTokenIdDesc(t *testing.T) {
	req := require.New(t)
	reader := &mpmocks.Reader{}
	metadata := &mocks.MetadataUseCase{}

	ids := []string{"5", "1", "9", "3", "2"}
	listings := make([]marketplace.TokenListing, 0, len(ids))
	for _, id := range ids {
		listings = append(listings, listing(id, "1000000000000000000"))
		reader.On("GetTokenURI", mock.Anything, domain.TokenId(id)).Return("https://meta/"+id, nil)
		metadata.On("GetFromURL", mock.Anything, "https://meta/"+id).
			Return(&domain.TokenMetadata{Name: "Token " + id}, nil)
	}
	reader.On("GetListedTokens", mock.Anything).Return(listings, nil)

	u := newTestUseCase(reader, metadata)
	req.NoError(u.RefreshMarketplace(mockCtx))

	drops := u.NewDrops(mockCtx)
	req.Len(drops, 3)
	req.Equal(domain.TokenId("9"), drops[0].TokenId)
	req.Equal(domain.TokenId("5"), drops[1].TokenId)
	req.Equal(domain.TokenId("3"), drops[2].TokenId)

	// the full snapshot is untouched by the sort
	req.Equal(domain.TokenId("5"), u.MarketplaceItems(mockCtx, "")[0].TokenId)
}

func TestAuctionItems_countdown(t *testing.T) {
	req := require.New(t)
	reader := &mpmocks.Reader{}
	metadata := &mocks.MetadataUseCase{}

	now := time.Date(2022, 9, 1, 12, 0, 0, 0, time.UTC)
	reader.On("GetAuctionedTokens", mock.Anything).Return([]marketplace.AuctionListing{
		{
			TokenId:    "7",
			EndTime:    now.Add(7500 * time.Second),
			HighestBid: "2500000000000000000",
		},
		{
			TokenId:    "8",
			EndTime:    now.Add(-time.Second),
			HighestBid: "1000000000000000000",
		},
	}, nil)
	for _, id := range []string{"7", "8"} {
		reader.On("GetTokenURI", mock.Anything, domain.TokenId(id)).Return("https://meta/"+id, nil)
		metadata.On("GetFromURL", mock.Anything, "https://meta/"+id).
			Return(&domain.TokenMetadata{Name: "Token " + id}, nil)
	}

	u := newTestUseCase(reader, metadata)
	u.now = func() time.Time { return now }
	req.NoError(u.RefreshAuctions(mockCtx))

	items := u.AuctionItems(mockCtx, "")
	req.Len(items, 2)
	req.False(items[0].TimeLeft.Ended)
	req.Equal("2h 5m", items[0].TimeLeft.Label)
	req.Equal("2.5", items[0].DisplayBid)
	req.True(items[1].TimeLeft.Ended)
	req.Equal("Ended", items[1].TimeLeft.Label)
}

func TestHoldings_unlistedTokenHasNoPrice(t *testing.T) {
	req := require.New(t)
	reader := &mpmocks.Reader{}
	metadata := &mocks.MetadataUseCase{}
	owner := domain.Address("0xowner")

	reader.On("GetHoldings", mock.Anything, owner).Return([]domain.TokenId{"4", "6"}, nil)
	reader.On("GetTokenURI", mock.Anything, domain.TokenId("4")).Return("https://meta/4", nil)
	reader.On("GetTokenURI", mock.Anything, domain.TokenId("6")).Return("https://meta/6", nil)
	metadata.On("GetFromURL", mock.Anything, "https://meta/4").
		Return(&domain.TokenMetadata{Name: "Four"}, nil)
	metadata.On("GetFromURL", mock.Anything, "https://meta/6").
		Return(&domain.TokenMetadata{Name: "Six"}, nil)
	reader.On("GetListing", mock.Anything, domain.TokenId("4")).
		Return(&marketplace.TokenListing{TokenId: "4", Owner: owner, Price: "1000000000000000000"}, nil)
	reader.On("GetListing", mock.Anything, domain.TokenId("6")).Return(nil, domain.ErrNotFound)

	u := newTestUseCase(reader, metadata)
	views, err := u.Holdings(mockCtx, owner)
	req.NoError(err)
	req.Len(views, 2)
	req.Equal("1", views[0].DisplayPrice)
	req.Equal("", views[1].DisplayPrice)
	req.Equal(owner, views[1].Owner)
}

func TestTokenDetail(t *testing.T) {
	req := require.New(t)
	reader := &mpmocks.Reader{}
	metadata := &mocks.MetadataUseCase{}
	ensService := &ensmocks.ENS{}

	l := listing("7", "1500000000000000000")
	transfers := []marketplace.TransferEvent{
		{Timestamp: time.Unix(1000, 0).UTC(), From: domain.EmptyAddress, To: "0xcreator"},
		{Timestamp: time.Unix(2000, 0).UTC(), From: "0xcreator", To: "0xowner"},
	}
	reader.On("GetListing", mock.Anything, domain.TokenId("7")).Return(&l, nil)
	reader.On("GetTokenURI", mock.Anything, domain.TokenId("7")).Return("https://meta/7", nil)
	reader.On("GetTransferHistory", mock.Anything, domain.TokenId("7")).Return(transfers, nil)
	metadata.On("GetFromURL", mock.Anything, "https://meta/7").
		Return(&domain.TokenMetadata{Name: "Seven"}, nil)
	ensService.On("DisplayName", mock.Anything, l.Owner).Return("owner.eth")
	ensService.On("DisplayName", mock.Anything, l.Seller).Return("seller.eth")
	ensService.On("DisplayName", mock.Anything, l.Creator).Return("0xcrea...ator")

	u := NewMarketUseCase(&MarketUseCaseCfg{
		Reader:   reader,
		Metadata: metadata,
		Ens:      ensService,
	}).(*marketUseCase)

	detail, err := u.TokenDetail(mockCtx, "7")
	req.NoError(err)
	req.Equal("Seven", detail.Name)
	req.Equal("1.5", detail.DisplayPrice)
	req.Equal("owner.eth", detail.OwnerName)
	req.Equal("seller.eth", detail.SellerName)
	req.Equal(transfers, detail.Transfers)
}

func TestTokenDetail_notFound(t *testing.T) {
	req := require.New(t)
	reader := &mpmocks.Reader{}
	reader.On("GetListing", mock.Anything, domain.TokenId("404")).Return(nil, domain.ErrNotFound)

	u := newTestUseCase(reader, &mocks.MetadataUseCase{})
	_, err := u.TokenDetail(mockCtx, "404")
	req.ErrorIs(err, domain.ErrNotFound)
}
