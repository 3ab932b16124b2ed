package usecase

import (
	"errors"
	"sort"
	"time"

	"github.com/viney-shih/goroutines"

	"github.com/nftique/storefront/base/ctx"
	"github.com/nftique/storefront/base/log"
	"github.com/nftique/storefront/domain"
	"github.com/nftique/storefront/domain/marketplace"
	"github.com/nftique/storefront/service/ens"
)

const (
	defaultWorkers = 10
	newDropsCount  = 3
)

type MarketUseCaseCfg struct {
	Reader   marketplace.Reader
	Metadata domain.MetadataUseCase
	Ens      ens.ENS
	// Workers caps the metadata fan-out per load
	Workers int
}

type marketUseCase struct {
	reader   marketplace.Reader
	metadata domain.MetadataUseCase
	ens      ens.ENS
	workers  int
	now      func() time.Time

	marketStore  *viewStore
	auctionStore *viewStore
}

func NewMarketUseCase(cfg *MarketUseCaseCfg) marketplace.UseCase {
	workers := cfg.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}
	return &marketUseCase{
		reader:       cfg.Reader,
		metadata:     cfg.Metadata,
		ens:          cfg.Ens,
		workers:      workers,
		now:          time.Now,
		marketStore:  newViewStore(),
		auctionStore: newViewStore(),
	}
}

// RefreshMarketplace replaces the marketplace snapshot wholesale. A
// chain read failure keeps the previous snapshot; a metadata failure
// degrades only the affected token.
func (im *marketUseCase) RefreshMarketplace(c ctx.Ctx) error {
	epoch := im.marketStore.Begin()
	listings, err := im.reader.GetListedTokens(c)
	if err != nil {
		c.WithField("err", err).Error("reader.GetListedTokens failed")
		return err
	}
	views := im.joinTokenViews(c, listings)
	if !im.marketStore.Apply(epoch, views) {
		c.WithField("epoch", epoch).Info("discarding stale marketplace load")
	}
	return nil
}

func (im *marketUseCase) MarketplaceItems(c ctx.Ctx, query string) []marketplace.TokenView {
	return toTokenViews(im.marketStore.Filter(query))
}

// NewDrops returns the most recently minted listings, newest first.
func (im *marketUseCase) NewDrops(c ctx.Ctx) []marketplace.TokenView {
	// toTokenViews already copies out of the snapshot
	views := toTokenViews(im.marketStore.Snapshot())
	sort.SliceStable(views, func(i, j int) bool {
		a, errA := views[i].TokenId.ToBigInt()
		b, errB := views[j].TokenId.ToBigInt()
		if errA != nil || errB != nil {
			return false
		}
		return a.Cmp(b) > 0
	})
	if len(views) > newDropsCount {
		views = views[:newDropsCount]
	}
	return views
}

func (im *marketUseCase) RefreshAuctions(c ctx.Ctx) error {
	epoch := im.auctionStore.Begin()
	auctions, err := im.reader.GetAuctionedTokens(c)
	if err != nil {
		c.WithField("err", err).Error("reader.GetAuctionedTokens failed")
		return err
	}
	views := im.joinAuctionViews(c, auctions)
	if !im.auctionStore.Apply(epoch, views) {
		c.WithField("epoch", epoch).Info("discarding stale auction load")
	}
	return nil
}

func (im *marketUseCase) AuctionItems(c ctx.Ctx, query string) []marketplace.AuctionView {
	matched := im.auctionStore.Filter(query)
	now := im.now()
	views := make([]marketplace.AuctionView, 0, len(matched))
	for _, v := range matched {
		views = append(views, v.(marketplace.AuctionView).WithTimeLeft(now))
	}
	return views
}

func (im *marketUseCase) Holdings(c ctx.Ctx, owner domain.Address) ([]marketplace.TokenView, error) {
	tokenIds, err := im.reader.GetHoldings(c, owner)
	if err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"owner": owner,
		}).Error("reader.GetHoldings failed")
		return nil, err
	}
	views := make([]marketplace.TokenView, 0, len(tokenIds))
	for _, tokenId := range tokenIds {
		view := im.joinHolding(c, owner, tokenId)
		if view != nil {
			views = append(views, *view)
		}
	}
	return views, nil
}

func (im *marketUseCase) TokenDetail(c ctx.Ctx, tokenId domain.TokenId) (*marketplace.TokenDetail, error) {
	listing, err := im.reader.GetListing(c, tokenId)
	if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"tokenId": tokenId,
		}).Error("reader.GetListing failed")
		return nil, err
	}
	view := im.joinTokenView(c, *listing)
	if view == nil {
		return nil, domain.ErrNotFound
	}
	transfers, err := im.reader.GetTransferHistory(c, tokenId)
	if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"tokenId": tokenId,
		}).Warn("reader.GetTransferHistory failed, omitting history")
		transfers = []marketplace.TransferEvent{}
	}
	detail := &marketplace.TokenDetail{
		TokenView: *view,
		Transfers: transfers,
	}
	if im.ens != nil {
		detail.OwnerName = im.ens.DisplayName(c, listing.Owner)
		detail.SellerName = im.ens.DisplayName(c, listing.Seller)
		detail.CreatorName = im.ens.DisplayName(c, listing.Creator)
	}
	return detail, nil
}

func toTokenViews(views []marketplace.View) []marketplace.TokenView {
	out := make([]marketplace.TokenView, 0, len(views))
	for _, v := range views {
		out = append(out, v.(marketplace.TokenView))
	}
	return out
}

// joinTokenViews resolves metadata for each listing with a bounded
// fan-out, preserving input order. A token whose tokenURI read fails is
// dropped; a metadata failure degrades to fallback display values.
func (im *marketUseCase) joinTokenViews(c ctx.Ctx, listings []marketplace.TokenListing) []marketplace.View {
	if len(listings) == 0 {
		return []marketplace.View{}
	}
	type indexed struct {
		idx  int
		view *marketplace.TokenView
	}
	b := goroutines.NewBatch(im.workers, goroutines.WithBatchSize(len(listings)))
	defer b.Close()
	for i := 0; i < len(listings); i++ {
		idx := i
		b.Queue(func() (interface{}, error) {
			return indexed{idx, im.joinTokenView(c, listings[idx])}, nil
		})
	}
	b.QueueComplete()

	slots := make([]*marketplace.TokenView, len(listings))
	for ret := range b.Results() {
		if ret.Error() != nil {
			c.WithField("err", ret.Error()).Error("join token view error result")
			continue
		}
		r := ret.Value().(indexed)
		slots[r.idx] = r.view
	}
	views := make([]marketplace.View, 0, len(listings))
	for _, v := range slots {
		if v != nil {
			views = append(views, *v)
		}
	}
	return views
}

func (im *marketUseCase) joinAuctionViews(c ctx.Ctx, auctions []marketplace.AuctionListing) []marketplace.View {
	if len(auctions) == 0 {
		return []marketplace.View{}
	}
	type indexed struct {
		idx  int
		view *marketplace.AuctionView
	}
	b := goroutines.NewBatch(im.workers, goroutines.WithBatchSize(len(auctions)))
	defer b.Close()
	for i := 0; i < len(auctions); i++ {
		idx := i
		b.Queue(func() (interface{}, error) {
			return indexed{idx, im.joinAuctionView(c, auctions[idx])}, nil
		})
	}
	b.QueueComplete()

	slots := make([]*marketplace.AuctionView, len(auctions))
	for ret := range b.Results() {
		if ret.Error() != nil {
			c.WithField("err", ret.Error()).Error("join auction view error result")
			continue
		}
		r := ret.Value().(indexed)
		slots[r.idx] = r.view
	}
	views := make([]marketplace.View, 0, len(auctions))
	for _, v := range slots {
		if v != nil {
			views = append(views, *v)
		}
	}
	return views
}

// joinTokenView returns nil when the token cannot be identified at all
// (tokenURI unreadable); metadata problems never drop the token.
func (im *marketUseCase) joinTokenView(c ctx.Ctx, listing marketplace.TokenListing) *marketplace.TokenView {
	meta := im.fetchMetadata(c, listing.TokenId)
	if meta == nil {
		return nil
	}
	displayPrice, err := marketplace.FromNativeUnit(listing.Price)
	if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"tokenId": listing.TokenId,
			"price":   listing.Price,
		}).Warn("unparsable price, keeping native form")
		displayPrice = listing.Price
	}
	return &marketplace.TokenView{
		TokenListing: listing,
		DisplayPrice: displayPrice,
		Image:        meta.Image,
		Name:         meta.Name,
		Description:  meta.Description,
	}
}

func (im *marketUseCase) joinAuctionView(c ctx.Ctx, auction marketplace.AuctionListing) *marketplace.AuctionView {
	meta := im.fetchMetadata(c, auction.TokenId)
	if meta == nil {
		return nil
	}
	displayBid, err := marketplace.FromNativeUnit(auction.HighestBid)
	if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"tokenId": auction.TokenId,
			"bid":     auction.HighestBid,
		}).Warn("unparsable bid, keeping native form")
		displayBid = auction.HighestBid
	}
	return &marketplace.AuctionView{
		AuctionListing: auction,
		DisplayBid:     displayBid,
		Image:          meta.Image,
		Name:           meta.Name,
		Description:    meta.Description,
	}
}

func (im *marketUseCase) joinHolding(c ctx.Ctx, owner domain.Address, tokenId domain.TokenId) *marketplace.TokenView {
	meta := im.fetchMetadata(c, tokenId)
	if meta == nil {
		return nil
	}
	view := &marketplace.TokenView{
		TokenListing: marketplace.TokenListing{
			TokenId: tokenId,
			Owner:   owner,
		},
		Image:       meta.Image,
		Name:        meta.Name,
		Description: meta.Description,
	}
	// held tokens are not necessarily listed
	listing, err := im.reader.GetListing(c, tokenId)
	if err == nil {
		view.TokenListing = *listing
		if displayPrice, convErr := marketplace.FromNativeUnit(listing.Price); convErr == nil {
			view.DisplayPrice = displayPrice
		}
	} else if !errors.Is(err, domain.ErrNotFound) {
		c.WithFields(log.Fields{
			"err":     err,
			"tokenId": tokenId,
		}).Warn("reader.GetListing failed, holding shown without price")
	}
	return view
}

// fetchMetadata reads tokenURI and resolves the document. nil means the
// token is unidentifiable and must be dropped.
func (im *marketUseCase) fetchMetadata(c ctx.Ctx, tokenId domain.TokenId) *domain.TokenMetadata {
	uri, err := im.reader.GetTokenURI(c, tokenId)
	if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"tokenId": tokenId,
		}).Warn("reader.GetTokenURI failed, dropping token")
		return nil
	}
	// the raw uri keeps its scheme so the fetcher can pick the
	// matching reader
	meta, err := im.metadata.GetFromURL(c, uri)
	if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"tokenId": tokenId,
			"uri":     uri,
		}).Warn("metadata fetch failed, using fallback")
		meta = domain.FallbackMetadata(tokenId)
	}
	meta.FillDefaults(tokenId)
	return meta
}
