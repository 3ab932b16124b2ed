package contract

import (
	"math/big"
	"sort"
	"time"

	"github.com/ethereum/go-ethereum"
	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/xerrors"

	baseabi "github.com/nftique/storefront/base/abi"
	bCtx "github.com/nftique/storefront/base/ctx"
	"github.com/nftique/storefront/base/log"
	"github.com/nftique/storefront/domain"
	"github.com/nftique/storefront/domain/marketplace"
	"github.com/nftique/storefront/service/chain"
)

type MarketplaceCfg struct {
	ChainService chain.Client
	Address      domain.Address
}

// Marketplace binds the storefront contract and implements
// marketplace.Reader on top of raw eth_call and eth_getLogs.
type Marketplace struct {
	chainService chain.Client
	abi          ethabi.ABI
	address      common.Address
}

func NewMarketplace(cfg *MarketplaceCfg) *Marketplace {
	return &Marketplace{
		chainService: cfg.ChainService,
		abi:          baseabi.MarketplaceABI,
		address:      common.HexToAddress(string(cfg.Address)),
	}
}

func (m *Marketplace) GetListedTokens(c bCtx.Ctx) ([]marketplace.TokenListing, error) {
	method := "getAllListedNFTs"
	unpacked, err := m.chainService.Call(c, m.address, m.abi, method)
	if err != nil {
		return nil, xerrors.Errorf("%s: %v: %w", method, err, domain.ErrChainUnavailable)
	}
	items := *ethabi.ConvertType(unpacked[0], new([]baseabi.MarketplaceListedItem)).(*[]baseabi.MarketplaceListedItem)
	listings := make([]marketplace.TokenListing, 0, len(items))
	for _, item := range items {
		listings = append(listings, toTokenListing(item))
	}
	return listings, nil
}

func (m *Marketplace) GetAuctionedTokens(c bCtx.Ctx) ([]marketplace.AuctionListing, error) {
	method := "getAuctionedNFTs"
	unpacked, err := m.chainService.Call(c, m.address, m.abi, method)
	if err != nil {
		return nil, xerrors.Errorf("%s: %v: %w", method, err, domain.ErrChainUnavailable)
	}
	items := *ethabi.ConvertType(unpacked[0], new([]baseabi.MarketplaceAuctionedItem)).(*[]baseabi.MarketplaceAuctionedItem)
	auctions := make([]marketplace.AuctionListing, 0, len(items))
	for _, item := range items {
		auctions = append(auctions, marketplace.AuctionListing{
			TokenId:       domain.TokenId(item.TokenId.String()),
			Seller:        domain.Address(item.Seller.Hex()).ToLower(),
			StartTime:     time.Unix(item.StartTime.Int64(), 0).UTC(),
			EndTime:       time.Unix(item.EndTime.Int64(), 0).UTC(),
			HighestBid:    item.HighestBid.String(),
			HighestBidder: domain.Address(item.HighestBidder.Hex()).ToLower(),
		})
	}
	return auctions, nil
}

func (m *Marketplace) GetListing(c bCtx.Ctx, tokenId domain.TokenId) (*marketplace.TokenListing, error) {
	method := "getNFTListing"
	id, err := tokenId.ToBigInt()
	if err != nil {
		return nil, err
	}
	unpacked, err := m.chainService.Call(c, m.address, m.abi, method, id)
	if err != nil {
		return nil, xerrors.Errorf("%s: %v: %w", method, err, domain.ErrChainUnavailable)
	}
	item := *ethabi.ConvertType(unpacked[0], new(baseabi.MarketplaceListedItem)).(*baseabi.MarketplaceListedItem)
	// the contract returns a zeroed tuple for unlisted ids
	if item.Seller == (common.Address{}) {
		return nil, domain.ErrNotFound
	}
	listing := toTokenListing(item)
	return &listing, nil
}

func (m *Marketplace) GetTokenURI(c bCtx.Ctx, tokenId domain.TokenId) (string, error) {
	method := "tokenURI"
	id, err := tokenId.ToBigInt()
	if err != nil {
		return "", err
	}
	unpacked, err := m.chainService.Call(c, m.address, m.abi, method, id)
	if err != nil {
		return "", xerrors.Errorf("%s: %v: %w", method, err, domain.ErrChainUnavailable)
	}
	return unpacked[0].(string), nil
}

func (m *Marketplace) GetHoldings(c bCtx.Ctx, owner domain.Address) ([]domain.TokenId, error) {
	unpacked, err := m.chainService.Call(c, m.address, m.abi, "balanceOf", common.HexToAddress(string(owner)))
	if err != nil {
		return nil, xerrors.Errorf("balanceOf: %v: %w", err, domain.ErrChainUnavailable)
	}
	balance := unpacked[0].(*big.Int).Int64()
	tokenIds := make([]domain.TokenId, 0, balance)
	for i := int64(0); i < balance; i++ {
		unpacked, err := m.chainService.Call(c, m.address, m.abi, "tokenOfOwnerByIndex", common.HexToAddress(string(owner)), big.NewInt(i))
		if err != nil {
			return nil, xerrors.Errorf("tokenOfOwnerByIndex: %v: %w", err, domain.ErrChainUnavailable)
		}
		tokenIds = append(tokenIds, domain.TokenId(unpacked[0].(*big.Int).String()))
	}
	return tokenIds, nil
}

func (m *Marketplace) GetOwner(c bCtx.Ctx, tokenId domain.TokenId) (domain.Address, error) {
	return m.getAddress(c, "ownerOf", tokenId)
}

func (m *Marketplace) GetCreator(c bCtx.Ctx, tokenId domain.TokenId) (domain.Address, error) {
	return m.getAddress(c, "creatorOf", tokenId)
}

func (m *Marketplace) getAddress(c bCtx.Ctx, method string, tokenId domain.TokenId) (domain.Address, error) {
	id, err := tokenId.ToBigInt()
	if err != nil {
		return "", err
	}
	unpacked, err := m.chainService.Call(c, m.address, m.abi, method, id)
	if err != nil {
		return "", xerrors.Errorf("%s: %v: %w", method, err, domain.ErrChainUnavailable)
	}
	return domain.Address(unpacked[0].(common.Address).Hex()).ToLower(), nil
}

func (m *Marketplace) GetTransferHistory(c bCtx.Ctx, tokenId domain.TokenId) ([]marketplace.TransferEvent, error) {
	id, err := tokenId.ToBigInt()
	if err != nil {
		return nil, err
	}
	query := ethereum.FilterQuery{
		Addresses: []common.Address{m.address},
		Topics: [][]common.Hash{
			{m.abi.Events["Transfer"].ID},
			nil,
			nil,
			{common.BigToHash(id)},
		},
	}
	logs, err := m.chainService.FilterLogs(c, query)
	if err != nil {
		return nil, xerrors.Errorf("filter transfer logs: %v: %w", err, domain.ErrChainUnavailable)
	}
	events := make([]marketplace.TransferEvent, 0, len(logs))
	for i := range logs {
		transfer, err := baseabi.ToTransferLog(&logs[i])
		if err != nil {
			c.WithFields(log.Fields{
				"err":     err,
				"txHash":  logs[i].TxHash.Hex(),
				"tokenId": tokenId,
			}).Warn("skipping undecodable transfer log")
			continue
		}
		header, err := m.chainService.HeaderByNumber(c, new(big.Int).SetUint64(logs[i].BlockNumber))
		if err != nil {
			return nil, xerrors.Errorf("header %d: %v: %w", logs[i].BlockNumber, err, domain.ErrChainUnavailable)
		}
		events = append(events, marketplace.TransferEvent{
			Timestamp:   time.Unix(int64(header.Time), 0).UTC(),
			From:        domain.Address(transfer.From.Hex()).ToLower(),
			To:          domain.Address(transfer.To.Hex()).ToLower(),
			TxHash:      domain.TxHash(logs[i].TxHash.Hex()),
			BlockNumber: domain.BlockNumber(logs[i].BlockNumber),
		})
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp.Before(events[j].Timestamp)
	})
	return events, nil
}

func toTokenListing(item baseabi.MarketplaceListedItem) marketplace.TokenListing {
	return marketplace.TokenListing{
		TokenId:             domain.TokenId(item.TokenId.String()),
		Seller:              domain.Address(item.Seller.Hex()).ToLower(),
		Owner:               domain.Address(item.Owner.Hex()).ToLower(),
		Creator:             domain.Address(item.Creator.Hex()).ToLower(),
		Price:               item.Price.String(),
		SalesCount:          item.SalesCount.Int64(),
		LastTransactionTime: time.Unix(item.LastTransactionTime.Int64(), 0).UTC(),
	}
}
