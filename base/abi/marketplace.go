package abi

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"golang.org/x/xerrors"
)

var MarketplaceABI abi.ABI

var marketplaceABI = `[{"type":"function","name":"getAllListedNFTs","constant":true,"stateMutability":"view","payable":false,"inputs":[],"outputs":[{"type":"tuple[]","components":[{"type":"uint256","name":"tokenId"},{"type":"address","name":"seller"},{"type":"address","name":"owner"},{"type":"address","name":"creator"},{"type":"uint256","name":"price"},{"type":"uint256","name":"salesCount"},{"type":"uint256","name":"lastTransactionTime"}]}]},{"type":"function","name":"getAuctionedNFTs","constant":true,"stateMutability":"view","payable":false,"inputs":[],"outputs":[{"type":"tuple[]","components":[{"type":"uint256","name":"tokenId"},{"type":"address","name":"seller"},{"type":"uint256","name":"startTime"},{"type":"uint256","name":"endTime"},{"type":"uint256","name":"highestBid"},{"type":"address","name":"highestBidder"}]}]},{"type":"function","name":"getNFTListing","constant":true,"stateMutability":"view","payable":false,"inputs":[{"type":"uint256","name":"tokenId"}],"outputs":[{"type":"tuple","components":[{"type":"uint256","name":"tokenId"},{"type":"address","name":"seller"},{"type":"address","name":"owner"},{"type":"address","name":"creator"},{"type":"uint256","name":"price"},{"type":"uint256","name":"salesCount"},{"type":"uint256","name":"lastTransactionTime"}]}]},{"type":"function","name":"tokenURI","constant":true,"stateMutability":"view","payable":false,"inputs":[{"type":"uint256","name":"tokenId"}],"outputs":[{"type":"string"}]},{"type":"function","name":"balanceOf","constant":true,"stateMutability":"view","payable":false,"inputs":[{"type":"address","name":"owner"}],"outputs":[{"type":"uint256"}]},{"type":"function","name":"tokenOfOwnerByIndex","constant":true,"stateMutability":"view","payable":false,"inputs":[{"type":"address","name":"owner"},{"type":"uint256","name":"index"}],"outputs":[{"type":"uint256"}]},{"type":"function","name":"ownerOf","constant":true,"stateMutability":"view","payable":false,"inputs":[{"type":"uint256","name":"tokenId"}],"outputs":[{"type":"address"}]},{"type":"function","name":"creatorOf","constant":true,"stateMutability":"view","payable":false,"inputs":[{"type":"uint256","name":"tokenId"}],"outputs":[{"type":"address"}]},{"type":"function","name":"buyNFT","constant":false,"stateMutability":"payable","payable":true,"inputs":[{"type":"uint256","name":"tokenId"}],"outputs":[]},{"type":"function","name":"placeBid","constant":false,"stateMutability":"payable","payable":true,"inputs":[{"type":"uint256","name":"tokenId"}],"outputs":[]},{"type":"event","anonymous":false,"name":"Transfer","inputs":[{"type":"address","name":"from","indexed":true},{"type":"address","name":"to","indexed":true},{"type":"uint256","name":"tokenId","indexed":true}]}]`

func init() {
	_abi, err := abi.JSON(strings.NewReader(marketplaceABI))
	if err != nil {
		panic("Failed to parse marketplace abi")
	}
	MarketplaceABI = _abi
}

// MarketplaceListedItem mirrors the listing tuple returned by
// getAllListedNFTs and getNFTListing.
type MarketplaceListedItem struct {
	TokenId             *big.Int
	Seller              common.Address
	Owner               common.Address
	Creator             common.Address
	Price               *big.Int
	SalesCount          *big.Int
	LastTransactionTime *big.Int
}

// MarketplaceAuctionedItem mirrors the auction tuple returned by
// getAuctionedNFTs.
type MarketplaceAuctionedItem struct {
	TokenId       *big.Int
	Seller        common.Address
	StartTime     *big.Int
	EndTime       *big.Int
	HighestBid    *big.Int
	HighestBidder common.Address
}

type TransferLog struct {
	From    common.Address // indexed
	To      common.Address // indexed
	TokenId *big.Int       // indexed
}

// ToTransferLog decodes an ERC-721 style Transfer log. All three fields
// are indexed, so everything lives in the topics.
func ToTransferLog(log *types.Log) (*TransferLog, error) {
	if len(log.Topics) < 4 {
		return nil, xerrors.Errorf("transfer log has %d topics, want 4", len(log.Topics))
	}
	return &TransferLog{
		From:    common.BytesToAddress(log.Topics[1].Bytes()),
		To:      common.BytesToAddress(log.Topics[2].Bytes()),
		TokenId: new(big.Int).SetBytes(log.Topics[3].Bytes()),
	}, nil
}
