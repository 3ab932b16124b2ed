package marketplace

import (
	"time"

	"github.com/nftique/storefront/domain"
)

// TransferEvent is one entry of a token's on-chain transfer history,
// used for display only.
type TransferEvent struct {
	Timestamp   time.Time          `json:"timestamp"`
	From        domain.Address     `json:"from"`
	To          domain.Address     `json:"to"`
	TxHash      domain.TxHash      `json:"txHash"`
	BlockNumber domain.BlockNumber `json:"blockNumber"`
}
