package walletrpc

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
	"golang.org/x/xerrors"

	bCtx "github.com/nftique/storefront/base/ctx"
	"github.com/nftique/storefront/base/log"
	"github.com/nftique/storefront/domain"
)

// provider talks to an external wallet over json-rpc, the same surface
// an injected browser wallet exposes. The endpoint signs with its own
// keys; this process never sees them.
type provider struct {
	client *rpc.Client
}

func NewProvider(c bCtx.Ctx, url string) (domain.WalletProvider, error) {
	client, err := rpc.DialContext(c, url)
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"url": url,
		}).Error("failed to dial wallet rpc")
		return nil, xerrors.Errorf("dial wallet rpc: %v: %w", err, domain.ErrWalletUnavailable)
	}
	return &provider{client}, nil
}

func (p *provider) RequestAccounts(c bCtx.Ctx) ([]domain.Address, error) {
	var accounts []string
	if err := p.client.CallContext(c, &accounts, "eth_requestAccounts"); err != nil {
		c.WithField("err", err).Error("eth_requestAccounts failed")
		return nil, xerrors.Errorf("eth_requestAccounts: %v: %w", err, domain.ErrWalletUnavailable)
	}
	addresses := make([]domain.Address, 0, len(accounts))
	for _, account := range accounts {
		addresses = append(addresses, domain.Address(account).ToLower())
	}
	return addresses, nil
}

func (p *provider) SendTransaction(c bCtx.Ctx, from domain.Address, req domain.TxRequest) (domain.TxHash, error) {
	value := req.Value
	if value == nil {
		value = big.NewInt(0)
	}
	arg := map[string]interface{}{
		"from":  from.ToLowerStr(),
		"to":    req.To.ToLowerStr(),
		"value": hexutil.EncodeBig(value),
		"data":  hexutil.Encode(req.Data),
	}
	var txHash string
	if err := p.client.CallContext(c, &txHash, "eth_sendTransaction", arg); err != nil {
		c.WithField("err", err).Error("eth_sendTransaction failed")
		return "", xerrors.Errorf("eth_sendTransaction: %v: %w", err, domain.ErrTransactionFailed)
	}
	return domain.TxHash(txHash), nil
}
