package usecase

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"golang.org/x/xerrors"

	baseabi "github.com/nftique/storefront/base/abi"
	"github.com/nftique/storefront/base/backoff"
	bCtx "github.com/nftique/storefront/base/ctx"
	"github.com/nftique/storefront/base/log"
	"github.com/nftique/storefront/domain"
	"github.com/nftique/storefront/domain/marketplace"
	"github.com/nftique/storefront/service/chain"
)

const (
	defaultPollInterval = 2 * time.Second
	defaultPollTimeout  = 2 * time.Minute
)

type ExchangeUseCaseCfg struct {
	ChainService chain.Client
	Provider     domain.WalletProvider
	Market       marketplace.UseCase
	Contract     domain.Address
	PollInterval time.Duration
	PollTimeout  time.Duration
}

type exchangeUseCase struct {
	chainService chain.Client
	provider     domain.WalletProvider
	market       marketplace.UseCase
	contract     domain.Address
	pollInterval time.Duration
	pollTimeout  time.Duration
}

func NewExchangeUseCase(cfg *ExchangeUseCaseCfg) domain.ExchangeUseCase {
	pollInterval := cfg.PollInterval
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}
	pollTimeout := cfg.PollTimeout
	if pollTimeout <= 0 {
		pollTimeout = defaultPollTimeout
	}
	return &exchangeUseCase{
		chainService: cfg.ChainService,
		provider:     cfg.Provider,
		market:       cfg.Market,
		contract:     cfg.Contract,
		pollInterval: pollInterval,
		pollTimeout:  pollTimeout,
	}
}

func (u *exchangeUseCase) Buy(c bCtx.Ctx, from domain.Address, tokenId domain.TokenId, price string) (domain.TxHash, error) {
	txHash, err := u.submit(c, from, tokenId, price, "buyNFT")
	if err != nil {
		return "", err
	}
	// the snapshot is stale the moment the sale lands
	if refreshErr := u.market.RefreshMarketplace(c); refreshErr != nil {
		c.WithField("err", refreshErr).Warn("post-buy marketplace refresh failed")
	}
	return txHash, nil
}

func (u *exchangeUseCase) Bid(c bCtx.Ctx, from domain.Address, tokenId domain.TokenId, amount string) (domain.TxHash, error) {
	txHash, err := u.submit(c, from, tokenId, amount, "placeBid")
	if err != nil {
		return "", err
	}
	if refreshErr := u.market.RefreshAuctions(c); refreshErr != nil {
		c.WithField("err", refreshErr).Warn("post-bid auction refresh failed")
	}
	return txHash, nil
}

func (u *exchangeUseCase) submit(c bCtx.Ctx, from domain.Address, tokenId domain.TokenId, amount, method string) (domain.TxHash, error) {
	if u.provider == nil {
		return "", domain.ErrWalletUnavailable
	}
	id, err := tokenId.ToBigInt()
	if err != nil {
		return "", err
	}
	value, err := marketplace.ToNativeUnit(amount)
	if err != nil {
		return "", err
	}
	data, err := baseabi.MarketplaceABI.Pack(method, id)
	if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"method": method,
		}).Error("abi.Pack failed")
		return "", xerrors.Errorf("pack %s: %v: %w", method, err, domain.ErrTransactionFailed)
	}
	txHash, err := u.provider.SendTransaction(c, from, domain.TxRequest{
		To:    u.contract,
		Value: value,
		Data:  data,
	})
	if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"method":  method,
			"tokenId": tokenId,
		}).Error("provider.SendTransaction failed")
		return "", err
	}
	if err := u.waitMined(c, txHash); err != nil {
		return "", err
	}
	return txHash, nil
}

// waitMined polls for the receipt until the transaction lands or the
// poll window closes. A reverted receipt is a failure.
func (u *exchangeUseCase) waitMined(c bCtx.Ctx, txHash domain.TxHash) error {
	ctx, cancel := bCtx.WithTimeout(c, u.pollTimeout)
	defer cancel()
	b := backoff.NewConstant(u.pollInterval)
	hash := common.HexToHash(string(txHash))
	for {
		receipt, err := u.chainService.TransactionReceipt(ctx, hash)
		if err == nil {
			if receipt.Status != types.ReceiptStatusSuccessful {
				c.WithFields(log.Fields{
					"txHash": txHash,
					"block":  receipt.BlockNumber,
				}).Error("transaction reverted")
				return xerrors.Errorf("tx %s reverted: %w", txHash, domain.ErrTransactionFailed)
			}
			return nil
		}
		if backoffErr := b.Backoff(ctx); backoffErr != nil || ctx.Err() != nil {
			c.WithFields(log.Fields{
				"err":    err,
				"txHash": txHash,
			}).Error("gave up waiting for receipt")
			return xerrors.Errorf("tx %s not mined in time: %w", txHash, domain.ErrTransactionFailed)
		}
	}
}
