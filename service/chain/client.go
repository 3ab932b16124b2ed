package chain

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	bCtx "github.com/nftique/storefront/base/ctx"
	"github.com/nftique/storefront/base/log"
)

type ClientCfg struct {
	RpcUrl string
	// MaxInflight caps concurrent rpc calls; zero disables throttling
	MaxInflight int
}

// Client is the narrow surface the contract bindings need from an rpc
// endpoint. Calls share one dialed connection and an optional in-flight
// cap so aggregation fan-out cannot stampede the node.
type Client interface {
	Call(c bCtx.Ctx, addr common.Address, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error)
	FilterLogs(c bCtx.Ctx, q ethereum.FilterQuery) ([]types.Log, error)
	HeaderByNumber(c bCtx.Ctx, number *big.Int) (*types.Header, error)
	TransactionReceipt(c bCtx.Ctx, txHash common.Hash) (*types.Receipt, error)
}

type clientImpl struct {
	client *ethclient.Client
	tokens chan struct{}
}

func NewClient(c bCtx.Ctx, cfg *ClientCfg) (Client, error) {
	client, err := ethclient.DialContext(c, cfg.RpcUrl)
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"url": cfg.RpcUrl,
		}).Error("failed to dial rpc")
		return nil, err
	}
	var tokens chan struct{}
	if cfg.MaxInflight > 0 {
		tokens = make(chan struct{}, cfg.MaxInflight)
		for i := 0; i < cfg.MaxInflight; i++ {
			tokens <- struct{}{}
		}
	}
	return &clientImpl{
		client: client,
		tokens: tokens,
	}, nil
}

func (c *clientImpl) Call(ctx bCtx.Ctx, addr common.Address, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error) {
	if !c.acquire(ctx) {
		return nil, ctx.Err()
	}
	defer c.release()

	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}
	msg := ethereum.CallMsg{
		To:   &addr,
		Data: data,
	}
	res, err := c.client.CallContract(ctx, msg, nil)
	if err != nil {
		ctx.WithField("err", err).Error("client.CallContract failed")
		return nil, err
	}
	unpacked, err := _abi.Unpack(method, res)
	if err != nil {
		ctx.WithField("err", err).Error("abi.Unpack failed")
		return nil, err
	}
	return unpacked, nil
}

func (c *clientImpl) FilterLogs(ctx bCtx.Ctx, q ethereum.FilterQuery) ([]types.Log, error) {
	if !c.acquire(ctx) {
		return nil, ctx.Err()
	}
	defer c.release()
	return c.client.FilterLogs(ctx, q)
}

func (c *clientImpl) HeaderByNumber(ctx bCtx.Ctx, number *big.Int) (*types.Header, error) {
	if !c.acquire(ctx) {
		return nil, ctx.Err()
	}
	defer c.release()
	return c.client.HeaderByNumber(ctx, number)
}

func (c *clientImpl) TransactionReceipt(ctx bCtx.Ctx, txHash common.Hash) (*types.Receipt, error) {
	if !c.acquire(ctx) {
		return nil, ctx.Err()
	}
	defer c.release()
	return c.client.TransactionReceipt(ctx, txHash)
}

func (c *clientImpl) acquire(ctx context.Context) bool {
	if c.tokens == nil {
		return true
	}
	select {
	case <-ctx.Done():
		return false
	case <-c.tokens:
		return true
	}
}

func (c *clientImpl) release() {
	if c.tokens != nil {
		c.tokens <- struct{}{}
	}
}
