package ens

import (
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	goens "github.com/wealdtech/go-ens/v3"

	"github.com/nftique/storefront/base/ctx"
	"github.com/nftique/storefront/base/log"
	"github.com/nftique/storefront/base/ptr"
	"github.com/nftique/storefront/domain"
	"github.com/nftique/storefront/service/cache"
	"github.com/nftique/storefront/service/cache/provider/primitive"
)

type impl struct {
	client *ethclient.Client
	cache  cache.Service
}

func New(rpc string) ENS {
	client, err := ethclient.Dial(rpc)
	if err != nil {
		panic(err)
	}
	return &impl{
		client,
		cache.New(cache.ServiceConfig{
			Ttl:   time.Hour,
			Pfx:   "ensPfx",
			Cache: primitive.NewPrimitive("ens", 64),
		}),
	}
}

func (im *impl) ReverseResolve(ctx ctx.Ctx, address domain.Address) (string, error) {
	res := ""
	key := fmt.Sprintf("reverse-resolve:%s", address.ToLowerStr())
	err := im.cache.GetByFunc(ctx, key, &res, func() (interface{}, error) {
		name, err := goens.ReverseResolve(im.client, common.HexToAddress(string(address)))
		if fmt.Sprint(err) == "not a resolver" {
			return ptr.String(""), nil
		}
		if err != nil {
			ctx.WithFields(log.Fields{
				"err": err,
			}).Error("failed to goens.ReverseResolve")
			return nil, err
		}
		return &name, nil
	})

	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("failed to cache.GetByFunc")
		return "", err
	}

	return res, nil
}

// DisplayName prefers the reverse record and falls back to the short
// address form when the record is missing or resolution fails.
func (im *impl) DisplayName(ctx ctx.Ctx, address domain.Address) string {
	name, err := im.ReverseResolve(ctx, address)
	if err != nil || len(name) == 0 {
		return address.Short()
	}
	return name
}
