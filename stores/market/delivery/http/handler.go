package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nftique/storefront/base/ctx"
	"github.com/nftique/storefront/base/delivery"
	"github.com/nftique/storefront/domain"
	"github.com/nftique/storefront/domain/marketplace"
	"github.com/nftique/storefront/middleware"
)

type handler struct {
	market marketplace.UseCase
}

func New(e *echo.Echo, market marketplace.UseCase) {
	h := &handler{market}

	g := e.Group("/marketplace")
	g.GET("", h.getMarketplace)
	g.GET("/new-drops", h.getNewDrops)

	e.GET("/auctions", h.getAuctions)

	e.GET("/account/:address/holdings", h.getHoldings, middleware.IsValidAddress("address"))

	t := e.Group("/token/:tokenId")
	t.GET("", h.getTokenDetail)
	t.GET("/history", h.getTransferHistory)
	t.GET("/price-history", h.getPriceHistory)
}

// getMarketplace reloads the snapshot and returns it filtered by the
// optional q param. When the chain is down but an earlier snapshot
// exists, the stale snapshot is served instead of an error.
func (h *handler) getMarketplace(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	query := c.QueryParam("q")

	if err := h.market.RefreshMarketplace(ctx); err != nil {
		items := h.market.MarketplaceItems(ctx, query)
		if len(items) == 0 {
			return delivery.MakeJsonResp(c, http.StatusServiceUnavailable, err)
		}
		ctx.WithField("err", err).Warn("serving stale marketplace snapshot")
		return delivery.MakeJsonResp(c, http.StatusOK, items)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, h.market.MarketplaceItems(ctx, query))
}

func (h *handler) getNewDrops(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	return delivery.MakeJsonResp(c, http.StatusOK, h.market.NewDrops(ctx))
}

func (h *handler) getAuctions(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	query := c.QueryParam("q")

	if err := h.market.RefreshAuctions(ctx); err != nil {
		items := h.market.AuctionItems(ctx, query)
		if len(items) == 0 {
			return delivery.MakeJsonResp(c, http.StatusServiceUnavailable, err)
		}
		ctx.WithField("err", err).Warn("serving stale auction snapshot")
		return delivery.MakeJsonResp(c, http.StatusOK, items)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, h.market.AuctionItems(ctx, query))
}

func (h *handler) getHoldings(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := domain.Address(c.Param("address")).ToLower()

	views, err := h.market.Holdings(ctx, address)
	if err != nil {
		ctx.WithField("err", err).Error("market.Holdings failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, views)
}

func (h *handler) getTokenDetail(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	tokenId := domain.TokenId(c.Param("tokenId"))

	detail, err := h.market.TokenDetail(ctx, tokenId)
	if err != nil {
		ctx.WithField("err", err).Error("market.TokenDetail failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, detail)
}

func (h *handler) getTransferHistory(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	tokenId := domain.TokenId(c.Param("tokenId"))

	detail, err := h.market.TokenDetail(ctx, tokenId)
	if err != nil {
		ctx.WithField("err", err).Error("market.TokenDetail failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, detail.Transfers)
}

func (h *handler) getPriceHistory(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	tokenId := domain.TokenId(c.Param("tokenId"))

	points, err := h.market.PriceHistory(ctx, tokenId)
	if err != nil {
		ctx.WithField("err", err).Error("market.PriceHistory failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, points)
}
