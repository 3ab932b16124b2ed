package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nftique/storefront/base/ctx"
	"github.com/nftique/storefront/base/delivery"
	"github.com/nftique/storefront/domain"
	sessionMiddleware "github.com/nftique/storefront/stores/wallet/delivery/http/middleware"
)

type handler struct {
	exchange domain.ExchangeUseCase
}

func New(e *echo.Echo, exchange domain.ExchangeUseCase, session *sessionMiddleware.SessionMiddleware) {
	h := &handler{exchange}

	e.POST("/market/buy", h.buy, session.Auth())
	e.POST("/auctions/bid", h.bid, session.Auth())
}

type txParams struct {
	TokenId domain.TokenId `json:"tokenId" validate:"required"`
	Amount  string         `json:"amount" validate:"required"`
}

func (h *handler) buy(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	session := c.Get("session").(*domain.WalletSession)

	p := &txParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	txHash, err := h.exchange.Buy(ctx, session.Address, p.TokenId, p.Amount)
	if err != nil {
		ctx.WithField("err", err).Error("exchange.Buy failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, txHash)
}

func (h *handler) bid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	session := c.Get("session").(*domain.WalletSession)

	p := &txParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	txHash, err := h.exchange.Bid(ctx, session.Address, p.TokenId, p.Amount)
	if err != nil {
		ctx.WithField("err", err).Error("exchange.Bid failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, txHash)
}
