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
	wallet domain.WalletUseCase
}

func New(e *echo.Echo, wallet domain.WalletUseCase, session *sessionMiddleware.SessionMiddleware) {
	h := &handler{wallet}

	g := e.Group("/wallet")
	g.POST("/connect", h.connect)
	g.GET("/session", h.getSession, session.Auth())
	g.DELETE("/session", h.disconnect, session.Auth())
}

func (h *handler) connect(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	session, token, err := h.wallet.Connect(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("wallet.Connect failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	res := struct {
		Session *domain.WalletSession `json:"session"`
		Token   string                `json:"token"`
	}{session, token}
	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}

func (h *handler) getSession(c echo.Context) error {
	session := c.Get("session").(*domain.WalletSession)
	return delivery.MakeJsonResp(c, http.StatusOK, session)
}

func (h *handler) disconnect(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	token := c.Get("sessionToken").(string)

	if err := h.wallet.Disconnect(ctx, token); err != nil {
		ctx.WithField("err", err).Error("wallet.Disconnect failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "disconnected")
}
