package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nftique/storefront/base/ctx"
	"github.com/nftique/storefront/base/delivery"
	"github.com/nftique/storefront/domain"
)

type handler struct {
	preference domain.PreferenceUseCase
}

func New(e *echo.Echo, preference domain.PreferenceUseCase) {
	h := &handler{preference}

	g := e.Group("/preferences")
	g.GET("/theme", h.getTheme)
	g.PUT("/theme", h.putTheme)
}

type themeParams struct {
	DarkMode bool `json:"darkMode"`
}

func (h *handler) getTheme(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	darkMode, err := h.preference.DarkMode(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("preference.DarkMode failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, themeParams{DarkMode: darkMode})
}

func (h *handler) putTheme(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &themeParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := h.preference.SetDarkMode(ctx, p.DarkMode); err != nil {
		ctx.WithField("err", err).Error("preference.SetDarkMode failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, p)
}
