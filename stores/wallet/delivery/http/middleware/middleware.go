package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/nftique/storefront/base/ctx"
	"github.com/nftique/storefront/domain"
)

// SessionMiddleware guards endpoints that act on behalf of a connected
// wallet. The bearer token is the session token issued by Connect.
type SessionMiddleware struct {
	wallet domain.WalletUseCase
}

func New(wallet domain.WalletUseCase) *SessionMiddleware {
	return &SessionMiddleware{wallet: wallet}
}

func (m *SessionMiddleware) Auth() echo.MiddlewareFunc {
	return middleware.KeyAuth(m.validateSessionToken)
}

func (m *SessionMiddleware) validateSessionToken(key string, c echo.Context) (bool, error) {
	cont := c.Get("ctx").(ctx.Ctx)
	session, err := m.wallet.Session(cont, key)
	if err != nil {
		cont.WithField("err", err).Warn("session token rejected")
		return false, err
	}
	c.Set("session", session)
	c.Set("sessionToken", key)
	return true, nil
}
