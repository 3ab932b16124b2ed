package domain

import (
	"github.com/nftique/storefront/base/ctx"
)

// PreferenceKeyDarkMode is the only durable user preference
const PreferenceKeyDarkMode = "darkMode"

type PreferenceRepo interface {
	GetBool(c ctx.Ctx, name string) (bool, error)
	SetBool(c ctx.Ctx, name string, value bool) error
}

type PreferenceUseCase interface {
	DarkMode(ctx.Ctx) (bool, error)
	SetDarkMode(ctx.Ctx, bool) error
}
