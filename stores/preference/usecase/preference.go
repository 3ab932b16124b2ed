package usecase

import (
	"errors"

	bCtx "github.com/nftique/storefront/base/ctx"
	"github.com/nftique/storefront/domain"
)

type preferenceUseCase struct {
	repo domain.PreferenceRepo
}

func NewPreferenceUseCase(repo domain.PreferenceRepo) domain.PreferenceUseCase {
	return &preferenceUseCase{repo: repo}
}

// DarkMode defaults to off when never set.
func (u *preferenceUseCase) DarkMode(c bCtx.Ctx) (bool, error) {
	v, err := u.repo.GetBool(c, domain.PreferenceKeyDarkMode)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		c.WithField("err", err).Error("repo.GetBool failed")
		return false, err
	}
	return v, nil
}

func (u *preferenceUseCase) SetDarkMode(c bCtx.Ctx, enabled bool) error {
	if err := u.repo.SetBool(c, domain.PreferenceKeyDarkMode, enabled); err != nil {
		c.WithField("err", err).Error("repo.SetBool failed")
		return err
	}
	return nil
}
