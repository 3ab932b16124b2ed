package marketplace

import (
	"math/big"

	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"

	"github.com/nftique/storefront/domain"
)

// nativeDecimals is the shift between display units and the chain's
// smallest native unit.
const nativeDecimals = 18

// ToNativeUnit converts a display-unit amount like "1.5" into an exact
// native-unit integer. Amounts with more than 18 fractional digits or
// negative amounts are rejected.
func ToNativeUnit(display string) (*big.Int, error) {
	d, err := decimal.NewFromString(display)
	if err != nil {
		return nil, xerrors.Errorf("parse amount %q: %v: %w", display, err, domain.ErrInvalidNumberFormat)
	}
	if d.IsNegative() {
		return nil, xerrors.Errorf("negative amount %q: %w", display, domain.ErrInvalidNumberFormat)
	}
	shifted := d.Shift(nativeDecimals)
	if !shifted.IsInteger() {
		return nil, xerrors.Errorf("amount %q has more than %d decimals: %w", display, nativeDecimals, domain.ErrInvalidNumberFormat)
	}
	return shifted.BigInt(), nil
}

// FromNativeUnit converts a native-unit integer string into display
// units with trailing zeros trimmed.
func FromNativeUnit(native string) (string, error) {
	d, err := decimal.NewFromString(native)
	if err != nil {
		return "", xerrors.Errorf("parse native amount %q: %v: %w", native, err, domain.ErrInvalidNumberFormat)
	}
	if !d.IsInteger() {
		return "", xerrors.Errorf("native amount %q is not an integer: %w", native, domain.ErrInvalidNumberFormat)
	}
	return d.Shift(-nativeDecimals).String(), nil
}
