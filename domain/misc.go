package domain

import (
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/xerrors"
)

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

// Short renders the 0x1234...abcd display form
func (a Address) Short() string {
	s := string(a)
	if len(s) <= 10 {
		return s
	}
	return s[:6] + "..." + s[len(s)-4:]
}

// TokenId is string-encoded to avoid precision loss on ids beyond 2^53
type TokenId string

func (i TokenId) String() string {
	return string(i)
}

// ToBigInt parses the decimal token id
func (i TokenId) ToBigInt() (*big.Int, error) {
	id, ok := new(big.Int).SetString(i.String(), 10)
	if !ok {
		return nil, xerrors.Errorf("invalid token id %s: %w", i, ErrInvalidNumberFormat)
	}
	return id, nil
}

func (i TokenId) ToHexString() (string, error) {
	id, err := i.ToBigInt()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%064x", id), nil
}

type BlockNumber uint64

type TxHash string
