package domain

import "errors"

var (
	// ErrChainUnavailable will throw when reading contract state fails
	ErrChainUnavailable = errors.New("chain unavailable")
	// ErrMetadataUnavailable will throw when an off-chain metadata fetch or parse fails;
	// it is absorbed during aggregation and never surfaces to the user
	ErrMetadataUnavailable = errors.New("metadata unavailable")
	// ErrTransactionFailed will throw when the wallet rejects, the contract reverts,
	// or the network rejects a submission
	ErrTransactionFailed = errors.New("transaction failed")
	// ErrWalletUnavailable will throw when no wallet provider capability is present
	ErrWalletUnavailable = errors.New("wallet unavailable")

	// ErrNotFound will throw if the requested item does not exist
	ErrNotFound = errors.New("your requested item is not found")
	// ErrBadParamInput will throw if the given request body or params are not valid
	ErrBadParamInput = errors.New("given param is not valid")

	ErrUnsupportedScheme   = errors.New("unsupported scheme")
	ErrInvalidNumberFormat = errors.New("invalid number format")
	ErrInvalidAddress      = errors.New("invalid address")
	ErrInvalidSession      = errors.New("invalid session")
)
