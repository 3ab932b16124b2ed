package domain

import (
	"math/big"

	"github.com/golang-jwt/jwt"

	"github.com/nftique/storefront/base/ctx"
)

// TxRequest is the transaction a wallet provider is asked to sign and
// broadcast on the user's behalf.
type TxRequest struct {
	To    Address
	Value *big.Int
	Data  []byte
}

// WalletProvider is the injected wallet capability. A nil provider is a
// first-class state: every operation on it surfaces ErrWalletUnavailable
// so the UI can prompt to install or open a wallet.
type WalletProvider interface {
	RequestAccounts(ctx.Ctx) ([]Address, error)
	SendTransaction(ctx.Ctx, Address, TxRequest) (TxHash, error)
}

// WalletSession is an in-memory connection to a wallet account. It is
// never persisted; a restart starts disconnected.
type WalletSession struct {
	Id      string  `json:"id"`
	Address Address `json:"address"`
}

// WalletClaims is the signed content of a session token. The token only
// names a session; the session itself lives in memory and dies with the
// process.
type WalletClaims struct {
	SessionId string `json:"sid"`
	Address   string `json:"address"`
	jwt.StandardClaims
}

type WalletEventKind string

const (
	WalletEventConnected    WalletEventKind = "connected"
	WalletEventDisconnected WalletEventKind = "disconnected"
)

type WalletEvent struct {
	Kind    WalletEventKind
	Session WalletSession
}

type WalletUseCase interface {
	// Connect requests accounts from the provider and opens a session,
	// returning the session and a signed session token.
	Connect(ctx.Ctx) (*WalletSession, string, error)
	// Session resolves a session token issued by Connect.
	Session(ctx.Ctx, string) (*WalletSession, error)
	Disconnect(ctx.Ctx, string) error
	// Subscribe returns a channel delivering session change events; the
	// session usecase is the single writer.
	Subscribe() <-chan WalletEvent
	// Unsubscribe drops a channel returned by Subscribe and closes it.
	Unsubscribe(<-chan WalletEvent)
}
