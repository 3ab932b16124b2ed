package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	bCtx "github.com/nftique/storefront/base/ctx"
	"github.com/nftique/storefront/domain"
	"github.com/nftique/storefront/domain/mocks"
)

var mockCtx = bCtx.Background()

const account = domain.Address("0xaae7ac476b117bccafe2f05f582906be44bc8ff1")

func newTestWallet(provider domain.WalletProvider) domain.WalletUseCase {
	return NewWalletUseCase(&WalletUseCaseCfg{
		Provider:   provider,
		JwtSecret:  "test-secret",
		SessionTtl: time.Hour,
	})
}

func TestConnect_thenSession(t *testing.T) {
	req := require.New(t)
	provider := &mocks.WalletProvider{}
	provider.On("RequestAccounts", mock.Anything).Return([]domain.Address{account}, nil)

	u := newTestWallet(provider)
	session, token, err := u.Connect(mockCtx)
	req.NoError(err)
	req.NotEmpty(session.Id)
	req.Equal(account, session.Address)
	req.NotEmpty(token)

	resolved, err := u.Session(mockCtx, token)
	req.NoError(err)
	req.Equal(*session, *resolved)
}

func TestConnect_noProvider(t *testing.T) {
	req := require.New(t)
	u := newTestWallet(nil)
	_, _, err := u.Connect(mockCtx)
	req.ErrorIs(err, domain.ErrWalletUnavailable)
}

func TestConnect_noAccounts(t *testing.T) {
	req := require.New(t)
	provider := &mocks.WalletProvider{}
	provider.On("RequestAccounts", mock.Anything).Return([]domain.Address{}, nil)

	u := newTestWallet(provider)
	_, _, err := u.Connect(mockCtx)
	req.ErrorIs(err, domain.ErrWalletUnavailable)
}

func TestSession_garbageToken(t *testing.T) {
	req := require.New(t)
	u := newTestWallet(&mocks.WalletProvider{})
	_, err := u.Session(mockCtx, "not-a-jwt")
	req.ErrorIs(err, domain.ErrInvalidSession)
}

func TestSession_tokenFromAnotherProcess(t *testing.T) {
	req := require.New(t)
	provider := &mocks.WalletProvider{}
	provider.On("RequestAccounts", mock.Anything).Return([]domain.Address{account}, nil)

	// a token signed by a previous instance verifies but has no session
	old := newTestWallet(provider)
	_, token, err := old.Connect(mockCtx)
	req.NoError(err)

	fresh := newTestWallet(provider)
	_, err = fresh.Session(mockCtx, token)
	req.ErrorIs(err, domain.ErrInvalidSession)
}

func TestDisconnect(t *testing.T) {
	req := require.New(t)
	provider := &mocks.WalletProvider{}
	provider.On("RequestAccounts", mock.Anything).Return([]domain.Address{account}, nil)

	u := newTestWallet(provider)
	_, token, err := u.Connect(mockCtx)
	req.NoError(err)

	req.NoError(u.Disconnect(mockCtx, token))
	_, err = u.Session(mockCtx, token)
	req.ErrorIs(err, domain.ErrInvalidSession)

	req.ErrorIs(u.Disconnect(mockCtx, token), domain.ErrInvalidSession)
}

func TestSubscribe_events(t *testing.T) {
	req := require.New(t)
	provider := &mocks.WalletProvider{}
	provider.On("RequestAccounts", mock.Anything).Return([]domain.Address{account}, nil)

	u := newTestWallet(provider)
	events := u.Subscribe()

	session, token, err := u.Connect(mockCtx)
	req.NoError(err)
	req.NoError(u.Disconnect(mockCtx, token))

	connected := <-events
	req.Equal(domain.WalletEventConnected, connected.Kind)
	req.Equal(*session, connected.Session)

	disconnected := <-events
	req.Equal(domain.WalletEventDisconnected, disconnected.Kind)
	req.Equal(*session, disconnected.Session)
}

func TestUnsubscribe(t *testing.T) {
	req := require.New(t)
	provider := &mocks.WalletProvider{}
	provider.On("RequestAccounts", mock.Anything).Return([]domain.Address{account}, nil)

	u := newTestWallet(provider)
	gone := u.Subscribe()
	kept := u.Subscribe()
	u.Unsubscribe(gone)

	_, _, err := u.Connect(mockCtx)
	req.NoError(err)

	// the dropped channel is closed without receiving the event
	event, ok := <-gone
	req.False(ok)
	req.Zero(event)

	connected := <-kept
	req.Equal(domain.WalletEventConnected, connected.Kind)

	// unsubscribing twice is a no-op
	u.Unsubscribe(gone)
}
