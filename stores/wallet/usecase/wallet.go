package usecase

import (
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"golang.org/x/xerrors"

	bCtx "github.com/nftique/storefront/base/ctx"
	"github.com/nftique/storefront/base/log"
	"github.com/nftique/storefront/domain"
)

const defaultSessionTtl = 24 * time.Hour

type WalletUseCaseCfg struct {
	Provider   domain.WalletProvider
	JwtSecret  string
	SessionTtl time.Duration
}

type walletUseCase struct {
	provider   domain.WalletProvider
	jwtSecret  []byte
	sessionTtl time.Duration

	mu          sync.Mutex
	sessions    map[string]domain.WalletSession
	subscribers []chan domain.WalletEvent
}

func NewWalletUseCase(cfg *WalletUseCaseCfg) domain.WalletUseCase {
	ttl := cfg.SessionTtl
	if ttl <= 0 {
		ttl = defaultSessionTtl
	}
	return &walletUseCase{
		provider:   cfg.Provider,
		jwtSecret:  []byte(cfg.JwtSecret),
		sessionTtl: ttl,
		sessions:   map[string]domain.WalletSession{},
	}
}

func (im *walletUseCase) Connect(c bCtx.Ctx) (*domain.WalletSession, string, error) {
	if im.provider == nil {
		return nil, "", domain.ErrWalletUnavailable
	}
	accounts, err := im.provider.RequestAccounts(c)
	if err != nil {
		c.WithField("err", err).Error("provider.RequestAccounts failed")
		return nil, "", err
	}
	if len(accounts) == 0 {
		return nil, "", xerrors.Errorf("provider returned no accounts: %w", domain.ErrWalletUnavailable)
	}

	session := domain.WalletSession{
		Id:      uuid.NewString(),
		Address: accounts[0].ToLower(),
	}
	claims := domain.WalletClaims{
		SessionId: session.Id,
		Address:   string(session.Address),
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(im.sessionTtl).Unix(),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(im.jwtSecret)
	if err != nil {
		c.WithField("err", err).Error("token.SignedString failed")
		return nil, "", err
	}

	im.mu.Lock()
	im.sessions[session.Id] = session
	im.mu.Unlock()

	im.publish(domain.WalletEvent{Kind: domain.WalletEventConnected, Session: session})
	c.WithFields(log.Fields{
		"address":   session.Address,
		"sessionId": session.Id,
	}).Info("wallet connected")
	return &session, token, nil
}

func (im *walletUseCase) Session(c bCtx.Ctx, token string) (*domain.WalletSession, error) {
	claims, err := im.parseToken(token)
	if err != nil {
		c.WithField("err", err).Warn("invalid session token")
		return nil, xerrors.Errorf("parse session token: %v: %w", err, domain.ErrInvalidSession)
	}

	im.mu.Lock()
	session, ok := im.sessions[claims.SessionId]
	im.mu.Unlock()
	if !ok {
		// valid token, but the process restarted or the session was closed
		return nil, domain.ErrInvalidSession
	}
	return &session, nil
}

func (im *walletUseCase) Disconnect(c bCtx.Ctx, token string) error {
	session, err := im.Session(c, token)
	if err != nil {
		return err
	}

	im.mu.Lock()
	delete(im.sessions, session.Id)
	im.mu.Unlock()

	im.publish(domain.WalletEvent{Kind: domain.WalletEventDisconnected, Session: *session})
	c.WithField("sessionId", session.Id).Info("wallet disconnected")
	return nil
}

func (im *walletUseCase) Subscribe() <-chan domain.WalletEvent {
	ch := make(chan domain.WalletEvent, 16)
	im.mu.Lock()
	im.subscribers = append(im.subscribers, ch)
	im.mu.Unlock()
	return ch
}

func (im *walletUseCase) Unsubscribe(ch <-chan domain.WalletEvent) {
	im.mu.Lock()
	defer im.mu.Unlock()
	for i, sub := range im.subscribers {
		if sub == ch {
			im.subscribers = append(im.subscribers[:i], im.subscribers[i+1:]...)
			close(sub)
			return
		}
	}
}

// publish never blocks; a subscriber that stopped draining misses
// events instead of wedging session changes.
func (im *walletUseCase) publish(event domain.WalletEvent) {
	im.mu.Lock()
	subscribers := make([]chan domain.WalletEvent, len(im.subscribers))
	copy(subscribers, im.subscribers)
	im.mu.Unlock()
	for _, ch := range subscribers {
		select {
		case ch <- event:
		default:
		}
	}
}

func (im *walletUseCase) parseToken(str string) (*domain.WalletClaims, error) {
	token, err := jwt.ParseWithClaims(str, &domain.WalletClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("Unexpected signing method: %v", token.Header["alg"])
		}
		return im.jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*domain.WalletClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, domain.ErrInvalidSession
}
