package commands

import (
	"context"

	"storefront/internal/domain/session"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/jwt"
	"storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrLoginFailed     = errs.New("login failed")
	ErrTokenGeneration = errs.New("token generation failed")
)

type LoginResult struct {
	SessionID uuid.UUID
	Username  string
	Token     string
	// CartReset reports whether the binding rule wiped the cart because the
	// username changed.
	CartReset bool
}

type SessionCommands interface {
	// Login is a mock credential pass-through: any well-formed username is
	// accepted. The binding rule still applies — a username different from
	// the current identity's (including anonymous → user) resets the cart.
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	// Logout clears identity, cart and favorites. Stronger than a
	// user-change login, which wipes only the cart.
	Logout(ctx context.Context) error
}

type sessionCommandsImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
}

func NewSessionCommands(uow shared.UnitOfWork, jwtService *jwt.Service) SessionCommands {
	return &sessionCommandsImpl{uow: uow, jwtService: jwtService}
}

func (s *sessionCommandsImpl) Login(ctx context.Context, usernameStr, _ string) (*LoginResult, error) {
	username, err := session.NewUsername(usernameStr)
	if err != nil {
		return nil, errs.Mark(err, ErrLoginFailed)
	}

	var result *LoginResult
	err = s.uow.Within(ctx, func(_ context.Context, tx shared.Tx) error {
		usernameChanged := true
		if current := tx.Identity(); current != nil {
			usernameChanged = !current.Username().Equals(username)
		}

		identity := session.NewIdentity(username, "")
		token, terr := s.jwtService.GenerateToken(identity.SessionID(), username.Value())
		if terr != nil {
			return errs.Mark(terr, ErrTokenGeneration)
		}
		identity = session.ReconstructIdentity(identity.SessionID(), username, token)

		if usernameChanged {
			// Per-user cart isolation without per-user storage: a change of
			// owner empties the ledger. The applied coupon priced that
			// ledger, so it goes too. Favorites survive.
			tx.Cart().Clear()
			tx.ClearAppliedCoupon()
		}
		tx.SetIdentity(identity)

		result = &LoginResult{
			SessionID: identity.SessionID(),
			Username:  username.Value(),
			Token:     token,
			CartReset: usernameChanged,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *sessionCommandsImpl) Logout(ctx context.Context) error {
	return s.uow.Within(ctx, func(_ context.Context, tx shared.Tx) error {
		tx.ClearIdentity()
		tx.Cart().Clear()
		tx.Favorites().Clear()
		tx.ClearAppliedCoupon()
		return nil
	})
}
