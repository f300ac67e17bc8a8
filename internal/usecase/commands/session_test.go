//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/infra/coupons"
	"storefront/internal/infra/state"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/jwt"
	"storefront/internal/usecase/commands"
	"storefront/tests/common/builder"

	"github.com/stretchr/testify/suite"
)

// The session suite runs against the real state container so the binding
// rules are exercised end to end rather than against mocks.
type SessionCommandsTestSuite struct {
	suite.Suite
	container *state.Container
	session   commands.SessionCommands
	cart      commands.CartCommands
	favorites commands.FavoriteCommands
	coupons   commands.CouponCommands
}

func (s *SessionCommandsTestSuite) SetupTest() {
	s.resetState()
}

// resetState rebuilds the container; subtests call it directly since suite
// setup only runs once per test method.
func (s *SessionCommandsTestSuite) resetState() {
	s.container = state.NewContainer()
	jwtService := jwt.NewService("test-secret", time.Hour, clock.NewRealClock())
	catalog, err := coupons.NewCatalog()
	s.Require().NoError(err)

	s.session = commands.NewSessionCommands(s.container, jwtService)
	s.cart = commands.NewCartCommands(s.container)
	s.favorites = commands.NewFavoriteCommands(s.container)
	s.coupons = commands.NewCouponCommands(s.container, catalog)
}

func TestSessionCommandsSuite(t *testing.T) {
	suite.Run(t, new(SessionCommandsTestSuite))
}

func (s *SessionCommandsTestSuite) TestLogin() {
	ctx := context.Background()

	s.resetState()
	s.Run("success: issues a token and session id", func() {
		result, err := s.session.Login(ctx, "ramesh", "password")
		s.Require().NoError(err)

		s.Equal("ramesh", result.Username)
		s.NotEmpty(result.Token)
		s.NotEmpty(result.SessionID)

		snap, err := s.container.Snapshot(ctx)
		s.Require().NoError(err)
		s.Require().NotNil(snap.Auth)
		s.Equal("ramesh", snap.Auth.Username)
		s.True(snap.Auth.IsAuthenticated)
	})

	s.resetState()
	s.Run("anonymous to user counts as an owner change", func() {
		s.Require().NoError(s.cart.AddItem(ctx, builder.NewProductBuilder().BuildSnapshot()))

		result, err := s.session.Login(ctx, "ramesh", "password")
		s.Require().NoError(err)
		s.True(result.CartReset)

		snap, err := s.container.Snapshot(ctx)
		s.Require().NoError(err)
		s.Empty(snap.Cart.Items)
	})

	s.resetState()
	s.Run("same username keeps the cart", func() {
		_, err := s.session.Login(ctx, "ramesh", "password")
		s.Require().NoError(err)
		s.Require().NoError(s.cart.AddItem(ctx, builder.NewProductBuilder().BuildSnapshot()))

		result, err := s.session.Login(ctx, "ramesh", "other-password")
		s.Require().NoError(err)
		s.False(result.CartReset)

		snap, err := s.container.Snapshot(ctx)
		s.Require().NoError(err)
		s.Len(snap.Cart.Items, 1)
	})

	s.resetState()
	s.Run("username is trimmed before comparison", func() {
		_, err := s.session.Login(ctx, "ramesh", "password")
		s.Require().NoError(err)
		s.Require().NoError(s.cart.AddItem(ctx, builder.NewProductBuilder().BuildSnapshot()))

		result, err := s.session.Login(ctx, "  ramesh  ", "password")
		s.Require().NoError(err)
		s.False(result.CartReset)
	})

	s.resetState()
	s.Run("different username resets cart and coupon, favorites survive", func() {
		_, err := s.session.Login(ctx, "ramesh", "password")
		s.Require().NoError(err)
		s.Require().NoError(s.cart.AddItem(ctx, builder.NewProductBuilder().BuildSnapshot()))
		s.Require().NoError(s.favorites.Add(ctx, builder.NewProductBuilder().WithID(2).BuildSnapshot()))
		_, err = s.coupons.Apply(ctx, "RAM50")
		s.Require().NoError(err)

		result, err := s.session.Login(ctx, "suresh", "password")
		s.Require().NoError(err)
		s.True(result.CartReset)

		snap, err := s.container.Snapshot(ctx)
		s.Require().NoError(err)
		s.Empty(snap.Cart.Items)
		s.Len(snap.Favorites, 1)
		s.Equal("suresh", snap.Auth.Username)

		_, applied, err := s.container.AppliedCoupon(ctx)
		s.Require().NoError(err)
		s.False(applied)
	})

	s.resetState()
	s.Run("returning user does not get the old cart back", func() {
		_, err := s.session.Login(ctx, "ramesh", "password")
		s.Require().NoError(err)
		s.Require().NoError(s.cart.AddItem(ctx, builder.NewProductBuilder().BuildSnapshot()))
		s.Require().NoError(s.cart.AddItem(ctx, builder.NewProductBuilder().WithID(2).BuildSnapshot()))

		result, err := s.session.Login(ctx, "suresh", "password")
		s.Require().NoError(err)
		s.True(result.CartReset)

		result, err = s.session.Login(ctx, "ramesh", "password")
		s.Require().NoError(err)
		s.True(result.CartReset)

		snap, err := s.container.Snapshot(ctx)
		s.Require().NoError(err)
		s.Empty(snap.Cart.Items)
	})

	s.resetState()
	s.Run("each login issues a fresh session id", func() {
		first, err := s.session.Login(ctx, "ramesh", "password")
		s.Require().NoError(err)
		second, err := s.session.Login(ctx, "ramesh", "password")
		s.Require().NoError(err)

		s.NotEqual(first.SessionID, second.SessionID)
	})

	s.resetState()
	s.Run("error: malformed username fails login", func() {
		_, err := s.session.Login(ctx, "   ", "password")
		s.Require().ErrorIs(err, commands.ErrLoginFailed)
	})
}

func (s *SessionCommandsTestSuite) TestLogout() {
	ctx := context.Background()

	s.resetState()
	s.Run("clears identity, cart, favorites and coupon", func() {
		_, err := s.session.Login(ctx, "ramesh", "password")
		s.Require().NoError(err)
		s.Require().NoError(s.cart.AddItem(ctx, builder.NewProductBuilder().BuildSnapshot()))
		s.Require().NoError(s.favorites.Add(ctx, builder.NewProductBuilder().WithID(2).BuildSnapshot()))
		_, err = s.coupons.Apply(ctx, "RAM50")
		s.Require().NoError(err)

		s.Require().NoError(s.session.Logout(ctx))

		snap, err := s.container.Snapshot(ctx)
		s.Require().NoError(err)
		s.Nil(snap.Auth)
		s.Empty(snap.Cart.Items)
		s.Empty(snap.Favorites)

		_, applied, err := s.container.AppliedCoupon(ctx)
		s.Require().NoError(err)
		s.False(applied)
	})

	s.resetState()
	s.Run("logout while anonymous is a no-op", func() {
		s.Require().NoError(s.session.Logout(ctx))
	})
}
