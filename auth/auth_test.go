// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/sacha-l/sygma-substrate-pallets/auth"
	"github.com/sacha-l/sygma-substrate-pallets/types"
)

var (
	admin    = types.AccountID{1}
	stranger = types.AccountID{2}
)

type AuthorizerTestSuite struct {
	suite.Suite
	authorizer *auth.Authorizer
}

func TestRunAuthorizerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthorizerTestSuite))
}

func (s *AuthorizerTestSuite) SetupTest() {
	s.authorizer = auth.NewAuthorizer([]types.AccountID{admin})
}

func (s *AuthorizerTestSuite) Test_RootIsPrivileged() {
	s.Nil(s.authorizer.EnsurePrivileged(auth.Root()))
}

func (s *AuthorizerTestSuite) Test_AdminIsPrivileged() {
	s.Nil(s.authorizer.EnsurePrivileged(auth.Signed(admin)))
}

func (s *AuthorizerTestSuite) Test_SignedStranger() {
	s.ErrorIs(s.authorizer.EnsurePrivileged(auth.Signed(stranger)), auth.ErrBadOrigin)
}

func (s *AuthorizerTestSuite) Test_EmptyOrigin() {
	s.ErrorIs(s.authorizer.EnsurePrivileged(auth.Origin{}), auth.ErrBadOrigin)
}

type TokenIssuerTestSuite struct {
	suite.Suite
	issuer *auth.TokenIssuer
}

func TestRunTokenIssuerTestSuite(t *testing.T) {
	suite.Run(t, new(TokenIssuerTestSuite))
}

func (s *TokenIssuerTestSuite) SetupTest() {
	s.issuer = auth.NewTokenIssuer("secret", time.Hour)
}

func (s *TokenIssuerTestSuite) Test_RoundTrip() {
	token, err := s.issuer.Issue(auth.Signed(admin))
	s.Nil(err)

	origin, err := s.issuer.Parse(token)

	s.Nil(err)
	s.Equal(auth.Signed(admin), origin)
}

func (s *TokenIssuerTestSuite) Test_WrongSecret() {
	token, _ := auth.NewTokenIssuer("other", time.Hour).Issue(auth.Root())

	_, err := s.issuer.Parse(token)

	s.ErrorIs(err, auth.ErrInvalidToken)
}

func (s *TokenIssuerTestSuite) Test_Expired() {
	token, _ := auth.NewTokenIssuer("secret", -time.Minute).Issue(auth.Root())

	_, err := s.issuer.Parse(token)

	s.ErrorIs(err, auth.ErrInvalidToken)
}

func (s *TokenIssuerTestSuite) Test_Garbage() {
	_, err := s.issuer.Parse("not.a.token")

	s.ErrorIs(err, auth.ErrInvalidToken)
}
