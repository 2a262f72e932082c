// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sacha-l/sygma-substrate-pallets/types"
)

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	Account types.AccountID `json:"account"`
	Role    Role            `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer issues and validates HS256 bearer tokens carrying an Origin
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (i *TokenIssuer) Issue(origin Origin) (string, error) {
	now := time.Now()
	claims := Claims{
		Account: origin.Caller,
		Role:    origin.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   origin.Caller.Hex(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

func (i *TokenIssuer) Parse(tokenString string) (Origin, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return Origin{}, fmt.Errorf("%w: %s", ErrInvalidToken, err)
	}
	if !token.Valid {
		return Origin{}, ErrInvalidToken
	}

	switch claims.Role {
	case RoleRoot, RoleSigned:
	default:
		return Origin{}, fmt.Errorf("%w: unknown role %q", ErrInvalidToken, claims.Role)
	}
	return Origin{Caller: claims.Account, Role: claims.Role}, nil
}
