// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package api

import (
	"math/big"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sacha-l/sygma-substrate-pallets/auth"
	"github.com/sacha-l/sygma-substrate-pallets/bridge"
	"github.com/sacha-l/sygma-substrate-pallets/events"
	"github.com/sacha-l/sygma-substrate-pallets/store"
	"github.com/sacha-l/sygma-substrate-pallets/types"
)

const requestIDHeader = "X-Request-ID"

type Bridge interface {
	Deposit(caller types.AccountID, asset types.AssetID, amount *big.Int, destination []byte) (*bridge.DepositResult, error)
	Retry(caller types.AccountID, reference types.Hash) error
	ExecuteProposals(proposals []*types.Proposal, signature []byte) (*bridge.ExecutionReport, error)
	SetMpcKey(origin auth.Origin, key types.MpcKey) error
	PauseBridge(origin auth.Origin, domain types.DomainID) error
	UnpauseBridge(origin auth.Origin, domain types.DomainID) error
	MpcKey() (*types.MpcKey, error)
	PauseState(domain types.DomainID) (bridge.PauseState, error)
	DepositCount(domain types.DomainID) (types.DepositNonce, error)
	IsProposalExecuted(origin types.DomainID, nonce types.DepositNonce) (bool, error)
	ProposalStatus(origin types.DomainID, nonce types.DepositNonce) (store.PropStatus, error)
	Events(from uint64, limit int) ([]events.Event, error)
}

type TokenParser interface {
	Parse(token string) (auth.Origin, error)
}

// Server exposes the bridge over HTTP. Deposits, retries and admin calls take
// the caller from a bearer token, proposal batches and queries are public.
type Server struct {
	bridge Bridge
	tokens TokenParser
	engine *gin.Engine
	log    zerolog.Logger
}

func NewServer(bridge Bridge, tokens TokenParser) *Server {
	gin.SetMode(gin.ReleaseMode)
	s := &Server{
		bridge: bridge,
		tokens: tokens,
		engine: gin.New(),
		log:    log.With().Str("component", "api").Logger(),
	}
	s.engine.Use(gin.Recovery(), s.requestLogger())
	s.routes()
	return s
}

func (s *Server) routes() {
	v1 := s.engine.Group("/v1")

	v1.POST("/proposals", s.executeProposals)
	v1.GET("/proposals/:domain/:nonce", s.proposalStatus)
	v1.GET("/domains/:domain", s.domain)
	v1.GET("/mpc-key", s.mpcKey)
	v1.GET("/events", s.events)

	authenticated := v1.Group("", s.requireAuth())
	authenticated.POST("/deposit", s.deposit)
	authenticated.POST("/retry", s.retry)

	admin := authenticated.Group("/admin")
	admin.POST("/mpc-key", s.setMpcKey)
	admin.POST("/domains/:domain/pause", s.pauseBridge)
	admin.POST("/domains/:domain/unpause", s.unpauseBridge)
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(requestIDHeader, requestID)

		start := time.Now()
		c.Next()
		s.log.Debug().
			Str("requestID", requestID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("Handled request")
	}
}
