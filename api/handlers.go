// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package api

import (
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"strconv"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/gin-gonic/gin"

	"github.com/sacha-l/sygma-substrate-pallets/auth"
	"github.com/sacha-l/sygma-substrate-pallets/bridge"
	"github.com/sacha-l/sygma-substrate-pallets/events"
	"github.com/sacha-l/sygma-substrate-pallets/store"
	"github.com/sacha-l/sygma-substrate-pallets/types"
)

const (
	defaultEventLimit = 100
	maxEventLimit     = 1000
)

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

type DepositRequest struct {
	Asset       types.AssetID `json:"asset" binding:"required"`
	Amount      string        `json:"amount" binding:"required"`
	Destination hexutil.Bytes `json:"destination" binding:"required"`
}

type RetryRequest struct {
	Reference types.Hash `json:"reference"`
}

type ProposalsRequest struct {
	Proposals []*types.Proposal `json:"proposals" binding:"dive,required"`
	Signature hexutil.Bytes     `json:"signature" binding:"required"`
}

type ProposalOutcome struct {
	OriginDomainID types.DomainID     `json:"originDomainId"`
	DepositNonce   types.DepositNonce `json:"depositNonce"`
	Executed       bool               `json:"executed"`
	Error          string             `json:"error,omitempty"`
}

type ProposalsResponse struct {
	Results []ProposalOutcome `json:"results"`
}

type ProposalStatusResponse struct {
	OriginDomainID types.DomainID     `json:"originDomainId"`
	DepositNonce   types.DepositNonce `json:"depositNonce"`
	Executed       bool               `json:"executed"`
	Status         store.PropStatus   `json:"status"`
}

type DomainResponse struct {
	DomainID     types.DomainID     `json:"domainId"`
	PauseState   string             `json:"pauseState"`
	DepositCount types.DepositNonce `json:"depositCount"`
}

type MpcKeyRequest struct {
	Key types.MpcKey `json:"key"`
}

type MpcKeyResponse struct {
	Key *types.MpcKey `json:"key"`
}

type EventsResponse struct {
	Events []events.Event `json:"events"`
}

func (s *Server) deposit(c *gin.Context) {
	var req DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, err)
		return
	}
	amount, ok := new(big.Int).SetString(req.Amount, 10)
	if !ok {
		s.badRequest(c, fmt.Errorf("invalid amount %q", req.Amount))
		return
	}

	res, err := s.bridge.Deposit(originFrom(c).Caller, req.Asset, amount, req.Destination)
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (s *Server) retry(c *gin.Context) {
	var req RetryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, err)
		return
	}

	if err := s.bridge.Retry(originFrom(c).Caller, req.Reference); err != nil {
		s.abortWithError(c, err)
		return
	}
	c.Status(http.StatusAccepted)
}

func (s *Server) executeProposals(c *gin.Context) {
	var req ProposalsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, err)
		return
	}

	report, err := s.bridge.ExecuteProposals(req.Proposals, req.Signature)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	res := ProposalsResponse{Results: make([]ProposalOutcome, 0, len(report.Results))}
	for _, r := range report.Results {
		outcome := ProposalOutcome{
			OriginDomainID: r.OriginDomainID,
			DepositNonce:   r.DepositNonce,
			Executed:       r.Executed(),
		}
		if r.Err != nil {
			outcome.Error = r.Err.Error()
		}
		res.Results = append(res.Results, outcome)
	}
	c.JSON(http.StatusOK, res)
}

func (s *Server) proposalStatus(c *gin.Context) {
	domain, err := parseDomain(c)
	if err != nil {
		s.badRequest(c, err)
		return
	}
	nonce, err := strconv.ParseUint(c.Param("nonce"), 10, 64)
	if err != nil {
		s.badRequest(c, fmt.Errorf("invalid deposit nonce: %w", err))
		return
	}

	executed, err := s.bridge.IsProposalExecuted(domain, nonce)
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	status, err := s.bridge.ProposalStatus(domain, nonce)
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, ProposalStatusResponse{
		OriginDomainID: domain,
		DepositNonce:   nonce,
		Executed:       executed,
		Status:         status,
	})
}

func (s *Server) domain(c *gin.Context) {
	domain, err := parseDomain(c)
	if err != nil {
		s.badRequest(c, err)
		return
	}

	state, err := s.bridge.PauseState(domain)
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	count, err := s.bridge.DepositCount(domain)
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, DomainResponse{
		DomainID:     domain,
		PauseState:   state.String(),
		DepositCount: count,
	})
}

func (s *Server) mpcKey(c *gin.Context) {
	key, err := s.bridge.MpcKey()
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, MpcKeyResponse{Key: key})
}

func (s *Server) events(c *gin.Context) {
	from, err := strconv.ParseUint(c.DefaultQuery("from", "0"), 10, 64)
	if err != nil {
		s.badRequest(c, fmt.Errorf("invalid from: %w", err))
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultEventLimit)))
	if err != nil || limit <= 0 || limit > maxEventLimit {
		s.badRequest(c, fmt.Errorf("limit must be between 1 and %d", maxEventLimit))
		return
	}

	evts, err := s.bridge.Events(from, limit)
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	if evts == nil {
		evts = []events.Event{}
	}
	c.JSON(http.StatusOK, EventsResponse{Events: evts})
}

func (s *Server) setMpcKey(c *gin.Context) {
	var req MpcKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, err)
		return
	}

	if err := s.bridge.SetMpcKey(originFrom(c), req.Key); err != nil {
		s.abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) pauseBridge(c *gin.Context) {
	domain, err := parseDomain(c)
	if err != nil {
		s.badRequest(c, err)
		return
	}

	if err := s.bridge.PauseBridge(originFrom(c), domain); err != nil {
		s.abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) unpauseBridge(c *gin.Context) {
	domain, err := parseDomain(c)
	if err != nil {
		s.badRequest(c, err)
		return
	}

	if err := s.bridge.UnpauseBridge(originFrom(c), domain); err != nil {
		s.abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func parseDomain(c *gin.Context) (types.DomainID, error) {
	domain, err := strconv.ParseUint(c.Param("domain"), 10, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid domain id: %w", err)
	}
	return types.DomainID(domain), nil
}

func (s *Server) badRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
		Error: err.Error(),
		Code:  "INVALID_REQUEST",
	})
}

// abortWithError maps bridge errors onto HTTP statuses
func (s *Server) abortWithError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	kind := bridge.Kind(err)
	switch {
	case errors.Is(err, auth.ErrBadOrigin):
		status = http.StatusForbidden
	case kind == bridge.ConfigurationError:
		status = http.StatusConflict
	case kind == bridge.PolicyViolation:
		status = http.StatusUnprocessableEntity
	case kind == bridge.IntegrityFailure:
		status = http.StatusBadRequest
	}
	if status == http.StatusInternalServerError {
		s.log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Request failed")
	}

	c.AbortWithStatusJSON(status, ErrorResponse{
		Error: err.Error(),
		Code:  kind.String(),
	})
}
