// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package fee

import (
	"fmt"
	"math/big"

	"golang.org/x/exp/slices"

	"github.com/sacha-l/sygma-substrate-pallets/bridge"
	"github.com/sacha-l/sygma-substrate-pallets/types"
)

type route struct {
	domain types.DomainID
	asset  types.AssetID
}

// Route describes a configured (domain, asset) pair
type Route struct {
	DomainID types.DomainID `json:"domainId"`
	Asset    types.AssetID  `json:"asset"`
}

// Router dispatches fee computation to the handler registered for the
// destination domain and asset.
type Router struct {
	handlers map[route]bridge.FeeHandler
}

func NewRouter() *Router {
	return &Router{
		handlers: make(map[route]bridge.FeeHandler),
	}
}

func (r *Router) RegisterFeeHandler(domain types.DomainID, asset types.AssetID, handler bridge.FeeHandler) {
	r.handlers[route{domain: domain, asset: asset}] = handler
}

func (r *Router) Fee(asset types.AssetID, domain types.DomainID, amount *big.Int) (*big.Int, error) {
	handler, ok := r.handlers[route{domain: domain, asset: asset}]
	if !ok {
		return nil, fmt.Errorf("%w: domain %d asset %s", bridge.ErrMissingFeeConfig, domain, asset)
	}
	return handler.Fee(asset, domain, amount)
}

// Routes lists configured routes ordered by domain and asset
func (r *Router) Routes() []Route {
	routes := make([]Route, 0, len(r.handlers))
	for k := range r.handlers {
		routes = append(routes, Route{DomainID: k.domain, Asset: k.asset})
	}
	slices.SortFunc(routes, func(a, b Route) int {
		if a.DomainID != b.DomainID {
			return int(a.DomainID) - int(b.DomainID)
		}
		switch {
		case a.Asset < b.Asset:
			return -1
		case a.Asset > b.Asset:
			return 1
		}
		return 0
	})
	return routes
}
