// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package registry

import (
	"errors"
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/sacha-l/sygma-substrate-pallets/types"
)

var (
	ErrDuplicateAsset    = errors.New("asset bound to more than one resource")
	ErrDuplicateResource = errors.New("resource bound to more than one asset")
)

type Resource struct {
	Asset      types.AssetID
	ResourceID types.ResourceID
}

// ResourceRegistry is an immutable bijection between local assets and bridge
// resource ids.
type ResourceRegistry struct {
	byAsset    map[types.AssetID]types.ResourceID
	byResource map[types.ResourceID]types.AssetID
}

func NewResourceRegistry(resources []Resource) (*ResourceRegistry, error) {
	r := &ResourceRegistry{
		byAsset:    make(map[types.AssetID]types.ResourceID, len(resources)),
		byResource: make(map[types.ResourceID]types.AssetID, len(resources)),
	}
	for _, res := range resources {
		if _, ok := r.byAsset[res.Asset]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateAsset, res.Asset)
		}
		if _, ok := r.byResource[res.ResourceID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateResource, res.ResourceID.Hex())
		}
		r.byAsset[res.Asset] = res.ResourceID
		r.byResource[res.ResourceID] = res.Asset
	}
	return r, nil
}

func (r *ResourceRegistry) Lookup(asset types.AssetID) (types.ResourceID, bool) {
	rid, ok := r.byAsset[asset]
	return rid, ok
}

func (r *ResourceRegistry) ReverseLookup(resourceID types.ResourceID) (types.AssetID, bool) {
	asset, ok := r.byResource[resourceID]
	return asset, ok
}

// Assets returns registered assets in lexical order
func (r *ResourceRegistry) Assets() []types.AssetID {
	assets := maps.Keys(r.byAsset)
	slices.Sort(assets)
	return assets
}

func (r *ResourceRegistry) Len() int {
	return len(r.byAsset)
}
