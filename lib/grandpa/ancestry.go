// Copyright 2024 Composable Finance
// SPDX-License-Identifier: Apache-2.0

package grandpa

import (
	"fmt"

	"github.com/ChainSafe/gossamer/lib/common"

	"github.com/ComposableFi/go-grandpa-light-client/lib/types"
)

// AncestryChain is a block graph backed by a fixed set of headers. It is used
// when validating commits, routing each precommit target back to the commit
// base through the supplied headers.
type AncestryChain struct {
	ancestry map[common.Hash]types.Header
}

// NewAncestryChain initialises an AncestryChain from the given headers,
// indexed by their hash.
func NewAncestryChain(headers []types.Header) AncestryChain {
	ancestry := make(map[common.Hash]types.Header, len(headers))
	for i := range headers {
		ancestry[headers[i].Hash()] = headers[i]
	}
	return AncestryChain{
		ancestry: ancestry,
	}
}

// Header returns the header with the given hash, if known
func (ac AncestryChain) Header(hash common.Hash) (types.Header, bool) {
	header, ok := ac.ancestry[hash]
	return header, ok
}

// Ancestry returns the hashes between block and base, excluding both
// endpoints, in order from block's parent towards base. It fails if the
// route cannot be completed with the known headers.
func (ac AncestryChain) Ancestry(base, block common.Hash) ([]common.Hash, error) {
	route := make([]common.Hash, 0)
	currentHash := block

	for {
		if currentHash == base {
			break
		}

		header, ok := ac.ancestry[currentHash]
		if !ok {
			return nil, fmt.Errorf("%w", ErrDescendantNotFound)
		}
		parent := header.ParentHash

		if parent.IsEmpty() {
			return nil, fmt.Errorf("%w", ErrDescendantNotFound)
		}
		currentHash = parent
		route = append(route, currentHash)
	}

	// the last pushed hash is the base itself
	if len(route) != 0 {
		route = route[:len(route)-1]
	}
	return route, nil
}

// IsEqualOrDescendantOf returns true if block is base or a descendant of base
func (ac AncestryChain) IsEqualOrDescendantOf(base, block common.Hash) bool {
	if base == block {
		return true
	}

	_, err := ac.Ancestry(base, block)
	return err == nil
}
