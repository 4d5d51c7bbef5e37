// Copyright 2024 Composable Finance
// SPDX-License-Identifier: Apache-2.0

package grandpa

import (
	"fmt"

	"github.com/ChainSafe/gossamer/pkg/scale"

	"github.com/ComposableFi/go-grandpa-light-client/lib/types"
)

// FindScheduledChange returns the first scheduled authority change in the
// header's digest, or nil if the header schedules none. GRANDPA digests
// carrying other messages are skipped.
func FindScheduledChange(header types.Header) (*types.GrandpaScheduledChange, error) {
	for _, item := range header.Digest {
		value, err := grandpaConsensusDigestValue(item)
		if err != nil {
			return nil, err
		}
		if value == nil {
			continue
		}
		if change, ok := value.(types.GrandpaScheduledChange); ok {
			return &change, nil
		}
	}
	return nil, nil
}

// FindForcedChange returns the first forced authority change in the header's
// digest, or nil if the header forces none.
func FindForcedChange(header types.Header) (*types.GrandpaForcedChange, error) {
	for _, item := range header.Digest {
		value, err := grandpaConsensusDigestValue(item)
		if err != nil {
			return nil, err
		}
		if value == nil {
			continue
		}
		if change, ok := value.(types.GrandpaForcedChange); ok {
			return &change, nil
		}
	}
	return nil, nil
}

// grandpaConsensusDigestValue decodes the GRANDPA consensus message carried
// by the digest item, if it carries one.
func grandpaConsensusDigestValue(item types.DigestItem) (any, error) {
	value, err := item.Value()
	if err != nil {
		return nil, fmt.Errorf("getting digest item value: %w", err)
	}

	consensus, ok := value.(types.ConsensusDigest)
	if !ok || consensus.ConsensusEngineID != types.GrandpaEngineID {
		return nil, nil
	}

	digest := types.NewGrandpaConsensusDigest()
	if err := scale.Unmarshal(consensus.Data, &digest); err != nil {
		return nil, fmt.Errorf("cannot decode grandpa consensus digest: %w", err)
	}

	digestValue, err := digest.Value()
	if err != nil {
		return nil, fmt.Errorf("getting grandpa consensus digest value: %w", err)
	}
	return digestValue, nil
}
