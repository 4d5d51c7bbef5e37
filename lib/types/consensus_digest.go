// Copyright 2024 Composable Finance
// SPDX-License-Identifier: Apache-2.0

package types

import (
	"fmt"

	"github.com/ChainSafe/gossamer/pkg/scale"
)

type GrandpaConsensusDigestValues interface {
	GrandpaScheduledChange | GrandpaForcedChange | GrandpaOnDisabled | GrandpaPause | GrandpaResume
}

// GrandpaConsensusDigest is the message a GRANDPA consensus digest carries
// from the runtime to the finality engine.
type GrandpaConsensusDigest struct {
	inner any
}

func setGrandpaConsensusDigest[Value GrandpaConsensusDigestValues](mvdt *GrandpaConsensusDigest, value Value) {
	mvdt.inner = value
}

func (mvdt *GrandpaConsensusDigest) SetValue(value any) (err error) {
	switch value := value.(type) {
	case GrandpaScheduledChange:
		setGrandpaConsensusDigest(mvdt, value)
		return
	case GrandpaForcedChange:
		setGrandpaConsensusDigest(mvdt, value)
		return
	case GrandpaOnDisabled:
		setGrandpaConsensusDigest(mvdt, value)
		return
	case GrandpaPause:
		setGrandpaConsensusDigest(mvdt, value)
		return
	case GrandpaResume:
		setGrandpaConsensusDigest(mvdt, value)
		return
	default:
		return fmt.Errorf("unsupported type")
	}
}

func (mvdt GrandpaConsensusDigest) IndexValue() (index uint, value any, err error) {
	switch mvdt.inner.(type) {
	case GrandpaScheduledChange:
		return 1, mvdt.inner, nil
	case GrandpaForcedChange:
		return 2, mvdt.inner, nil
	case GrandpaOnDisabled:
		return 3, mvdt.inner, nil
	case GrandpaPause:
		return 4, mvdt.inner, nil
	case GrandpaResume:
		return 5, mvdt.inner, nil
	}
	return 0, nil, scale.ErrUnsupportedVaryingDataTypeValue
}

func (mvdt GrandpaConsensusDigest) Value() (value any, err error) {
	_, value, err = mvdt.IndexValue()
	return
}

func (mvdt GrandpaConsensusDigest) ValueAt(index uint) (value any, err error) {
	switch index {
	case 1:
		return *new(GrandpaScheduledChange), nil
	case 2:
		return *new(GrandpaForcedChange), nil
	case 3:
		return *new(GrandpaOnDisabled), nil
	case 4:
		return *new(GrandpaPause), nil
	case 5:
		return *new(GrandpaResume), nil
	}
	return nil, scale.ErrUnknownVaryingDataTypeValue
}

// NewGrandpaConsensusDigest constructs a vdt representing a grandpa consensus digest
func NewGrandpaConsensusDigest() GrandpaConsensusDigest {
	return GrandpaConsensusDigest{}
}

// GrandpaScheduledChange represents a GRANDPA scheduled authority change
type GrandpaScheduledChange struct {
	Auths []GrandpaAuthoritiesRaw
	Delay uint32
}

func (g GrandpaScheduledChange) String() string {
	return fmt.Sprintf("GrandpaScheduledChange{Auths=%v, Delay=%d}", g.Auths, g.Delay)
}

// GrandpaForcedChange represents a GRANDPA forced authority change
type GrandpaForcedChange struct {
	// BestFinalizedBlock is specified by the governance mechanism, defines
	// the starting block at which Delay is applied.
	BestFinalizedBlock uint32
	Auths              []GrandpaAuthoritiesRaw
	Delay              uint32
}

func (g GrandpaForcedChange) String() string {
	return fmt.Sprintf("GrandpaForcedChange{BestFinalizedBlock=%d, Auths=%v, Delay=%d}",
		g.BestFinalizedBlock, g.Auths, g.Delay)
}

// GrandpaOnDisabled represents a GRANDPA authority being disabled
type GrandpaOnDisabled struct {
	ID uint64
}

func (g GrandpaOnDisabled) String() string {
	return fmt.Sprintf("GrandpaOnDisabled{ID=%d}", g.ID)
}

// GrandpaPause represents an authority set pause
type GrandpaPause struct {
	Delay uint32
}

func (g GrandpaPause) String() string {
	return fmt.Sprintf("GrandpaPause{Delay=%d}", g.Delay)
}

// GrandpaResume represents an authority set resume
type GrandpaResume struct {
	Delay uint32
}

func (g GrandpaResume) String() string {
	return fmt.Sprintf("GrandpaResume{Delay=%d}", g.Delay)
}
