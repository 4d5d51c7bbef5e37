// Copyright 2024 Composable Finance
// SPDX-License-Identifier: Apache-2.0

package types

import (
	"testing"

	"github.com/ChainSafe/gossamer/lib/common"
	"github.com/ChainSafe/gossamer/pkg/scale"
	"github.com/stretchr/testify/require"
)

func TestHeaderHash(t *testing.T) {
	t.Parallel()

	parentHash := common.MustBlake2bHash([]byte("parent"))
	stateRoot := common.MustBlake2bHash([]byte("state"))
	extrinsicsRoot := common.MustBlake2bHash([]byte("extrinsics"))

	header := NewHeader(parentHash, stateRoot, extrinsicsRoot, 1, NewDigest())
	hash := header.Hash()
	require.False(t, hash.IsEmpty())

	// hashing is deterministic
	require.Equal(t, hash, header.Hash())

	// any field change produces a different hash
	other := NewHeader(parentHash, stateRoot, extrinsicsRoot, 2, NewDigest())
	require.NotEqual(t, hash, other.Hash())
}

func TestHeaderEncodeDecode(t *testing.T) {
	t.Parallel()

	digestItem := NewDigestItem()
	err := digestItem.SetValue(PreRuntimeDigest{
		ConsensusEngineID: BabeEngineID,
		Data:              []byte{1, 2, 3},
	})
	require.NoError(t, err)

	header := NewHeader(
		common.MustBlake2bHash([]byte("parent")),
		common.MustBlake2bHash([]byte("state")),
		common.MustBlake2bHash([]byte("extrinsics")),
		42, NewDigest(digestItem))

	encoded, err := scale.Marshal(header)
	require.NoError(t, err)

	decoded := NewEmptyHeader()
	err = scale.Unmarshal(encoded, &decoded)
	require.NoError(t, err)

	reencoded, err := scale.Marshal(decoded)
	require.NoError(t, err)
	require.Equal(t, encoded, reencoded)
	require.Equal(t, header.Hash(), decoded.Hash())
}
