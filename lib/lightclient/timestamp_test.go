// Copyright 2024 Composable Finance
// SPDX-License-Identifier: Apache-2.0

package lightclient

import (
	"testing"

	"github.com/ChainSafe/gossamer/pkg/scale"
	"github.com/stretchr/testify/require"
)

func TestDecodeTimestampExtrinsic(t *testing.T) {
	t.Parallel()

	const moment = uint(1_709_000_000_000)
	encodedMoment, err := scale.Marshal(moment)
	require.NoError(t, err)

	// compact length, version byte, pallet index, call index, compact moment
	extrinsic := append([]byte{0x28, 0x04, 0x03, 0x00}, encodedMoment...)

	decoded, err := DecodeTimestampExtrinsic(extrinsic)
	require.NoError(t, err)
	require.Equal(t, uint64(moment), decoded)
}

func TestDecodeTimestampExtrinsicTooShort(t *testing.T) {
	t.Parallel()

	_, err := DecodeTimestampExtrinsic([]byte{0x04})
	require.ErrorIs(t, err, ErrTimestampExtrinsic)
}

func TestDecodeTimestampExtrinsicTruncated(t *testing.T) {
	t.Parallel()

	// pallet and call indexes but no moment
	_, err := DecodeTimestampExtrinsic([]byte{0x28, 0x04, 0x03, 0x00})
	require.ErrorIs(t, err, ErrTimestampExtrinsic)
}
