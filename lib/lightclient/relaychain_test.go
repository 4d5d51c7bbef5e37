// Copyright 2024 Composable Finance
// SPDX-License-Identifier: Apache-2.0

package lightclient

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRelayChainFromString(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"polkadot", "Polkadot", "POLKADOT"} {
		rc, err := RelayChainFromString(name)
		require.NoError(t, err)
		require.Equal(t, Polkadot, rc)
	}

	rc, err := RelayChainFromString("kusama")
	require.NoError(t, err)
	require.Equal(t, Kusama, rc)

	rc, err = RelayChainFromString("rococo")
	require.NoError(t, err)
	require.Equal(t, Rococo, rc)

	_, err = RelayChainFromString("westend")
	require.ErrorIs(t, err, ErrUnknownRelayChain)
}

func TestRelayChainPeriods(t *testing.T) {
	t.Parallel()

	require.Equal(t, 28*24*time.Hour, Polkadot.UnbondingPeriod())
	require.Equal(t, 7*24*time.Hour, Kusama.UnbondingPeriod())
	require.Equal(t, 7*24*time.Hour, Rococo.UnbondingPeriod())

	// a third of the unbonding period
	require.Equal(t, 28*8*time.Hour, Polkadot.TrustingPeriod())
	require.Equal(t, 7*8*time.Hour, Kusama.TrustingPeriod())
}

func TestRelayChainString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Polkadot", Polkadot.String())
	require.Equal(t, "Kusama", Kusama.String())
	require.Equal(t, "Rococo", Rococo.String())
	require.Equal(t, "unknown", RelayChain(9).String())
}
