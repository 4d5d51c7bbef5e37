// Copyright 2024 Composable Finance
// SPDX-License-Identifier: Apache-2.0

package lightclient

import (
	"testing"
	"time"

	"github.com/ChainSafe/gossamer/lib/common"
	"github.com/ChainSafe/gossamer/pkg/scale"
	"github.com/stretchr/testify/require"

	"github.com/ComposableFi/go-grandpa-light-client/lib/ibc"
)

func newTestClientState() *ClientState {
	return &ClientState{
		LatestRelayHash:   common.MustBlake2bHash([]byte("relay")),
		LatestRelayHeight: 100,
		CurrentSetID:      1,
		ParaID:            2000,
		LatestParaHeight:  14,
		RelayChain:        Polkadot,
	}
}

func TestClientStateLatestHeight(t *testing.T) {
	t.Parallel()

	cs := newTestClientState()
	require.Equal(t, ibc.NewHeight(2000, 14), cs.LatestHeight())
}

func TestClientStateVerifyHeight(t *testing.T) {
	t.Parallel()

	cs := newTestClientState()
	require.NoError(t, cs.VerifyHeight(ibc.NewHeight(2000, 14)))
	require.NoError(t, cs.VerifyHeight(ibc.NewHeight(2000, 10)))

	err := cs.VerifyHeight(ibc.NewHeight(2000, 15))
	require.ErrorIs(t, err, ErrInsufficientHeight)

	frozen := ibc.NewHeight(2000, 12)
	cs.FrozenHeight = &frozen
	require.True(t, cs.IsFrozen())

	err = cs.VerifyHeight(ibc.NewHeight(2000, 13))
	require.ErrorIs(t, err, ErrClientFrozen)

	// heights below the freeze point remain provable
	require.NoError(t, cs.VerifyHeight(ibc.NewHeight(2000, 11)))
}

func TestClientStateExpired(t *testing.T) {
	t.Parallel()

	cs := newTestClientState()
	latest := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	require.False(t, cs.Expired(latest, latest.Add(cs.RelayChain.TrustingPeriod())))
	require.True(t, cs.Expired(latest, latest.Add(cs.RelayChain.TrustingPeriod()+time.Second)))

	require.NoError(t, cs.VerifyExpiry(latest, latest.Add(cs.RelayChain.TrustingPeriod())))
	err := cs.VerifyExpiry(latest, latest.Add(cs.RelayChain.TrustingPeriod()+time.Second))
	require.ErrorIs(t, err, ErrClientExpired)
}

func TestVerifyClientFullState(t *testing.T) {
	t.Parallel()

	cs := newTestClientState()
	clientID := ibc.ClientID("07-tendermint-0")
	encodedClientState := []byte("client state bytes")

	root, proof := newMembershipFixture(t, testPrefix,
		ibc.ClientStatePath{ClientID: clientID}, encodedClientState)

	err := cs.VerifyClientFullState(cs.LatestHeight(), testPrefix, proof, root,
		clientID, encodedClientState)
	require.NoError(t, err)

	err = cs.VerifyClientFullState(ibc.NewHeight(2000, 15), testPrefix, proof, root,
		clientID, encodedClientState)
	require.ErrorIs(t, err, ErrInsufficientHeight)
}

func TestVerifyClientConsensusState(t *testing.T) {
	t.Parallel()

	cs := newTestClientState()
	clientID := ibc.ClientID("07-tendermint-0")
	consensusHeight := ibc.NewHeight(4, 9)
	encodedConsensusState := []byte("consensus state bytes")

	root, proof := newMembershipFixture(t, testPrefix, ibc.ClientConsensusStatePath{
		ClientID: clientID,
		Epoch:    consensusHeight.RevisionNumber,
		Height:   consensusHeight.RevisionHeight,
	}, encodedConsensusState)

	err := cs.VerifyClientConsensusState(cs.LatestHeight(), testPrefix, proof, root,
		clientID, consensusHeight, encodedConsensusState)
	require.NoError(t, err)
}

func TestVerifyConnectionState(t *testing.T) {
	t.Parallel()

	cs := newTestClientState()
	connectionID := ibc.ConnectionID("connection-0")
	encodedConnectionEnd := []byte("connection end bytes")

	root, proof := newMembershipFixture(t, testPrefix,
		ibc.ConnectionPath{ConnectionID: connectionID}, encodedConnectionEnd)

	err := cs.VerifyConnectionState(cs.LatestHeight(), testPrefix, proof, root,
		connectionID, encodedConnectionEnd)
	require.NoError(t, err)

	err = cs.VerifyConnectionState(cs.LatestHeight(), testPrefix, proof, root,
		connectionID, []byte("tampered"))
	require.ErrorIs(t, err, ErrVerificationFailed)
}

func TestVerifyChannelState(t *testing.T) {
	t.Parallel()

	cs := newTestClientState()
	encodedChannelEnd := []byte("channel end bytes")

	root, proof := newMembershipFixture(t, testPrefix,
		ibc.ChannelEndPath{PortID: "transfer", ChannelID: "channel-0"}, encodedChannelEnd)

	err := cs.VerifyChannelState(cs.LatestHeight(), testPrefix, proof, root,
		"transfer", "channel-0", encodedChannelEnd)
	require.NoError(t, err)
}

func newTestConnectionEnd() *ibc.ConnectionEnd {
	return &ibc.ConnectionEnd{
		State:    ibc.ConnectionOpen,
		ClientID: "07-tendermint-0",
		Counterparty: ibc.ConnectionCounterparty{
			ClientID:     "10-grandpa-0",
			ConnectionID: "connection-1",
			Prefix:       testPrefix,
		},
		DelayPeriod: time.Minute,
	}
}

func newElapsedReaderContext() testReaderContext {
	updateTime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return testReaderContext{
		updateTime:    updateTime,
		updateHeight:  ibc.NewHeight(0, 100),
		hostTimestamp: updateTime.Add(2 * time.Minute),
		hostHeight:    ibc.NewHeight(0, 120),
		maxBlockTime:  6 * time.Second,
	}
}

func TestVerifyPacketData(t *testing.T) {
	t.Parallel()

	cs := newTestClientState()
	connectionEnd := newTestConnectionEnd()
	commitment := []byte("packet commitment")

	root, proof := newMembershipFixture(t, testPrefix,
		ibc.CommitmentPath{PortID: "transfer", ChannelID: "channel-0", Sequence: 1}, commitment)

	ctx := newElapsedReaderContext()
	err := cs.VerifyPacketData(ctx, cs.LatestHeight(), connectionEnd, proof, root,
		"transfer", "channel-0", 1, commitment)
	require.NoError(t, err)

	t.Run("delay not elapsed", func(t *testing.T) {
		t.Parallel()
		early := ctx
		early.hostTimestamp = ctx.updateTime.Add(time.Second)
		err := cs.VerifyPacketData(early, cs.LatestHeight(), connectionEnd, proof, root,
			"transfer", "channel-0", 1, commitment)
		require.ErrorIs(t, err, ErrDelayPeriodNotElapsed)
	})
}

func TestVerifyPacketAcknowledgement(t *testing.T) {
	t.Parallel()

	cs := newTestClientState()
	connectionEnd := newTestConnectionEnd()
	ackCommitment := []byte("ack commitment")

	root, proof := newMembershipFixture(t, testPrefix,
		ibc.AckPath{PortID: "transfer", ChannelID: "channel-0", Sequence: 1}, ackCommitment)

	err := cs.VerifyPacketAcknowledgement(newElapsedReaderContext(), cs.LatestHeight(),
		connectionEnd, proof, root, "transfer", "channel-0", 1, ackCommitment)
	require.NoError(t, err)
}

func TestVerifyNextSequenceRecv(t *testing.T) {
	t.Parallel()

	cs := newTestClientState()
	connectionEnd := newTestConnectionEnd()

	nextSequenceRecv := ibc.Sequence(7)
	encodedSequence, err := scale.Marshal(uint64(nextSequenceRecv))
	require.NoError(t, err)

	root, proof := newMembershipFixture(t, testPrefix,
		ibc.SeqRecvPath{PortID: "transfer", ChannelID: "channel-0"}, encodedSequence)

	err = cs.VerifyNextSequenceRecv(newElapsedReaderContext(), cs.LatestHeight(),
		connectionEnd, proof, root, "transfer", "channel-0", nextSequenceRecv)
	require.NoError(t, err)
}

func TestVerifyPacketReceiptAbsence(t *testing.T) {
	t.Parallel()

	cs := newTestClientState()
	connectionEnd := newTestConnectionEnd()

	root, proof := newAbsenceFixture(t)
	err := cs.VerifyPacketReceiptAbsence(newElapsedReaderContext(), cs.LatestHeight(),
		connectionEnd, proof, root, "transfer", "channel-0", 1)
	require.NoError(t, err)

	t.Run("receipt exists", func(t *testing.T) {
		t.Parallel()
		path := ibc.ReceiptPath{PortID: "transfer", ChannelID: "channel-0", Sequence: 1}
		presentRoot, presentProof := newMembershipFixture(t, testPrefix, path, []byte{1})
		err := cs.VerifyPacketReceiptAbsence(newElapsedReaderContext(), cs.LatestHeight(),
			connectionEnd, presentProof, presentRoot, "transfer", "channel-0", 1)
		require.ErrorIs(t, err, ErrVerificationFailed)
	})
}
