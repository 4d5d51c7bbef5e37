// Copyright 2024 Composable Finance
// SPDX-License-Identifier: Apache-2.0

package lightclient

import (
	"fmt"
	"time"

	"github.com/ComposableFi/go-grandpa-light-client/lib/ibc"
)

// ReaderContext is the host state the light client reads when verifying
// packets. It is owned by the orchestrating module; the light client never
// writes through it.
type ReaderContext interface {
	// ClientUpdateTime returns the host time at which the client was updated
	// to the given height
	ClientUpdateTime(clientID ibc.ClientID, height ibc.Height) (time.Time, error)
	// ClientUpdateHeight returns the host height at which the client was
	// updated to the given height
	ClientUpdateHeight(clientID ibc.ClientID, height ibc.Height) (ibc.Height, error)
	// HostTimestamp returns the current host time
	HostTimestamp() time.Time
	// HostHeight returns the current host height
	HostHeight() ibc.Height
	// BlockDelay converts a connection delay period into a number of host blocks
	BlockDelay(delayPeriodTime time.Duration) uint64
}

// VerifyDelayPassed verifies the connection delay has elapsed for the given
// proof height, on both the time axis and the block axis.
func VerifyDelayPassed(ctx ReaderContext, height ibc.Height, connectionEnd *ibc.ConnectionEnd) error {
	currentTime := ctx.HostTimestamp()
	currentHeight := ctx.HostHeight()

	clientID := connectionEnd.ClientID
	processedTime, err := ctx.ClientUpdateTime(clientID, height)
	if err != nil {
		return fmt.Errorf("getting client update time: %w", err)
	}
	processedHeight, err := ctx.ClientUpdateHeight(clientID, height)
	if err != nil {
		return fmt.Errorf("getting client update height: %w", err)
	}

	delayPeriodTime := connectionEnd.DelayPeriod
	delayPeriodBlocks := ctx.BlockDelay(delayPeriodTime)

	earliestTime := processedTime.Add(delayPeriodTime)
	if currentTime.Before(earliestTime) {
		return fmt.Errorf("%w: not enough time elapsed, current time %s, earliest time %s",
			ErrDelayPeriodNotElapsed, currentTime, earliestTime)
	}

	earliestHeight := ibc.NewHeight(processedHeight.RevisionNumber,
		processedHeight.RevisionHeight+delayPeriodBlocks)
	if currentHeight.LT(earliestHeight) {
		return fmt.Errorf("%w: not enough blocks elapsed, current height %s, earliest height %s",
			ErrDelayPeriodNotElapsed, currentHeight, earliestHeight)
	}

	return nil
}

// CalculateBlockDelay converts a delay period into a block count given the
// longest time a block is expected to take. It rounds up so the block axis
// never undercuts the time axis.
func CalculateBlockDelay(delayPeriodTime, maxExpectedTimePerBlock time.Duration) uint64 {
	if maxExpectedTimePerBlock == 0 {
		return 0
	}
	if delayPeriodTime%maxExpectedTimePerBlock == 0 {
		return uint64(delayPeriodTime / maxExpectedTimePerBlock)
	}
	return uint64(delayPeriodTime/maxExpectedTimePerBlock) + 1
}
