// Copyright 2024 Composable Finance
// SPDX-License-Identifier: Apache-2.0

// Package ibc holds the host machinery shared by light clients: identifiers,
// heights, standardised store paths and commitment types.
package ibc

import "fmt"

// Height is a revision qualified block height. The revision number changes
// on hard forks that reset the height.
type Height struct {
	RevisionNumber uint64
	RevisionHeight uint64
}

// NewHeight returns a Height with the given revision number and height
func NewHeight(revisionNumber, revisionHeight uint64) Height {
	return Height{
		RevisionNumber: revisionNumber,
		RevisionHeight: revisionHeight,
	}
}

// Compare orders heights first by revision number, then by revision height.
// It returns -1, 0 or 1 when h is respectively lower than, equal to or
// greater than other.
func (h Height) Compare(other Height) int {
	switch {
	case h.RevisionNumber < other.RevisionNumber:
		return -1
	case h.RevisionNumber > other.RevisionNumber:
		return 1
	case h.RevisionHeight < other.RevisionHeight:
		return -1
	case h.RevisionHeight > other.RevisionHeight:
		return 1
	}
	return 0
}

// LT returns true if h is strictly lower than other
func (h Height) LT(other Height) bool {
	return h.Compare(other) < 0
}

// GT returns true if h is strictly greater than other
func (h Height) GT(other Height) bool {
	return h.Compare(other) > 0
}

// GTE returns true if h is greater than or equal to other
func (h Height) GTE(other Height) bool {
	return h.Compare(other) >= 0
}

// IsZero returns true for the zero height
func (h Height) IsZero() bool {
	return h.RevisionNumber == 0 && h.RevisionHeight == 0
}

// String returns the height in the revision-height format
func (h Height) String() string {
	return fmt.Sprintf("%d-%d", h.RevisionNumber, h.RevisionHeight)
}
