package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrInvalidLadder indicates a rank ladder violates its ordering rules
	ErrInvalidLadder = errors.New("invalid rank ladder")

	// ErrRankNotFound indicates no rank matched a lookup query
	ErrRankNotFound = errors.New("rank not found")

	// ErrStoreClosed indicates a write was attempted after Close
	ErrStoreClosed = errors.New("store is closed")
)
