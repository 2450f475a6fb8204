// Package ident provides id generation for passengers and bookings. The
// generator is injected into every component that mints ids so tests can
// substitute a deterministic sequence.
package ident

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator mints unique, opaque identifiers.
type Generator interface {
	NewID() string
}

// UUID generates 8-character ids from random UUIDs.
type UUID struct{}

// NewID returns the first 8 characters of a random UUID.
func (UUID) NewID() string {
	return uuid.New().String()[:8]
}

// Sequential generates prefix-1, prefix-2, ... ids. Safe for concurrent use.
type Sequential struct {
	Prefix string
	n      atomic.Uint64
}

// NewID returns the next id in the sequence.
func (s *Sequential) NewID() string {
	return fmt.Sprintf("%s-%d", s.Prefix, s.n.Add(1))
}
