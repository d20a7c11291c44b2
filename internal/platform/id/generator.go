package id

import (
	"fmt"

	"github.com/google/uuid"
)

// Generator creates opaque IDs for pipeline runs.
type Generator interface {
	NewID() (string, error)
}

// UUIDGenerator issues time-ordered UUIDv7 values so run ids sort by start time.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) NewID() (string, error) {
	value, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate uuid: %w", err)
	}
	return value.String(), nil
}

// StaticGenerator returns a fixed sequence of ids; handy for deterministic runs.
type StaticGenerator struct {
	IDs  []string
	next int
}

func (g *StaticGenerator) NewID() (string, error) {
	if g.next >= len(g.IDs) {
		return "", fmt.Errorf("static generator exhausted after %d ids", len(g.IDs))
	}
	out := g.IDs[g.next]
	g.next++
	return out, nil
}
