// Package id generates the opaque correlation IDs attached to inbound HTTP
// requests when the caller did not supply one.
package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// Generator creates opaque correlation IDs.
type Generator interface {
	NewID() (string, error)
}

// RandomGenerator produces hex-encoded random IDs. The 12-byte size keeps
// them short enough for log lines while staying collision-free for the
// lifetime of a deployment.
type RandomGenerator struct{}

func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{}
}

func (g *RandomGenerator) NewID() (string, error) {
	buf := make([]byte, 12)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	return hex.EncodeToString(buf), nil
}
