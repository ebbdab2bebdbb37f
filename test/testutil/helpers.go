// Package testutil provides test helpers and utilities for sspsim tests.
package testutil

import (
	"crypto/rand"
	"time"

	"github.com/backkem/sspsim/internal/btaddr"
)

// RandomBytes generates cryptographically random bytes.
func RandomBytes(n int) []byte {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return b
}

// RandomAddr generates a random locally-administered BD_ADDR, never
// btaddr.Zero, for tests that assert on a specific non-zero peer.
func RandomAddr() btaddr.Addr {
	for {
		a := btaddr.Random()
		if a != btaddr.Zero {
			return a
		}
	}
}

// WaitFor polls until condition is true or timeout.
func WaitFor(timeout time.Duration, condition func() bool) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return false
}
