// Package features tracks the per-device LMP features pages the pairing
// coordinator consults when deciding a public key curve.
package features

import (
	"sync"

	"github.com/backkem/sspsim/internal/btaddr"
	"github.com/backkem/sspsim/internal/hci"
)

// Registry records, per device address, which LMP features page 1 bits that
// device advertises. A harness populates it for both sides of a pairing
// before starting a run; the coordinator only ever reads it through
// SupportedOnBothPage1.
type Registry struct {
	mu   sync.RWMutex
	bits map[btaddr.Addr]map[hci.LMPFeaturesPage1Bit]bool
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{bits: make(map[btaddr.Addr]map[hci.LMPFeaturesPage1Bit]bool)}
}

// Set records whether addr advertises bit.
func (r *Registry) Set(addr btaddr.Addr, bit hci.LMPFeaturesPage1Bit, supported bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	page, ok := r.bits[addr]
	if !ok {
		page = make(map[hci.LMPFeaturesPage1Bit]bool)
		r.bits[addr] = page
	}
	page[bit] = supported
}

// Supported reports whether addr advertises bit. An unrecorded address is
// treated as not supporting any bit.
func (r *Registry) Supported(addr btaddr.Addr, bit hci.LMPFeaturesPage1Bit) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.bits[addr][bit]
}

// SupportedOnBothPage1 reports whether bit is set on LMP features page 1 for
// both self and peer.
func (r *Registry) SupportedOnBothPage1(self, peer btaddr.Addr, bit hci.LMPFeaturesPage1Bit) bool {
	return r.Supported(self, bit) && r.Supported(peer, bit)
}
