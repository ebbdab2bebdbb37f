// Package harness drives a simulated pairing between two hosts end to end:
// it wires a matched pairctx.Context pair, runs the initiating and
// responding coordinators concurrently, and feeds each side's HCI events
// into a scripted host that answers with HCI commands.
package harness

import (
	"github.com/backkem/sspsim/internal/btaddr"
	"github.com/backkem/sspsim/internal/events"
	"github.com/backkem/sspsim/internal/features"
	"github.com/backkem/sspsim/internal/hci"
	"github.com/backkem/sspsim/internal/pairctx"
	"github.com/backkem/sspsim/internal/ssp"
)

// HostScript drives one side's simulated host: it reads HCI events off in
// and writes HCI commands to out until the pairing concludes (a
// SimplePairingComplete with AuthenticationFailure status, or a
// LinkKeyNotification), then returns.
type HostScript func(in <-chan hci.Event, out chan<- hci.Command)

// Side bundles one side's address, the IO-capability host script driving
// it, and the page-1 feature bits it advertises.
type Side struct {
	Addr                      btaddr.Addr
	Script                    HostScript
	SecureConnectionsSupport bool
}

// Result reports the outcome observed on one side of a Run.
type Result struct {
	Stats ssp.Stats
	Err   error
}

// Run starts initiator.Script as the host behind Initiate and
// responder.Script as the host behind Respond, wires both sides' LMP/HCI
// traffic together, and blocks until both coordinators finish.
func Run(initiator, responder Side, emit events.Emitter) (initiatorResult, responderResult Result) {
	if emit == nil {
		emit = events.NopEmitter{}
	}

	reg := features.NewRegistry()
	reg.Set(initiator.Addr, hci.SecureConnectionsHostSupport, initiator.SecureConnectionsSupport)
	reg.Set(responder.Addr, hci.SecureConnectionsHostSupport, responder.SecureConnectionsSupport)

	initCtx, respCtx := pairctx.NewPair(initiator.Addr, responder.Addr, reg)

	initDone := make(chan Result, 1)
	respDone := make(chan Result, 1)

	go func() {
		go initiator.Script(initCtx.Events(), initCtx.Commands())
		emit.EmitPairingStarted(responder.Addr, "initiator")
		stats, err := ssp.Initiate(initCtx)
		reportOutcome(emit, responder.Addr, stats, err)
		initDone <- Result{Stats: stats, Err: err}
	}()

	go func() {
		go responder.Script(respCtx.Events(), respCtx.Commands())
		request := respCtx.ReceiveIoCapabilityReq()
		emit.EmitPairingStarted(initiator.Addr, "responder")
		stats, err := ssp.Respond(respCtx, request)
		reportOutcome(emit, initiator.Addr, stats, err)
		respDone <- Result{Stats: stats, Err: err}
	}()

	return <-initDone, <-respDone
}

func reportOutcome(emit events.Emitter, addr btaddr.Addr, stats ssp.Stats, err error) {
	if err != nil {
		emit.EmitPairingFailed(addr, err.Error())
		return
	}
	emit.EmitPairingComplete(addr, stats.Method.String(), stats.KeyType.String())
}
