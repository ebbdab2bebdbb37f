package harness_test

import (
	"testing"
	"time"

	"github.com/backkem/sspsim/internal/btaddr"
	. "github.com/backkem/sspsim/internal/harness"
	"github.com/backkem/sspsim/internal/hci"
	"github.com/backkem/sspsim/internal/scenario"
	"github.com/backkem/sspsim/internal/ssp"
)

func runWithTimeout(t *testing.T, initiator, responder Side) (Result, Result) {
	t.Helper()
	type pair struct{ i, r Result }
	done := make(chan pair, 1)
	go func() {
		i, r := Run(initiator, responder, nil)
		done <- pair{i, r}
	}()
	select {
	case p := <-done:
		return p.i, p.r
	case <-time.After(2 * time.Second):
		t.Fatal("harness run timed out")
		return Result{}, Result{}
	}
}

func TestRun_NumericComparisonJustWork_Success(t *testing.T) {
	p := scenario.NoInputNoOutputNoMITM()
	initiator := Side{Addr: btaddr.Random(), Script: scenario.AcceptAll(p)}
	responder := Side{Addr: btaddr.Random(), Script: scenario.AcceptAll(p)}

	initRes, respRes := runWithTimeout(t, initiator, responder)

	if initRes.Err != nil {
		t.Fatalf("initiator: %v", initRes.Err)
	}
	if respRes.Err != nil {
		t.Fatalf("responder: %v", respRes.Err)
	}
	if initRes.Stats.Method != ssp.NumericComparisonJustWork {
		t.Errorf("method = %v, want NumericComparisonJustWork", initRes.Stats.Method)
	}
	if initRes.Stats.KeyType != hci.UnauthenticatedP192 {
		t.Errorf("key type = %v, want UnauthenticatedP192", initRes.Stats.KeyType)
	}
}

func TestRun_NumericComparisonUserConfirm_ResponderRejects(t *testing.T) {
	p := scenario.DisplayYesNoMITM()
	initiator := Side{Addr: btaddr.Random(), Script: scenario.AcceptAll(p)}
	responder := Side{Addr: btaddr.Random(), Script: scenario.RejectUserPrompts(p)}

	initRes, respRes := runWithTimeout(t, initiator, responder)

	if initRes.Err == nil {
		t.Fatal("expected initiator to observe a failure")
	}
	if respRes.Err == nil {
		t.Fatal("expected responder to observe a failure")
	}
	if !initRes.Stats.Failed || !respRes.Stats.Failed {
		t.Fatal("expected both sides' stats to report Failed")
	}
}

func TestRun_NumericComparisonUserConfirm_InitiatorRejects(t *testing.T) {
	p := scenario.DisplayYesNoMITM()
	initiator := Side{Addr: btaddr.Random(), Script: scenario.RejectUserPrompts(p)}
	responder := Side{Addr: btaddr.Random(), Script: scenario.AcceptAll(p)}

	initRes, respRes := runWithTimeout(t, initiator, responder)

	if initRes.Err != ssp.ErrUserRejected {
		t.Fatalf("initiator err = %v, want ErrUserRejected", initRes.Err)
	}
	if respRes.Err != ssp.ErrPeerAborted {
		t.Fatalf("responder err = %v, want ErrPeerAborted", respRes.Err)
	}
	if !initRes.Stats.Failed || !respRes.Stats.Failed {
		t.Fatal("expected both sides' stats to report Failed")
	}
}

func TestRun_OutOfBand_Success(t *testing.T) {
	p := scenario.OutOfBandMITM()
	initiator := Side{Addr: btaddr.Random(), Script: scenario.AcceptAll(p)}
	responder := Side{Addr: btaddr.Random(), Script: scenario.AcceptAll(p)}

	initRes, respRes := runWithTimeout(t, initiator, responder)

	if initRes.Err != nil {
		t.Fatalf("initiator: %v", initRes.Err)
	}
	if respRes.Err != nil {
		t.Fatalf("responder: %v", respRes.Err)
	}
	if initRes.Stats.Method != ssp.OutOfBand {
		t.Errorf("method = %v, want OutOfBand", initRes.Stats.Method)
	}
	if initRes.Stats.KeyType != hci.AuthenticatedP192 {
		t.Errorf("key type = %v, want AuthenticatedP192", initRes.Stats.KeyType)
	}
}

func TestRun_PasskeyEntry_Success(t *testing.T) {
	keyboard := scenario.KeyboardOnlyMITM()
	display := scenario.DisplayOnlyMITM()
	initiator := Side{Addr: btaddr.Random(), Script: scenario.AcceptAll(keyboard)}
	responder := Side{Addr: btaddr.Random(), Script: scenario.AcceptAll(display)}

	initRes, respRes := runWithTimeout(t, initiator, responder)

	if initRes.Err != nil {
		t.Fatalf("initiator: %v", initRes.Err)
	}
	if respRes.Err != nil {
		t.Fatalf("responder: %v", respRes.Err)
	}
	if initRes.Stats.Method != ssp.PasskeyEntry {
		t.Errorf("method = %v, want PasskeyEntry", initRes.Stats.Method)
	}
}
