package ssp

import (
	"testing"

	"github.com/backkem/sspsim/internal/hci"
)

func params(io hci.IoCapability, oob hci.OobDataPresent, auth hci.AuthenticationRequirements) AuthenticationParams {
	return AuthenticationParams{IoCapability: io, OobDataPresent: oob, AuthenticationRequirements: auth}
}

func TestSelectAuthenticationMethod_OutOfBandWins(t *testing.T) {
	i := params(hci.DisplayYesNo, hci.P192Present, hci.DedicatedBondingMitmProtection)
	r := params(hci.DisplayYesNo, hci.NotPresent, hci.DedicatedBondingMitmProtection)
	if m := SelectAuthenticationMethod(i, r); m != OutOfBand {
		t.Errorf("got %v, want OutOfBand", m)
	}
}

func TestSelectAuthenticationMethod_NoMITM_JustWorks(t *testing.T) {
	i := params(hci.DisplayYesNo, hci.NotPresent, hci.NoBonding)
	r := params(hci.DisplayYesNo, hci.NotPresent, hci.NoBonding)
	if m := SelectAuthenticationMethod(i, r); m != NumericComparisonJustWork {
		t.Errorf("got %v, want NumericComparisonJustWork", m)
	}
}

func TestSelectAuthenticationMethod_KeyboardVsDisplay_PasskeyEntry(t *testing.T) {
	i := params(hci.KeyboardOnly, hci.NotPresent, hci.DedicatedBondingMitmProtection)
	r := params(hci.DisplayOnly, hci.NotPresent, hci.DedicatedBondingMitmProtection)
	if m := SelectAuthenticationMethod(i, r); m != PasskeyEntry {
		t.Errorf("got %v, want PasskeyEntry", m)
	}
}

func TestSelectAuthenticationMethod_KeyboardVsNoInputNoOutput_JustWorks(t *testing.T) {
	i := params(hci.KeyboardOnly, hci.NotPresent, hci.DedicatedBondingMitmProtection)
	r := params(hci.NoInputNoOutput, hci.NotPresent, hci.DedicatedBondingMitmProtection)
	if m := SelectAuthenticationMethod(i, r); m != NumericComparisonJustWork {
		t.Errorf("got %v, want NumericComparisonJustWork", m)
	}
}

func TestSelectAuthenticationMethod_DisplayYesNoBothSides_UserConfirm(t *testing.T) {
	i := params(hci.DisplayYesNo, hci.NotPresent, hci.DedicatedBondingMitmProtection)
	r := params(hci.DisplayYesNo, hci.NotPresent, hci.DedicatedBondingMitmProtection)
	if m := SelectAuthenticationMethod(i, r); m != NumericComparisonUserConfirm {
		t.Errorf("got %v, want NumericComparisonUserConfirm", m)
	}
}

func TestSelectAuthenticationMethod_Symmetric(t *testing.T) {
	profiles := []AuthenticationParams{
		params(hci.DisplayOnly, hci.NotPresent, hci.NoBonding),
		params(hci.DisplayYesNo, hci.NotPresent, hci.DedicatedBondingMitmProtection),
		params(hci.KeyboardOnly, hci.NotPresent, hci.GeneralBondingMitmProtection),
		params(hci.NoInputNoOutput, hci.P256Present, hci.NoBondingMitmProtection),
	}
	for _, a := range profiles {
		for _, b := range profiles {
			if SelectAuthenticationMethod(a, b) != SelectAuthenticationMethod(b, a) {
				t.Errorf("method not symmetric for %+v vs %+v", a, b)
			}
		}
	}
}

func TestLinkKeyType_Total(t *testing.T) {
	p192, _ := GeneratePublicKey(P192PublicKeySize)
	p256, _ := GeneratePublicKey(P256PublicKeySize)
	methods := []AuthenticationMethod{OutOfBand, NumericComparisonJustWork, NumericComparisonUserConfirm, PasskeyEntry}

	for _, m := range methods {
		for _, k := range []PublicKey{p192, p256} {
			kt := LinkKeyType(m, k)
			authenticated := m != NumericComparisonJustWork
			isAuthenticated := kt == hci.AuthenticatedP192 || kt == hci.AuthenticatedP256
			if isAuthenticated != authenticated {
				t.Errorf("method %v key %v: authenticated = %v, want %v", m, k, isAuthenticated, authenticated)
			}
			if k.IsP256() != (kt == hci.AuthenticatedP256 || kt == hci.UnauthenticatedP256) {
				t.Errorf("method %v key %v: curve mismatch in key type %v", m, k, kt)
			}
		}
	}
}
