package btaddr

import "testing"

func TestParse_WrongLength(t *testing.T) {
	if _, err := Parse([]byte{1, 2, 3}); err == nil {
		t.Fatal("expected error for short input")
	}
}

func TestParse_RoundTrip(t *testing.T) {
	want := []byte{0x00, 0x11, 0x22, 0x33, 0x44, 0x55}
	a, err := Parse(want)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if a.String() != "00:11:22:33:44:55" {
		t.Errorf("String() = %q", a.String())
	}
}

func TestRandom_Unicast(t *testing.T) {
	a := Random()
	if a[0]&0x01 != 0 {
		t.Error("expected unicast bit clear")
	}
}

func TestZero(t *testing.T) {
	if Zero.String() != "00:00:00:00:00:00" {
		t.Errorf("Zero.String() = %q", Zero.String())
	}
}
