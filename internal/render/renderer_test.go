package render

import "testing"

func TestParseMouseButton(t *testing.T) {
	for _, b := range MouseButtons {
		got, ok := ParseMouseButton(b.String())
		if !ok || got != b {
			t.Errorf("Expected %v to round trip, got %v (ok=%v)", b, got, ok)
		}
	}

	if _, ok := ParseMouseButton("thumb"); ok {
		t.Error("Expected unknown button name to fail")
	}
}
