package volatile

import "testing"

func TestRegister32(t *testing.T) {
	var r Register32
	if r.Load() != 0 {
		t.Error("zero value must read as 0")
	}
	r.Store(0xDEADBEEF)
	if got := r.Load(); got != 0xDEADBEEF {
		t.Errorf("Load() = %#x after Store", got)
	}
}
