package demo

import (
	"testing"
	"unsafe"
)

func TestUpdatePreservesSiblingFields(t *testing.T) {
	// DATAL occupies bits 0-3 and DATAH bits 4-7. Replacing only DATAL must
	// leave DATAH untouched.
	var dr UartDr
	dr.value.Reg = 0xA5

	dr.Modify(func(u *UartDrUpdate) {
		u.SetDatal(0x3)
	})

	if got := dr.value.Reg; got != 0xA3 {
		t.Errorf("expected 0xA3, got %#x", got)
	}
}

func TestIgnoringStateZeroesUnsetFields(t *testing.T) {
	var dr UartDr
	dr.value.Reg = 0xA5

	dr.IgnoringState().SetDatal(0x3).Commit()

	if got := dr.value.Reg; got != 0x03 {
		t.Errorf("expected 0x03, got %#x", got)
	}
}

func TestEmptyUpdateWritesNothing(t *testing.T) {
	// An ignoring-state update would zero the register if it wrote at all,
	// so an unchanged value proves the commit was suppressed.
	var cr UartCr
	cr.value.Reg = 0xA5

	cr.IgnoringState().Commit()

	if got := cr.value.Reg; got != 0xA5 {
		t.Errorf("expected suppressed write to leave 0xA5, got %#x", got)
	}
}

func TestUpdateCommitsOnce(t *testing.T) {
	var cr UartCr

	u := cr.Update().SetSpe(true)
	u.Commit()

	defer func() {
		if recover() == nil {
			t.Error("expected second commit to panic")
		}
	}()
	u.Commit()
}

func TestMultipleFieldsSingleWrite(t *testing.T) {
	var cr UartCr
	cr.value.Reg = 0x0

	cr.Modify(func(u *UartCrUpdate) {
		u.SetSpe(true).SetTxe(true).SetFreq(0x9)
	})

	if got := cr.value.Reg; got != 0x9C0 {
		t.Errorf("expected 0x9C0, got %#x", got)
	}
}

func TestOneShotSetter(t *testing.T) {
	var cr UartCr
	cr.value.Reg = 0x80

	cr.SetSpe(true)

	if got := cr.value.Reg; got != 0xC0 {
		t.Errorf("expected TXE preserved alongside SPE, got %#x", got)
	}
}

func TestSnapshotReadsOnce(t *testing.T) {
	var cr UartCr
	cr.value.Reg = 0x40

	g := cr.Get()
	cr.value.Reg = 0x0

	if !g.Spe() {
		t.Error("snapshot must decode from the cached word, not live hardware")
	}
}

func TestParityRoundTrip(t *testing.T) {
	var cr UartCr

	cr.Modify(func(u *UartCrUpdate) {
		u.SetParity(UartCrParityEven)
	})
	if got := cr.value.Reg; got != 0x2<<2 {
		t.Fatalf("expected EVEN encoded at bit 2, got %#x", got)
	}
	if got := cr.Parity(); got != UartCrParityEven {
		t.Errorf("expected EVEN, got %#x", got)
	}

	cr.value.Reg = 0x3 << 2
	if got := cr.Parity(); got != UartCrParityOdd {
		t.Errorf("expected ODD, got %#x", got)
	}
}

func TestUnmappedParityPanics(t *testing.T) {
	var cr UartCr
	cr.value.Reg = 0x1 << 2 // no enumerated value maps to 1

	defer func() {
		if recover() == nil {
			t.Error("expected unmapped enumerated value to panic")
		}
	}()
	cr.Parity()
}

func TestWriteOnlyUpdateZeroFills(t *testing.T) {
	var fifo UartFifo
	fifo.value.Reg = 0xFFFFFFFF

	fifo.SetByte(0x7F)

	if got := fifo.value.Reg; got != 0x7F {
		t.Errorf("write-only commit must not read back, got %#x", got)
	}
}

func TestStagedSetterTouchesNoHardware(t *testing.T) {
	var dr UartDr
	dr.value.Reg = 0x55

	u := dr.Update().SetDatah(0xF)
	if got := dr.value.Reg; got != 0x55 {
		t.Fatalf("field setter must not write hardware, got %#x", got)
	}
	u.Commit()
	if got := dr.value.Reg; got != 0xF5 {
		t.Errorf("expected 0xF5 after commit, got %#x", got)
	}
}

func TestFieldValueMasked(t *testing.T) {
	// A value wider than the field must not spill into sibling bits.
	var dr UartDr

	dr.IgnoringState().SetDatal(0xFF).Commit()

	if got := dr.value.Reg; got != 0x0F {
		t.Errorf("expected 0x0F, got %#x", got)
	}
}

func TestInstanceAddresses(t *testing.T) {
	if got := uintptr(unsafe.Pointer(UART0)); got != 0x40001000 {
		t.Errorf("UART0 bound to %#x", got)
	}
	if got := uintptr(unsafe.Pointer(UART1)); got != 0x40002000 {
		t.Errorf("UART1 bound to %#x", got)
	}
}

func TestLayoutOffsets(t *testing.T) {
	// Declaration order must match ascending address order, with padding
	// covering the hole between CR and DR.
	var u Uart
	base := uintptr(unsafe.Pointer(&u))
	if off := uintptr(unsafe.Pointer(&u.Dr)) - base; off != 0x08 {
		t.Errorf("DR at offset %#x, expected 0x08", off)
	}
	if off := uintptr(unsafe.Pointer(&u.Sr)) - base; off != 0x0C {
		t.Errorf("SR at offset %#x, expected 0x0C", off)
	}
	if off := uintptr(unsafe.Pointer(&u.Fifo)) - base; off != 0x10 {
		t.Errorf("FIFO at offset %#x, expected 0x10", off)
	}
	if size := unsafe.Sizeof(u); size != 0x14 {
		t.Errorf("register block is %#x bytes, expected 0x14", size)
	}
}
