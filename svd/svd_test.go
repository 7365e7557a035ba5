package svd

import (
	"encoding/xml"
	"testing"
)

const document = `<?xml version="1.0" encoding="utf-8"?>
<device>
  <name>DEMO</name>
  <version>1.0</version>
  <access>read-write</access>
  <resetValue>0x00000000</resetValue>
  <peripherals>
    <peripheral>
      <name>UART0</name>
      <groupName>UART</groupName>
      <baseAddress>0x40001000</baseAddress>
      <registers>
        <register>
          <name>CR</name>
          <addressOffset>0</addressOffset>
          <size>32</size>
          <fields>
            <field>
              <name>PARITY</name>
              <bitOffset>2</bitOffset>
              <bitWidth>3</bitWidth>
              <enumeratedValues>
                <enumeratedValue>
                  <name>NONE</name>
                  <value>0</value>
                </enumeratedValue>
                <enumeratedValue>
                  <name>EVEN</name>
                  <value>0x2</value>
                </enumeratedValue>
              </enumeratedValues>
            </field>
          </fields>
        </register>
      </registers>
    </peripheral>
    <peripheral derivedFrom="UART0">
      <name>UART1</name>
      <baseAddress>0x40002000</baseAddress>
    </peripheral>
  </peripherals>
</device>`

func TestDecodeDevice(t *testing.T) {
	var device DeviceElement
	if err := xml.Unmarshal([]byte(document), &device); err != nil {
		t.Fatal(err)
	}

	if device.Name != "DEMO" || device.DefaultAccess != "read-write" {
		t.Errorf("device header decoded as %+v", device)
	}
	if len(device.Peripherals.Elements) != 2 {
		t.Fatalf("decoded %d peripherals, expected 2", len(device.Peripherals.Elements))
	}

	uart0 := device.Peripherals.Elements[0]
	if uart0.BaseAddress != 0x40001000 {
		t.Errorf("UART0 base address %#x", uint64(uart0.BaseAddress))
	}
	if len(uart0.Registers.RegisterElements) != 1 {
		t.Fatalf("decoded %d registers", len(uart0.Registers.RegisterElements))
	}
	cr := uart0.Registers.RegisterElements[0]
	if cr.Name != "CR" || cr.Size != 32 {
		t.Errorf("CR decoded as %+v", cr)
	}
	parity := cr.Fields.Elements[0]
	if parity.BitOffset != 2 || parity.BitWidth != 3 {
		t.Errorf("PARITY decoded as %+v", parity)
	}
	values := parity.EnumeratedValues.Elements
	if len(values) != 2 || values[1].Name != "EVEN" || values[1].Value != 2 {
		t.Errorf("enumerated values decoded as %+v", values)
	}

	uart1 := device.Peripherals.Elements[1]
	if uart1.DerivedFrom != "UART0" {
		t.Errorf("UART1 derivedFrom %q", uart1.DerivedFrom)
	}
}

func TestIntegerFormats(t *testing.T) {
	tests := []struct {
		input    string
		expected Integer
		fails    bool
	}{
		{"42", 42, false},
		{"0x2A", 42, false},
		{"0X2a", 42, false},
		{" 16 ", 16, false},
		{"0xFFFFFFFFFFFFFFFF", 0xFFFFFFFFFFFFFFFF, false},
		{"zzz", 0, true},
		{"", 0, true},
	}

	for _, test := range tests {
		var wrapper struct {
			Value Integer `xml:"value"`
		}
		err := xml.Unmarshal([]byte("<r><value>"+test.input+"</value></r>"), &wrapper)
		if test.fails {
			if err == nil {
				t.Errorf("%q: expected a decode error", test.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: %v", test.input, err)
			continue
		}
		if wrapper.Value != test.expected {
			t.Errorf("%q decoded to %d, expected %d", test.input, uint64(wrapper.Value), uint64(test.expected))
		}
	}
}

func TestFindPeripheral(t *testing.T) {
	peripherals := PeripheralsElement{Elements: []PeripheralElement{
		{Name: "UART0"},
		{Name: "TIM0"},
	}}

	if i, ok := peripherals.Find("TIM0"); !ok || i != 1 {
		t.Errorf("Find(TIM0) = %d, %t", i, ok)
	}
	if _, ok := peripherals.Find("SPI0"); ok {
		t.Error("Find(SPI0) must fail")
	}
	if _, ok := peripherals.Find(""); ok {
		t.Error("Find with an empty name must fail")
	}
}
