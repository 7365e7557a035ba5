// Package svd holds the typed model of a CMSIS-SVD hardware description.
// The generator consumes this model read-only; it performs no validation
// beyond what XML decoding enforces.
package svd

type DeviceElement struct {
	Name          string             `xml:"name"`
	Description   string             `xml:"description"`
	Series        string             `xml:"series"`
	Version       string             `xml:"version"`
	Vendor        string             `xml:"vendor"`
	VendorId      string             `xml:"vendorId"`
	RegisterSize  Integer            `xml:"size"`
	DefaultAccess string             `xml:"access"`
	ResetValue    Integer            `xml:"resetValue"`
	ResetMask     Integer            `xml:"resetMask"`
	Peripherals   PeripheralsElement `xml:"peripherals"`
}

type PeripheralsElement struct {
	Elements []PeripheralElement `xml:"peripheral"`
}

// Find returns the index of the named peripheral.
func (p PeripheralsElement) Find(name string) (int, bool) {
	if len(name) > 0 {
		for i, pp := range p.Elements {
			if pp.Name == name {
				return i, true
			}
		}
	}
	return -1, false
}

type PeripheralElement struct {
	Name        string           `xml:"name"`
	Description string           `xml:"description"`
	Group       string           `xml:"groupName"`
	BaseAddress Integer          `xml:"baseAddress"`
	Registers   RegistersElement `xml:"registers"`
	DerivedFrom string           `xml:"derivedFrom,attr"`
}

type RegistersElement struct {
	RegisterElements []RegisterElement `xml:"register"`
}

type RegisterElement struct {
	Name          string        `xml:"name"`
	Description   string        `xml:"description"`
	AddressOffset Integer       `xml:"addressOffset"`
	Size          Integer       `xml:"size"`
	Access        string        `xml:"access"`
	Fields        FieldElements `xml:"fields"`
}

func (r RegisterElement) GetAddressOffset() Integer {
	return r.AddressOffset
}

type FieldElements struct {
	Elements []FieldElement `xml:"field"`
}

type FieldElement struct {
	Name             string                  `xml:"name"`
	Description      string                  `xml:"description"`
	BitOffset        Integer                 `xml:"bitOffset"`
	BitWidth         Integer                 `xml:"bitWidth"`
	Access           string                  `xml:"access"`
	EnumeratedValues EnumeratedValuesElement `xml:"enumeratedValues"`
}

type EnumeratedValuesElement struct {
	Name     string                   `xml:"name"`
	Elements []EnumeratedValueElement `xml:"enumeratedValue"`
}

type EnumeratedValueElement struct {
	Name        string  `xml:"name"`
	Description string  `xml:"description"`
	Value       Integer `xml:"value"`
}
