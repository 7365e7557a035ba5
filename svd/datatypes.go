package svd

import (
	"encoding/xml"
	"strconv"
	"strings"
)

// Integer decodes the SVD scaledNonNegativeInteger format, which is either
// decimal or 0x-prefixed hexadecimal.
type Integer uint64

func (h *Integer) UnmarshalXML(d *xml.Decoder, start xml.StartElement) (err error) {
	var v string
	if err = d.DecodeElement(&v, &start); err != nil {
		return err
	}

	var value uint64
	v = strings.TrimSpace(v)
	if strings.HasPrefix(v, "0x") || strings.HasPrefix(v, "0X") {
		value, err = strconv.ParseUint(v[2:], 16, 64)
	} else {
		value, err = strconv.ParseUint(v, 10, 64)
	}

	if err != nil {
		return err
	}
	*h = Integer(value)
	return nil
}
